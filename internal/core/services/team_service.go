package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/google/uuid"
)

// teamService implements TeamSvcFacade and TeamMemberSvcFacade
type teamService struct {
	BaseService
	teamRepo       portsrepo.TeamRepositoryFacade
	teamMemberRepo portsrepo.TeamMemberRepositoryFacade
	retention      time.Duration
}

// NewTeamService creates a new team/team-member service. retentionDays is the
// trash retention window stamped onto snapshots at move-to-trash time.
func NewTeamService(teamRepo portsrepo.TeamRepositoryFacade, memberRepo portsrepo.TeamMemberRepositoryFacade, retentionDays int) *teamService {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &teamService{
		teamRepo:       teamRepo,
		teamMemberRepo: memberRepo,
		retention:      time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Ensure teamService implements both facades
var (
	_ portssvc.TeamSvcFacade       = (*teamService)(nil)
	_ portssvc.TeamMemberSvcFacade = (*teamService)(nil)
)

func (s *teamService) CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*domain.Team, error) {
	now := time.Now().UTC()
	team := domain.Team{
		TeamID:            uuid.NewString(),
		Name:              req.Name,
		AssignedProjectID: req.AssignedProjectID,
		AuditFields:       domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.teamRepo.SaveTeam(ctx, team); err != nil {
		s.LogError(ctx, err, "Failed to save team", slog.String("team_id", team.TeamID))
		return nil, err
	}
	return &team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepo.ListTeams(ctx)
}

func (s *teamService) CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest) (*domain.TeamMember, error) {
	now := time.Now().UTC()

	status := domain.EmploymentActive
	if req.Status != "" {
		status = domain.EmploymentStatus(req.Status)
	}
	rateType := domain.RateDaily
	if req.RateType != "" {
		rateType = domain.RateType(req.RateType)
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	member := domain.TeamMember{
		TeamMemberID: uuid.NewString(),
		TeamID:       req.TeamID,
		Name:         req.Name,
		Contact:      req.Contact,
		Skills:       skills,
		Status:       status,
		RateType:     rateType,
		RateAmount:   req.RateAmount,
		PhotoURL:     req.PhotoURL,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.teamMemberRepo.SaveTeamMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save team member", slog.String("team_member_id", member.TeamMemberID))
		return nil, err
	}
	return &member, nil
}

func (s *teamService) GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	return s.teamMemberRepo.FindTeamMemberByID(ctx, teamMemberID)
}

func (s *teamService) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return s.teamMemberRepo.ListTeamMembers(ctx)
}

func (s *teamService) UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest) (*domain.TeamMember, error) {
	patch := domain.TeamMemberPatch{
		TeamID:     req.TeamID,
		Name:       req.Name,
		Contact:    req.Contact,
		Skills:     req.Skills,
		RateAmount: req.RateAmount,
		PhotoURL:   req.PhotoURL,
	}
	if req.Status != nil {
		status := domain.EmploymentStatus(*req.Status)
		patch.Status = &status
	}
	if req.RateType != nil {
		rateType := domain.RateType(*req.RateType)
		patch.RateType = &rateType
	}
	return s.teamMemberRepo.UpdateTeamMember(ctx, teamMemberID, patch, time.Now().UTC())
}

// MoveToTrash soft-deletes the member and snapshots it, stamping
// retentionUntil = now + configured retention window.
func (s *teamService) MoveToTrash(ctx context.Context, teamMemberID string, reason, actorUserID *string) error {
	now := time.Now().UTC()
	retentionUntil := now.Add(s.retention)
	if err := s.teamMemberRepo.MoveToTrash(ctx, teamMemberID, reason, actorUserID, now, retentionUntil); err != nil {
		s.LogError(ctx, err, "Move to trash failed", slog.String("team_member_id", teamMemberID))
		return err
	}
	s.LogInfo(ctx, "Team member moved to trash",
		slog.String("team_member_id", teamMemberID),
		slog.Time("retention_until", retentionUntil))
	return nil
}

func (s *teamService) RestoreFromTrash(ctx context.Context, teamMemberID string, actorUserID *string) error {
	if err := s.teamMemberRepo.RestoreFromTrash(ctx, teamMemberID, actorUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Restore from trash failed", slog.String("team_member_id", teamMemberID))
		return err
	}
	s.LogInfo(ctx, "Team member restored from trash", slog.String("team_member_id", teamMemberID))
	return nil
}

// PurgeTrash removes the snapshot only. The soft-deleted live row stays, by
// contrast with the project purge which removes rows physically.
func (s *teamService) PurgeTrash(ctx context.Context, teamMemberID string, actorUserID *string) error {
	if err := s.teamMemberRepo.PurgeTrashSnapshot(ctx, teamMemberID, actorUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Purge trash snapshot failed", slog.String("team_member_id", teamMemberID))
		return err
	}
	s.LogInfo(ctx, "Team member trash snapshot purged", slog.String("team_member_id", teamMemberID))
	return nil
}
