package services

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/craftline/craftline_backend/internal/dto"
)

// TeamSvcFacade covers team (crew) operations.
type TeamSvcFacade interface {
	CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

// TeamMemberSvcFacade covers team member CRUD and the trash lifecycle.
type TeamMemberSvcFacade interface {
	CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest) (*domain.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest) (*domain.TeamMember, error)

	// MoveToTrash soft-deletes the member, snapshots it with the reason and
	// actor, stamps the retention deadline and logs the move.
	MoveToTrash(ctx context.Context, teamMemberID string, reason, actorUserID *string) error
	// RestoreFromTrash un-deletes the member, discards the snapshot and logs
	// the restore.
	RestoreFromTrash(ctx context.Context, teamMemberID string, actorUserID *string) error
	// PurgeTrash removes only the snapshot and logs the purge; the
	// soft-deleted live row is left in place.
	PurgeTrash(ctx context.Context, teamMemberID string, actorUserID *string) error
}

// TrashSvcFacade reads the trash listings and the audit ledger.
type TrashSvcFacade interface {
	ListTeamMemberTrash(ctx context.Context) ([]domain.TrashSnapshot, error)
	ListTrashLogs(ctx context.Context) ([]domain.TrashLog, error)
}

// ProjectItemSvcFacade covers materials, tasks and work entries.
type ProjectItemSvcFacade interface {
	CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (*domain.Material, error)
	ListMaterialsByProject(ctx context.Context, projectID string) ([]domain.Material, error)
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.ProjectTask, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error)
	CreateWorkEntry(ctx context.Context, req dto.CreateWorkEntryRequest) (*domain.TeamWorkEntry, error)
	ListWorkEntriesByProject(ctx context.Context, projectID string) ([]domain.TeamWorkEntry, error)
}
