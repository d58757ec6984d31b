package repositories

import (
	"context"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// TeamRepositoryFacade covers teams (crews).
type TeamRepositoryFacade interface {
	SaveTeam(ctx context.Context, team domain.Team) error
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

// TeamMemberReader defines read operations for team member data.
type TeamMemberReader interface {
	// FindTeamMemberByID retrieves a member by id including soft-deleted rows.
	FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)
	// ListTeamMembers retrieves non-deleted members, newest first.
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
}

// TeamMemberWriter defines write operations for team member data.
type TeamMemberWriter interface {
	SaveTeamMember(ctx context.Context, member domain.TeamMember) error
	UpdateTeamMember(ctx context.Context, teamMemberID string, patch domain.TeamMemberPatch, now time.Time) (*domain.TeamMember, error)
}

// TeamMemberTrasher runs the trash-snapshot transitions. Each call is one
// database transaction and appends exactly one trash log entry.
type TeamMemberTrasher interface {
	// MoveToTrash soft-deletes the live row and stores a pre-delete snapshot
	// with the given reason, actor and retention deadline. Returns
	// apperrors.ErrNotFound when the member is absent.
	MoveToTrash(ctx context.Context, teamMemberID string, reason, actorUserID *string, now, retentionUntil time.Time) error

	// RestoreFromTrash un-deletes the live row and discards the snapshot.
	// The live row, not the snapshot, is the source of truth.
	RestoreFromTrash(ctx context.Context, teamMemberID string, actorUserID *string, now time.Time) error

	// PurgeTrashSnapshot removes the snapshot row only; the soft-deleted live
	// row stays. The purge is still logged even when the snapshot was
	// already gone.
	PurgeTrashSnapshot(ctx context.Context, teamMemberID string, actorUserID *string, now time.Time) error
}

// TeamMemberRepositoryFacade combines all team member repository interfaces.
type TeamMemberRepositoryFacade interface {
	TeamMemberReader
	TeamMemberWriter
	TeamMemberTrasher
}
