package repositories

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// TrashReader lists trash snapshots and the audit ledger. The ledger is
// append-only; no write interface exists outside the trash transactions.
type TrashReader interface {
	// ListTeamMemberSnapshots retrieves all trashed team members, newest first.
	ListTeamMemberSnapshots(ctx context.Context) ([]domain.TrashSnapshot, error)

	// ListTrashLogs retrieves up to limit of the most recent ledger entries,
	// newest first.
	ListTrashLogs(ctx context.Context, limit int) ([]domain.TrashLog, error)
}
