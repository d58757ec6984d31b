package pgsql

import (
	"context"
	"fmt"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTrashRepository struct {
	BaseRepository
}

func newPgxTrashRepository(pool *pgxpool.Pool) portsrepo.TrashReader {
	return &PgxTrashRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TrashReader = (*PgxTrashRepository)(nil)

func (r *PgxTrashRepository) ListTeamMemberSnapshots(ctx context.Context) ([]domain.TrashSnapshot, error) {
	query := `
		SELECT trash_id, original_id, snapshot, deleted_by, reason, deleted_at, retention_until
		FROM team_member_trash
		ORDER BY deleted_at DESC, trash_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying trash snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.TrashSnapshot{}
	for rows.Next() {
		s := domain.TrashSnapshot{ItemType: domain.ItemTypeTeamMember}
		if err := rows.Scan(
			&s.TrashID, &s.OriginalID, &s.Snapshot,
			&s.DeletedBy, &s.Reason, &s.DeletedAt, &s.RetentionUntil,
		); err != nil {
			return nil, fmt.Errorf("error scanning trash snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trash snapshot rows: %w", err)
	}
	return snapshots, nil
}

func (r *PgxTrashRepository) ListTrashLogs(ctx context.Context, limit int) ([]domain.TrashLog, error) {
	query := `
		SELECT log_id, item_type, item_id, action, actor_user_id, reason, created_at
		FROM trash_logs
		ORDER BY created_at DESC, log_id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying trash logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.TrashLog{}
	for rows.Next() {
		var l domain.TrashLog
		if err := rows.Scan(
			&l.LogID, &l.ItemType, &l.ItemID, &l.Action,
			&l.ActorUserID, &l.Reason, &l.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("error scanning trash log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trash log rows: %w", err)
	}
	return logs, nil
}
