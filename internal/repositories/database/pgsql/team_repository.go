package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/craftline/craftline_backend/internal/apperrors"
	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/craftline/craftline_backend/internal/models"
	"github.com/craftline/craftline_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const teamMemberColumns = `
	team_member_id, team_id, name, contact, skills, status, rate_type, rate_amount,
	photo_url, deleted, deleted_at, deleted_by, created_at, updated_at`

type PgxTeamRepository struct {
	BaseRepository
}

func newPgxTeamRepository(pool *pgxpool.Pool) *PgxTeamRepository {
	return &PgxTeamRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTeamRepository implements both team-side facades
var (
	_ portsrepo.TeamRepositoryFacade       = (*PgxTeamRepository)(nil)
	_ portsrepo.TeamMemberRepositoryFacade = (*PgxTeamRepository)(nil)
)

func (r *PgxTeamRepository) SaveTeam(ctx context.Context, team domain.Team) error {
	query := `
		INSERT INTO teams (team_id, name, assigned_project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4);
	`
	_, err := r.Pool.Exec(ctx, query, team.TeamID, team.Name, team.AssignedProjectID, team.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert team "+team.TeamID, err)
	}
	return nil
}

func (r *PgxTeamRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	query := `
		SELECT team_id, name, assigned_project_id, created_at, updated_at
		FROM teams
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying teams: %w", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.TeamID, &t.Name, &t.AssignedProjectID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}
	return teams, nil
}

func scanTeamMemberModel(row pgx.Row) (*models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(
		&m.TeamMemberID,
		&m.TeamID,
		&m.Name,
		&m.Contact,
		&m.SkillsJSON,
		&m.Status,
		&m.RateType,
		&m.RateAmount,
		&m.PhotoURL,
		&m.Deleted,
		&m.DeletedAt,
		&m.DeletedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan team member: %w", err)
	}
	return &m, nil
}

func (r *PgxTeamRepository) SaveTeamMember(ctx context.Context, member domain.TeamMember) error {
	model, err := mapping.ToModelTeamMember(member)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO team_members (
			team_member_id, team_id, name, contact, skills, status, rate_type,
			rate_amount, photo_url, deleted, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, $10, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		model.TeamMemberID,
		model.TeamID,
		model.Name,
		model.Contact,
		model.SkillsJSON,
		model.Status,
		model.RateType,
		model.RateAmount,
		model.PhotoURL,
		model.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert team member "+member.TeamMemberID, err)
	}
	return nil
}

// FindTeamMemberByID retrieves a member by id including soft-deleted rows:
// the trash drill-down needs to see trashed members.
func (r *PgxTeamRepository) FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE team_member_id = $1;`
	model, err := scanTeamMemberModel(r.Pool.QueryRow(ctx, query, teamMemberID))
	if err != nil {
		return nil, err
	}
	member, err := mapping.ToDomainTeamMember(*model)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *PgxTeamRepository) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + `
		FROM team_members
		WHERE deleted = FALSE
		ORDER BY created_at DESC, team_member_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying team members: %w", err)
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		model, err := scanTeamMemberModel(rows)
		if err != nil {
			return nil, err
		}
		member, err := mapping.ToDomainTeamMember(*model)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}
	return members, nil
}

func (r *PgxTeamRepository) UpdateTeamMember(ctx context.Context, teamMemberID string, patch domain.TeamMemberPatch, now time.Time) (*domain.TeamMember, error) {
	var skillsJSON *string
	if patch.Skills != nil {
		encoded, err := mapping.EncodeSkills(*patch.Skills)
		if err != nil {
			return nil, err
		}
		skillsJSON = &encoded
	}

	fields := []patchField{
		col("team_id", patch.TeamID, patch.TeamID != nil),
		col("name", patch.Name, patch.Name != nil),
		col("contact", patch.Contact, patch.Contact != nil),
		col("skills", skillsJSON, skillsJSON != nil),
		col("status", patch.Status, patch.Status != nil),
		col("rate_type", patch.RateType, patch.RateType != nil),
		col("rate_amount", patch.RateAmount, patch.RateAmount != nil),
		col("photo_url", patch.PhotoURL, patch.PhotoURL != nil),
	}

	query, args, ok := buildUpdate("team_members", "team_member_id", teamMemberID, fields, now)
	if !ok {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update team member "+teamMemberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("team member not found or deleted: %w", apperrors.ErrNotFound)
	}
	return r.FindTeamMemberByID(ctx, teamMemberID)
}

// MoveToTrash soft-deletes the live row and captures a pre-delete snapshot,
// the reason, the actor and the retention deadline, then logs the move. One
// transaction: the snapshot exists if and only if the row was marked deleted.
func (r *PgxTeamRepository) MoveToTrash(ctx context.Context, teamMemberID string, reason, actorUserID *string, now, retentionUntil time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE team_member_id = $1 FOR UPDATE;`
		model, err := scanTeamMemberModel(tx.QueryRow(ctx, query, teamMemberID))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("team member not found: %w", apperrors.ErrNotFound)
			}
			return err
		}

		// Snapshot the record as it was before the delete stamp.
		member, err := mapping.ToDomainTeamMember(*model)
		if err != nil {
			return err
		}
		snapshot, err := json.Marshal(member)
		if err != nil {
			return fmt.Errorf("failed to encode trash snapshot: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE team_members
			SET deleted = TRUE, deleted_at = $1, deleted_by = $2, updated_at = $1
			WHERE team_member_id = $3;
		`, now, actorUserID, teamMemberID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to soft-delete team member "+teamMemberID, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO team_member_trash (trash_id, original_id, snapshot, deleted_by, reason, deleted_at, retention_until)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, uuid.NewString(), teamMemberID, snapshot, actorUserID, reason, now, retentionUntil)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert trash snapshot for "+teamMemberID, err)
		}

		return r.appendTrashLog(ctx, tx, teamMemberID, domain.TrashActionMove, actorUserID, reason, now)
	})
}

// RestoreFromTrash un-deletes the live row and discards the snapshot
// unconditionally. The live row is the source of truth on restore, even if it
// was mutated after trashing.
func (r *PgxTeamRepository) RestoreFromTrash(ctx context.Context, teamMemberID string, actorUserID *string, now time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE team_members
			SET deleted = FALSE, deleted_at = NULL, deleted_by = NULL, updated_at = $1
			WHERE team_member_id = $2;
		`, now, teamMemberID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to restore team member "+teamMemberID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("team member not found: %w", apperrors.ErrNotFound)
		}

		_, err = tx.Exec(ctx, `DELETE FROM team_member_trash WHERE original_id = $1;`, teamMemberID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to discard trash snapshot for "+teamMemberID, err)
		}

		return r.appendTrashLog(ctx, tx, teamMemberID, domain.TrashActionRestore, actorUserID, nil, now)
	})
}

// PurgeTrashSnapshot removes the snapshot row only. The soft-deleted live row
// stays in team_members; this purge does not touch it. A purge with no
// snapshot left is a no-op on the trash table but is still logged.
func (r *PgxTeamRepository) PurgeTrashSnapshot(ctx context.Context, teamMemberID string, actorUserID *string, now time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM team_member_trash WHERE original_id = $1;`, teamMemberID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to purge trash snapshot for "+teamMemberID, err)
		}
		return r.appendTrashLog(ctx, tx, teamMemberID, domain.TrashActionPurge, actorUserID, nil, now)
	})
}

func (r *PgxTeamRepository) appendTrashLog(ctx context.Context, tx pgx.Tx, itemID string, action domain.TrashAction, actorUserID, reason *string, now time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO trash_logs (log_id, item_type, item_id, action, actor_user_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, uuid.NewString(), domain.ItemTypeTeamMember, itemID, action, actorUserID, reason, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append trash log for "+itemID, err)
	}
	return nil
}
