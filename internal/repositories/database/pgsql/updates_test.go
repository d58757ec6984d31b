package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildUpdate(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)

	t.Run("no set fields returns ok=false", func(t *testing.T) {
		fields := []patchField{
			col("name", "ignored", false),
			col("client_name", nil, false),
		}

		query, args, ok := buildUpdate("projects", "project_id", "p-1", fields, now)

		assert.False(t, ok)
		assert.Empty(t, query)
		assert.Nil(t, args)
	})

	t.Run("single field stamps updated_at and filters deleted rows", func(t *testing.T) {
		fields := []patchField{
			col("name", "Renovation", true),
		}

		query, args, ok := buildUpdate("projects", "project_id", "p-1", fields, now)

		assert.True(t, ok)
		assert.Equal(t, "UPDATE projects SET name = $1, updated_at = $2 WHERE project_id = $3 AND deleted = FALSE", query)
		assert.Equal(t, []any{"Renovation", now, "p-1"}, args)
	})

	t.Run("unset fields are skipped and parameters stay dense", func(t *testing.T) {
		fields := []patchField{
			col("name", "Renovation", true),
			col("client_name", "ignored", false),
			col("status", "Completed", true),
		}

		query, args, ok := buildUpdate("projects", "project_id", "p-1", fields, now)

		assert.True(t, ok)
		assert.Equal(t, "UPDATE projects SET name = $1, status = $2, updated_at = $3 WHERE project_id = $4 AND deleted = FALSE", query)
		assert.Equal(t, []any{"Renovation", "Completed", now, "p-1"}, args)
	})

	t.Run("multi-column field binds one parameter for every column", func(t *testing.T) {
		deadline := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
		fields := []patchField{
			cols([]string{"deadline", "end_date"}, deadline, true),
		}

		query, args, ok := buildUpdate("projects", "project_id", "p-1", fields, now)

		assert.True(t, ok)
		assert.Equal(t, "UPDATE projects SET deadline = $1, end_date = $1, updated_at = $2 WHERE project_id = $3 AND deleted = FALSE", query)
		assert.Equal(t, []any{deadline, now, "p-1"}, args)
	})

	t.Run("nil value clears a nullable column", func(t *testing.T) {
		fields := []patchField{
			col("team_id", nil, true),
		}

		query, args, ok := buildUpdate("team_members", "team_member_id", "m-1", fields, now)

		assert.True(t, ok)
		assert.Equal(t, "UPDATE team_members SET team_id = $1, updated_at = $2 WHERE team_member_id = $3 AND deleted = FALSE", query)
		assert.Equal(t, []any{nil, now, "m-1"}, args)
	})
}
