package mapping

import (
	"testing"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/craftline/craftline_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSkills(t *testing.T) {
	encoded, err := EncodeSkills([]string{"painting", "tiling"})
	require.NoError(t, err)
	assert.Equal(t, `["painting","tiling"]`, encoded)

	// Nil never encodes as null
	encoded, err = EncodeSkills(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, encoded)

	encoded, err = EncodeSkills([]string{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, encoded)
}

func TestDecodeSkills(t *testing.T) {
	skills, err := DecodeSkills(`["painting","tiling"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"painting", "tiling"}, skills)

	// Empty and null columns decode to an empty list, not nil
	for _, raw := range []string{"", "null", "[]"} {
		skills, err = DecodeSkills(raw)
		require.NoError(t, err, "raw=%q", raw)
		assert.NotNil(t, skills, "raw=%q", raw)
		assert.Empty(t, skills, "raw=%q", raw)
	}

	_, err = DecodeSkills(`{"not":"a list"}`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode skills")
}

func TestTeamMemberRoundTrip(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	teamID := "team-1"
	d := domain.TeamMember{
		TeamMemberID: "member-1",
		TeamID:       &teamID,
		Name:         "Mason",
		Contact:      "+91 98765 43210",
		Skills:       []string{"masonry"},
		Status:       domain.EmploymentActive,
		RateType:     domain.RateDaily,
		RateAmount:   decimal.NewFromInt(1200),
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	row, err := ToModelTeamMember(d)
	require.NoError(t, err)
	assert.Equal(t, `["masonry"]`, row.SkillsJSON)
	assert.Equal(t, "active", row.Status)
	assert.Equal(t, "daily", row.RateType)

	back, err := ToDomainTeamMember(row)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestToDomainTeamMember_BadSkillsColumn(t *testing.T) {
	row := models.TeamMember{
		TeamMemberID: "member-1",
		SkillsJSON:   "{broken",
	}

	_, err := ToDomainTeamMember(row)
	assert.Error(t, err)
}
