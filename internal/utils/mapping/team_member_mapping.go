package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/craftline/craftline_backend/internal/models"
)

// ToDomainTeamMember converts a database row into the domain shape, decoding
// the skills JSON column. An empty or null column becomes an empty list.
func ToDomainTeamMember(m models.TeamMember) (domain.TeamMember, error) {
	skills, err := DecodeSkills(m.SkillsJSON)
	if err != nil {
		return domain.TeamMember{}, err
	}
	return domain.TeamMember{
		TeamMemberID: m.TeamMemberID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		Contact:      m.Contact,
		Skills:       skills,
		Status:       domain.EmploymentStatus(m.Status),
		RateType:     domain.RateType(m.RateType),
		RateAmount:   m.RateAmount,
		PhotoURL:     m.PhotoURL,
		SoftDeleteFields: domain.SoftDeleteFields{
			Deleted:   m.Deleted,
			DeletedAt: m.DeletedAt,
			DeletedBy: m.DeletedBy,
		},
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}, nil
}

// ToModelTeamMember converts a domain team member into its row shape,
// encoding the skills list.
func ToModelTeamMember(d domain.TeamMember) (models.TeamMember, error) {
	skillsJSON, err := EncodeSkills(d.Skills)
	if err != nil {
		return models.TeamMember{}, err
	}
	return models.TeamMember{
		TeamMemberID: d.TeamMemberID,
		TeamID:       d.TeamID,
		Name:         d.Name,
		Contact:      d.Contact,
		SkillsJSON:   skillsJSON,
		Status:       string(d.Status),
		RateType:     string(d.RateType),
		RateAmount:   d.RateAmount,
		PhotoURL:     d.PhotoURL,
		Deleted:      d.Deleted,
		DeletedAt:    d.DeletedAt,
		DeletedBy:    d.DeletedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

// EncodeSkills serializes an ordered skills list for the JSON text column.
// A nil list encodes as an empty JSON array, never as null.
func EncodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("failed to encode skills: %w", err)
	}
	return string(b), nil
}

// DecodeSkills parses the skills JSON column back into an ordered list.
func DecodeSkills(raw string) ([]string, error) {
	if raw == "" || raw == "null" {
		return []string{}, nil
	}
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills column: %w", err)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}
