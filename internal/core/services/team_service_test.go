package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/craftline/craftline_backend/internal/apperrors"
	"github.com/craftline/craftline_backend/internal/core/domain"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/core/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TeamRepository ---
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) SaveTeam(ctx context.Context, team domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	var teams []domain.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]domain.Team)
	}
	return teams, args.Error(1)
}

// --- Mock TeamMemberRepository ---
type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamMemberID)
	var member *domain.TeamMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.TeamMember)
	}
	return member, args.Error(1)
}

func (m *MockTeamMemberRepository) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	args := m.Called(ctx)
	var members []domain.TeamMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.TeamMember)
	}
	return members, args.Error(1)
}

func (m *MockTeamMemberRepository) SaveTeamMember(ctx context.Context, member domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) UpdateTeamMember(ctx context.Context, teamMemberID string, patch domain.TeamMemberPatch, now time.Time) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamMemberID, patch, now)
	var member *domain.TeamMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.TeamMember)
	}
	return member, args.Error(1)
}

func (m *MockTeamMemberRepository) MoveToTrash(ctx context.Context, teamMemberID string, reason, actorUserID *string, now, retentionUntil time.Time) error {
	args := m.Called(ctx, teamMemberID, reason, actorUserID, now, retentionUntil)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) RestoreFromTrash(ctx context.Context, teamMemberID string, actorUserID *string, now time.Time) error {
	args := m.Called(ctx, teamMemberID, actorUserID, now)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) PurgeTrashSnapshot(ctx context.Context, teamMemberID string, actorUserID *string, now time.Time) error {
	args := m.Called(ctx, teamMemberID, actorUserID, now)
	return args.Error(0)
}

// --- Test Suite ---
type TeamServiceTestSuite struct {
	suite.Suite
	mockTeamRepo   *MockTeamRepository
	mockMemberRepo *MockTeamMemberRepository
	teamService    portssvc.TeamSvcFacade
	memberService  portssvc.TeamMemberSvcFacade
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.mockTeamRepo = new(MockTeamRepository)
	suite.mockMemberRepo = new(MockTeamMemberRepository)
	svc := services.NewTeamService(suite.mockTeamRepo, suite.mockMemberRepo, 30)
	suite.teamService = svc
	suite.memberService = svc
}

// --- CreateTeam Tests ---

func (suite *TeamServiceTestSuite) TestCreateTeam_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	req := dto.CreateTeamRequest{Name: "Crew A", AssignedProjectID: &projectID}

	suite.mockTeamRepo.On("SaveTeam", ctx, mock.MatchedBy(func(t domain.Team) bool {
		return t.Name == "Crew A" && t.TeamID != "" &&
			t.AssignedProjectID != nil && *t.AssignedProjectID == projectID
	})).Return(nil).Once()

	team, err := suite.teamService.CreateTeam(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(team)
	suite.NotEmpty(team.TeamID)
	suite.mockTeamRepo.AssertExpectations(suite.T())
}

// --- CreateTeamMember Tests ---

func (suite *TeamServiceTestSuite) TestCreateTeamMember_AppliesDefaults() {
	ctx := context.Background()
	req := dto.CreateTeamMemberRequest{
		Name:       "Mason",
		RateAmount: decimal.NewFromInt(1200),
	}

	suite.mockMemberRepo.On("SaveTeamMember", ctx, mock.MatchedBy(func(m domain.TeamMember) bool {
		return m.Status == domain.EmploymentActive &&
			m.RateType == domain.RateDaily &&
			m.Skills != nil && len(m.Skills) == 0 &&
			m.TeamMemberID != ""
	})).Return(nil).Once()

	member, err := suite.memberService.CreateTeamMember(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.Equal(domain.EmploymentActive, member.Status)
	suite.Equal(domain.RateDaily, member.RateType)
	suite.NotNil(member.Skills)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestCreateTeamMember_ExplicitStatusAndRate() {
	ctx := context.Background()
	req := dto.CreateTeamMemberRequest{
		Name:       "Electrician",
		Skills:     []string{"wiring", "panels"},
		Status:     "inactive",
		RateType:   "hourly",
		RateAmount: decimal.NewFromInt(150),
	}

	suite.mockMemberRepo.On("SaveTeamMember", ctx, mock.MatchedBy(func(m domain.TeamMember) bool {
		return m.Status == domain.EmploymentInactive && m.RateType == domain.RateHourly &&
			len(m.Skills) == 2
	})).Return(nil).Once()

	member, err := suite.memberService.CreateTeamMember(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.EmploymentInactive, member.Status)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestCreateTeamMember_SaveError() {
	ctx := context.Background()
	req := dto.CreateTeamMemberRequest{Name: "Mason"}

	suite.mockMemberRepo.On("SaveTeamMember", ctx, mock.AnythingOfType("domain.TeamMember")).
		Return(assert.AnError).Once()

	member, err := suite.memberService.CreateTeamMember(ctx, req)

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, assert.AnError)
}

// --- MoveToTrash Tests ---

func (suite *TeamServiceTestSuite) TestMoveToTrash_StampsRetentionWindow() {
	ctx := context.Background()
	memberID := uuid.NewString()
	reason := "left the company"
	actor := uuid.NewString()
	before := time.Now().UTC()

	suite.mockMemberRepo.On("MoveToTrash", ctx, memberID, &reason, &actor,
		mock.MatchedBy(func(now time.Time) bool {
			return !now.Before(before) && now.Location() == time.UTC
		}),
		mock.MatchedBy(func(retentionUntil time.Time) bool {
			// 30-day window configured in SetupTest.
			return !retentionUntil.Before(before.Add(30 * 24 * time.Hour))
		})).Return(nil).Once()

	err := suite.memberService.MoveToTrash(ctx, memberID, &reason, &actor)

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestMoveToTrash_DefaultRetentionWhenZero() {
	ctx := context.Background()
	memberID := uuid.NewString()
	before := time.Now().UTC()

	// Non-positive retention falls back to 30 days.
	svc := services.NewTeamService(suite.mockTeamRepo, suite.mockMemberRepo, 0)

	suite.mockMemberRepo.On("MoveToTrash", ctx, memberID, (*string)(nil), (*string)(nil),
		mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(retentionUntil time.Time) bool {
			return !retentionUntil.Before(before.Add(30 * 24 * time.Hour))
		})).Return(nil).Once()

	err := svc.MoveToTrash(ctx, memberID, nil, nil)

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestMoveToTrash_NotFound() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("MoveToTrash", ctx, memberID, (*string)(nil), (*string)(nil),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.memberService.MoveToTrash(ctx, memberID, nil, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

// --- RestoreFromTrash / PurgeTrash Tests ---

func (suite *TeamServiceTestSuite) TestRestoreFromTrash_Success() {
	ctx := context.Background()
	memberID := uuid.NewString()
	actor := uuid.NewString()

	suite.mockMemberRepo.On("RestoreFromTrash", ctx, memberID, &actor, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.memberService.RestoreFromTrash(ctx, memberID, &actor)

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestRestoreFromTrash_RepoError() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("RestoreFromTrash", ctx, memberID, (*string)(nil), mock.AnythingOfType("time.Time")).
		Return(assert.AnError).Once()

	err := suite.memberService.RestoreFromTrash(ctx, memberID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TeamServiceTestSuite) TestPurgeTrash_Success() {
	ctx := context.Background()
	memberID := uuid.NewString()
	actor := uuid.NewString()

	suite.mockMemberRepo.On("PurgeTrashSnapshot", ctx, memberID, &actor, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.memberService.PurgeTrash(ctx, memberID, &actor)

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

// --- UpdateTeamMember Tests ---

func (suite *TeamServiceTestSuite) TestUpdateTeamMember_MapsPatch() {
	ctx := context.Background()
	memberID := uuid.NewString()
	name := "Renamed"
	status := "inactive"
	updated := &domain.TeamMember{TeamMemberID: memberID, Name: name}

	suite.mockMemberRepo.On("UpdateTeamMember", ctx, memberID,
		mock.MatchedBy(func(p domain.TeamMemberPatch) bool {
			return p.Name != nil && *p.Name == name &&
				p.Status != nil && *p.Status == domain.EmploymentInactive &&
				p.Contact == nil
		}),
		mock.AnythingOfType("time.Time")).Return(updated, nil).Once()

	member, err := suite.memberService.UpdateTeamMember(ctx, memberID, dto.UpdateTeamMemberRequest{
		Name:   &name,
		Status: &status,
	})

	suite.Require().NoError(err)
	suite.Equal(updated, member)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTeamService(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
