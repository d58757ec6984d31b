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

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, limit int, pageToken string) ([]domain.Project, string, error) {
	args := m.Called(ctx, limit, pageToken)
	var projects []domain.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]domain.Project)
	}
	return projects, args.String(1), args.Error(2)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, projectID string, patch domain.ProjectPatch, now time.Time) (*domain.Project, error) {
	args := m.Called(ctx, projectID, patch, now)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) SoftDeleteCascade(ctx context.Context, projectID string, deletedBy *string, now time.Time) error {
	args := m.Called(ctx, projectID, deletedBy, now)
	return args.Error(0)
}

func (m *MockProjectRepository) RestoreCascade(ctx context.Context, projectID string, now time.Time) (*domain.Project, error) {
	args := m.Called(ctx, projectID, now)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) PurgeCascade(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock QuotationRepository ---
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID)
	var quotation *domain.Quotation
	if args.Get(0) != nil {
		quotation = args.Get(0).(*domain.Quotation)
	}
	return quotation, args.Error(1)
}

func (m *MockQuotationRepository) ListQuotations(ctx context.Context) ([]domain.Quotation, error) {
	args := m.Called(ctx)
	var quotations []domain.Quotation
	if args.Get(0) != nil {
		quotations = args.Get(0).([]domain.Quotation)
	}
	return quotations, args.Error(1)
}

func (m *MockQuotationRepository) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, now time.Time) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID, status, now)
	var quotation *domain.Quotation
	if args.Get(0) != nil {
		quotation = args.Get(0).(*domain.Quotation)
	}
	return quotation, args.Error(1)
}

// --- Test Suite ---
type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo   *MockProjectRepository
	mockQuotationRepo *MockQuotationRepository
	service           portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockQuotationRepo = new(MockQuotationRepository)
	suite.service = services.NewProjectService(suite.mockProjectRepo, services.WithQuotationRepository(suite.mockQuotationRepo))
}

// --- CreateProject Tests ---

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		Name:       "Apartment Renovation",
		ClientName: "A. Client",
		StartDate:  time.Now().UTC(),
		Amount:     decimal.NewFromInt(250000),
	}

	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Name == req.Name && p.ClientName == req.ClientName &&
			p.Status == domain.ProjectOngoing && p.ProjectID != "" && !p.Deleted
	})).Return(nil).Once()

	created, err := suite.service.CreateProject(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(req.Name, created.Name)
	suite.Equal(domain.ProjectOngoing, created.Status)
	suite.NotEmpty(created.ProjectID)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_FromApprovedQuotation() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	req := dto.CreateProjectRequest{
		Name:        "Office Fitout",
		ClientName:  "B. Client",
		StartDate:   time.Now().UTC(),
		Amount:      decimal.NewFromInt(800000),
		QuotationID: &quotationID,
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).
		Return(&domain.Quotation{QuotationID: quotationID, Status: domain.QuotationApproved}, nil).Once()
	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.QuotationID != nil && *p.QuotationID == quotationID
	})).Return(nil).Once()

	created, err := suite.service.CreateProject(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Require().NotNil(created.QuotationID)
	suite.Equal(quotationID, *created.QuotationID)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_QuotationNotApproved() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	req := dto.CreateProjectRequest{
		Name:        "Office Fitout",
		ClientName:  "B. Client",
		StartDate:   time.Now().UTC(),
		Amount:      decimal.NewFromInt(800000),
		QuotationID: &quotationID,
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).
		Return(&domain.Quotation{QuotationID: quotationID, Status: domain.QuotationSent}, nil).Once()

	created, err := suite.service.CreateProject(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_QuotationNotFound() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	req := dto.CreateProjectRequest{
		Name:        "Office Fitout",
		ClientName:  "B. Client",
		StartDate:   time.Now().UTC(),
		Amount:      decimal.NewFromInt(800000),
		QuotationID: &quotationID,
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).
		Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateProject(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_SaveError() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		Name:       "Apartment Renovation",
		ClientName: "A. Client",
		StartDate:  time.Now().UTC(),
		Amount:     decimal.NewFromInt(250000),
	}
	expectedErr := assert.AnError

	suite.mockProjectRepo.On("SaveProject", ctx, mock.AnythingOfType("domain.Project")).Return(expectedErr).Once()

	created, err := suite.service.CreateProject(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

// --- ListProjects Tests ---

func (suite *ProjectServiceTestSuite) TestListProjects_DefaultLimit() {
	ctx := context.Background()
	expected := []domain.Project{{ProjectID: uuid.NewString()}}

	// Zero and out-of-range limits fall back to the default page size.
	suite.mockProjectRepo.On("ListProjects", ctx, 50, "").Return(expected, "", nil).Twice()

	projects, nextToken, err := suite.service.ListProjects(ctx, 0, "")
	suite.Require().NoError(err)
	suite.Len(projects, 1)
	suite.Empty(nextToken)

	projects, _, err = suite.service.ListProjects(ctx, 500, "")
	suite.Require().NoError(err)
	suite.Len(projects, 1)

	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestListProjects_PassesToken() {
	ctx := context.Background()
	token := "b3BhcXVl"

	suite.mockProjectRepo.On("ListProjects", ctx, 10, token).Return([]domain.Project{}, "next", nil).Once()

	projects, nextToken, err := suite.service.ListProjects(ctx, 10, token)

	suite.Require().NoError(err)
	suite.Empty(projects)
	suite.Equal("next", nextToken)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

// --- DeleteProject Tests ---

func (suite *ProjectServiceTestSuite) TestDeleteProject_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	actor := uuid.NewString()

	suite.mockProjectRepo.On("SoftDeleteCascade", ctx, projectID, &actor, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteProject(ctx, projectID, &actor)

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestDeleteProject_NotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("SoftDeleteCascade", ctx, projectID, (*string)(nil), mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProject(ctx, projectID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

// --- RestoreProject Tests ---

func (suite *ProjectServiceTestSuite) TestRestoreProject_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	restored := &domain.Project{ProjectID: projectID, Name: "Back Again"}

	suite.mockProjectRepo.On("RestoreCascade", ctx, projectID, mock.AnythingOfType("time.Time")).Return(restored, nil).Once()

	project, err := suite.service.RestoreProject(ctx, projectID)

	suite.Require().NoError(err)
	suite.Equal(restored, project)
	suite.False(project.Deleted)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestRestoreProject_NotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("RestoreCascade", ctx, projectID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	project, err := suite.service.RestoreProject(ctx, projectID)

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

// --- PurgeProject Tests ---

func (suite *ProjectServiceTestSuite) TestPurgeProject_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("PurgeCascade", ctx, projectID).Return(nil).Once()

	err := suite.service.PurgeProject(ctx, projectID)

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestPurgeProject_RepoError() {
	ctx := context.Background()
	projectID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockProjectRepo.On("PurgeCascade", ctx, projectID).Return(expectedErr).Once()

	err := suite.service.PurgeProject(ctx, projectID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
