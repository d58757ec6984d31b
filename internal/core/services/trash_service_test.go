package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TrashReader ---
type MockTrashReader struct {
	mock.Mock
}

func (m *MockTrashReader) ListTeamMemberSnapshots(ctx context.Context) ([]domain.TrashSnapshot, error) {
	args := m.Called(ctx)
	var snapshots []domain.TrashSnapshot
	if args.Get(0) != nil {
		snapshots = args.Get(0).([]domain.TrashSnapshot)
	}
	return snapshots, args.Error(1)
}

func (m *MockTrashReader) ListTrashLogs(ctx context.Context, limit int) ([]domain.TrashLog, error) {
	args := m.Called(ctx, limit)
	var logs []domain.TrashLog
	if args.Get(0) != nil {
		logs = args.Get(0).([]domain.TrashLog)
	}
	return logs, args.Error(1)
}

// --- Test Suite ---
type TrashServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTrashReader
	service  portssvc.TrashSvcFacade
}

func (suite *TrashServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTrashReader)
	suite.service = services.NewTrashService(suite.mockRepo)
}

func (suite *TrashServiceTestSuite) TestListTeamMemberTrash() {
	ctx := context.Background()
	snapshots := []domain.TrashSnapshot{
		{
			TrashID:    "t-2",
			ItemType:   domain.ItemTypeTeamMember,
			OriginalID: "m-2",
			Snapshot:   json.RawMessage(`{"name":"Second"}`),
			DeletedAt:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			TrashID:    "t-1",
			ItemType:   domain.ItemTypeTeamMember,
			OriginalID: "m-1",
			Snapshot:   json.RawMessage(`{"name":"First"}`),
			DeletedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	suite.mockRepo.On("ListTeamMemberSnapshots", ctx).Return(snapshots, nil).Once()

	result, err := suite.service.ListTeamMemberTrash(ctx)

	suite.Require().NoError(err)
	suite.Equal(snapshots, result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TrashServiceTestSuite) TestListTrashLogs_CapsAtTwoHundred() {
	ctx := context.Background()
	logs := []domain.TrashLog{
		{LogID: "l-1", ItemType: domain.ItemTypeTeamMember, ItemID: "m-1", Action: domain.TrashActionMove},
	}

	suite.mockRepo.On("ListTrashLogs", ctx, 200).Return(logs, nil).Once()

	result, err := suite.service.ListTrashLogs(ctx)

	suite.Require().NoError(err)
	suite.Equal(logs, result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TrashServiceTestSuite) TestListTrashLogs_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListTrashLogs", ctx, 200).Return(nil, assert.AnError).Once()

	result, err := suite.service.ListTrashLogs(ctx)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTrashService(t *testing.T) {
	suite.Run(t, new(TrashServiceTestSuite))
}
