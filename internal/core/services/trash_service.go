package services

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
)

// trashLogLimit caps a single audit listing.
const trashLogLimit = 200

type trashService struct {
	BaseService
	trashRepo portsrepo.TrashReader
}

// NewTrashService creates the read side of the trash subsystem.
func NewTrashService(repo portsrepo.TrashReader) *trashService {
	return &trashService{trashRepo: repo}
}

var _ portssvc.TrashSvcFacade = (*trashService)(nil)

func (s *trashService) ListTeamMemberTrash(ctx context.Context) ([]domain.TrashSnapshot, error) {
	return s.trashRepo.ListTeamMemberSnapshots(ctx)
}

func (s *trashService) ListTrashLogs(ctx context.Context) ([]domain.TrashLog, error) {
	return s.trashRepo.ListTrashLogs(ctx, trashLogLimit)
}
