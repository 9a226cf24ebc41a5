package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type DeleteLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events EventPublisher
}

func NewDeleteLeadUseCase(repo entity.LeadRepositoryInterface, events EventPublisher) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo, Events: events}
}

// Execute apaga em definitivo. Não existe soft delete.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, ownerID, id string) error {
	if err := uc.Repo.Delete(ctx, ownerID, id); err != nil {
		return persistenceError("lead", err)
	}

	publish(ctx, uc.Events, queue.LeadEvent{
		Type:       queue.LeadDeleted,
		LeadID:     id,
		OwnerID:    ownerID,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}
