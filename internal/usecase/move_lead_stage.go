package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/logging"
)

// MoveLeadStageUseCase é o arrastar do card entre colunas.
// Só o status é gravado; mover para o estágio atual não grava nem publica nada.
type MoveLeadStageUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events EventPublisher
}

func NewMoveLeadStageUseCase(repo entity.LeadRepositoryInterface, events EventPublisher) *MoveLeadStageUseCase {
	return &MoveLeadStageUseCase{Repo: repo, Events: events}
}

func (uc *MoveLeadStageUseCase) Execute(ctx context.Context, input MoveLeadStageInput) (*entity.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}

	to, err := entity.ParseStage(input.Stage)
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidStage, Message: err.Error()}
	}

	lead, err := uc.Repo.FindByID(ctx, input.OwnerID, input.LeadID)
	if err != nil {
		return nil, persistenceError("lead", err)
	}

	from := lead.Status
	if from == to {
		return lead, nil
	}
	if err := entity.ValidateTransition(from, to); err != nil {
		return nil, &DomainError{Code: CodeInvalidStage, Message: err.Error()}
	}

	if err := uc.Repo.UpdateStatus(ctx, input.OwnerID, input.LeadID, to); err != nil {
		logging.L().Error("❌ falha ao mover lead",
			zap.String("lead_id", input.LeadID),
			zap.String("to", string(to)),
			zap.Error(err))
		return nil, persistenceError("lead", err)
	}
	lead.Status = to
	middleware.RecordStageTransition(string(to))

	logging.L().Info("🔀 lead movido",
		zap.String("lead_id", lead.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	publish(ctx, uc.Events, queue.LeadEvent{
		Type:       queue.LeadStageChanged,
		LeadID:     lead.ID,
		OwnerID:    lead.OwnerID,
		FromStage:  string(from),
		ToStage:    string(to),
		OccurredAt: time.Now().UTC(),
	})

	return lead, nil
}
