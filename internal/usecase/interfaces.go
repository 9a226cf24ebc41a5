package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/logging"
)

type EventPublisher interface {
	PublishLeadEvent(ctx context.Context, event queue.LeadEvent) error
}

type ScheduleMailer interface {
	SendPaymentSchedule(to, clientName string, payments []entity.Payment) error
}

// publish é best effort: o registro já foi gravado, falha na fila só vira log.
func publish(ctx context.Context, events EventPublisher, ev queue.LeadEvent) {
	if events == nil {
		return
	}
	if err := events.PublishLeadEvent(ctx, ev); err != nil {
		logging.L().Error("⚠️ gravado no banco, mas falha ao publicar evento",
			zap.String("type", string(ev.Type)),
			zap.String("lead_id", ev.LeadID),
			zap.Error(err))
	}
}
