package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishLeadEvent(ctx context.Context, event queue.LeadEvent) error {
	return m.Called(ctx, event).Error(0)
}

type ScheduleMailer struct {
	mock.Mock
}

func (m *ScheduleMailer) SendPaymentSchedule(to, clientName string, payments []entity.Payment) error {
	return m.Called(to, clientName, payments).Error(0)
}
