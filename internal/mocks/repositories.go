// Package mocks tem os fakes testify dos repositórios e colaboradores externos.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type LeadRepository struct {
	mock.Mock
}

func (m *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *LeadRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Lead, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *LeadRepository) List(ctx context.Context, ownerID string) ([]*entity.Lead, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *LeadRepository) UpdateStatus(ctx context.Context, ownerID, id string, status entity.Stage) error {
	return m.Called(ctx, ownerID, id, status).Error(0)
}

func (m *LeadRepository) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type ChannelRepository struct {
	mock.Mock
}

func (m *ChannelRepository) Create(ctx context.Context, c *entity.Channel) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ChannelRepository) List(ctx context.Context, ownerID string) ([]*entity.Channel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Channel), args.Error(1)
}

func (m *ChannelRepository) Update(ctx context.Context, c *entity.Channel) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ChannelRepository) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type FieldDefinitionRepository struct {
	mock.Mock
}

func (m *FieldDefinitionRepository) List(ctx context.Context, ownerID string) ([]entity.FieldDefinition, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FieldDefinition), args.Error(1)
}

func (m *FieldDefinitionRepository) Replace(ctx context.Context, ownerID string, defs []entity.FieldDefinition) error {
	return m.Called(ctx, ownerID, defs).Error(0)
}

type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClientRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Client, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *ClientRepository) List(ctx context.Context, ownerID string) ([]*entity.Client, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Client), args.Error(1)
}

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PaymentRepository) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *PaymentRepository) ListByClient(ctx context.Context, ownerID, clientID string) ([]*entity.Payment, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *PaymentRepository) MarkPaid(ctx context.Context, ownerID, id string, paidAt time.Time) error {
	return m.Called(ctx, ownerID, id, paidAt).Error(0)
}

type DatedAmountRepository struct {
	mock.Mock
}

func (m *DatedAmountRepository) ListByYear(ctx context.Context, ownerID string, source entity.AmountSource, year int) ([]entity.DatedAmount, error) {
	args := m.Called(ctx, ownerID, source, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DatedAmount), args.Error(1)
}

func (m *DatedAmountRepository) CreateEntry(ctx context.Context, source entity.AmountSource, e *entity.Entry) error {
	return m.Called(ctx, source, e).Error(0)
}

type GoalRepository struct {
	mock.Mock
}

func (m *GoalRepository) Create(ctx context.Context, g *entity.Goal) error {
	return m.Called(ctx, g).Error(0)
}

func (m *GoalRepository) ListByPeriod(ctx context.Context, ownerID string, year, month int) ([]*entity.Goal, error) {
	args := m.Called(ctx, ownerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Goal), args.Error(1)
}

func (m *GoalRepository) UpdateCurrentValue(ctx context.Context, ownerID, id string, value float64) error {
	return m.Called(ctx, ownerID, id, value).Error(0)
}

type ProcessRepository struct {
	mock.Mock
}

func (m *ProcessRepository) Create(ctx context.Context, p *entity.Process) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProcessRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Process, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Process), args.Error(1)
}

func (m *ProcessRepository) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *ProcessRepository) CreatePhase(ctx context.Context, ph entity.Phase) error {
	return m.Called(ctx, ph).Error(0)
}

func (m *ProcessRepository) DeletePhases(ctx context.Context, processID string) error {
	return m.Called(ctx, processID).Error(0)
}

func (m *ProcessRepository) CreateTag(ctx context.Context, t entity.ProcessTag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *ProcessRepository) DeleteTags(ctx context.Context, processID string) error {
	return m.Called(ctx, processID).Error(0)
}
