package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/mocks"
)

func TestCreateChannelDefaultColor(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ChannelRepository)
	repo.On("Create", ctx, mock.AnythingOfType("*entity.Channel")).Return(nil)

	ch, err := NewManageChannelsUseCase(repo).Create(ctx, "owner-1", ChannelInput{Name: " Instagram "})

	require.NoError(t, err)
	assert.Equal(t, "Instagram", ch.Name)
	assert.Equal(t, entity.ChannelPalette[0], ch.Color)
}

func TestCreateChannelBadColor(t *testing.T) {
	repo := new(mocks.ChannelRepository)
	_, err := NewManageChannelsUseCase(repo).Create(context.Background(), "owner-1", ChannelInput{Name: "Ads", Color: "blue"})

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeValidation, de.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateChannelKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ChannelRepository)
	created := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.On("Update", ctx, mock.MatchedBy(func(c *entity.Channel) bool {
		return c.ID == "ch-1" && c.Color == "#FFF"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Channel).CreatedAt = created
	}).Return(nil)

	ch, err := NewManageChannelsUseCase(repo).Update(ctx, "owner-1", "ch-1", ChannelInput{Name: "Ads", Color: "#FFF"})

	require.NoError(t, err)
	assert.Equal(t, "ch-1", ch.ID)
	assert.Equal(t, created, ch.CreatedAt)
}

func TestDeleteChannelNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ChannelRepository)
	repo.On("Delete", ctx, "owner-1", "ch-x").Return(entity.ErrNotFound)

	err := NewManageChannelsUseCase(repo).Delete(ctx, "owner-1", "ch-x")

	assert.True(t, IsDomainError(err))
}

func TestReplaceLeadFields(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.FieldDefinitionRepository)
	repo.On("Replace", ctx, "owner-1", mock.Anything).Return(nil)

	defs, err := NewLeadFieldsUseCase(repo).Replace(ctx, "owner-1", []entity.FieldDefinition{
		{Key: "budget", Label: "Orçamento", Type: entity.FieldNumber},
		{Key: "plan", Label: "Plano", Type: entity.FieldSelect, Options: []string{"a", "b"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, defs[1].Position)
}

func TestReplaceLeadFieldsRejectsBadType(t *testing.T) {
	repo := new(mocks.FieldDefinitionRepository)

	_, err := NewLeadFieldsUseCase(repo).Replace(context.Background(), "owner-1", []entity.FieldDefinition{
		{Key: "budget", Label: "Orçamento", Type: "date"},
	})

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "type", de.Fields[0].Field)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplaceLeadFieldsRejectsDuplicates(t *testing.T) {
	_, err := NewLeadFieldsUseCase(new(mocks.FieldDefinitionRepository)).Replace(context.Background(), "owner-1", []entity.FieldDefinition{
		{Key: "k", Label: "A", Type: entity.FieldText},
		{Key: "k", Label: "B", Type: entity.FieldText},
	})

	assert.True(t, IsDomainError(err))
}

func TestListLeadFieldsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.FieldDefinitionRepository)
	repo.On("List", ctx, "owner-1").Return(nil, nil)

	defs, err := NewLeadFieldsUseCase(repo).List(ctx, "owner-1")

	require.NoError(t, err)
	assert.NotNil(t, defs)
	assert.Empty(t, defs)
}

func TestCreateGoalProgress(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.GoalRepository)
	repo.On("Create", ctx, mock.AnythingOfType("*entity.Goal")).Return(nil)

	g, err := NewManageGoalsUseCase(repo).Create(ctx, "owner-1", CreateGoalInput{
		Title: "Faturamento", Unit: "R$", CurrentValue: 30000, TargetValue: 40000, Month: 5, Year: 2024,
	})

	require.NoError(t, err)
	assert.InDelta(t, 75.0, g.Progress, 0.001)
}

func TestListGoalsZeroTarget(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.GoalRepository)
	repo.On("ListByPeriod", ctx, "owner-1", 2024, 0).Return([]*entity.Goal{
		{ID: "g1", Title: "Leads", CurrentValue: 10, TargetValue: 0},
		{ID: "g2", Title: "Vendas", CurrentValue: 30, TargetValue: 20},
	}, nil)

	goals, err := NewManageGoalsUseCase(repo).List(ctx, "owner-1", 2024, 0)

	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, 0.0, goals[0].Progress)
	assert.Equal(t, 100.0, goals[1].Progress)
}

func TestListGoalsBadMonth(t *testing.T) {
	_, err := NewManageGoalsUseCase(new(mocks.GoalRepository)).List(context.Background(), "owner-1", 2024, 13)

	assert.True(t, IsDomainError(err))
}

func TestCreateEntry(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.DatedAmountRepository)
	repo.On("CreateEntry", ctx, entity.SourceSales, mock.MatchedBy(func(e *entity.Entry) bool {
		return e.Amount == 100 && e.Date.Day() == 15 && e.LeadID == nil
	})).Return(nil)

	e, err := NewCreateEntryUseCase(repo).Execute(ctx, "owner-1", entity.SourceSales, CreateEntryInput{
		Description: "Plano anual", Amount: 100, Date: "2024-01-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "owner-1", e.OwnerID)
}

func TestCreateEntryRejectsPayments(t *testing.T) {
	_, err := NewCreateEntryUseCase(new(mocks.DatedAmountRepository)).Execute(context.Background(), "owner-1", entity.SourcePayments, CreateEntryInput{Date: "2024-01-15"})

	assert.True(t, IsDomainError(err))
}

func TestCreateEntryBadDate(t *testing.T) {
	_, err := NewCreateEntryUseCase(new(mocks.DatedAmountRepository)).Execute(context.Background(), "owner-1", entity.SourceSales, CreateEntryInput{Date: "15/01/2024"})

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "date", de.Fields[0].Field)
}

func TestCreateClient(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ClientRepository)
	repo.On("Create", ctx, mock.AnythingOfType("*entity.Client")).Return(nil)

	c, err := NewManageClientsUseCase(repo).Create(ctx, "owner-1", CreateClientInput{
		Name: "Clínica", MonthlyAmount: 150000, StartDate: "2024-01-31",
	})

	require.NoError(t, err)
	assert.True(t, c.Active)
	assert.Equal(t, 31, c.StartDate.Day())
}

func TestCreateClientConflict(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ClientRepository)
	repo.On("Create", ctx, mock.Anything).Return(entity.ErrConflict)

	_, err := NewManageClientsUseCase(repo).Create(ctx, "owner-1", CreateClientInput{Name: "Clínica", StartDate: "2024-01-31"})

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeConflict, de.Code)
}
