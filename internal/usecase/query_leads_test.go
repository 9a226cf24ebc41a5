package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/mocks"
	"github.com/xavierca1/ligue-crm/internal/report"
)

func boardFixture() ([]*entity.Lead, []*entity.Channel) {
	ads := &entity.Channel{ID: "ch-ads", OwnerID: "owner-1", Name: "Ads", Color: "#3B82F6"}

	hot := newLeadAt(entity.StageSold)
	hot.Name = "Quente"
	hot.Score = 85
	hot.ChannelID = strPtr("ch-ads")

	good := newLeadAt(entity.StageFollowUp)
	good.Name = "Bom"
	good.Score = 65
	good.ChannelID = strPtr("ch-deleted")

	cold := newLeadAt(entity.StageFormFilled)
	cold.Name = "Frio"
	cold.Score = 10

	return []*entity.Lead{hot, good, cold}, []*entity.Channel{ads}
}

func TestBoardHasSevenColumnsInOrder(t *testing.T) {
	ctx := context.Background()
	leads := new(mocks.LeadRepository)
	channels := new(mocks.ChannelRepository)
	ls, cs := boardFixture()
	leads.On("List", ctx, "owner-1").Return(ls, nil)
	channels.On("List", ctx, "owner-1").Return(cs, nil)

	board, err := NewQueryLeadsUseCase(leads, channels).Board(ctx, "owner-1", report.LeadCriteria{})

	require.NoError(t, err)
	require.Len(t, board.Columns, 7)
	for i, s := range entity.Stages() {
		assert.Equal(t, s, board.Columns[i].Stage)
		assert.NotNil(t, board.Columns[i].Leads)
	}
	assert.Equal(t, 3, board.Total)

	sold := board.Columns[5]
	require.Len(t, sold.Leads, 1)
	assert.Equal(t, entity.CategoryHot, sold.Leads[0].Category)
	assert.Equal(t, "Lead Quente", sold.Leads[0].CategoryLabel)
	require.NotNil(t, sold.Leads[0].Channel)
	assert.Equal(t, "Ads", sold.Leads[0].Channel.Name)

	followUp := board.Columns[4]
	require.Len(t, followUp.Leads, 1)
	assert.Nil(t, followUp.Leads[0].Channel, "orphaned channel resolves to no channel")
	assert.Equal(t, 0, board.Columns[1].Count)
}

func TestListLeadsFiltersNoChannel(t *testing.T) {
	ctx := context.Background()
	leads := new(mocks.LeadRepository)
	channels := new(mocks.ChannelRepository)
	ls, cs := boardFixture()
	leads.On("List", ctx, "owner-1").Return(ls, nil)
	channels.On("List", ctx, "owner-1").Return(cs, nil)

	cards, err := NewQueryLeadsUseCase(leads, channels).List(ctx, "owner-1", report.LeadCriteria{ChannelID: report.NoChannel})

	require.NoError(t, err)
	names := []string{}
	for _, c := range cards {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Bom", "Frio"}, names)
}

func TestListLeadsChannelFailure(t *testing.T) {
	ctx := context.Background()
	leads := new(mocks.LeadRepository)
	channels := new(mocks.ChannelRepository)
	leads.On("List", ctx, "owner-1").Return([]*entity.Lead{}, nil)
	channels.On("List", ctx, "owner-1").Return(nil, errors.New("db down"))

	_, err := NewQueryLeadsUseCase(leads, channels).List(ctx, "owner-1", report.LeadCriteria{})

	assert.True(t, IsTechnicalError(err))
}

func TestLeadSummaryScenario(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	var ls []*entity.Lead
	for _, score := range []int{85, 65, 45, 10} {
		l := newLeadAt(entity.StageFormFilled)
		l.Score = score
		ls = append(ls, l)
	}
	repo.On("List", ctx, "owner-1").Return(ls, nil)

	sum, err := NewQueryLeadsUseCase(repo, nil).Summary(ctx, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 1, sum.ByCategory[entity.CategoryHot])
	assert.Equal(t, 0, sum.ConversionRate)
}

func TestGetLeadCard(t *testing.T) {
	ctx := context.Background()
	leads := new(mocks.LeadRepository)
	channels := new(mocks.ChannelRepository)
	ls, cs := boardFixture()
	leads.On("FindByID", ctx, "owner-1", ls[0].ID).Return(ls[0], nil)
	channels.On("List", ctx, "owner-1").Return(cs, nil)

	card, err := NewQueryLeadsUseCase(leads, channels).Get(ctx, "owner-1", ls[0].ID)

	require.NoError(t, err)
	assert.Equal(t, "ch-ads", card.Channel.ID)
}
