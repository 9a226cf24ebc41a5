package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/mocks"
)

func newLeadAt(stage entity.Stage) *entity.Lead {
	l := entity.NewLead("owner-1", "Maria")
	l.Status = stage
	return l
}

func TestMoveLeadStageSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	events := new(mocks.EventPublisher)
	lead := newLeadAt(entity.StageFormFilled)

	repo.On("FindByID", ctx, "owner-1", lead.ID).Return(lead, nil)
	repo.On("UpdateStatus", ctx, "owner-1", lead.ID, entity.StageMeetingScheduled).Return(nil)
	events.On("PublishLeadEvent", ctx, mock.MatchedBy(func(ev queue.LeadEvent) bool {
		return ev.Type == queue.LeadStageChanged &&
			ev.LeadID == lead.ID &&
			ev.FromStage == "form_filled" &&
			ev.ToStage == "meeting_scheduled"
	})).Return(nil)

	uc := NewMoveLeadStageUseCase(repo, events)
	got, err := uc.Execute(ctx, MoveLeadStageInput{OwnerID: "owner-1", LeadID: lead.ID, Stage: "meeting_scheduled"})

	require.NoError(t, err)
	assert.Equal(t, entity.StageMeetingScheduled, got.Status)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestMoveLeadStageBackwardsAllowed(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	lead := newLeadAt(entity.StageSold)

	repo.On("FindByID", ctx, "owner-1", lead.ID).Return(lead, nil)
	repo.On("UpdateStatus", ctx, "owner-1", lead.ID, entity.StageFormFilled).Return(nil)

	uc := NewMoveLeadStageUseCase(repo, nil)
	got, err := uc.Execute(ctx, MoveLeadStageInput{OwnerID: "owner-1", LeadID: lead.ID, Stage: "form_filled"})

	require.NoError(t, err)
	assert.Equal(t, entity.StageFormFilled, got.Status)
}

func TestMoveLeadStageIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	events := new(mocks.EventPublisher)
	lead := newLeadAt(entity.StageFollowUp)

	repo.On("FindByID", ctx, "owner-1", lead.ID).Return(lead, nil)
	repo.On("UpdateStatus", ctx, "owner-1", lead.ID, entity.StageSold).Return(nil).Once()
	events.On("PublishLeadEvent", ctx, mock.Anything).Return(nil).Once()

	uc := NewMoveLeadStageUseCase(repo, events)
	in := MoveLeadStageInput{OwnerID: "owner-1", LeadID: lead.ID, Stage: "sold"}

	first, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	second, err := uc.Execute(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, entity.StageSold, first.Status)
	assert.Equal(t, entity.StageSold, second.Status)
	repo.AssertNumberOfCalls(t, "UpdateStatus", 1)
	events.AssertNumberOfCalls(t, "PublishLeadEvent", 1)
}

func TestMoveLeadStageSameStageTouchesNothing(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	events := new(mocks.EventPublisher)
	lead := newLeadAt(entity.StageQualifyingBANT)

	repo.On("FindByID", ctx, "owner-1", lead.ID).Return(lead, nil)

	uc := NewMoveLeadStageUseCase(repo, events)
	got, err := uc.Execute(ctx, MoveLeadStageInput{OwnerID: "owner-1", LeadID: lead.ID, Stage: "qualifying_bant"})

	require.NoError(t, err)
	assert.Equal(t, entity.StageQualifyingBANT, got.Status)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "PublishLeadEvent", mock.Anything, mock.Anything)
}

func TestMoveLeadStageInvalidStage(t *testing.T) {
	repo := new(mocks.LeadRepository)

	uc := NewMoveLeadStageUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), MoveLeadStageInput{OwnerID: "owner-1", LeadID: "lead-1", Stage: "archived"})

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeInvalidStage, de.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveLeadStageMissingStage(t *testing.T) {
	uc := NewMoveLeadStageUseCase(new(mocks.LeadRepository), nil)
	_, err := uc.Execute(context.Background(), MoveLeadStageInput{OwnerID: "owner-1", LeadID: "lead-1"})

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeValidation, de.Code)
	require.Len(t, de.Fields, 1)
	assert.Equal(t, "stage", de.Fields[0].Field)
}

func TestMoveLeadStageNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	repo.On("FindByID", ctx, "owner-1", "ghost").Return(nil, entity.ErrNotFound)

	uc := NewMoveLeadStageUseCase(repo, nil)
	_, err := uc.Execute(ctx, MoveLeadStageInput{OwnerID: "owner-1", LeadID: "ghost", Stage: "sold"})

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeNotFound, de.Code)
}

func TestMoveLeadStagePersistenceFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	events := new(mocks.EventPublisher)
	lead := newLeadAt(entity.StageWaitingResponse)
	dbErr := errors.New("connection reset")

	repo.On("FindByID", ctx, "owner-1", lead.ID).Return(lead, nil)
	repo.On("UpdateStatus", ctx, "owner-1", lead.ID, entity.StageDisqualified).Return(dbErr).Once()

	uc := NewMoveLeadStageUseCase(repo, events)
	got, err := uc.Execute(ctx, MoveLeadStageInput{OwnerID: "owner-1", LeadID: lead.ID, Stage: "disqualified"})

	assert.Nil(t, got)
	assert.True(t, IsTechnicalError(err))
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, entity.StageWaitingResponse, lead.Status)
	repo.AssertNumberOfCalls(t, "UpdateStatus", 1)
	events.AssertNotCalled(t, "PublishLeadEvent", mock.Anything, mock.Anything)
}

func TestMoveLeadStagePublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LeadRepository)
	events := new(mocks.EventPublisher)
	lead := newLeadAt(entity.StageFormFilled)

	repo.On("FindByID", ctx, "owner-1", lead.ID).Return(lead, nil)
	repo.On("UpdateStatus", ctx, "owner-1", lead.ID, entity.StageFollowUp).Return(nil)
	events.On("PublishLeadEvent", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := NewMoveLeadStageUseCase(repo, events)
	got, err := uc.Execute(ctx, MoveLeadStageInput{OwnerID: "owner-1", LeadID: lead.ID, Stage: "follow_up"})

	require.NoError(t, err)
	assert.Equal(t, entity.StageFollowUp, got.Status)
}
