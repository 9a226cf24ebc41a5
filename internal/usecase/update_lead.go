package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

// UpdateLeadUseCase aplica edições de formulário. O estágio muda só por MoveLeadStageUseCase.
type UpdateLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Fields entity.FieldDefinitionRepositoryInterface
	Events EventPublisher
}

func NewUpdateLeadUseCase(repo entity.LeadRepositoryInterface, fields entity.FieldDefinitionRepositoryInterface, events EventPublisher) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo, Fields: fields, Events: events}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, ownerID, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}

	lead, err := uc.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, persistenceError("lead", err)
	}

	setString(&lead.Name, input.Name)
	setString(&lead.Phone, input.Phone)
	setString(&lead.Instagram, input.Instagram)
	setString(&lead.Email, input.Email)
	setString(&lead.Niche, input.Niche)
	setString(&lead.RevenueBand, input.RevenueBand)
	setString(&lead.PainPoint, input.PainPoint)
	if input.Score != nil {
		lead.Score = *input.Score
	}
	if input.ChannelID != nil {
		lead.ChannelID = emptyToNil(input.ChannelID)
	}
	if input.MeetingAt != nil {
		lead.MeetingAt = input.MeetingAt
	}
	if input.ClearMeeting {
		lead.MeetingAt = nil
		lead.NoShow = false
	}
	if input.NoShow != nil {
		lead.NoShow = *input.NoShow
	}
	if input.CustomFields != nil {
		custom, err := checkCustomFields(ctx, uc.Fields, ownerID, input.CustomFields)
		if err != nil {
			return nil, err
		}
		lead.CustomFields = custom
	}

	if err := lead.Validate(); err != nil {
		return nil, validationError(err)
	}

	lead.UpdatedAt = time.Now()
	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, persistenceError("lead", err)
	}

	publish(ctx, uc.Events, queue.LeadEvent{
		Type:       queue.LeadUpdated,
		LeadID:     lead.ID,
		OwnerID:    lead.OwnerID,
		OccurredAt: time.Now().UTC(),
	})

	return lead, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
