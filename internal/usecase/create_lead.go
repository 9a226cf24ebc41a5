package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/logging"
)

type CreateLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Fields entity.FieldDefinitionRepositoryInterface
	Events EventPublisher
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, fields entity.FieldDefinitionRepositoryInterface, events EventPublisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo, Fields: fields, Events: events}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}

	lead := entity.NewLead(input.OwnerID, input.Name)
	lead.Phone = strings.TrimSpace(input.Phone)
	lead.Instagram = strings.TrimSpace(input.Instagram)
	lead.Email = strings.TrimSpace(input.Email)
	lead.Niche = input.Niche
	lead.RevenueBand = input.RevenueBand
	lead.PainPoint = input.PainPoint
	lead.ChannelID = emptyToNil(input.ChannelID)
	lead.MeetingAt = input.MeetingAt
	lead.NoShow = input.NoShow
	if input.Score != nil {
		lead.Score = *input.Score
	}
	if input.Status != "" {
		stage, err := entity.ParseStage(input.Status)
		if err != nil {
			return nil, &DomainError{Code: CodeInvalidStage, Message: err.Error()}
		}
		lead.Status = stage
	}

	if uc.Fields != nil || len(input.CustomFields) > 0 {
		custom, err := checkCustomFields(ctx, uc.Fields, input.OwnerID, input.CustomFields)
		if err != nil {
			return nil, err
		}
		lead.CustomFields = custom
	}

	if err := lead.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, persistenceError("lead", err)
	}

	middleware.RecordLeadCreated()
	logging.L().Info("✅ lead criado", zap.String("lead_id", lead.ID), zap.String("status", string(lead.Status)))

	publish(ctx, uc.Events, queue.LeadEvent{
		Type:       queue.LeadCreated,
		LeadID:     lead.ID,
		OwnerID:    lead.OwnerID,
		ToStage:    string(lead.Status),
		OccurredAt: time.Now().UTC(),
	})

	return lead, nil
}

func checkCustomFields(ctx context.Context, repo entity.FieldDefinitionRepositoryInterface, ownerID string, values map[string]any) (entity.CustomFields, error) {
	var defs []entity.FieldDefinition
	if repo != nil {
		var err error
		defs, err = repo.List(ctx, ownerID)
		if err != nil {
			return nil, persistenceError("campos personalizados", err)
		}
	}
	custom := entity.CustomFields(values)
	if custom == nil {
		custom = entity.CustomFields{}
	}
	if err := entity.ValidateCustomFields(defs, custom); err != nil {
		return nil, validationError(err)
	}
	return custom, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
