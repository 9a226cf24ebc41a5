package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type LeadFieldsUseCase struct {
	Repo entity.FieldDefinitionRepositoryInterface
}

func NewLeadFieldsUseCase(repo entity.FieldDefinitionRepositoryInterface) *LeadFieldsUseCase {
	return &LeadFieldsUseCase{Repo: repo}
}

func (uc *LeadFieldsUseCase) List(ctx context.Context, ownerID string) ([]entity.FieldDefinition, error) {
	defs, err := uc.Repo.List(ctx, ownerID)
	if err != nil {
		return nil, persistenceError("campos personalizados", err)
	}
	if defs == nil {
		defs = []entity.FieldDefinition{}
	}
	return defs, nil
}

// Replace troca o template inteiro. A posição segue a ordem recebida.
func (uc *LeadFieldsUseCase) Replace(ctx context.Context, ownerID string, defs []entity.FieldDefinition) ([]entity.FieldDefinition, error) {
	for i := range defs {
		if err := validateInput(defs[i]); err != nil {
			return nil, validationError(err)
		}
		defs[i].Position = i
	}
	if err := entity.ValidateFieldDefinitions(defs); err != nil {
		return nil, validationError(err)
	}
	if err := uc.Repo.Replace(ctx, ownerID, defs); err != nil {
		return nil, persistenceError("campos personalizados", err)
	}
	return defs, nil
}
