package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// CreateEntryUseCase registra uma venda ou uma implementação entregue.
type CreateEntryUseCase struct {
	Repo entity.DatedAmountRepositoryInterface
}

func NewCreateEntryUseCase(repo entity.DatedAmountRepositoryInterface) *CreateEntryUseCase {
	return &CreateEntryUseCase{Repo: repo}
}

func (uc *CreateEntryUseCase) Execute(ctx context.Context, ownerID string, source entity.AmountSource, input CreateEntryInput) (*entity.Entry, error) {
	if source != entity.SourceSales && source != entity.SourceImplementations {
		return nil, &DomainError{Code: CodeValidation, Message: "entries are only recorded for sales and implementations"}
	}
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}
	date, err := time.Parse(DateLayout, input.Date)
	if err != nil {
		return nil, validationError(entity.FieldErrors{{Field: "date", Message: "must be a date in the format 2006-01-02"}})
	}

	e := entity.NewEntry(ownerID, input.Description, input.Amount, date, emptyToNil(input.LeadID))
	if err := uc.Repo.CreateEntry(ctx, source, e); err != nil {
		return nil, persistenceError(string(source), err)
	}
	return e, nil
}
