package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ManageClientsUseCase struct {
	Repo entity.ClientRepositoryInterface
}

func NewManageClientsUseCase(repo entity.ClientRepositoryInterface) *ManageClientsUseCase {
	return &ManageClientsUseCase{Repo: repo}
}

func (uc *ManageClientsUseCase) Create(ctx context.Context, ownerID string, input CreateClientInput) (*entity.Client, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}
	start, err := time.Parse(DateLayout, input.StartDate)
	if err != nil {
		return nil, validationError(entity.FieldErrors{{Field: "start_date", Message: "must be a date in the format 2006-01-02"}})
	}
	client, err := entity.NewClient(ownerID, input.Name, input.Email, input.MonthlyAmount, start)
	if err != nil {
		return nil, validationError(err)
	}
	if err := uc.Repo.Create(ctx, client); err != nil {
		return nil, persistenceError("cliente", err)
	}
	return client, nil
}

func (uc *ManageClientsUseCase) List(ctx context.Context, ownerID string) ([]*entity.Client, error) {
	clients, err := uc.Repo.List(ctx, ownerID)
	if err != nil {
		return nil, persistenceError("clientes", err)
	}
	return clients, nil
}
