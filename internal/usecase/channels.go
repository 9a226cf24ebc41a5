package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// ManageChannelsUseCase cuida do CRUD de canais. Apagar canal nunca toca nos leads.
type ManageChannelsUseCase struct {
	Repo entity.ChannelRepositoryInterface
}

func NewManageChannelsUseCase(repo entity.ChannelRepositoryInterface) *ManageChannelsUseCase {
	return &ManageChannelsUseCase{Repo: repo}
}

func (uc *ManageChannelsUseCase) Create(ctx context.Context, ownerID string, input ChannelInput) (*entity.Channel, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}
	ch, err := entity.NewChannel(ownerID, input.Name, input.Color)
	if err != nil {
		return nil, validationError(err)
	}
	if err := uc.Repo.Create(ctx, ch); err != nil {
		return nil, persistenceError("canal", err)
	}
	return ch, nil
}

func (uc *ManageChannelsUseCase) List(ctx context.Context, ownerID string) ([]*entity.Channel, error) {
	channels, err := uc.Repo.List(ctx, ownerID)
	if err != nil {
		return nil, persistenceError("canais", err)
	}
	return channels, nil
}

func (uc *ManageChannelsUseCase) Update(ctx context.Context, ownerID, id string, input ChannelInput) (*entity.Channel, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}
	ch, err := entity.NewChannel(ownerID, input.Name, input.Color)
	if err != nil {
		return nil, validationError(err)
	}
	ch.ID = id
	ch.CreatedAt = time.Time{}
	if err := uc.Repo.Update(ctx, ch); err != nil {
		return nil, persistenceError("canal", err)
	}
	return ch, nil
}

func (uc *ManageChannelsUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if err := uc.Repo.Delete(ctx, ownerID, id); err != nil {
		return persistenceError("canal", err)
	}
	return nil
}
