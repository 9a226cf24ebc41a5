package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ManageGoalsUseCase struct {
	Repo entity.GoalRepositoryInterface
}

func NewManageGoalsUseCase(repo entity.GoalRepositoryInterface) *ManageGoalsUseCase {
	return &ManageGoalsUseCase{Repo: repo}
}

func (uc *ManageGoalsUseCase) Create(ctx context.Context, ownerID string, input CreateGoalInput) (*GoalView, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}
	g, err := entity.NewGoal(ownerID, input.Title, input.Unit, input.CurrentValue, input.TargetValue, input.Month, input.Year)
	if err != nil {
		return nil, validationError(err)
	}
	if err := uc.Repo.Create(ctx, g); err != nil {
		return nil, persistenceError("meta", err)
	}
	return &GoalView{Goal: g, Progress: g.Progress()}, nil
}

// List devolve as metas do período. month 0 são as metas anuais.
func (uc *ManageGoalsUseCase) List(ctx context.Context, ownerID string, year, month int) ([]GoalView, error) {
	if month < 0 || month > 12 {
		return nil, validationError(entity.FieldErrors{{Field: "month", Message: "must be between 0 and 12"}})
	}
	goals, err := uc.Repo.ListByPeriod(ctx, ownerID, year, month)
	if err != nil {
		return nil, persistenceError("metas", err)
	}
	out := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalView{Goal: g, Progress: g.Progress()})
	}
	return out, nil
}

func (uc *ManageGoalsUseCase) UpdateCurrent(ctx context.Context, ownerID, id string, value float64) error {
	if err := uc.Repo.UpdateCurrentValue(ctx, ownerID, id, value); err != nil {
		return persistenceError("meta", err)
	}
	return nil
}
