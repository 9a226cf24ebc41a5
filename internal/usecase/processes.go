package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/logging"
)

// ProcessUseCase grava processo, fases e tags como saga: três tabelas, sem transação no banco.
type ProcessUseCase struct {
	Repo entity.ProcessRepositoryInterface
}

func NewProcessUseCase(repo entity.ProcessRepositoryInterface) *ProcessUseCase {
	return &ProcessUseCase{Repo: repo}
}

func (uc *ProcessUseCase) Create(ctx context.Context, ownerID string, input CreateProcessInput) (*entity.Process, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}
	p, err := entity.NewProcess(ownerID, input.Name, input.Phases, input.Tags)
	if err != nil {
		return nil, validationError(err)
	}

	txn := NewTransaction()
	txn.AddOperation("create_process",
		func(ctx context.Context) error { return uc.Repo.Create(ctx, p) },
		func(ctx context.Context) error { return uc.purge(ctx, ownerID, p.ID) },
	)
	for _, ph := range p.Phases {
		txn.AddOperation("create_phase",
			func(ctx context.Context) error { return uc.Repo.CreatePhase(ctx, ph) },
			nil,
		)
	}
	for _, tag := range p.Tags {
		txn.AddOperation("create_tag",
			func(ctx context.Context) error { return uc.Repo.CreateTag(ctx, tag) },
			nil,
		)
	}

	if err := txn.Execute(ctx); err != nil {
		logging.L().Error("❌ falha ao criar processo", zap.String("process_id", p.ID), zap.Error(err))
		return nil, persistenceError("processo", err)
	}
	return p, nil
}

func (uc *ProcessUseCase) Get(ctx context.Context, ownerID, id string) (*entity.Process, error) {
	p, err := uc.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, persistenceError("processo", err)
	}
	return p, nil
}

// Delete remove tags, depois fases, depois o processo.
// As compensações regravam as linhas carregadas antes de começar.
func (uc *ProcessUseCase) Delete(ctx context.Context, ownerID, id string) error {
	p, err := uc.Repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return persistenceError("processo", err)
	}

	txn := NewTransaction()
	txn.AddOperation("delete_tags",
		func(ctx context.Context) error { return uc.Repo.DeleteTags(ctx, p.ID) },
		func(ctx context.Context) error {
			var errs []error
			for _, t := range p.Tags {
				errs = append(errs, uc.Repo.CreateTag(ctx, t))
			}
			return errors.Join(errs...)
		},
	)
	txn.AddOperation("delete_phases",
		func(ctx context.Context) error { return uc.Repo.DeletePhases(ctx, p.ID) },
		func(ctx context.Context) error {
			var errs []error
			for _, ph := range p.Phases {
				errs = append(errs, uc.Repo.CreatePhase(ctx, ph))
			}
			return errors.Join(errs...)
		},
	)
	txn.AddOperation("delete_process",
		func(ctx context.Context) error { return uc.Repo.Delete(ctx, ownerID, p.ID) },
		nil,
	)

	if err := txn.Execute(ctx); err != nil {
		logging.L().Error("❌ falha ao apagar processo", zap.String("process_id", p.ID), zap.Error(err))
		return persistenceError("processo", err)
	}
	return nil
}

// purge desfaz a criação inteira, inclusive filhos gravados em passos seguintes.
func (uc *ProcessUseCase) purge(ctx context.Context, ownerID, id string) error {
	return errors.Join(
		uc.Repo.DeleteTags(ctx, id),
		uc.Repo.DeletePhases(ctx, id),
		uc.Repo.Delete(ctx, ownerID, id),
	)
}
