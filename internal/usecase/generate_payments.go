package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/logging"
)

// GenerateClientPaymentsUseCase grava N parcelas mensais de um cliente.
// Cada parcela é um insert; se um falha, as já gravadas são apagadas.
type GenerateClientPaymentsUseCase struct {
	Clients             entity.ClientRepositoryInterface
	Payments            entity.PaymentRepositoryInterface
	Mailer              ScheduleMailer
	DefaultInstallments int
}

func NewGenerateClientPaymentsUseCase(
	clients entity.ClientRepositoryInterface,
	payments entity.PaymentRepositoryInterface,
	mailer ScheduleMailer,
	defaultInstallments int,
) *GenerateClientPaymentsUseCase {
	if defaultInstallments < 1 {
		defaultInstallments = entity.DefaultInstallments
	}
	return &GenerateClientPaymentsUseCase{
		Clients:             clients,
		Payments:            payments,
		Mailer:              mailer,
		DefaultInstallments: defaultInstallments,
	}
}

func (uc *GenerateClientPaymentsUseCase) Execute(ctx context.Context, input GeneratePaymentsInput) (*GeneratePaymentsOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, validationError(err)
	}

	client, err := uc.Clients.FindByID(ctx, input.OwnerID, input.ClientID)
	if err != nil {
		return nil, persistenceError("cliente", err)
	}

	start := client.StartDate
	if input.StartDate != "" {
		start, err = time.Parse(DateLayout, input.StartDate)
		if err != nil {
			return nil, validationError(entity.FieldErrors{{Field: "start_date", Message: "must be a date in the format 2006-01-02"}})
		}
	}
	amount := client.MonthlyAmount
	if input.Amount != nil {
		amount = *input.Amount
	}
	n := input.Installments
	if n == 0 {
		n = uc.DefaultInstallments
	}

	schedule, err := entity.GeneratePayments(start, amount, n)
	if err != nil {
		return nil, validationError(entity.FieldErrors{{Field: "installments", Message: err.Error()}})
	}

	now := time.Now()
	txn := NewTransaction()
	for i := range schedule {
		p := &schedule[i]
		p.ID = uuid.New().String()
		p.OwnerID = input.OwnerID
		p.ClientID = client.ID
		p.CreatedAt = now

		txn.AddOperation(fmt.Sprintf("create_payment_%d", i+1),
			func(ctx context.Context) error {
				return uc.Payments.Create(ctx, p)
			},
			func(ctx context.Context) error {
				return uc.Payments.Delete(ctx, input.OwnerID, p.ID)
			},
		)
	}

	if err := txn.Execute(ctx); err != nil {
		logging.L().Error("❌ falha ao gerar parcelas", zap.String("client_id", client.ID), zap.Error(err))
		return nil, persistenceError("parcelas", err)
	}

	middleware.RecordPaymentsGenerated(n)
	logging.L().Info("💰 parcelas geradas",
		zap.String("client_id", client.ID),
		zap.Int("installments", n),
		zap.Int64("amount", amount))

	out := &GeneratePaymentsOutput{
		ClientID: client.ID,
		Payments: schedule,
		Total:    amount * int64(n),
	}

	if input.SendEmail && client.Email != "" && uc.Mailer != nil {
		if err := uc.Mailer.SendPaymentSchedule(client.Email, client.Name, schedule); err != nil {
			logging.L().Warn("⚠️ parcelas gravadas, mas o e-mail falhou",
				zap.String("client_id", client.ID), zap.Error(err))
		} else {
			out.Emailed = true
		}
	}

	return out, nil
}

// ClientPaymentsUseCase lista e dá baixa em parcelas.
type ClientPaymentsUseCase struct {
	Payments entity.PaymentRepositoryInterface
	Now      func() time.Time
}

func NewClientPaymentsUseCase(payments entity.PaymentRepositoryInterface) *ClientPaymentsUseCase {
	return &ClientPaymentsUseCase{Payments: payments, Now: time.Now}
}

// MarkPaid é idempotente: uma parcela já paga mantém o paid_at original.
func (uc *ClientPaymentsUseCase) MarkPaid(ctx context.Context, ownerID, id string) error {
	if err := uc.Payments.MarkPaid(ctx, ownerID, id, uc.Now()); err != nil {
		return persistenceError("parcela", err)
	}
	return nil
}

func (uc *ClientPaymentsUseCase) ListByClient(ctx context.Context, ownerID, clientID string) ([]*entity.Payment, error) {
	payments, err := uc.Payments.ListByClient(ctx, ownerID, clientID)
	if err != nil {
		return nil, persistenceError("parcelas", err)
	}
	return payments, nil
}
