package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultInstallments = 12

// Client é um cliente ativo com cobrança recorrente mensal.
type Client struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	MonthlyAmount int64     `json:"monthly_amount"` // Em centavos
	Active        bool      `json:"active"`
	StartDate     time.Time `json:"start_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewClient(ownerID, name, email string, monthlyAmount int64, startDate time.Time) (*Client, error) {
	c := &Client{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(name),
		Email:         strings.TrimSpace(email),
		MonthlyAmount: monthlyAmount,
		Active:        true,
		StartDate:     startDate,
		CreatedAt:     time.Now(),
	}
	if c.Name == "" {
		return nil, FieldErrors{{"name", "is required"}}
	}
	return c, nil
}

// Payment é uma parcela de cobrança de um cliente.
type Payment struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	ClientID  string     `json:"client_id"`
	DueDate   time.Time  `json:"due_date"`
	Amount    int64      `json:"amount"`
	IsPaid    bool       `json:"is_paid"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// GeneratePayments gera n parcelas no mesmo dia do mês, a partir de start.
// Cada vencimento é start + i meses pela normalização de time.AddDate
// (31/01 + 1 mês vira 02 ou 03/03, conforme o ano).
func GeneratePayments(start time.Time, amount int64, n int) ([]Payment, error) {
	if n < 1 {
		return nil, ErrInvalidInstallments
	}
	out := make([]Payment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Payment{
			DueDate: start.AddDate(0, i, 0),
			Amount:  amount,
			IsPaid:  false,
		})
	}
	return out, nil
}

type ClientRepositoryInterface interface {
	Create(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, ownerID, id string) (*Client, error)
	List(ctx context.Context, ownerID string) ([]*Client, error)
}

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, ownerID, id string) error
	ListByClient(ctx context.Context, ownerID, clientID string) ([]*Payment, error)
	MarkPaid(ctx context.Context, ownerID, id string, paidAt time.Time) error
}
