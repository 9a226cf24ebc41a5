package entity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AmountSource identifica uma tabela de registros datados com valor.
type AmountSource string

const (
	SourceSales           AmountSource = "sales"
	SourceImplementations AmountSource = "implementations"
	SourcePayments        AmountSource = "payments"
)

func AmountSources() []AmountSource {
	return []AmountSource{SourceSales, SourceImplementations, SourcePayments}
}

func ParseAmountSource(v string) (AmountSource, error) {
	for _, s := range AmountSources() {
		if string(s) == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown amount source %q", v)
}

// DatedAmount é qualquer registro com data e valor: venda, pagamento, implantação.
type DatedAmount struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

// Entry é uma venda ou implantação lançada manualmente.
type Entry struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	LeadID      *string   `json:"lead_id,omitempty"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEntry(ownerID, description string, amount int64, date time.Time, leadID *string) *Entry {
	return &Entry{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		LeadID:      leadID,
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   time.Now(),
	}
}

type DatedAmountRepositoryInterface interface {
	ListByYear(ctx context.Context, ownerID string, source AmountSource, year int) ([]DatedAmount, error)
	CreateEntry(ctx context.Context, source AmountSource, e *Entry) error
}
