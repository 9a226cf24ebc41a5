package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type PaymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO payments (id, owner_id, client_id, due_date, amount, is_paid, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.OwnerID, p.ClientID, p.DueDate, p.Amount, p.IsPaid, p.PaidAt, p.CreatedAt)
	return mapError("insert payment", err)
}

func (r *PaymentRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE owner_id = $1 AND id = $2`, ownerID, id)
	return expectOne("delete payment", res, err)
}

func (r *PaymentRepository) ListByClient(ctx context.Context, ownerID, clientID string) ([]*entity.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, client_id, due_date, amount, is_paid, paid_at, created_at
		FROM payments WHERE owner_id = $1 AND client_id = $2
		ORDER BY due_date
	`, ownerID, clientID)
	if err != nil {
		return nil, mapError("list payments", err)
	}
	defer rows.Close()

	payments := []*entity.Payment{}
	for rows.Next() {
		var (
			p      entity.Payment
			paidAt sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.ClientID, &p.DueDate, &p.Amount, &p.IsPaid, &paidAt, &p.CreatedAt); err != nil {
			return nil, mapError("scan payment", err)
		}
		p.PaidAt = timePtr(paidAt)
		payments = append(payments, &p)
	}
	return payments, mapError("list payments", rows.Err())
}

// MarkPaid é idempotente: paid_at só é gravado na primeira baixa.
func (r *PaymentRepository) MarkPaid(ctx context.Context, ownerID, id string, paidAt time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE payments SET is_paid = TRUE, paid_at = COALESCE(paid_at, $3)
		WHERE owner_id = $1 AND id = $2
	`, ownerID, id, paidAt)
	return expectOne("mark payment paid", res, err)
}
