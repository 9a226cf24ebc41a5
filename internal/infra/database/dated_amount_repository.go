package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type amountTable struct {
	table  string
	date   string
	filter string
}

// Só essas tabelas e colunas entram no SQL; nada vem do request.
var amountTables = map[entity.AmountSource]amountTable{
	entity.SourceSales:           {table: "sales", date: "sold_at"},
	entity.SourceImplementations: {table: "implementations", date: "delivered_at"},
	entity.SourcePayments:        {table: "payments", date: "due_date", filter: " AND is_paid = TRUE"},
}

type DatedAmountRepository struct {
	DB *sql.DB
}

func NewDatedAmountRepository(db *sql.DB) *DatedAmountRepository {
	return &DatedAmountRepository{DB: db}
}

func (r *DatedAmountRepository) ListByYear(ctx context.Context, ownerID string, source entity.AmountSource, year int) ([]entity.DatedAmount, error) {
	t, ok := amountTables[source]
	if !ok {
		return nil, fmt.Errorf("unknown amount source %q", source)
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	query := fmt.Sprintf(
		`SELECT %s, amount FROM %s WHERE owner_id = $1 AND %s >= $2 AND %s < $3%s`,
		t.date, t.table, t.date, t.date, t.filter,
	)

	rows, err := r.DB.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, mapError("list "+t.table, err)
	}
	defer rows.Close()

	out := []entity.DatedAmount{}
	for rows.Next() {
		var d entity.DatedAmount
		if err := rows.Scan(&d.Date, &d.Amount); err != nil {
			return nil, mapError("scan "+t.table, err)
		}
		out = append(out, d)
	}
	return out, mapError("list "+t.table, rows.Err())
}

func (r *DatedAmountRepository) CreateEntry(ctx context.Context, source entity.AmountSource, e *entity.Entry) error {
	if source == entity.SourcePayments {
		return fmt.Errorf("payments are generated per client, not as entries")
	}
	t, ok := amountTables[source]
	if !ok {
		return fmt.Errorf("unknown amount source %q", source)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, owner_id, lead_id, description, amount, %s, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.table, t.date,
	)
	_, err := r.DB.ExecContext(ctx, query, e.ID, e.OwnerID, nullString(e.LeadID), e.Description, e.Amount, e.Date, e.CreatedAt)
	return mapError("insert "+t.table, err)
}
