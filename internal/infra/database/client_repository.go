package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO clients (id, owner_id, name, email, monthly_amount, active, start_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.OwnerID, c.Name, c.Email, c.MonthlyAmount, c.Active, c.StartDate, c.CreatedAt)
	return mapError("insert client", err)
}

func (r *ClientRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Client, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, name, email, monthly_amount, active, start_date, created_at
		FROM clients WHERE owner_id = $1 AND id = $2
	`, ownerID, id)

	var c entity.Client
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.MonthlyAmount, &c.Active, &c.StartDate, &c.CreatedAt); err != nil {
		return nil, mapError("find client", err)
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context, ownerID string) ([]*entity.Client, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, name, email, monthly_amount, active, start_date, created_at
		FROM clients WHERE owner_id = $1 ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, mapError("list clients", err)
	}
	defer rows.Close()

	clients := []*entity.Client{}
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.MonthlyAmount, &c.Active, &c.StartDate, &c.CreatedAt); err != nil {
			return nil, mapError("scan client", err)
		}
		clients = append(clients, &c)
	}
	return clients, mapError("list clients", rows.Err())
}
