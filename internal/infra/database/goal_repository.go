package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type GoalRepository struct {
	DB *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(ctx context.Context, g *entity.Goal) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO goals (id, owner_id, title, current_value, target_value, unit, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, g.ID, g.OwnerID, g.Title, g.CurrentValue, g.TargetValue, g.Unit, g.Month, g.Year, g.CreatedAt, g.UpdatedAt)
	return mapError("insert goal", err)
}

func (r *GoalRepository) ListByPeriod(ctx context.Context, ownerID string, year, month int) ([]*entity.Goal, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, title, current_value, target_value, unit, month, year, created_at, updated_at
		FROM goals WHERE owner_id = $1 AND year = $2 AND month = $3
		ORDER BY created_at
	`, ownerID, year, month)
	if err != nil {
		return nil, mapError("list goals", err)
	}
	defer rows.Close()

	goals := []*entity.Goal{}
	for rows.Next() {
		var g entity.Goal
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Title, &g.CurrentValue, &g.TargetValue, &g.Unit, &g.Month, &g.Year, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, mapError("scan goal", err)
		}
		goals = append(goals, &g)
	}
	return goals, mapError("list goals", rows.Err())
}

func (r *GoalRepository) UpdateCurrentValue(ctx context.Context, ownerID, id string, value float64) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE goals SET current_value = $3, updated_at = $4 WHERE owner_id = $1 AND id = $2`,
		ownerID, id, value, time.Now(),
	)
	return expectOne("update goal", res, err)
}
