package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Goal é uma meta (atual, alvo, unidade) de um período. Month 0 vale para o ano todo.
type Goal struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        string    `json:"title"`
	CurrentValue float64   `json:"current_value"`
	TargetValue  float64   `json:"target_value"`
	Unit         string    `json:"unit"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewGoal(ownerID, title, unit string, current, target float64, month, year int) (*Goal, error) {
	g := &Goal{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(title),
		Unit:         unit,
		CurrentValue: current,
		TargetValue:  target,
		Month:        month,
		Year:         year,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	var errs FieldErrors
	if g.Title == "" {
		errs = append(errs, FieldError{"title", "is required"})
	}
	if month < 0 || month > 12 {
		errs = append(errs, FieldError{"month", "must be between 0 and 12"})
	}
	if year < 1 {
		errs = append(errs, FieldError{"year", "is required"})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return g, nil
}

func (g *Goal) Progress() float64 {
	return Progress(g.CurrentValue, g.TargetValue)
}

// Progress = min(current/target, 1) * 100, e 0 quando target <= 0.
func Progress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	ratio := current / target
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

type GoalRepositoryInterface interface {
	Create(ctx context.Context, g *Goal) error
	ListByPeriod(ctx context.Context, ownerID string, year, month int) ([]*Goal, error)
	UpdateCurrentValue(ctx context.Context, ownerID, id string, value float64) error
}
