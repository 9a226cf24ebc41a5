package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Process agrupa fases ordenadas e tags. É gravado em três tabelas.
type Process struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"owner_id"`
	Name      string       `json:"name"`
	Phases    []Phase      `json:"phases"`
	Tags      []ProcessTag `json:"tags"`
	CreatedAt time.Time    `json:"created_at"`
}

type Phase struct {
	ID        string `json:"id"`
	ProcessID string `json:"process_id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
}

type ProcessTag struct {
	ID        string `json:"id"`
	ProcessID string `json:"process_id"`
	Tag       string `json:"tag"`
}

func NewProcess(ownerID, name string, phaseNames, tags []string) (*Process, error) {
	p := &Process{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}
	if p.Name == "" {
		return nil, FieldErrors{{"name", "is required"}}
	}
	for i, n := range phaseNames {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, FieldErrors{{"phases", "phase name is required"}}
		}
		p.Phases = append(p.Phases, Phase{
			ID:        uuid.New().String(),
			ProcessID: p.ID,
			Name:      n,
			Position:  i,
		})
	}
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		p.Tags = append(p.Tags, ProcessTag{
			ID:        uuid.New().String(),
			ProcessID: p.ID,
			Tag:       t,
		})
	}
	return p, nil
}

type ProcessRepositoryInterface interface {
	Create(ctx context.Context, p *Process) error
	FindByID(ctx context.Context, ownerID, id string) (*Process, error)
	Delete(ctx context.Context, ownerID, id string) error

	CreatePhase(ctx context.Context, ph Phase) error
	DeletePhases(ctx context.Context, processID string) error

	CreateTag(ctx context.Context, t ProcessTag) error
	DeleteTags(ctx context.Context, processID string) error
}
