package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// ProcessRepository escreve uma linha por chamada; a saga do usecase coordena as três tabelas.
type ProcessRepository struct {
	DB *sql.DB
}

func NewProcessRepository(db *sql.DB) *ProcessRepository {
	return &ProcessRepository{DB: db}
}

func (r *ProcessRepository) Create(ctx context.Context, p *entity.Process) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO processes (id, owner_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.OwnerID, p.Name, p.CreatedAt,
	)
	return mapError("insert process", err)
}

func (r *ProcessRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Process, error) {
	var p entity.Process
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, owner_id, name, created_at FROM processes WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	).Scan(&p.ID, &p.OwnerID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, mapError("find process", err)
	}

	phases, err := r.DB.QueryContext(ctx,
		`SELECT id, process_id, name, position FROM process_phases WHERE process_id = $1 ORDER BY position`,
		p.ID,
	)
	if err != nil {
		return nil, mapError("list phases", err)
	}
	defer phases.Close()
	p.Phases = []entity.Phase{}
	for phases.Next() {
		var ph entity.Phase
		if err := phases.Scan(&ph.ID, &ph.ProcessID, &ph.Name, &ph.Position); err != nil {
			return nil, mapError("scan phase", err)
		}
		p.Phases = append(p.Phases, ph)
	}
	if err := phases.Err(); err != nil {
		return nil, mapError("list phases", err)
	}

	tags, err := r.DB.QueryContext(ctx,
		`SELECT id, process_id, tag FROM process_tags WHERE process_id = $1 ORDER BY tag`,
		p.ID,
	)
	if err != nil {
		return nil, mapError("list tags", err)
	}
	defer tags.Close()
	p.Tags = []entity.ProcessTag{}
	for tags.Next() {
		var t entity.ProcessTag
		if err := tags.Scan(&t.ID, &t.ProcessID, &t.Tag); err != nil {
			return nil, mapError("scan tag", err)
		}
		p.Tags = append(p.Tags, t)
	}
	if err := tags.Err(); err != nil {
		return nil, mapError("list tags", err)
	}

	return &p, nil
}

func (r *ProcessRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM processes WHERE owner_id = $1 AND id = $2`, ownerID, id)
	return expectOne("delete process", res, err)
}

func (r *ProcessRepository) CreatePhase(ctx context.Context, ph entity.Phase) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO process_phases (id, process_id, name, position) VALUES ($1, $2, $3, $4)`,
		ph.ID, ph.ProcessID, ph.Name, ph.Position,
	)
	return mapError("insert phase", err)
}

func (r *ProcessRepository) DeletePhases(ctx context.Context, processID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM process_phases WHERE process_id = $1`, processID)
	return mapError("delete phases", err)
}

func (r *ProcessRepository) CreateTag(ctx context.Context, t entity.ProcessTag) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO process_tags (id, process_id, tag) VALUES ($1, $2, $3)`,
		t.ID, t.ProcessID, t.Tag,
	)
	return mapError("insert tag", err)
}

func (r *ProcessRepository) DeleteTags(ctx context.Context, processID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM process_tags WHERE process_id = $1`, processID)
	return mapError("delete tags", err)
}
