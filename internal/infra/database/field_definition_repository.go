package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type FieldDefinitionRepository struct {
	DB *sql.DB
}

func NewFieldDefinitionRepository(db *sql.DB) *FieldDefinitionRepository {
	return &FieldDefinitionRepository{DB: db}
}

func (r *FieldDefinitionRepository) List(ctx context.Context, ownerID string) ([]entity.FieldDefinition, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT key, label, type, options, required, position
		FROM lead_field_definitions
		WHERE owner_id = $1
		ORDER BY position
	`, ownerID)
	if err != nil {
		return nil, mapError("list field definitions", err)
	}
	defer rows.Close()

	defs := []entity.FieldDefinition{}
	for rows.Next() {
		var (
			d       entity.FieldDefinition
			typ     string
			options []byte
		)
		if err := rows.Scan(&d.Key, &d.Label, &typ, &options, &d.Required, &d.Position); err != nil {
			return nil, mapError("scan field definition", err)
		}
		d.Type = entity.FieldType(typ)
		if len(options) > 0 {
			if err := json.Unmarshal(options, &d.Options); err != nil {
				return nil, fmt.Errorf("field %s options: %w", d.Key, err)
			}
		}
		defs = append(defs, d)
	}
	return defs, mapError("list field definitions", rows.Err())
}

// Replace troca o template do dono numa transação do banco.
func (r *FieldDefinitionRepository) Replace(ctx context.Context, ownerID string, defs []entity.FieldDefinition) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return mapError("begin replace field definitions", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lead_field_definitions WHERE owner_id = $1`, ownerID); err != nil {
		return mapError("clear field definitions", err)
	}

	for _, d := range defs {
		options, err := json.Marshal(d.Options)
		if err != nil {
			return err
		}
		if d.Options == nil {
			options = []byte("[]")
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO lead_field_definitions (owner_id, key, label, type, options, required, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, ownerID, d.Key, d.Label, string(d.Type), options, d.Required, d.Position)
		if err != nil {
			return mapError("insert field definition", err)
		}
	}

	return mapError("commit field definitions", tx.Commit())
}
