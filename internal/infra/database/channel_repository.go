package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ChannelRepository struct {
	DB *sql.DB
}

func NewChannelRepository(db *sql.DB) *ChannelRepository {
	return &ChannelRepository{DB: db}
}

func (r *ChannelRepository) Create(ctx context.Context, c *entity.Channel) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO channels (id, owner_id, name, color, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.OwnerID, c.Name, c.Color, c.CreatedAt,
	)
	return mapError("insert channel", err)
}

func (r *ChannelRepository) List(ctx context.Context, ownerID string) ([]*entity.Channel, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, owner_id, name, color, created_at FROM channels WHERE owner_id = $1 ORDER BY name`,
		ownerID,
	)
	if err != nil {
		return nil, mapError("list channels", err)
	}
	defer rows.Close()

	channels := []*entity.Channel{}
	for rows.Next() {
		var c entity.Channel
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Color, &c.CreatedAt); err != nil {
			return nil, mapError("scan channel", err)
		}
		channels = append(channels, &c)
	}
	return channels, mapError("list channels", rows.Err())
}

// Update preenche c.CreatedAt com o valor gravado.
func (r *ChannelRepository) Update(ctx context.Context, c *entity.Channel) error {
	err := r.DB.QueryRowContext(ctx,
		`UPDATE channels SET name = $3, color = $4 WHERE owner_id = $1 AND id = $2 RETURNING created_at`,
		c.OwnerID, c.ID, c.Name, c.Color,
	).Scan(&c.CreatedAt)
	return mapError("update channel", err)
}

// Delete não mexe em leads: quem apontava para o canal fica com referência órfã.
func (r *ChannelRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM channels WHERE owner_id = $1 AND id = $2`, ownerID, id)
	return expectOne("delete channel", res, err)
}
