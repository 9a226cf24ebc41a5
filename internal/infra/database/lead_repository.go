package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

const leadColumns = `id, owner_id, name, phone, instagram, email, niche, revenue_band, pain_point,
	score, status, channel_id, meeting_at, no_show, custom_fields, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.DB.ExecContext(ctx, query,
		l.ID,
		l.OwnerID,
		l.Name,
		l.Phone,
		l.Instagram,
		l.Email,
		l.Niche,
		l.RevenueBand,
		l.PainPoint,
		l.Score,
		string(l.Status),
		nullString(l.ChannelID),
		l.MeetingAt,
		l.NoShow,
		l.CustomFields,
		l.CreatedAt,
		l.UpdatedAt,
	)
	return mapError("insert lead", err)
}

func (r *LeadRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE owner_id = $1 AND id = $2`
	l, err := scanLead(r.DB.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		return nil, mapError("find lead", err)
	}
	return l, nil
}

// List devolve os leads do dono, mais novos primeiro.
func (r *LeadRepository) List(ctx context.Context, ownerID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, mapError("list leads", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, mapError("scan lead", err)
		}
		leads = append(leads, l)
	}
	return leads, mapError("list leads", rows.Err())
}

func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads SET
			name = $3, phone = $4, instagram = $5, email = $6, niche = $7, revenue_band = $8,
			pain_point = $9, score = $10, channel_id = $11, meeting_at = $12, no_show = $13,
			custom_fields = $14, updated_at = $15
		WHERE owner_id = $1 AND id = $2
	`
	res, err := r.DB.ExecContext(ctx, query,
		l.OwnerID,
		l.ID,
		l.Name,
		l.Phone,
		l.Instagram,
		l.Email,
		l.Niche,
		l.RevenueBand,
		l.PainPoint,
		l.Score,
		nullString(l.ChannelID),
		l.MeetingAt,
		l.NoShow,
		l.CustomFields,
		l.UpdatedAt,
	)
	return expectOne("update lead", res, err)
}

// UpdateStatus grava só o estágio. Nenhum outro campo é tocado.
func (r *LeadRepository) UpdateStatus(ctx context.Context, ownerID, id string, status entity.Stage) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = $3 WHERE owner_id = $1 AND id = $2`,
		ownerID, id, string(status),
	)
	return expectOne("update lead status", res, err)
}

func (r *LeadRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE owner_id = $1 AND id = $2`, ownerID, id)
	return expectOne("delete lead", res, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		l         entity.Lead
		status    string
		channelID sql.NullString
		meetingAt sql.NullTime
	)
	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.Name,
		&l.Phone,
		&l.Instagram,
		&l.Email,
		&l.Niche,
		&l.RevenueBand,
		&l.PainPoint,
		&l.Score,
		&status,
		&channelID,
		&meetingAt,
		&l.NoShow,
		&l.CustomFields,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Status = entity.Stage(status)
	l.ChannelID = stringPtr(channelID)
	l.MeetingAt = timePtr(meetingAt)
	return &l, nil
}
