package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead é um prospect acompanhado pelo pipeline de vendas.
type Lead struct {
	ID           string       `json:"id"`
	OwnerID      string       `json:"owner_id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone,omitempty"`
	Instagram    string       `json:"instagram,omitempty"`
	Email        string       `json:"email,omitempty"`
	Niche        string       `json:"niche,omitempty"`
	RevenueBand  string       `json:"revenue_band,omitempty"`
	PainPoint    string       `json:"pain_point,omitempty"`
	Score        int          `json:"score"`
	Status       Stage        `json:"status"`
	ChannelID    *string      `json:"channel_id,omitempty"`
	MeetingAt    *time.Time   `json:"meeting_at,omitempty"`
	NoShow       bool         `json:"no_show"`
	CustomFields CustomFields `json:"custom_fields,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func NewLead(ownerID, name string) *Lead {
	now := time.Now()
	return &Lead{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(name),
		Score:        DefaultScore,
		Status:       DefaultStage,
		CustomFields: CustomFields{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (l *Lead) Category() ScoreCategory {
	return Categorize(l.Score)
}

func (l *Lead) HasMeeting() bool {
	return l.MeetingAt != nil
}

// Validate roda antes de qualquer chamada ao banco.
func (l *Lead) Validate() error {
	var errs FieldErrors
	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, FieldError{"name", "is required"})
	}
	if l.Score < MinScore || l.Score > MaxScore {
		errs = append(errs, FieldError{"score", "must be between 0 and 100"})
	}
	if !l.Status.Valid() {
		errs = append(errs, FieldError{"status", "is not a pipeline stage"})
	}
	if l.NoShow && l.MeetingAt == nil {
		errs = append(errs, FieldError{"no_show", "requires meeting_at"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, ownerID, id string) (*Lead, error)
	List(ctx context.Context, ownerID string) ([]*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	UpdateStatus(ctx context.Context, ownerID, id string, status Stage) error
	Delete(ctx context.Context, ownerID, id string) error
}
