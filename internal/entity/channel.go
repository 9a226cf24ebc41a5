package entity

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChannelPalette são as cores sugeridas na criação de um canal.
var ChannelPalette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#EC4899", "#06B6D4", "#84CC16",
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Channel é a origem de aquisição de um lead.
type Channel struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func NewChannel(ownerID, name, color string) (*Channel, error) {
	if strings.TrimSpace(color) == "" {
		color = ChannelPalette[0]
	}
	c := &Channel{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(name),
		Color:     strings.TrimSpace(color),
		CreatedAt: time.Now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Channel) Validate() error {
	var errs FieldErrors
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, FieldError{"name", "is required"})
	}
	if !hexColor.MatchString(c.Color) {
		errs = append(errs, FieldError{"color", "must be a hex color"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func IndexChannels(channels []*Channel) map[string]*Channel {
	idx := make(map[string]*Channel, len(channels))
	for _, c := range channels {
		idx[c.ID] = c
	}
	return idx
}

// ResolveChannel devolve nil para referência ausente ou órfã (canal apagado).
func ResolveChannel(channelID *string, idx map[string]*Channel) *Channel {
	if channelID == nil || *channelID == "" {
		return nil
	}
	return idx[*channelID]
}

type ChannelRepositoryInterface interface {
	Create(ctx context.Context, c *Channel) error
	List(ctx context.Context, ownerID string) ([]*Channel, error)
	Update(ctx context.Context, c *Channel) error
	Delete(ctx context.Context, ownerID, id string) error
}
