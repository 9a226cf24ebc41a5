package usecase

import (
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/report"
)

const DateLayout = "2006-01-02"

type CreateLeadInput struct {
	OwnerID      string         `json:"-" validate:"required"`
	Name         string         `json:"name" validate:"required,max=200"`
	Phone        string         `json:"phone" validate:"max=50"`
	Instagram    string         `json:"instagram" validate:"max=100"`
	Email        string         `json:"email" validate:"max=200"`
	Niche        string         `json:"niche"`
	RevenueBand  string         `json:"revenue_band"`
	PainPoint    string         `json:"pain_point"`
	Score        *int           `json:"score" validate:"omitempty,gte=0,lte=100"`
	Status       string         `json:"status"`
	ChannelID    *string        `json:"channel_id" validate:"omitempty,uuid"`
	MeetingAt    *time.Time     `json:"meeting_at"`
	NoShow       bool           `json:"no_show"`
	CustomFields map[string]any `json:"custom_fields"`
}

// UpdateLeadInput é um patch: campo nil não é alterado.
type UpdateLeadInput struct {
	Name         *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Phone        *string        `json:"phone" validate:"omitempty,max=50"`
	Instagram    *string        `json:"instagram" validate:"omitempty,max=100"`
	Email        *string        `json:"email" validate:"omitempty,max=200"`
	Niche        *string        `json:"niche"`
	RevenueBand  *string        `json:"revenue_band"`
	PainPoint    *string        `json:"pain_point"`
	Score        *int           `json:"score" validate:"omitempty,gte=0,lte=100"`
	ChannelID    *string        `json:"channel_id" validate:"omitempty,uuid"`
	MeetingAt    *time.Time     `json:"meeting_at"`
	ClearMeeting bool           `json:"clear_meeting"`
	NoShow       *bool          `json:"no_show"`
	CustomFields map[string]any `json:"custom_fields"`
}

type MoveLeadStageInput struct {
	OwnerID string `json:"-" validate:"required"`
	LeadID  string `json:"-" validate:"required"`
	Stage   string `json:"stage" validate:"required"`
}

// LeadCard é o lead como aparece no quadro: categoria e canal já resolvidos.
type LeadCard struct {
	*entity.Lead
	Category      entity.ScoreCategory `json:"category"`
	CategoryLabel string               `json:"category_label"`
	Channel       *entity.Channel      `json:"channel"`
}

type BoardColumn struct {
	Stage entity.Stage `json:"stage"`
	Label string       `json:"label"`
	Color string       `json:"color"`
	Count int          `json:"count"`
	Leads []LeadCard   `json:"leads"`
}

type BoardOutput struct {
	Columns []BoardColumn `json:"columns"`
	Total   int           `json:"total"`
}

type ChannelInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color"`
}

type CreateClientInput struct {
	Name          string `json:"name" validate:"required,max=200"`
	Email         string `json:"email" validate:"max=200"`
	MonthlyAmount int64  `json:"monthly_amount" validate:"gte=0"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type GeneratePaymentsInput struct {
	OwnerID      string `json:"-" validate:"required"`
	ClientID     string `json:"-" validate:"required"`
	StartDate    string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Amount       *int64 `json:"amount"`
	Installments int    `json:"installments" validate:"gte=0,lte=120"`
	SendEmail    bool   `json:"send_email"`
}

type GeneratePaymentsOutput struct {
	ClientID string           `json:"client_id"`
	Payments []entity.Payment `json:"payments"`
	Total    int64            `json:"total"`
	Emailed  bool             `json:"emailed"`
}

type CreateEntryInput struct {
	Description string  `json:"description" validate:"max=500"`
	Amount      int64   `json:"amount"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	LeadID      *string `json:"lead_id" validate:"omitempty,uuid"`
}

type RevenueReportOutput struct {
	Year     int                                   `json:"year"`
	Sources  map[entity.AmountSource]report.Series `json:"sources"`
	Combined report.Series                         `json:"combined"`
	Total    int64                                 `json:"total"`
	Count    int                                   `json:"count"`
}

type MRROutput struct {
	MRR           int64 `json:"mrr"`
	ActiveClients int   `json:"active_clients"`
}

type CreateGoalInput struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Unit         string  `json:"unit" validate:"max=20"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Month        int     `json:"month" validate:"gte=0,lte=12"`
	Year         int     `json:"year" validate:"required,gte=2000,lte=2100"`
}

type GoalView struct {
	*entity.Goal
	Progress float64 `json:"progress"`
}

type CreateProcessInput struct {
	Name   string   `json:"name" validate:"required,max=200"`
	Phases []string `json:"phases" validate:"dive,required,max=200"`
	Tags   []string `json:"tags" validate:"dive,max=100"`
}
