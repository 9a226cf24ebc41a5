package report

import (
	"math"
	"strings"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// LeadSummary são os números do painel de leads.
type LeadSummary struct {
	Total          int                          `json:"total"`
	ByCategory     map[entity.ScoreCategory]int `json:"by_category"`
	ByStage        map[entity.Stage]int         `json:"by_stage"`
	Scheduled      int                          `json:"scheduled"`
	NoShows        int                          `json:"no_shows"`
	ConversionRate int                          `json:"conversion_rate"`
	SchedulingRate int                          `json:"scheduling_rate"`
	NoShowRate     int                          `json:"no_show_rate"`
	AverageScore   int                          `json:"average_score"`
}

func SummarizeLeads(leads []*entity.Lead) LeadSummary {
	sum := LeadSummary{
		Total:      len(leads),
		ByCategory: make(map[entity.ScoreCategory]int, 4),
		ByStage:    make(map[entity.Stage]int, 7),
	}
	for _, c := range entity.ScoreCategories() {
		sum.ByCategory[c] = 0
	}
	for _, s := range entity.Stages() {
		sum.ByStage[s] = 0
	}

	scoreTotal := 0
	for _, l := range leads {
		sum.ByCategory[l.Category()]++
		sum.ByStage[l.Status]++
		scoreTotal += l.Score
		if l.HasMeeting() {
			sum.Scheduled++
			if l.NoShow {
				sum.NoShows++
			}
		}
	}

	sum.ConversionRate = Rate(sum.ByStage[entity.StageSold], sum.Total)
	sum.SchedulingRate = Rate(sum.Scheduled, sum.Total)
	sum.NoShowRate = Rate(sum.NoShows, sum.Scheduled)
	if sum.Total > 0 {
		sum.AverageScore = int(math.Round(float64(scoreTotal) / float64(sum.Total)))
	}
	return sum
}

// NoChannel seleciona leads sem canal ou com canal apagado.
const NoChannel = "none"

// LeadCriteria substitui o estado global de busca/filtro da tela.
type LeadCriteria struct {
	Search    string
	Category  entity.ScoreCategory
	Stage     entity.Stage
	ChannelID string
}

func (c LeadCriteria) IsZero() bool {
	return c == LeadCriteria{}
}

// FilterLeads preserva a ordem de entrada. channels resolve o filtro "none".
func FilterLeads(leads []*entity.Lead, c LeadCriteria, channels map[string]*entity.Channel) []*entity.Lead {
	if c.IsZero() {
		return leads
	}
	term := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]*entity.Lead, 0, len(leads))
	for _, l := range leads {
		if c.Category != "" && l.Category() != c.Category {
			continue
		}
		if c.Stage != "" && l.Status != c.Stage {
			continue
		}
		if c.ChannelID != "" {
			ch := entity.ResolveChannel(l.ChannelID, channels)
			if c.ChannelID == NoChannel {
				if ch != nil {
					continue
				}
			} else if ch == nil || ch.ID != c.ChannelID {
				continue
			}
		}
		if term != "" && !matches(l, term) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matches(l *entity.Lead, term string) bool {
	for _, f := range []string{l.Name, l.Email, l.Phone, l.Instagram, l.Niche} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MRR soma a mensalidade dos clientes ativos.
func MRR(clients []*entity.Client) int64 {
	var total int64
	for _, c := range clients {
		if c.Active {
			total += c.MonthlyAmount
		}
	}
	return total
}
