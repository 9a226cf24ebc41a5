package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/report"
)

// QueryLeadsUseCase monta as visões de leitura: lista filtrada, quadro e resumo.
type QueryLeadsUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Channels entity.ChannelRepositoryInterface
}

func NewQueryLeadsUseCase(leads entity.LeadRepositoryInterface, channels entity.ChannelRepositoryInterface) *QueryLeadsUseCase {
	return &QueryLeadsUseCase{Leads: leads, Channels: channels}
}

func (uc *QueryLeadsUseCase) Get(ctx context.Context, ownerID, id string) (*LeadCard, error) {
	lead, err := uc.Leads.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, persistenceError("lead", err)
	}
	idx, err := uc.channelIndex(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	card := toCard(lead, idx)
	return &card, nil
}

func (uc *QueryLeadsUseCase) List(ctx context.Context, ownerID string, criteria report.LeadCriteria) ([]LeadCard, error) {
	leads, idx, err := uc.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	filtered := report.FilterLeads(leads, criteria, idx)
	cards := make([]LeadCard, 0, len(filtered))
	for _, l := range filtered {
		cards = append(cards, toCard(l, idx))
	}
	return cards, nil
}

// Board devolve as sete colunas na ordem de exibição, inclusive as vazias.
func (uc *QueryLeadsUseCase) Board(ctx context.Context, ownerID string, criteria report.LeadCriteria) (*BoardOutput, error) {
	cards, err := uc.List(ctx, ownerID, criteria)
	if err != nil {
		return nil, err
	}

	byStage := make(map[entity.Stage][]LeadCard, 7)
	for _, c := range cards {
		byStage[c.Status] = append(byStage[c.Status], c)
	}

	out := &BoardOutput{Total: len(cards)}
	for _, col := range entity.Columns() {
		leads := byStage[col.Stage]
		if leads == nil {
			leads = []LeadCard{}
		}
		out.Columns = append(out.Columns, BoardColumn{
			Stage: col.Stage,
			Label: col.Label,
			Color: col.Color,
			Count: len(leads),
			Leads: leads,
		})
	}
	return out, nil
}

func (uc *QueryLeadsUseCase) Summary(ctx context.Context, ownerID string) (report.LeadSummary, error) {
	leads, err := uc.Leads.List(ctx, ownerID)
	if err != nil {
		return report.LeadSummary{}, persistenceError("leads", err)
	}
	return report.SummarizeLeads(leads), nil
}

func (uc *QueryLeadsUseCase) load(ctx context.Context, ownerID string) ([]*entity.Lead, map[string]*entity.Channel, error) {
	leads, err := uc.Leads.List(ctx, ownerID)
	if err != nil {
		return nil, nil, persistenceError("leads", err)
	}
	idx, err := uc.channelIndex(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	return leads, idx, nil
}

func (uc *QueryLeadsUseCase) channelIndex(ctx context.Context, ownerID string) (map[string]*entity.Channel, error) {
	channels, err := uc.Channels.List(ctx, ownerID)
	if err != nil {
		return nil, persistenceError("canais", err)
	}
	return entity.IndexChannels(channels), nil
}

func toCard(l *entity.Lead, idx map[string]*entity.Channel) LeadCard {
	cat := l.Category()
	return LeadCard{
		Lead:          l,
		Category:      cat,
		CategoryLabel: cat.Label(),
		Channel:       entity.ResolveChannel(l.ChannelID, idx),
	}
}
