package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/report"
)

type ReportsUseCase struct {
	Amounts entity.DatedAmountRepositoryInterface
	Clients entity.ClientRepositoryInterface
}

func NewReportsUseCase(amounts entity.DatedAmountRepositoryInterface, clients entity.ClientRepositoryInterface) *ReportsUseCase {
	return &ReportsUseCase{Amounts: amounts, Clients: clients}
}

// Revenue agrega cada fonte por mês e soma as séries. Sem fontes, usa todas.
func (uc *ReportsUseCase) Revenue(ctx context.Context, ownerID string, year int, sources []entity.AmountSource) (*RevenueReportOutput, error) {
	if year < 1 {
		return nil, validationError(entity.FieldErrors{{Field: "year", Message: "is required"}})
	}
	if len(sources) == 0 {
		sources = entity.AmountSources()
	}

	out := &RevenueReportOutput{
		Year:    year,
		Sources: make(map[entity.AmountSource]report.Series, len(sources)),
	}
	all := make([]report.Series, 0, len(sources))
	for _, src := range sources {
		if _, done := out.Sources[src]; done {
			continue
		}
		records, err := uc.Amounts.ListByYear(ctx, ownerID, src, year)
		if err != nil {
			return nil, persistenceError(string(src), err)
		}
		s := report.AggregateByMonth(records, year)
		out.Sources[src] = s
		all = append(all, s)
	}

	out.Combined = report.CombineSeries(all...)
	out.Total = out.Combined.Total()
	out.Count = out.Combined.Count()
	return out, nil
}

func (uc *ReportsUseCase) MRR(ctx context.Context, ownerID string) (*MRROutput, error) {
	clients, err := uc.Clients.List(ctx, ownerID)
	if err != nil {
		return nil, persistenceError("clientes", err)
	}
	out := &MRROutput{MRR: report.MRR(clients)}
	for _, c := range clients {
		if c.Active {
			out.ActiveClients++
		}
	}
	return out, nil
}
