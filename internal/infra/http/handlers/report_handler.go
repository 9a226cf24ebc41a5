package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ReportHandler struct {
	ReportsUC *usecase.ReportsUseCase
	EntriesUC *usecase.CreateEntryUseCase
	Now       func() time.Time
}

func NewReportHandler(reportsUC *usecase.ReportsUseCase, entriesUC *usecase.CreateEntryUseCase) *ReportHandler {
	return &ReportHandler{ReportsUC: reportsUC, EntriesUC: entriesUC, Now: time.Now}
}

// GET /reports/revenue?year=2024&sources=sales,payments
func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year := h.Now().Year()
	if v := q.Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 {
			badRequest(w, "year must be a positive integer")
			return
		}
		year = y
	}

	var sources []entity.AmountSource
	if v := q.Get("sources"); v != "" {
		for _, part := range strings.Split(v, ",") {
			src, err := entity.ParseAmountSource(strings.TrimSpace(part))
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			sources = append(sources, src)
		}
	}

	out, err := h.ReportsUC.Revenue(r.Context(), ownerID(r), year, sources)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /reports/mrr
func (h *ReportHandler) MRR(w http.ResponseWriter, r *http.Request) {
	out, err := h.ReportsUC.MRR(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateEntry devolve o handler de POST /sales ou POST /implementations.
func (h *ReportHandler) CreateEntry(source entity.AmountSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.CreateEntryInput
		if !decodeJSON(w, r, &input) {
			return
		}
		entry, err := h.EntriesUC.Execute(r.Context(), ownerID(r), source, input)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}
