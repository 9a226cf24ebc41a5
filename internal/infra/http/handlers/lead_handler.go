package handlers

import (
	"net/http"
	"strings"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/report"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	MoveUC   *usecase.MoveLeadStageUseCase
	DeleteUC *usecase.DeleteLeadUseCase
	Query    *usecase.QueryLeadsUseCase
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	moveUC *usecase.MoveLeadStageUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	query *usecase.QueryLeadsUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		MoveUC:   moveUC,
		DeleteUC: deleteUC,
		Query:    query,
	}
}

// GET /leads?search=&category=&stage=&channel=
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, ok := leadCriteria(w, r)
	if !ok {
		return
	}
	cards, err := h.Query.List(r.Context(), ownerID(r), criteria)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// GET /board
func (h *LeadHandler) Board(w http.ResponseWriter, r *http.Request) {
	criteria, ok := leadCriteria(w, r)
	if !ok {
		return
	}
	board, err := h.Query.Board(r.Context(), ownerID(r), criteria)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	card, err := h.Query.Get(r.Context(), ownerID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.OwnerID = ownerID(r)

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.UpdateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), ownerID(r), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// PATCH /leads/{id}/stage {"stage": "..."}
func (h *LeadHandler) MoveStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.MoveLeadStageInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.OwnerID = ownerID(r)
	input.LeadID = id

	lead, err := h.MoveUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.DeleteUC.Execute(r.Context(), ownerID(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /reports/leads
func (h *LeadHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Query.Summary(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func leadCriteria(w http.ResponseWriter, r *http.Request) (report.LeadCriteria, bool) {
	q := r.URL.Query()
	c := report.LeadCriteria{
		Search:    strings.TrimSpace(q.Get("search")),
		ChannelID: q.Get("channel"),
	}
	if v := q.Get("category"); v != "" {
		cat, err := entity.ParseScoreCategory(v)
		if err != nil {
			badRequest(w, err.Error())
			return c, false
		}
		c.Category = cat
	}
	if v := q.Get("stage"); v != "" {
		stage, err := entity.ParseStage(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: usecase.CodeInvalidStage, Message: err.Error()})
			return c, false
		}
		c.Stage = stage
	}
	return c, true
}
