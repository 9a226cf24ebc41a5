package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type GoalHandler struct {
	UC  *usecase.ManageGoalsUseCase
	Now func() time.Time
}

func NewGoalHandler(uc *usecase.ManageGoalsUseCase) *GoalHandler {
	return &GoalHandler{UC: uc, Now: time.Now}
}

// GET /goals?year=2024&month=3. Sem parâmetros usa o mês corrente.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	now := h.Now()
	year, month := now.Year(), int(now.Month())

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 {
			badRequest(w, "year must be a positive integer")
			return
		}
		year = y
	}
	if v := q.Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 0 || m > 12 {
			badRequest(w, "month must be between 0 and 12")
			return
		}
		month = m
	}

	goals, err := h.UC.List(r.Context(), ownerID(r), year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateGoalInput
	if !decodeJSON(w, r, &input) {
		return
	}
	goal, err := h.UC.Create(r.Context(), ownerID(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

type updateGoalRequest struct {
	CurrentValue *float64 `json:"current_value"`
}

// PATCH /goals/{id} {"current_value": 10}
func (h *GoalHandler) UpdateCurrent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CurrentValue == nil {
		badRequest(w, "current_value is required")
		return
	}
	if err := h.UC.UpdateCurrent(r.Context(), ownerID(r), id, *req.CurrentValue); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
