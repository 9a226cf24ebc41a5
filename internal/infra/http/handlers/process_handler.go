package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ProcessHandler struct {
	UC *usecase.ProcessUseCase
}

func NewProcessHandler(uc *usecase.ProcessUseCase) *ProcessHandler {
	return &ProcessHandler{UC: uc}
}

func (h *ProcessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateProcessInput
	if !decodeJSON(w, r, &input) {
		return
	}
	p, err := h.UC.Create(r.Context(), ownerID(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProcessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.UC.Get(r.Context(), ownerID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProcessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.UC.Delete(r.Context(), ownerID(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
