package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ChannelHandler struct {
	UC     *usecase.ManageChannelsUseCase
	Fields *usecase.LeadFieldsUseCase
}

func NewChannelHandler(uc *usecase.ManageChannelsUseCase, fields *usecase.LeadFieldsUseCase) *ChannelHandler {
	return &ChannelHandler{UC: uc, Fields: fields}
}

func (h *ChannelHandler) List(w http.ResponseWriter, r *http.Request) {
	channels, err := h.UC.List(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"channels": channels,
		"palette":  entity.ChannelPalette,
	})
}

func (h *ChannelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChannelInput
	if !decodeJSON(w, r, &input) {
		return
	}
	ch, err := h.UC.Create(r.Context(), ownerID(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ch)
}

func (h *ChannelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.ChannelInput
	if !decodeJSON(w, r, &input) {
		return
	}
	ch, err := h.UC.Update(r.Context(), ownerID(r), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (h *ChannelHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// GET /lead-fields
func (h *ChannelHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	defs, err := h.Fields.List(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, defs)
}

// PUT /lead-fields com a lista completa de definições.
func (h *ChannelHandler) ReplaceFields(w http.ResponseWriter, r *http.Request) {
	var defs []entity.FieldDefinition
	if !decodeJSON(w, r, &defs) {
		return
	}
	saved, err := h.Fields.Replace(r.Context(), ownerID(r), defs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
