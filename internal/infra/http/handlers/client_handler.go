package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ClientHandler struct {
	ClientsUC  *usecase.ManageClientsUseCase
	GenerateUC *usecase.GenerateClientPaymentsUseCase
	PaymentsUC *usecase.ClientPaymentsUseCase
}

func NewClientHandler(
	clientsUC *usecase.ManageClientsUseCase,
	generateUC *usecase.GenerateClientPaymentsUseCase,
	paymentsUC *usecase.ClientPaymentsUseCase,
) *ClientHandler {
	return &ClientHandler{
		ClientsUC:  clientsUC,
		GenerateUC: generateUC,
		PaymentsUC: paymentsUC,
	}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientsUC.List(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if !decodeJSON(w, r, &input) {
		return
	}
	client, err := h.ClientsUC.Create(r.Context(), ownerID(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

// POST /clients/{id}/payments
func (h *ClientHandler) GeneratePayments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.GeneratePaymentsInput
	if r.ContentLength != 0 && !decodeJSON(w, r, &input) {
		return
	}
	input.OwnerID = ownerID(r)
	input.ClientID = id

	out, err := h.GenerateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// GET /clients/{id}/payments
func (h *ClientHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	payments, err := h.PaymentsUC.ListByClient(r.Context(), ownerID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// PATCH /payments/{id}/paid
func (h *ClientHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.PaymentsUC.MarkPaid(r.Context(), ownerID(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
