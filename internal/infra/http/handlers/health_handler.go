package handlers

import (
	"context"
	"net/http"
	"time"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type BrokerStatus interface {
	IsClosed() bool
}

const (
	depHealthy       = "healthy"
	depNotConfigured = "not configured"
)

type HealthHandler struct {
	DB        Pinger
	Broker    BrokerStatus
	Version   string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db Pinger, broker BrokerStatus, version string) *HealthHandler {
	return &HealthHandler{DB: db, Broker: broker, Version: version, StartTime: time.Now()}
}

// Handle responde 503 se alguma dependência configurada estiver fora.
// Broker ausente não degrada: sem AMQP_URL a API roda sem eventos.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := map[string]string{
		"database": h.databaseStatus(ctx),
		"rabbitmq": h.brokerStatus(),
	}

	resp := HealthResponse{
		Status:       depHealthy,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}
	code := http.StatusOK
	for _, v := range deps {
		if v != depHealthy && v != depNotConfigured {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}
	writeJSON(w, code, resp)
}

func (h *HealthHandler) databaseStatus(ctx context.Context) string {
	if h.DB == nil {
		return depNotConfigured
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return "unhealthy: " + err.Error()
	}
	return depHealthy
}

func (h *HealthHandler) brokerStatus() string {
	switch {
	case h.Broker == nil:
		return depNotConfigured
	case h.Broker.IsClosed():
		return "unhealthy: connection closed"
	default:
		return depHealthy
	}
}
