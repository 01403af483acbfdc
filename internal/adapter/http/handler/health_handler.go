package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthHandler handles health check requests. The ping func checks the
// backing store; a nil ping (memory backend) is always ready.
type HealthHandler struct {
	ping func(context.Context) error
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ping func(context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Root answers the bare service check with a short banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Auntie Can Count One is online 👵"))
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "store unhealthy", err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
