package api

import (
	"context"
	"net/http"
	"time"

	"github.com/clovehq/momtrack/internal/api/respond"
	"github.com/clovehq/momtrack/internal/store"
)

// HealthHandler reports service and storage liveness.
type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// CheckHealth GET /api/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// CheckStorageHealth GET /api/health/db
//
// Performs a bounded slot read to prove the database is reachable.
func (h *HealthHandler) CheckStorageHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, err := h.store.Load(ctx); err != nil {
		respond.WriteError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
