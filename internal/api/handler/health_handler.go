package handler

import (
	"net/http"

	"github.com/ricirt/portfolio-api/internal/service"
)

const serviceName = "portfolio-backend"

// HealthHandler serves the liveness probe endpoints. Every probe answers 200
// and reports the cached database state; none of them touch the database.
type HealthHandler struct {
	state service.Connectivity
}

func NewHealthHandler(state service.Connectivity) *HealthHandler {
	return &HealthHandler{state: state}
}

// Health handles GET /health
//
// @Summary  Liveness probe for orchestrators
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"service":  serviceName,
		"database": databaseState(h.state.Connected()),
	})
}

// Healthz handles GET /healthz
//
// @Summary  Alternative liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": databaseState(h.state.Connected()),
	})
}

// APIHealth handles GET /api/health
//
// @Summary  API health
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /api/health [get]
func (h *HealthHandler) APIHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": databaseState(h.state.Connected()),
	})
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Portfolio API", "status": "running"})
}

// APIRoot handles GET /api/
func (h *HealthHandler) APIRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Hello World", "status": "ok"})
}
