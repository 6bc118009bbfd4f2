package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/ricirt/portfolio-api/internal/api/middleware"
	"github.com/ricirt/portfolio-api/internal/domain"
	"github.com/ricirt/portfolio-api/internal/service"
)

// StatusHandler handles the status-record endpoints.
type StatusHandler struct {
	svc    *service.StatusService
	logger *zap.Logger
}

func NewStatusHandler(svc *service.StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{svc: svc, logger: logger}
}

// Create handles POST /api/status
//
// @Summary  Record a client status check
// @Tags     status
// @Accept   json
// @Produce  json
// @Param    body  body      domain.CreateStatusRequest  true  "Status payload"
// @Success  201   {object}  domain.StatusRecord
// @Failure  422   {object}  map[string]string
// @Failure  500   {object}  map[string]string
// @Failure  503   {object}  map[string]string
// @Router   /api/status [post]
func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.svc.Create(r.Context(), req)
	if err != nil {
		h.logFailure(r, "create status check failed", err)
		mapError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, rec)
}

// List handles GET /api/status
//
// @Summary  List status checks (at most 1000)
// @Tags     status
// @Produce  json
// @Success  200  {array}   domain.StatusRecord
// @Failure  500  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /api/status [get]
func (h *StatusHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		h.logFailure(r, "list status checks failed", err)
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// logFailure logs unexpected errors at error level; expected rejections
// (validation, degraded mode) only at debug.
func (h *StatusHandler) logFailure(r *http.Request, msg string, err error) {
	fields := []zap.Field{
		zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
		zap.Error(err),
	}
	if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, domain.ErrClientNameRequired) {
		h.logger.Debug(msg, fields...)
		return
	}
	h.logger.Error(msg, fields...)
}
