package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// BreachHandler handles HTTP requests for breach checks.
type BreachHandler struct {
	service *service.BreachService
}

// NewBreachHandler creates a new BreachHandler.
func NewBreachHandler(svc *service.BreachService) *BreachHandler {
	return &BreachHandler{service: svc}
}

// HandleCheckBreach handles POST /check-breach requests. An unreachable
// upstream still answers 200 with "breached": null.
func (h *BreachHandler) HandleCheckBreach(w http.ResponseWriter, r *http.Request) {
	var req model.BreachCheckRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Check(r.Context(), req)
	if err != nil {
		if service.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
