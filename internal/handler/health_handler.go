package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.HealthService.Check(r.Context()); err != nil {
		h.Logger.Error(r.Context(), "health check failed", "error", err)
		WriteResponse(w, http.StatusInternalServerError, err.Error(), HealthResponse{Status: "unavailable"})
		return
	}

	WriteResponse(w, http.StatusOK, "OK", HealthResponse{Status: "ok"})
}
