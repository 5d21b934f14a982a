// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplan/internal/ai"
	"tripplan/internal/modules/session"
	"tripplan/internal/modules/trip"
	"tripplan/internal/offers"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlannerError maps domain sentinels onto HTTP statuses. Upstream
// collaborator failures are 502s; caller mistakes are 400s; anything
// unexpected stays a generic 500.
func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrBadDate),
		errors.Is(err, session.ErrNoSession),
		errors.Is(err, session.ErrInvalidChoice):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ai.ErrUpstream), errors.Is(err, offers.ErrUpstream):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
