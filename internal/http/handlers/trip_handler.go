// README: Trip planning handlers (plan + choose).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripplan/internal/modules/itinerary"
	"tripplan/internal/modules/session"
	"tripplan/internal/modules/trip"
)

// Assembly issues up to eleven upstream calls, itinerary expansion up to six
// including image rendering, so both budgets are generous.
const (
	planTimeout   = 2 * time.Minute
	chooseTimeout = 3 * time.Minute
)

type TripHandler struct {
	planner     *trip.Service
	sessions    *session.Service
	itineraries *itinerary.Service
}

func NewTripHandler(planner *trip.Service, sessions *session.Service, itineraries *itinerary.Service) *TripHandler {
	return &TripHandler{planner: planner, sessions: sessions, itineraries: itineraries}
}

type planRequest struct {
	VacationType string  `json:"vacation_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Budget       float64 `json:"budget"`
}

type planResponse struct {
	SessionID string        `json:"session_id"`
	Options   []trip.Option `json:"options"`
	Skipped   []trip.Skip   `json:"skipped"`
}

// Plan handles POST /api/trips/plan.
// Callers must distinguish three outcomes: a populated option list, an empty
// list (every destination was skippable), and an error payload.
func (h *TripHandler) Plan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.VacationType = strings.TrimSpace(req.VacationType)
	if req.VacationType == "" {
		writeError(c, http.StatusBadRequest, "missing vacation_type")
		return
	}
	if !validDate(req.StartDate) || !validDate(req.EndDate) {
		writeError(c, http.StatusBadRequest, trip.ErrBadDate.Error())
		return
	}
	if req.Budget <= 0 {
		writeError(c, http.StatusBadRequest, "budget must be positive")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	options, skipped, err := h.planner.Assemble(ctx, req.VacationType, req.StartDate, req.EndDate, req.Budget)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	sess, err := h.sessions.Record(ctx, req.VacationType, req.StartDate, req.EndDate, options)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, planResponse{
		SessionID: sess.ID,
		Options:   options,
		Skipped:   skipped,
	})
}

type chooseRequest struct {
	// SessionID is optional; empty resolves the most recent session.
	SessionID string `json:"session_id"`
	Choice    int    `json:"choice"`
}

type chooseResponse struct {
	SessionID string `json:"session_id"`
	itinerary.Result
}

// Choose handles POST /api/trips/choose.
// The two rejection reasons — no active session vs out-of-range choice — are
// kept distinct so clients can message them correctly.
func (h *TripHandler) Choose(c *gin.Context) {
	var req chooseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chooseTimeout)
	defer cancel()

	sess, opt, err := h.sessions.Resolve(ctx, strings.TrimSpace(req.SessionID), req.Choice)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	result, err := h.itineraries.Expand(ctx, opt, sess.VacationType, sess.StartDate, sess.EndDate)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, chooseResponse{SessionID: sess.ID, Result: *result})
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
