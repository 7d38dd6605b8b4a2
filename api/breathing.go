package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindmate/mindmate/domain"
)

// PostBreathing logs a completed breathing session. Sessions with no
// completed cycle are rejected; the client is expected not to report them
// at all, and the boundary enforces it.
// POST /api/breathing
func (h *Handler) PostBreathing(c echo.Context) error {
	var req domain.BreathingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "invalid request body"})
	}

	if req.Duration <= 0 {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "duration must be positive"})
	}
	if req.CyclesCompleted < 1 {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "cycles_completed must be at least 1"})
	}

	session := &domain.BreathingSession{
		DurationSeconds: req.Duration,
		CyclesCompleted: req.CyclesCompleted,
		SessionType:     req.SessionType,
	}
	if err := h.store.CreateBreathingSession(c.Request().Context(), session); err != nil {
		log.Printf("ERROR: failed to log breathing session: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to log breathing session"})
	}

	return c.JSON(http.StatusOK, domain.InsertResponse{
		Status:    "success",
		Message:   fmt.Sprintf("Breathing session logged: %d cycles in %d seconds", session.CyclesCompleted, session.DurationSeconds),
		ID:        session.ID,
		Timestamp: now(),
	})
}

// GetDashboardStats returns the aggregated dashboard statistics.
// GET /api/dashboard/stats
func (h *Handler) GetDashboardStats(c echo.Context) error {
	stats, err := h.store.GetDashboardStats(c.Request().Context())
	if err != nil {
		log.Printf("ERROR: failed to compute dashboard stats: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to compute dashboard stats"})
	}
	return c.JSON(http.StatusOK, stats)
}
