// Package api provides the HTTP handlers for the wellbeing companion.
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindmate/mindmate/chat"
	"github.com/mindmate/mindmate/store"
)

// Handler handles HTTP requests.
type Handler struct {
	store     store.Store
	responder *chat.Responder
}

// NewHandler creates a new handler.
func NewHandler(st store.Store, responder *chat.Responder) *Handler {
	return &Handler{
		store:     st,
		responder: responder,
	}
}

// RegisterRoutes registers the API routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", h.Health)
	e.GET("/api/emergency-resources", h.GetEmergencyResources)

	e.POST("/api/chat", h.PostChat)

	e.POST("/api/mood", h.PostMood)
	e.GET("/api/mood/history", h.GetMoodHistory)

	e.POST("/api/journal", h.PostJournal)
	e.GET("/api/journal/entries", h.GetJournalEntries)

	e.POST("/api/breathing", h.PostBreathing)

	e.GET("/api/dashboard/stats", h.GetDashboardStats)

	e.GET("/api/settings", h.GetSettings)
	e.POST("/api/settings", h.PostSettings)
}

// Health returns health status.
// GET /api/health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"message":   "MindMate API is running",
		"timestamp": now(),
	})
}

// now formats the current time for response timestamps.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
