package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mindmate/mindmate/domain"
)

// defaultHistoryDays is the mood history window when none is requested.
const defaultHistoryDays = 30

// PostMood logs a mood entry. Intensity is validated at the API boundary,
// independent of whatever the client control enforces.
// POST /api/mood
func (h *Handler) PostMood(c echo.Context) error {
	var req domain.MoodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "invalid request body"})
	}

	if req.MoodType == "" || req.MoodEmoji == "" {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "missing mood_type or mood_emoji"})
	}
	intensity := 5
	if req.Intensity != nil {
		intensity = *req.Intensity
	}
	if intensity < 1 || intensity > 10 {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "intensity must be between 1 and 10"})
	}

	entry := &domain.MoodEntry{
		MoodType:  req.MoodType,
		MoodEmoji: req.MoodEmoji,
		Intensity: intensity,
		Notes:     req.Notes,
	}
	if err := h.store.CreateMoodEntry(c.Request().Context(), entry); err != nil {
		log.Printf("ERROR: failed to log mood: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to log mood"})
	}

	return c.JSON(http.StatusOK, domain.InsertResponse{
		Status:    "success",
		Message:   fmt.Sprintf("Mood '%s' logged successfully", entry.MoodType),
		ID:        entry.ID,
		Timestamp: now(),
	})
}

// GetMoodHistory returns mood entries within a trailing day window,
// newest first.
// GET /api/mood/history?days=N
func (h *Handler) GetMoodHistory(c echo.Context) error {
	days := defaultHistoryDays
	if d := c.QueryParam("days"); d != "" {
		if val, err := strconv.Atoi(d); err == nil && val > 0 {
			days = val
		}
	}

	moods, err := h.store.GetMoodHistory(c.Request().Context(), days)
	if err != nil {
		log.Printf("ERROR: failed to fetch mood history: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to fetch mood history"})
	}
	if moods == nil {
		moods = []domain.MoodEntry{}
	}

	return c.JSON(http.StatusOK, domain.MoodHistoryResponse{
		Moods:         moods,
		TotalCount:    len(moods),
		DaysRequested: days,
	})
}
