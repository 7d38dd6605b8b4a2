package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mindmate/mindmate/domain"
)

// defaultEntriesLimit is the journal list size when none is requested.
const defaultEntriesLimit = 20

// PostJournal saves a journal entry. Content is required and validated
// server-side.
// POST /api/journal
func (h *Handler) PostJournal(c echo.Context) error {
	var req domain.JournalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "invalid request body"})
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "journal content cannot be empty"})
	}

	entry := &domain.JournalEntry{
		Title:      strings.TrimSpace(req.Title),
		Content:    content,
		MoodAtTime: req.MoodAtTime,
		Tags:       req.Tags,
	}
	if err := h.store.CreateJournalEntry(c.Request().Context(), entry); err != nil {
		log.Printf("ERROR: failed to save journal entry: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to save journal entry"})
	}

	return c.JSON(http.StatusOK, domain.InsertResponse{
		Status:    "success",
		Message:   "Journal entry saved successfully",
		ID:        entry.ID,
		Timestamp: now(),
	})
}

// GetJournalEntries returns the most recent journal entries, newest first.
// GET /api/journal/entries?limit=N
func (h *Handler) GetJournalEntries(c echo.Context) error {
	limit := defaultEntriesLimit
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}

	entries, err := h.store.GetJournalEntries(c.Request().Context(), limit)
	if err != nil {
		log.Printf("ERROR: failed to fetch journal entries: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to fetch journal entries"})
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}

	return c.JSON(http.StatusOK, domain.JournalEntriesResponse{
		Entries:    entries,
		TotalCount: len(entries),
	})
}
