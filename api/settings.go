package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindmate/mindmate/domain"
)

// defaultSettings are the known preference keys and their defaults.
var defaultSettings = map[string]string{
	"notifications":      "true",
	"theme":              "light",
	"reminder_frequency": "daily",
	"name":               "Friend",
}

// GetSettings returns the stored settings, filled in with defaults.
// GET /api/settings
func (h *Handler) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings := make(map[string]string, len(defaultSettings))
	for key, def := range defaultSettings {
		value, err := h.store.GetSetting(ctx, key, def)
		if err != nil {
			log.Printf("ERROR: failed to fetch setting %q: %v", key, err)
			return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to fetch settings"})
		}
		settings[key] = value
	}

	return c.JSON(http.StatusOK, settings)
}

// PostSettings upserts the provided settings. Values are stored as
// strings regardless of the JSON type sent.
// POST /api/settings
func (h *Handler) PostSettings(c echo.Context) error {
	var updates map[string]interface{}
	if err := c.Bind(&updates); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "invalid request body"})
	}
	if len(updates) == 0 {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "no settings data provided"})
	}

	ctx := c.Request().Context()
	for key, value := range updates {
		if err := h.store.UpsertSetting(ctx, key, fmt.Sprintf("%v", value)); err != nil {
			log.Printf("ERROR: failed to update setting %q: %v", key, err)
			return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to update settings"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Settings updated successfully",
	})
}
