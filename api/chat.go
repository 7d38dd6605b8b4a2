package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mindmate/mindmate/domain"
)

// PostChat handles a chat message. The responder absorbs all upstream
// failures, so once the input validates the endpoint always answers 200
// with some reply text.
// POST /api/chat
func (h *Handler) PostChat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "invalid request body"})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "message cannot be empty"})
	}

	reply, err := h.responder.Respond(c.Request().Context(), message, req.ConversationID)
	if err != nil {
		log.Printf("ERROR: chat respond failed: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to process message"})
	}

	return c.JSON(http.StatusOK, domain.ChatResponse{
		Reply:          reply.Text,
		ConversationID: reply.ConversationID,
		IsCrisis:       reply.IsCrisis,
		Timestamp:      now(),
	})
}
