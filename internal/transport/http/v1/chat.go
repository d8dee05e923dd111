package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindscope-app/mindscope/internal/domain"
	"github.com/mindscope-app/mindscope/internal/policy"
)

// crisisResources is appended to the assistant reply when the care policy
// flags a message.
var crisisResources = []domain.GroundingLink{
	{URI: "https://findahelpline.com", Title: "Find a Helpline"},
	{URI: "tel:988", Title: "988 Suicide & Crisis Lifeline"},
}

// PostMessageRequest is the body of POST /v1/chat/messages.
type PostMessageRequest struct {
	Content string `json:"content"`
}

// PostMessage appends the user's message and the assistant's reply. The
// user message lands in history immediately; mood classification runs in
// the background and never delays the response.
// POST /v1/chat/messages
func (h *Handler) PostMessage(c echo.Context) error {
	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}

	ctx := c.Request().Context()
	sess, err := h.sessions.Session(ctx, currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	history := sess.ChatHistory()
	userMsg := sess.AddMessage(ctx, req.Content, domain.RoleUser, nil)
	if userMsg == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "session is no longer active"})
	}

	reply := h.oracle.Converse(ctx, history, req.Content)

	var links []domain.GroundingLink
	if h.policy.Evaluate(ctx, req.Content, currentUser(c).ID) == policy.DecisionAttachResources {
		links = crisisResources
	}

	assistantMsg := sess.AddMessage(ctx, reply, domain.RoleAssistant, links)
	if assistantMsg == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "session is no longer active"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"messages": []*domain.ChatMessage{userMsg, assistantMsg},
		"busy":     sess.Busy(),
	})
}

// GetMessages retrieves the conversation history.
// GET /v1/chat/messages
func (h *Handler) GetMessages(c echo.Context) error {
	sess, err := h.sessions.Session(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": sess.ChatHistory(),
	})
}

// ClearChat removes the conversation history, in memory and durably.
// DELETE /v1/chat
func (h *Handler) ClearChat(c echo.Context) error {
	sess, err := h.sessions.Session(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	sess.ClearChat(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
