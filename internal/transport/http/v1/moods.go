package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindscope-app/mindscope/internal/domain"
)

// PostMoodLogRequest is the body of POST /v1/moods.
type PostMoodLogRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note,omitempty"`
}

// PostMoodLog appends a user-confirmed mood observation. Unknown mood
// labels coerce to Neutral rather than failing.
// POST /v1/moods
func (h *Handler) PostMoodLog(c echo.Context) error {
	var req PostMoodLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	sess, err := h.sessions.Session(ctx, currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	entry := sess.AddMoodLog(ctx, domain.ParseMood(req.Mood), req.Note)
	if entry == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "session is no longer active"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"mood_log":     entry,
		"current_mood": sess.CurrentMood(),
	})
}

// GetMoodLogs retrieves the mood-log sequence and the current mood.
// GET /v1/moods
func (h *Handler) GetMoodLogs(c echo.Context) error {
	sess, err := h.sessions.Session(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"mood_logs":    sess.MoodLogs(),
		"current_mood": sess.CurrentMood(),
	})
}

// GetTaxonomy lists the twelve mood labels and their display metadata.
// GET /v1/taxonomy
func (h *Handler) GetTaxonomy(c echo.Context) error {
	type entry struct {
		Mood        domain.Mood `json:"mood"`
		Color       string      `json:"color"`
		Icon        string      `json:"icon"`
		SupportLine string      `json:"support_line"`
	}

	entries := make([]entry, len(domain.AllMoods))
	for i, m := range domain.AllMoods {
		entries[i] = entry{
			Mood:        m,
			Color:       m.Color(),
			Icon:        m.Icon(),
			SupportLine: m.SupportLine(),
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"moods": entries})
}
