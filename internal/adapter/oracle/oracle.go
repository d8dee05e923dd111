package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mindscope-app/mindscope/internal/domain"
)

// systemInstruction is the persona carried on every conversational call.
const systemInstruction = `You are MindScope, an empathetic mental wellness mirror.
- Validate the user's feelings with deep kindness.
- If they share negative experiences (like failing an exam), respond that one moment doesn't define their whole story.
- Encourage them to breathe and stay present.
- Keep responses warm, concise, and focused on healing.`

// Fallback content returned when the backend is unavailable. Service faults
// must never surface to the user; they resolve to emotionally safe text.
const (
	fallbackReply   = "I'm here for you, even if the connection is currently weak."
	emptyReply      = "I'm listening. Tell me more."
	fallbackQuote   = "Deep breaths lead to clear thoughts."
	emptyQuote      = "You are enough exactly as you are."
	fallbackReport  = "Reflection is the first step toward growth."
	emptyReport     = "Your resilience is your strength."
	coldStartReport = "Start sharing your thoughts to see your weekly journey."
	fallbackPlaces  = "Visit a local park to clear your mind."
	fallbackMusic   = "Listen to some AR Rahman melodies for peace."
)

// converseHistoryWindow caps how many recent turns are sent with a
// conversational call. Older turns stay in the durable log but are dropped
// from the request context.
const converseHistoryWindow = 10

// summaryLogWindow caps how many recent mood logs feed the weekly summary.
const summaryLogWindow = 10

// Oracle wraps a Backend with the graceful operations the rest of the
// service consumes. No method returns an error: every failure degrades to
// static fallback content.
type Oracle struct {
	backend Backend
	model   string
	log     *slog.Logger
}

// New creates an Oracle over the given backend.
func New(backend Backend, model string, log *slog.Logger) *Oracle {
	return &Oracle{backend: backend, model: model, log: log}
}

// ClassifyMood maps arbitrary user text to exactly one taxonomy label.
// Returns Neutral on any failure or unrecognized label.
func (o *Oracle) ClassifyMood(ctx context.Context, text string) domain.Mood {
	labels := make([]string, len(domain.AllMoods))
	for i, m := range domain.AllMoods {
		labels[i] = string(m)
	}

	prompt := fmt.Sprintf("Text: %q. Which mood fits best?\nLabels: %s.\nReturn JSON: {\"mood\": \"Label\"}",
		text, strings.Join(labels, ", "))

	resp, err := o.backend.Complete(ctx, &ChatCompletionRequest{
		Model:          o.model,
		Messages:       []ChatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		o.log.Warn("mood classification failed", "error", err)
		return domain.MoodNeutral
	}

	var out struct {
		Mood string `json:"mood"`
	}
	if err := json.Unmarshal([]byte(firstContent(resp)), &out); err != nil {
		o.log.Warn("mood classification returned malformed payload", "error", err)
		return domain.MoodNeutral
	}
	return domain.ParseMood(out.Mood)
}

// Converse answers a conversational turn given the recent history. The
// history sent to the backend is bounded to the last ten turns.
func (o *Oracle) Converse(ctx context.Context, history []domain.ChatMessage, message string) string {
	if len(history) > converseHistoryWindow {
		history = history[len(history)-converseHistoryWindow:]
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: systemInstruction})
	for _, m := range history {
		role := "user"
		if m.Role == domain.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, ChatMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: message})

	resp, err := o.backend.Complete(ctx, &ChatCompletionRequest{
		Model:    o.model,
		Messages: messages,
	})
	if err != nil {
		o.log.Warn("conversation call failed", "error", err)
		return fallbackReply
	}

	if text := strings.TrimSpace(firstContent(resp)); text != "" {
		return text
	}
	return emptyReply
}

// Quote produces a short supportive sentence for the mood.
func (o *Oracle) Quote(ctx context.Context, mood domain.Mood) string {
	prompt := fmt.Sprintf("Write one short, powerful empathetic quote for someone feeling %s.", mood)

	resp, err := o.backend.Complete(ctx, &ChatCompletionRequest{
		Model:    o.model,
		Messages: []ChatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		o.log.Warn("quote call failed", "error", err)
		return fallbackQuote
	}

	if text := strings.TrimSpace(strings.ReplaceAll(firstContent(resp), `"`, "")); text != "" {
		return text
	}
	return emptyQuote
}

// WeeklySummary narrates a chronological mood-log sequence. An empty
// sequence returns the cold-start message without calling the backend.
func (o *Oracle) WeeklySummary(ctx context.Context, logs []domain.MoodLog) string {
	if len(logs) == 0 {
		return coldStartReport
	}

	recent := logs
	if len(recent) > summaryLogWindow {
		recent = recent[len(recent)-summaryLogWindow:]
	}
	entries := make([]string, len(recent))
	for i, l := range recent {
		entries[i] = fmt.Sprintf("%s: %s", time.UnixMilli(l.Timestamp).Format("2006-01-02"), l.Mood)
	}

	prompt := fmt.Sprintf("Based on logs: [%s], write a very brief 2-sentence empathetic summary of the user's emotional week.",
		strings.Join(entries, ", "))

	resp, err := o.backend.Complete(ctx, &ChatCompletionRequest{
		Model:    o.model,
		Messages: []ChatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		o.log.Warn("weekly summary call failed", "error", err)
		return fallbackReport
	}

	if text := strings.TrimSpace(firstContent(resp)); text != "" {
		return text
	}
	return emptyReport
}

// PeacefulPlaces suggests calm spots near the given coordinates.
func (o *Oracle) PeacefulPlaces(ctx context.Context, lat, lng float64) domain.Recommendation {
	prompt := fmt.Sprintf("Find 2 real peaceful places (parks, beaches, temples) near latitude %f, longitude %f.\nReturn JSON: {\"text\": \"summary\", \"places\": [{\"title\": \"name\", \"uri\": \"map link\"}]}", lat, lng)

	resp, err := o.backend.Complete(ctx, &ChatCompletionRequest{
		Model:          o.model,
		Messages:       []ChatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		o.log.Warn("places call failed", "error", err)
		return domain.Recommendation{Text: fallbackPlaces, Links: []domain.GroundingLink{}}
	}

	var out struct {
		Text   string                 `json:"text"`
		Places []domain.GroundingLink `json:"places"`
	}
	if err := json.Unmarshal([]byte(firstContent(resp)), &out); err != nil || out.Text == "" {
		return domain.Recommendation{Text: fallbackPlaces, Links: []domain.GroundingLink{}}
	}
	if out.Places == nil {
		out.Places = []domain.GroundingLink{}
	}
	return domain.Recommendation{Text: out.Text, Links: out.Places}
}

// MusicForMood suggests songs matching the mood.
func (o *Oracle) MusicForMood(ctx context.Context, mood domain.Mood) domain.Recommendation {
	prompt := fmt.Sprintf("Suggest 2 real songs for someone feeling %s. Prefer well-known, soothing picks.\nReturn JSON: {\"text\": \"summary\", \"songs\": [{\"title\": \"name\", \"uri\": \"streaming link\"}]}", mood)

	resp, err := o.backend.Complete(ctx, &ChatCompletionRequest{
		Model:          o.model,
		Messages:       []ChatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		o.log.Warn("music call failed", "error", err)
		return domain.Recommendation{Text: fallbackMusic, Links: []domain.GroundingLink{}}
	}

	var out struct {
		Text  string                 `json:"text"`
		Songs []domain.GroundingLink `json:"songs"`
	}
	if err := json.Unmarshal([]byte(firstContent(resp)), &out); err != nil || out.Text == "" {
		return domain.Recommendation{Text: fallbackMusic, Links: []domain.GroundingLink{}}
	}
	if out.Songs == nil {
		out.Songs = []domain.GroundingLink{}
	}
	return domain.Recommendation{Text: out.Text, Links: out.Songs}
}

// firstContent extracts the first choice's message content, if any.
func firstContent(resp *ChatCompletionResponse) string {
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return ""
	}
	return resp.Choices[0].Message.Content
}
