package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockBackend is an offline Backend with canned, deterministic responses.
// It keys off the same prompt markers the Oracle emits so that every
// operation round-trips without a remote service.
type MockBackend struct{}

// NewMockBackend creates a new mock backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Ensure MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// Complete returns a canned response shaped for the requesting operation.
func (m *MockBackend) Complete(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	content := m.generateContent(req)

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index: 0,
				Message: &ChatMessage{
					Role:    "assistant",
					Content: content,
				},
				FinishReason: "stop",
			},
		},
		Usage: &Usage{
			PromptTokens:     m.estimateTokens(req),
			CompletionTokens: len(content) / 4,
			TotalTokens:      m.estimateTokens(req) + len(content)/4,
		},
	}, nil
}

func (m *MockBackend) generateContent(req *ChatCompletionRequest) string {
	prompt := lastUserMessage(req)

	switch {
	case strings.Contains(prompt, "Which mood fits best"):
		return `{"mood": "Calm"}`
	case strings.Contains(prompt, "peaceful places"):
		return `{"text": "Found some quiet spots for you.", "places": [{"title": "Riverside Park", "uri": "https://maps.example.com/riverside-park"}, {"title": "Lakeview Gardens", "uri": "https://maps.example.com/lakeview-gardens"}]}`
	case strings.Contains(prompt, "Suggest 2 real songs"):
		return `{"text": "Here's some music to soothe you.", "songs": [{"title": "Weightless", "uri": "https://music.example.com/weightless"}, {"title": "Clair de Lune", "uri": "https://music.example.com/clair-de-lune"}]}`
	case strings.Contains(prompt, "empathetic quote"):
		return "Every feeling you carry is proof of how deeply you live."
	case strings.Contains(prompt, "Based on logs"):
		return "Your week held both heavy and light moments. Each entry shows you choosing to keep noticing, and that is quiet progress."
	case prompt == "":
		return "I'm listening. Tell me more."
	default:
		return fmt.Sprintf("I hear you. When you say %q, it sounds like there's more underneath. What does that feel like in this moment?", truncate(prompt, 100))
	}
}

// estimateTokens provides a rough token count estimate.
func (m *MockBackend) estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

// lastUserMessage returns the content of the most recent user message.
func lastUserMessage(req *ChatCompletionRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			return req.Messages[i].Content
		}
	}
	return ""
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
