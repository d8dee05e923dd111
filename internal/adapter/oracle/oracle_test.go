package oracle

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mindscope-app/mindscope/internal/domain"
)

// stubBackend records requests and returns a scripted response or error.
type stubBackend struct {
	calls   int
	lastReq *ChatCompletionRequest
	content string
	err     error
}

func (s *stubBackend) Complete(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &ChatCompletionResponse{
		Model: req.Model,
		Choices: []Choice{
			{Message: &ChatMessage{Role: "assistant", Content: s.content}},
		},
	}, nil
}

func newTestOracle(backend Backend) *Oracle {
	return New(backend, "test-model", slog.New(slog.DiscardHandler))
}

func TestClassifyMood(t *testing.T) {
	backend := &stubBackend{content: `{"mood": "Sad"}`}
	o := newTestOracle(backend)

	mood := o.ClassifyMood(context.Background(), "I failed my exam")
	assert.Equal(t, domain.MoodSad, mood)
	assert.Equal(t, 1, backend.calls)
}

func TestClassifyMoodBackendError(t *testing.T) {
	o := newTestOracle(&stubBackend{err: errors.New("connection refused")})

	mood := o.ClassifyMood(context.Background(), "anything")
	assert.Equal(t, domain.MoodNeutral, mood)
}

func TestClassifyMoodUnrecognizedLabel(t *testing.T) {
	o := newTestOracle(&stubBackend{content: `{"mood": "Ecstatic"}`})
	assert.Equal(t, domain.MoodNeutral, o.ClassifyMood(context.Background(), "whee"))
}

func TestClassifyMoodMalformedPayload(t *testing.T) {
	o := newTestOracle(&stubBackend{content: `not json at all`})
	assert.Equal(t, domain.MoodNeutral, o.ClassifyMood(context.Background(), "hello"))
}

func TestConverse(t *testing.T) {
	backend := &stubBackend{content: "That sounds hard. I'm with you."}
	o := newTestOracle(backend)

	reply := o.Converse(context.Background(), nil, "rough day")
	assert.Equal(t, "That sounds hard. I'm with you.", reply)

	// system instruction + new message
	assert.Len(t, backend.lastReq.Messages, 2)
	assert.Equal(t, "system", backend.lastReq.Messages[0].Role)
}

func TestConverseBoundsHistory(t *testing.T) {
	backend := &stubBackend{content: "ok"}
	o := newTestOracle(backend)

	history := make([]domain.ChatMessage, 25)
	for i := range history {
		history[i] = domain.ChatMessage{Role: domain.RoleUser, Content: "turn"}
	}

	o.Converse(context.Background(), history, "latest")

	// system + 10 most recent turns + new message
	assert.Len(t, backend.lastReq.Messages, 12)
}

func TestConverseFallbacks(t *testing.T) {
	o := newTestOracle(&stubBackend{err: errors.New("boom")})
	assert.Equal(t, fallbackReply, o.Converse(context.Background(), nil, "hi"))

	o = newTestOracle(&stubBackend{content: "   "})
	assert.Equal(t, emptyReply, o.Converse(context.Background(), nil, "hi"))
}

func TestQuote(t *testing.T) {
	o := newTestOracle(&stubBackend{content: `"Storms pass."`})
	assert.Equal(t, "Storms pass.", o.Quote(context.Background(), domain.MoodAnxiety))

	o = newTestOracle(&stubBackend{err: errors.New("boom")})
	assert.Equal(t, fallbackQuote, o.Quote(context.Background(), domain.MoodAnxiety))
}

func TestWeeklySummaryEmptyLogsSkipsBackend(t *testing.T) {
	backend := &stubBackend{content: "should not be used"}
	o := newTestOracle(backend)

	got := o.WeeklySummary(context.Background(), nil)
	assert.Equal(t, coldStartReport, got)
	assert.Equal(t, 0, backend.calls)
}

func TestWeeklySummary(t *testing.T) {
	backend := &stubBackend{content: "A week of ups and downs."}
	o := newTestOracle(backend)

	logs := []domain.MoodLog{
		{Mood: domain.MoodSad, Timestamp: time.Now().Add(-48 * time.Hour).UnixMilli()},
		{Mood: domain.MoodHappy, Timestamp: time.Now().UnixMilli()},
	}
	got := o.WeeklySummary(context.Background(), logs)
	assert.Equal(t, "A week of ups and downs.", got)
	assert.True(t, strings.Contains(backend.lastReq.Messages[0].Content, "Sad"))
	assert.True(t, strings.Contains(backend.lastReq.Messages[0].Content, "Happy"))
}

func TestWeeklySummaryWindowsLogs(t *testing.T) {
	backend := &stubBackend{content: "summary"}
	o := newTestOracle(backend)

	logs := make([]domain.MoodLog, 30)
	for i := range logs {
		logs[i] = domain.MoodLog{Mood: domain.MoodCalm, Timestamp: int64(i)}
	}
	logs[29].Mood = domain.MoodAngry

	o.WeeklySummary(context.Background(), logs)
	prompt := backend.lastReq.Messages[0].Content
	assert.Equal(t, 9, strings.Count(prompt, "Calm"))
	assert.Equal(t, 1, strings.Count(prompt, "Angry"))
}

func TestWeeklySummaryBackendError(t *testing.T) {
	o := newTestOracle(&stubBackend{err: errors.New("boom")})
	logs := []domain.MoodLog{{Mood: domain.MoodTired, Timestamp: time.Now().UnixMilli()}}
	assert.Equal(t, fallbackReport, o.WeeklySummary(context.Background(), logs))
}

func TestPeacefulPlaces(t *testing.T) {
	backend := &stubBackend{content: `{"text": "Two calm spots.", "places": [{"title": "Park", "uri": "https://maps.example.com/park"}]}`}
	o := newTestOracle(backend)

	rec := o.PeacefulPlaces(context.Background(), 13.08, 80.27)
	assert.Equal(t, "Two calm spots.", rec.Text)
	assert.Len(t, rec.Links, 1)
}

func TestPeacefulPlacesFallback(t *testing.T) {
	o := newTestOracle(&stubBackend{err: errors.New("boom")})
	rec := o.PeacefulPlaces(context.Background(), 0, 0)
	assert.Equal(t, fallbackPlaces, rec.Text)
	assert.Empty(t, rec.Links)
}

func TestMusicForMood(t *testing.T) {
	backend := &stubBackend{content: `{"text": "Two songs.", "songs": [{"title": "Weightless", "uri": "https://music.example.com/w"}]}`}
	o := newTestOracle(backend)

	rec := o.MusicForMood(context.Background(), domain.MoodStress)
	assert.Equal(t, "Two songs.", rec.Text)
	assert.Len(t, rec.Links, 1)

	o = newTestOracle(&stubBackend{content: `broken`})
	rec = o.MusicForMood(context.Background(), domain.MoodStress)
	assert.Equal(t, fallbackMusic, rec.Text)
}

func TestMockBackendRoundTripsEveryOperation(t *testing.T) {
	o := newTestOracle(NewMockBackend())
	ctx := context.Background()

	assert.Equal(t, domain.MoodCalm, o.ClassifyMood(ctx, "just watered my plants"))
	assert.NotEqual(t, fallbackReply, o.Converse(ctx, nil, "hello"))
	assert.NotEqual(t, fallbackQuote, o.Quote(ctx, domain.MoodSad))

	logs := []domain.MoodLog{{Mood: domain.MoodSad, Timestamp: time.Now().UnixMilli()}}
	assert.NotEqual(t, fallbackReport, o.WeeklySummary(ctx, logs))

	places := o.PeacefulPlaces(ctx, 1, 2)
	assert.NotEmpty(t, places.Links)
	music := o.MusicForMood(ctx, domain.MoodHappy)
	assert.NotEmpty(t, music.Links)
}
