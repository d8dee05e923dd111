// Package wellness owns per-user mood and conversation state, its durable
// persistence, and the background enrichment that derives quotes and the
// weekly report.
package wellness

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindscope-app/mindscope/internal/adapter/oracle"
	"github.com/mindscope-app/mindscope/internal/domain"
	"github.com/mindscope-app/mindscope/internal/repository"
)

// Defaults shown before the first enrichment completes.
const (
	defaultQuote  = "Welcome to MindScope."
	defaultReport = "Loading your insights..."
)

// Session holds one user's in-memory wellness state for the lifetime of
// their sign-in. All mutation goes through its methods; every append is a
// read-modify-write against the latest committed state under the session
// mutex, so background classification completions never clobber a
// foreground append.
type Session struct {
	store  repository.Store
	oracle *oracle.Oracle
	log    *slog.Logger
	now    func() time.Time
	newID  func() string

	mu          sync.Mutex
	userID      string
	active      bool
	currentMood domain.Mood
	moodLogs    []domain.MoodLog
	chat        []domain.ChatMessage
	quote       string
	report      string
	busy        int

	wg sync.WaitGroup
}

// NewSession creates an unloaded session for the user.
func NewSession(userID string, store repository.Store, ora *oracle.Oracle, log *slog.Logger) *Session {
	return &Session{
		store:       store,
		oracle:      ora,
		log:         log.With("user_id", userID),
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
		userID:      userID,
		active:      true,
		currentMood: domain.MoodNeutral,
		quote:       defaultQuote,
		report:      defaultReport,
	}
}

// Load replaces the in-memory state with the persisted collections. It is
// idempotent; repeated calls with no intervening mutation yield identical
// state. A malformed persisted collection loads as empty rather than
// failing the session.
func (s *Session) Load(ctx context.Context) error {
	moodPayload, err := s.store.ReadCollection(ctx, s.userID, repository.CollectionMoods)
	if err != nil {
		return err
	}
	chatPayload, err := s.store.ReadCollection(ctx, s.userID, repository.CollectionChats)
	if err != nil {
		return err
	}

	var logs []domain.MoodLog
	if len(moodPayload) > 0 {
		if err := json.Unmarshal(moodPayload, &logs); err != nil {
			s.log.Warn("mood collection malformed, loading as empty", "error", err)
			logs = nil
		}
	}
	var chat []domain.ChatMessage
	if len(chatPayload) > 0 {
		if err := json.Unmarshal(chatPayload, &chat); err != nil {
			s.log.Warn("chat collection malformed, loading as empty", "error", err)
			chat = nil
		}
	}

	s.mu.Lock()
	s.moodLogs = logs
	s.chat = chat
	s.currentMood = domain.MoodNeutral
	s.quote = defaultQuote
	s.report = defaultReport
	if len(logs) > 0 {
		s.currentMood = logs[len(logs)-1].Mood
	}
	mood := s.currentMood
	snapshot := s.moodLogsLocked()
	s.mu.Unlock()

	if len(logs) > 0 {
		s.wg.Add(1)
		go s.enrich(mood, snapshot)
	}
	return nil
}

// AddMoodLog appends a mood observation and makes it the current mood.
// A no-op returning nil on a deactivated session: background classification
// may settle after logout and must be silently ignored.
func (s *Session) AddMoodLog(ctx context.Context, mood domain.Mood, note string) *domain.MoodLog {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return nil
	}
	entry := domain.MoodLog{
		ID:        s.newID(),
		Timestamp: s.now().UnixMilli(),
		Mood:      mood,
		Note:      note,
	}
	s.moodLogs = append(s.moodLogs, entry)
	s.currentMood = mood
	s.persistMoodsLocked(ctx)
	snapshot := s.moodLogsLocked()
	s.mu.Unlock()

	s.wg.Add(1)
	go s.enrich(mood, snapshot)
	return &entry
}

// AddMessage appends a chat message with a snapshot of the current mood.
// User-authored messages additionally start a fire-and-forget mood
// classification; the append never waits on it. Returns nil on a
// deactivated session.
func (s *Session) AddMessage(ctx context.Context, content string, role domain.Role, links []domain.GroundingLink) *domain.ChatMessage {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return nil
	}

	if role == domain.RoleUser {
		s.busy++
		s.wg.Add(1)
		go s.classify(content)
	}

	msg := domain.ChatMessage{
		ID:             s.newID(),
		Role:           role,
		Content:        content,
		Timestamp:      s.now().UnixMilli(),
		Mood:           s.currentMood,
		GroundingLinks: links,
	}
	s.chat = append(s.chat, msg)
	s.persistChatLocked(ctx)
	s.mu.Unlock()

	return &msg
}

// RefreshInsights recomputes the weekly report from the current mood-log
// sequence without altering mood or logs.
func (s *Session) RefreshInsights(ctx context.Context) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	snapshot := s.moodLogsLocked()
	s.mu.Unlock()

	report := s.oracle.WeeklySummary(ctx, snapshot)

	// Deactivation may land while the summary is in flight.
	s.mu.Lock()
	if s.active {
		s.report = report
	}
	s.mu.Unlock()
}

// ClearChat empties the conversation and removes the persisted collection
// key outright. A cleared history is indistinguishable from one that never
// existed; that is intentional.
func (s *Session) ClearChat(ctx context.Context) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.chat = nil
	if err := s.store.DeleteCollection(ctx, s.userID, repository.CollectionChats); err != nil {
		s.log.Error("failed to delete chat collection", "error", err)
	}
	s.mu.Unlock()
}

// Deactivate turns every subsequent mutation into a silent no-op. In-flight
// classifications still settle but their results are discarded.
func (s *Session) Deactivate() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// Close waits for in-flight enrichment to settle.
func (s *Session) Close() {
	s.wg.Wait()
}

// CurrentMood returns the mood defined by the most recent log entry.
func (s *Session) CurrentMood() domain.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentMood
}

// MoodLogs returns a copy of the mood-log sequence.
func (s *Session) MoodLogs() []domain.MoodLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moodLogsLocked()
}

// ChatHistory returns a copy of the conversation sequence.
func (s *Session) ChatHistory() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

// Quote returns the current supportive quote.
func (s *Session) Quote() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote
}

// WeeklyReport returns the current weekly report text.
func (s *Session) WeeklyReport() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Busy reports whether a mood classification is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy > 0
}

// classify runs the background mood classification for a user message.
// It is not cancellable: a classification started by message N settles even
// if the user has sent more messages or logged out since.
func (s *Session) classify(text string) {
	defer s.wg.Done()

	mood := s.oracle.ClassifyMood(context.Background(), text)

	s.mu.Lock()
	current := s.currentMood
	s.mu.Unlock()

	if mood != domain.MoodNeutral && mood != current {
		s.AddMoodLog(context.Background(), mood, "")
	}

	s.mu.Lock()
	s.busy--
	s.mu.Unlock()
}

// enrich refreshes the quote and weekly report for the given mood and
// mood-log snapshot.
func (s *Session) enrich(mood domain.Mood, logs []domain.MoodLog) {
	defer s.wg.Done()

	ctx := context.Background()
	quote := s.oracle.Quote(ctx, mood)
	report := s.oracle.WeeklySummary(ctx, logs)

	s.mu.Lock()
	if s.active {
		s.quote = quote
		s.report = report
	}
	s.mu.Unlock()
}

// persistMoodsLocked writes the full mood collection. Called with the mutex
// held. A write fault is logged and the in-memory state kept; the durable
// view may lag until the next successful write.
func (s *Session) persistMoodsLocked(ctx context.Context) {
	payload, err := json.Marshal(s.moodLogs)
	if err != nil {
		s.log.Error("failed to encode mood logs", "error", err)
		return
	}
	if err := s.store.WriteCollection(ctx, s.userID, repository.CollectionMoods, payload); err != nil {
		s.log.Error("failed to persist mood logs", "error", err)
	}
}

// persistChatLocked writes the full chat collection. Same fault policy as
// persistMoodsLocked.
func (s *Session) persistChatLocked(ctx context.Context) {
	payload, err := json.Marshal(s.chat)
	if err != nil {
		s.log.Error("failed to encode chat history", "error", err)
		return
	}
	if err := s.store.WriteCollection(ctx, s.userID, repository.CollectionChats, payload); err != nil {
		s.log.Error("failed to persist chat history", "error", err)
	}
}

func (s *Session) moodLogsLocked() []domain.MoodLog {
	out := make([]domain.MoodLog, len(s.moodLogs))
	copy(out, s.moodLogs)
	return out
}
