package domain

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// User is an account in the identity store. The password hash is never
// exposed in JSON.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// MoodLog is a single timestamped mood observation. Logs form an append-only
// per-user sequence; the most recent entry defines the user's current mood.
type MoodLog struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
	Mood      Mood   `json:"mood"`
	Note      string `json:"note,omitempty"`
}

// GroundingLink is a supplementary reference attached to a chat message.
type GroundingLink struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ChatMessage is a single turn in a user's conversation. Mood is a snapshot
// of the current mood at the time the message was recorded, never updated
// retroactively.
type ChatMessage struct {
	ID             string          `json:"id"`
	Role           Role            `json:"role"`
	Content        string          `json:"content"`
	Timestamp      int64           `json:"timestamp"` // Unix milliseconds
	Mood           Mood            `json:"mood"`
	GroundingLinks []GroundingLink `json:"grounding_links,omitempty"`
}

// Recommendation is a derived suggestion (places or music) with optional
// grounding links.
type Recommendation struct {
	Text  string          `json:"text"`
	Links []GroundingLink `json:"links"`
}
