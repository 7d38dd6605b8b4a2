// Package domain defines the core domain models for the wellbeing companion.
package domain

import "time"

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultSessionType is the breathing pattern this app ships with.
const DefaultSessionType = "4-7-8"

// ChatMessage is a single message in a conversation. Messages are
// append-only and grouped by conversation ID for context continuity.
type ChatMessage struct {
	ID             int64     `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// MoodEntry is one logged mood. Entries are immutable once written.
// JSON field names match the /api/mood/history response shape.
type MoodEntry struct {
	ID        int64     `json:"id,omitempty"`
	MoodType  string    `json:"type"`
	MoodEmoji string    `json:"emoji"`
	Intensity int       `json:"intensity"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"timestamp"`
}

// JournalEntry is one journal entry. Content is required; everything
// else is optional. Tags are a plain comma-separated string.
type JournalEntry struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	MoodAtTime string    `json:"mood"`
	Tags       string    `json:"tags"`
	CreatedAt  time.Time `json:"timestamp"`
}

// BreathingSession is a completed breathing exercise. It is written once,
// at session end, and only when at least one full cycle completed.
type BreathingSession struct {
	ID              int64     `json:"id"`
	DurationSeconds int       `json:"duration"`
	CyclesCompleted int       `json:"cycles_completed"`
	SessionType     string    `json:"session_type"`
	CreatedAt       time.Time `json:"timestamp"`
}

// Setting is a user preference flag with upsert semantics.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoodCount is one bucket of the dashboard mood distribution.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// DashboardStats aggregates the trailing activity shown on the dashboard:
// mood counts over 30 days, average intensity over 7 days, and lifetime
// journal/breathing totals.
type DashboardStats struct {
	MoodCounts             []MoodCount `json:"mood_counts"`
	AvgIntensity           float64     `json:"avg_intensity"`
	TotalEntries           int         `json:"total_entries"`
	TotalBreathingSessions int         `json:"total_breathing_sessions"`
}
