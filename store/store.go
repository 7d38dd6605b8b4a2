// Package store provides persistence for the wellbeing companion.
package store

import (
	"context"

	"github.com/mindmate/mindmate/domain"
)

// Store defines the persistence operations used by the API handlers and
// the chat responder. All writes are single-row inserts; records are
// immutable once written (settings are the one upsert).
type Store interface {
	// Chat
	CreateChatMessage(ctx context.Context, msg *domain.ChatMessage) error
	GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]domain.ChatMessage, error)

	// Moods
	CreateMoodEntry(ctx context.Context, entry *domain.MoodEntry) error
	GetMoodHistory(ctx context.Context, days int) ([]domain.MoodEntry, error)

	// Journal
	CreateJournalEntry(ctx context.Context, entry *domain.JournalEntry) error
	GetJournalEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// Breathing
	CreateBreathingSession(ctx context.Context, session *domain.BreathingSession) error

	// Dashboard
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// Settings
	UpsertSetting(ctx context.Context, key, value string) error
	GetSetting(ctx context.Context, key, defaultValue string) (string, error)

	Close() error
}
