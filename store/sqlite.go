package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mindmate/mindmate/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and runs the
// create-if-not-exists migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			conversation_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_conversation ON chat_messages(conversation_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS moods (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mood_type TEXT NOT NULL,
			mood_emoji TEXT NOT NULL,
			intensity INTEGER NOT NULL DEFAULT 5,
			notes TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			content TEXT NOT NULL,
			mood_at_time TEXT,
			tags TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS breathing_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_duration INTEGER NOT NULL,
			cycles_completed INTEGER NOT NULL,
			session_type TEXT NOT NULL DEFAULT '4-7-8',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS user_settings (
			setting_key TEXT PRIMARY KEY,
			setting_value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateChatMessage appends a message to a conversation and assigns its ID.
func (s *SQLiteStore) CreateChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	msg.CreatedAt = stamp(msg.CreatedAt)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (conversation_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		msg.ConversationID, msg.Role, msg.Content, msg.CreatedAt)
	if err != nil {
		return err
	}
	msg.ID, err = res.LastInsertId()
	return err
}

// GetRecentMessages returns the most recent messages of a conversation in
// chronological order, suitable for prompt context.
func (s *SQLiteStore) GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]domain.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, role, content, created_at
		 FROM (
			SELECT id, conversation_id, role, content, created_at
			FROM chat_messages
			WHERE conversation_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		 )
		 ORDER BY created_at ASC, id ASC`,
		conversationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// CreateMoodEntry inserts a mood entry and assigns its ID.
func (s *SQLiteStore) CreateMoodEntry(ctx context.Context, entry *domain.MoodEntry) error {
	entry.CreatedAt = stamp(entry.CreatedAt)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO moods (mood_type, mood_emoji, intensity, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.MoodType, entry.MoodEmoji, entry.Intensity, entry.Notes, entry.CreatedAt)
	if err != nil {
		return err
	}
	entry.ID, err = res.LastInsertId()
	return err
}

// GetMoodHistory returns mood entries within the trailing day window,
// newest first.
func (s *SQLiteStore) GetMoodHistory(ctx context.Context, days int) ([]domain.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mood_type, mood_emoji, intensity, notes, created_at
		 FROM moods
		 WHERE datetime(created_at) >= datetime('now', ?)
		 ORDER BY created_at DESC, id DESC`,
		fmt.Sprintf("-%d days", days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moods []domain.MoodEntry
	for rows.Next() {
		var entry domain.MoodEntry
		var notes sql.NullString
		if err := rows.Scan(&entry.ID, &entry.MoodType, &entry.MoodEmoji, &entry.Intensity, &notes, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Notes = notes.String
		moods = append(moods, entry)
	}
	return moods, rows.Err()
}

// CreateJournalEntry inserts a journal entry and assigns its ID.
func (s *SQLiteStore) CreateJournalEntry(ctx context.Context, entry *domain.JournalEntry) error {
	entry.CreatedAt = stamp(entry.CreatedAt)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO journal_entries (title, content, mood_at_time, tags, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.Title, entry.Content, entry.MoodAtTime, entry.Tags, entry.CreatedAt)
	if err != nil {
		return err
	}
	entry.ID, err = res.LastInsertId()
	return err
}

// GetJournalEntries returns the most recent journal entries, newest first.
func (s *SQLiteStore) GetJournalEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, mood_at_time, tags, created_at
		 FROM journal_entries
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var entry domain.JournalEntry
		var title, mood, tags sql.NullString
		if err := rows.Scan(&entry.ID, &title, &entry.Content, &mood, &tags, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Title = title.String
		entry.MoodAtTime = mood.String
		entry.Tags = tags.String
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CreateBreathingSession inserts a completed breathing session and assigns
// its ID.
func (s *SQLiteStore) CreateBreathingSession(ctx context.Context, session *domain.BreathingSession) error {
	session.CreatedAt = stamp(session.CreatedAt)
	if session.SessionType == "" {
		session.SessionType = domain.DefaultSessionType
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO breathing_sessions (session_duration, cycles_completed, session_type, created_at) VALUES (?, ?, ?, ?)`,
		session.DurationSeconds, session.CyclesCompleted, session.SessionType, session.CreatedAt)
	if err != nil {
		return err
	}
	session.ID, err = res.LastInsertId()
	return err
}

// GetDashboardStats aggregates dashboard statistics: mood counts over the
// trailing 30 days, average intensity over the trailing 7 days (5 when no
// entries), and lifetime journal/breathing totals.
func (s *SQLiteStore) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{MoodCounts: []domain.MoodCount{}}

	rows, err := s.db.QueryContext(ctx,
		`SELECT mood_type, COUNT(*) AS count
		 FROM moods
		 WHERE datetime(created_at) >= datetime('now', '-30 days')
		 GROUP BY mood_type
		 ORDER BY count DESC, mood_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var mc domain.MoodCount
		if err := rows.Scan(&mc.Mood, &mc.Count); err != nil {
			return nil, err
		}
		stats.MoodCounts = append(stats.MoodCounts, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	err = s.db.QueryRowContext(ctx,
		`SELECT AVG(intensity) FROM moods WHERE datetime(created_at) >= datetime('now', '-7 days')`).Scan(&avg)
	if err != nil {
		return nil, err
	}
	stats.AvgIntensity = 5
	if avg.Valid {
		stats.AvgIntensity = roundTenth(avg.Float64)
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal_entries`).Scan(&stats.TotalEntries); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breathing_sessions`).Scan(&stats.TotalBreathingSessions); err != nil {
		return nil, err
	}

	return stats, nil
}

// UpsertSetting creates or replaces a user setting.
func (s *SQLiteStore) UpsertSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_settings (setting_key, setting_value, updated_at) VALUES (?, ?, ?)`,
		key, value, stamp(time.Time{}))
	return err
}

// GetSetting returns a setting value, or the default when unset.
func (s *SQLiteStore) GetSetting(ctx context.Context, key, defaultValue string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT setting_value FROM user_settings WHERE setting_key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return defaultValue, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// stamp assigns a server-side creation timestamp. Times are stored in UTC
// at second precision so SQLite's datetime() window comparisons work.
func stamp(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Second)
}

func roundTenth(v float64) float64 {
	if v >= 0 {
		return float64(int(v*10+0.5)) / 10
	}
	return float64(int(v*10-0.5)) / 10
}
