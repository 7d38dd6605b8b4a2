package domain

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse is the reply from POST /api/chat. The endpoint always
// returns a reply once the input validates; upstream failures are
// absorbed by the fallback path.
type ChatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
	IsCrisis       bool   `json:"is_crisis"`
	Timestamp      string `json:"timestamp"`
}

// MoodRequest is the body of POST /api/mood. Intensity defaults to 5
// when omitted and must fall in [1,10].
type MoodRequest struct {
	MoodType  string `json:"mood_type"`
	MoodEmoji string `json:"mood_emoji"`
	Intensity *int   `json:"intensity,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// MoodHistoryResponse is the reply from GET /api/mood/history.
type MoodHistoryResponse struct {
	Moods         []MoodEntry `json:"moods"`
	TotalCount    int         `json:"total_count"`
	DaysRequested int         `json:"days_requested"`
}

// JournalRequest is the body of POST /api/journal.
type JournalRequest struct {
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
	MoodAtTime string `json:"mood_at_time,omitempty"`
	Tags       string `json:"tags,omitempty"`
}

// JournalEntriesResponse is the reply from GET /api/journal/entries.
type JournalEntriesResponse struct {
	Entries    []JournalEntry `json:"entries"`
	TotalCount int            `json:"total_count"`
}

// BreathingRequest is the body of POST /api/breathing.
type BreathingRequest struct {
	Duration        int    `json:"duration"`
	CyclesCompleted int    `json:"cycles_completed"`
	SessionType     string `json:"session_type,omitempty"`
}

// InsertResponse acknowledges a successful write with the assigned row ID.
type InsertResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the generic error body for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
