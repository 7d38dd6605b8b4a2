package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmate/mindmate/chat"
	"github.com/mindmate/mindmate/domain"
	"github.com/mindmate/mindmate/tests/helpers"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	st := helpers.NewTestSQLiteStore(t)
	h := NewHandler(st, chat.NewResponder(st, nil))
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "failed to decode response: %s", rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]string](t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestPostChatRejectsEmptyMessage(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[domain.ErrorResponse](t, rec)
	assert.Contains(t, body.Error, "empty")
}

func TestPostChatReturnsReply(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"I'm so stressed about work"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[domain.ChatResponse](t, rec)
	assert.NotEmpty(t, body.Reply)
	assert.NotEmpty(t, body.ConversationID)
	assert.False(t, body.IsCrisis)
	assert.NotEmpty(t, body.Timestamp)
}

func TestPostChatFlagsCrisis(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"I want to die"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[domain.ChatResponse](t, rec)
	assert.True(t, body.IsCrisis)
	assert.Contains(t, body.Reply, "988")
}

func TestPostChatKeepsConversation(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"hello","conversation_id":"conv-7"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[domain.ChatResponse](t, rec)
	assert.Equal(t, "conv-7", body.ConversationID)
}

func TestPostMoodValidation(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing mood_type", `{"mood_emoji":"😊","intensity":5}`},
		{"missing mood_emoji", `{"mood_type":"happy","intensity":5}`},
		{"intensity too low", `{"mood_type":"happy","mood_emoji":"😊","intensity":0}`},
		{"intensity too high", `{"mood_type":"happy","mood_emoji":"😊","intensity":11}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/mood", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMoodRoundTrip(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/mood", `{"mood_type":"happy","mood_emoji":"😊","intensity":8,"notes":"good run"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	posted := decode[domain.InsertResponse](t, rec)
	assert.Equal(t, "success", posted.Status)
	assert.Contains(t, posted.Message, "happy")
	assert.NotZero(t, posted.ID)

	rec = doJSON(e, http.MethodGet, "/api/mood/history?days=7", "")
	require.Equal(t, http.StatusOK, rec.Code)

	history := decode[domain.MoodHistoryResponse](t, rec)
	assert.Equal(t, 7, history.DaysRequested)
	require.Equal(t, 1, history.TotalCount)
	assert.Equal(t, "happy", history.Moods[0].MoodType)
	assert.Equal(t, 8, history.Moods[0].Intensity)
	assert.Equal(t, "good run", history.Moods[0].Notes)
}

func TestPostMoodDefaultIntensity(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/mood", `{"mood_type":"calm","mood_emoji":"😌"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/mood/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	history := decode[domain.MoodHistoryResponse](t, rec)
	assert.Equal(t, defaultHistoryDays, history.DaysRequested)
	require.Equal(t, 1, history.TotalCount)
	assert.Equal(t, 5, history.Moods[0].Intensity)
}

func TestGetMoodHistoryIgnoresBadDaysParam(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/mood/history?days=banana", "")
	require.Equal(t, http.StatusOK, rec.Code)

	history := decode[domain.MoodHistoryResponse](t, rec)
	assert.Equal(t, defaultHistoryDays, history.DaysRequested)
	assert.NotNil(t, history.Moods)
}

func TestPostJournalRejectsEmptyContent(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/journal", `{"title":"empty day","content":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalRoundTrip(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/journal", `{"title":"morning","content":"slept well","mood_at_time":"rested","tags":"sleep,morning"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	posted := decode[domain.InsertResponse](t, rec)
	assert.Equal(t, "success", posted.Status)
	assert.NotZero(t, posted.ID)

	rec = doJSON(e, http.MethodGet, "/api/journal/entries?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[domain.JournalEntriesResponse](t, rec)
	require.Equal(t, 1, list.TotalCount)
	assert.Equal(t, "morning", list.Entries[0].Title)
	assert.Equal(t, "slept well", list.Entries[0].Content)
	assert.Equal(t, "sleep,morning", list.Entries[0].Tags)
}

func TestPostBreathingValidation(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/breathing", `{"duration":0,"cycles_completed":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/breathing", `{"duration":60,"cycles_completed":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostBreathing(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/breathing", `{"duration":95,"cycles_completed":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[domain.InsertResponse](t, rec)
	assert.Equal(t, "success", body.Status)
	assert.Contains(t, body.Message, "5 cycles")
	assert.Contains(t, body.Message, "95 seconds")
}

func TestGetDashboardStats(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[domain.DashboardStats](t, rec)
	assert.Equal(t, 5.0, empty.AvgIntensity)
	assert.Zero(t, empty.TotalEntries)

	doJSON(e, http.MethodPost, "/api/mood", `{"mood_type":"happy","mood_emoji":"😊","intensity":7}`)
	doJSON(e, http.MethodPost, "/api/journal", `{"content":"an entry"}`)
	doJSON(e, http.MethodPost, "/api/breathing", `{"duration":60,"cycles_completed":3}`)

	rec = doJSON(e, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[domain.DashboardStats](t, rec)
	assert.Equal(t, 7.0, stats.AvgIntensity)
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 1, stats.TotalBreathingSessions)
	require.Len(t, stats.MoodCounts, 1)
	assert.Equal(t, "happy", stats.MoodCounts[0].Mood)
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	settings := decode[map[string]string](t, rec)
	assert.Equal(t, "light", settings["theme"])
	assert.Equal(t, "true", settings["notifications"])
	assert.Equal(t, "daily", settings["reminder_frequency"])
	assert.Equal(t, "Friend", settings["name"])

	rec = doJSON(e, http.MethodPost, "/api/settings", `{"theme":"dark","notifications":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	settings = decode[map[string]string](t, rec)
	assert.Equal(t, "dark", settings["theme"])
	assert.Equal(t, "false", settings["notifications"])
	assert.Equal(t, "Friend", settings["name"])
}

func TestPostSettingsRejectsEmptyBody(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/settings", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEmergencyResources(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/emergency-resources", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[EmergencyResources](t, rec)
	require.NotEmpty(t, body.CrisisHotlines)
	assert.Equal(t, "Crisis Text Line", body.CrisisHotlines[0].Name)
	assert.Equal(t, "911", body.Emergency.Contact)
	assert.NotEmpty(t, body.OnlineResources)
}
