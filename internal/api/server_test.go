package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

// mockStore is an in-memory ScoreSource for testing.
type mockStore struct {
	scores   []storage.ScoreEntry
	runs     []storage.Run
	stats    storage.Stats
	err      error
	runLimit int
}

func (m *mockStore) TopScores() ([]storage.ScoreEntry, error) { return m.scores, m.err }

func (m *mockStore) RecentRuns(limit int) ([]storage.Run, error) {
	m.runLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.runs) {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func (m *mockStore) Stats() (*storage.Stats, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.stats
	return &s, nil
}

func newTestServer(src ScoreSource) *Server {
	return NewServer(src, log.New(io.Discard))
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Routes().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := get(t, newTestServer(&mockStore{}), "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, expected ok", resp.Status)
	}
}

func TestScoresEndpoint(t *testing.T) {
	date := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	src := &mockStore{scores: []storage.ScoreEntry{
		{ID: 4, Score: 12, CreatedAt: date},
		{ID: 2, Score: 7, CreatedAt: date},
	}}

	w := get(t, newTestServer(src), "/api/v1/scores")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp []ScoreJSON
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(resp))
	}
	if resp[0].Rank != 1 || resp[0].Score != 12 || resp[0].Date != "2026-02-03T04:05:06Z" {
		t.Errorf("first score = %+v", resp[0])
	}
	if resp[1].Rank != 2 || resp[1].Score != 7 {
		t.Errorf("second score = %+v", resp[1])
	}
}

func TestScoresEndpointEmpty(t *testing.T) {
	w := get(t, newTestServer(&mockStore{}), "/api/v1/scores")

	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("empty list body = %q, expected []", body)
	}
}

func TestRunsEndpointLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		status    int
		wantLimit int
	}{
		{"default", "", http.StatusOK, defaultRunsLimit},
		{"explicit", "?limit=3", http.StatusOK, 3},
		{"capped", "?limit=5000", http.StatusOK, maxRunsLimit},
		{"zero", "?limit=0", http.StatusBadRequest, 0},
		{"garbage", "?limit=abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockStore{}
			w := get(t, newTestServer(src), "/api/v1/runs"+tt.query)

			if w.Code != tt.status {
				t.Fatalf("status = %d, expected %d", w.Code, tt.status)
			}
			if src.runLimit != tt.wantLimit {
				t.Errorf("store called with limit %d, expected %d", src.runLimit, tt.wantLimit)
			}
		})
	}
}

func TestRunsEndpointBody(t *testing.T) {
	src := &mockStore{runs: []storage.Run{
		{ID: "b", Score: 4, Reason: "obstacle collision", Ticks: 500},
		{ID: "a", Score: 1, Reason: "out of bounds", Ticks: 90},
	}}

	w := get(t, newTestServer(src), "/api/v1/runs?limit=1")

	var resp []RunJSON
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "b" || resp[0].Reason != "obstacle collision" || resp[0].Ticks != 500 {
		t.Errorf("runs = %+v", resp)
	}
	if resp[0].Date != "" {
		t.Errorf("zero time should encode as empty date, got %q", resp[0].Date)
	}
}

func TestStatsEndpoint(t *testing.T) {
	src := &mockStore{stats: storage.Stats{Runs: 3, HighScore: 9, AvgScore: 5, TotalScore: 15}}

	w := get(t, newTestServer(src), "/api/v1/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp StatsJSON
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Runs != 3 || resp.HighScore != 9 || resp.AvgScore != 5 || resp.TotalScore != 15 {
		t.Errorf("stats = %+v", resp)
	}
}

func TestStoreErrors(t *testing.T) {
	src := &mockStore{err: errors.New("disk on fire")}
	s := newTestServer(src)

	for _, path := range []string{"/api/v1/scores", "/api/v1/runs", "/api/v1/stats"} {
		t.Run(path, func(t *testing.T) {
			w := get(t, s, path)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, expected 500", w.Code)
			}

			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Error == "" || resp.RequestID == "" {
				t.Errorf("error response should carry a message and request ID, got %+v", resp)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	w := get(t, newTestServer(&mockStore{}), "/api/v1/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", w.Code)
	}
}

func TestServerWithSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(3)
	store.SaveScore(8)
	store.RecordRun(3, "out of bounds", 100)
	store.RecordRun(8, "obstacle collision", 800)

	s := newTestServer(store)

	var scores []ScoreJSON
	if err := json.NewDecoder(get(t, s, "/api/v1/scores").Body).Decode(&scores); err != nil {
		t.Fatalf("decode scores: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 8 {
		t.Errorf("scores = %+v", scores)
	}

	var stats StatsJSON
	if err := json.NewDecoder(get(t, s, "/api/v1/stats").Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 8 || stats.LastPlayed == "" {
		t.Errorf("stats = %+v", stats)
	}
}
