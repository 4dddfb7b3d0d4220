package api

import (
	"net/http"
	"strconv"
	"time"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// ScoreJSON is one high-score entry.
type ScoreJSON struct {
	Rank  int    `json:"rank"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// RunJSON is one recorded run.
type RunJSON struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
	Ticks  int    `json:"ticks"`
	Date   string `json:"date"`
}

// StatsJSON aggregates the run history.
type StatsJSON struct {
	Runs       int     `json:"runs"`
	HighScore  int     `json:"high_score"`
	AvgScore   float64 `json:"avg_score"`
	TotalScore int64   `json:"total_score"`
	LastPlayed string  `json:"last_played,omitempty"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	entries, err := s.scores.TopScores()
	if err != nil {
		s.logger.Error("cannot load scores", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load scores")
		return
	}

	out := make([]ScoreJSON, 0, len(entries))
	for i, e := range entries {
		out = append(out, ScoreJSON{Rank: i + 1, Score: e.Score, Date: formatDate(e.CreatedAt)})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := s.scores.RecentRuns(limit)
	if err != nil {
		s.logger.Error("cannot load runs", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load runs")
		return
	}

	out := make([]RunJSON, 0, len(runs))
	for _, run := range runs {
		out = append(out, RunJSON{
			ID:     run.ID,
			Score:  run.Score,
			Reason: run.Reason,
			Ticks:  run.Ticks,
			Date:   formatDate(run.CreatedAt),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scores.Stats()
	if err != nil {
		s.logger.Error("cannot load stats", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load stats")
		return
	}

	s.writeJSON(w, http.StatusOK, StatsJSON{
		Runs:       stats.Runs,
		HighScore:  stats.HighScore,
		AvgScore:   stats.AvgScore,
		TotalScore: stats.TotalScore,
		LastPlayed: formatDate(stats.LastPlayed),
	})
}
