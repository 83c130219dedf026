package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/mindlog-ai/knowledge-engine/internal/engine"
	"github.com/mindlog-ai/knowledge-engine/pkg/version"
)

// batchLimit caps the number of questions accepted per batch request.
const batchLimit = 10

// apiVersion is reported in single-query response envelopes.
const apiVersion = "1.0.0"

type queryRequest struct {
	Query string `json:"query"`
	Debug bool   `json:"debug"`
}

type batchRequest struct {
	Queries []string `json:"queries"`
}

// queryResponse wraps a single answer with API envelope metadata.
type queryResponse struct {
	engine.Answer
	APIVersion          string    `json:"api_version"`
	ProcessingTimestamp time.Time `json:"processing_timestamp"`
}

// batchResult pairs an answer with its position in the request.
type batchResult struct {
	engine.Answer
	BatchIndex int `json:"batch_index"`
}

type batchSummary struct {
	TotalQueries int     `json:"total_queries"`
	Successful   int     `json:"successful"`
	Failed       int     `json:"failed"`
	SuccessRate  float64 `json:"success_rate"`
}

type errorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest,
			"질의 텍스트가 필요합니다. {\"query\": \"질문 내용\"}")
		return
	}

	question := strings.TrimSpace(req.Query)
	if question == "" {
		s.writeError(w, http.StatusBadRequest, "빈 질의는 처리할 수 없습니다")
		return
	}

	answer := s.engine.Process(r.Context(), question)
	s.stats.Record(string(answer.Analysis.Intent), answer.Success, question)

	if !req.Debug {
		answer.Debug = nil
	}

	s.writeJSON(w, http.StatusOK, queryResponse{
		Answer:              answer,
		APIVersion:          apiVersion,
		ProcessingTimestamp: time.Now(),
	})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest,
			"질의 배열이 필요합니다. {\"queries\": [\"질문1\", \"질문2\"]}")
		return
	}

	if len(req.Queries) == 0 {
		s.writeError(w, http.StatusBadRequest, "최소 1개 이상의 질의가 필요합니다")
		return
	}
	if len(req.Queries) > batchLimit {
		s.writeError(w, http.StatusBadRequest, "배치당 최대 10개 질의까지 처리 가능합니다")
		return
	}

	s.logger.Info("batch received", "count", len(req.Queries))

	results := make([]batchResult, 0, len(req.Queries))
	successful := 0
	for i, q := range req.Queries {
		answer := s.engine.Process(r.Context(), strings.TrimSpace(q))
		answer.Debug = nil
		s.stats.Record(string(answer.Analysis.Intent), answer.Success, q)

		if answer.Success {
			successful++
		}
		results = append(results, batchResult{Answer: answer, BatchIndex: i})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"batch_summary": batchSummary{
			TotalQueries: len(req.Queries),
			Successful:   successful,
			Failed:       len(req.Queries) - successful,
			SuccessRate:  roundRate(successful, len(req.Queries)),
		},
		"results":   results,
		"timestamp": time.Now(),
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	schema := s.schema.Load()
	if schema == nil {
		s.writeError(w, http.StatusInternalServerError, "지식 엔진이 초기화되지 않았습니다")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"data":      schema,
		"timestamp": time.Now(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.client.Health(r.Context())

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    string(health.State),
		"timestamp": time.Now(),
		"components": map[string]string{
			"engine":           "ready",
			"graph_connection": string(health.State),
		},
		"version": version.Version,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"data":      s.stats.Snapshot(),
		"timestamp": time.Now(),
	})
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"examples":  usageExamples,
		"timestamp": time.Now(),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"error":   "API 엔드포인트를 찾을 수 없습니다",
		"available_endpoints": []string{
			"POST /api/v1/query",
			"POST /api/v1/query/batch",
			"GET /api/v1/schema",
			"GET /api/v1/health",
			"GET /api/v1/stats",
			"GET /api/v1/examples",
		},
		"timestamp": time.Now(),
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func roundRate(successful, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(successful)/float64(total)*10000) / 100
}
