package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindlog-ai/knowledge-engine/internal/config"
	"github.com/mindlog-ai/knowledge-engine/internal/engine"
	"github.com/mindlog-ai/knowledge-engine/internal/graph"
	"github.com/mindlog-ai/knowledge-engine/internal/types"
)

func newTestServer(t *testing.T) (*Server, *graph.MockClient) {
	t.Helper()

	client := graph.NewMockClient()
	eng := engine.New(engine.DefaultLibrary(), client)

	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return NewServer(cfg, eng, client, nil), client
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleQuery(t *testing.T) {
	srv, client := newTestServer(t)
	client.QueueRows([]map[string]any{
		{"type": "Developer", "count": int64(2)},
	})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/query",
		map[string]any{"query": "몇 명의 개발자가 있는가?"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["result_count"])
	assert.Equal(t, "1.0.0", body["api_version"])
	assert.Contains(t, body, "processing_timestamp")
	assert.NotContains(t, body, "debug")

	analysis, ok := body["query_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "count", analysis["type"])
}

func TestHandleQuery_DebugBlock(t *testing.T) {
	srv, client := newTestServer(t)
	client.QueueRows([]map[string]any{{"category": "Developer", "count": int64(2)}})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/query",
		map[string]any{"query": "몇 명의 개발자가 있는가?", "debug": true})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	debug, ok := body["debug"].(map[string]any)
	require.True(t, ok, "debug block should be present when requested")
	cypher, _ := debug["generated_cypher"].(string)
	assert.Contains(t, cypher, "MATCH")
}

func TestHandleQuery_EmptyQuestion(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/query",
		map[string]any{"query": "   "})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "빈 질의는 처리할 수 없습니다", body["error"])
}

func TestHandleQuery_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/query",
		strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestHandleQuery_ExecutionFailure(t *testing.T) {
	srv, client := newTestServer(t)
	client.SetQueryError(types.NewRetryableError(
		graph.ErrCodeGraphQueryFailed, "connection lost"))

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/query",
		map[string]any{"query": "몇 명의 개발자가 있는가?"})

	// Execution failures surface as a failed answer, not a transport error.
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "질의 처리 중 오류가 발생했습니다")
}

func TestHandleBatch(t *testing.T) {
	srv, client := newTestServer(t)
	client.QueueRows([]map[string]any{{"category": "Developer", "count": int64(3)}})
	client.QueueRows(nil) // second question finds nothing

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/query/batch",
		map[string]any{"queries": []string{
			"몇 명의 개발자가 있는가?",
			"Terraform 스킬을 가진 개발자는?",
		}})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	summary, ok := body["batch_summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), summary["total_queries"])
	assert.Equal(t, float64(1), summary["successful"])
	assert.Equal(t, float64(1), summary["failed"])
	assert.Equal(t, float64(50), summary["success_rate"])

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), first["batch_index"])
	second, ok := results[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), second["batch_index"])
}

func TestHandleBatch_Limits(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/query/batch",
		map[string]any{"queries": []string{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "최소 1개 이상의 질의가 필요합니다", decodeBody(t, rec)["error"])

	oversized := make([]string, batchLimit+1)
	for i := range oversized {
		oversized[i] = fmt.Sprintf("질문 %d", i)
	}
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/query/batch",
		map[string]any{"queries": oversized})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "배치당 최대 10개 질의까지 처리 가능합니다", decodeBody(t, rec)["error"])
}

func TestHandleSchema(t *testing.T) {
	srv, _ := newTestServer(t)

	// Not loaded yet.
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/schema", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	srv.SetSchema(&graph.Schema{
		Labels:            []string{"Developer", "Skill"},
		RelationshipTypes: []string{"HAS_SKILL"},
		Properties:        map[string][]string{"Developer": {"name", "role"}},
		LoadedAt:          time.Now(),
	})

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/schema", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"Developer", "Skill"}, data["node_labels"])
}

func TestHandleHealth(t *testing.T) {
	srv, client := newTestServer(t)
	client.SetHealth(types.Healthy("connected"))

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", components["graph_connection"])
}

func TestHandleStats(t *testing.T) {
	srv, client := newTestServer(t)
	client.QueueRows([]map[string]any{{"category": "Developer", "count": int64(1)}})

	doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/query",
		map[string]any{"query": "몇 명의 개발자가 있는가?"})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total_queries"])
	assert.Equal(t, float64(1), data["successful_queries"])
	assert.Equal(t, float64(100), data["success_rate"])

	queryTypes, ok := data["query_types"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), queryTypes["count"])

	recent, ok := data["recent_queries"].([]any)
	require.True(t, ok)
	require.Len(t, recent, 1)
}

func TestHandleExamples(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/examples", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["examples"], "basic_queries")
}

func TestHandleNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body, "available_endpoints")
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/examples", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/examples", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rec2 := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec2, req)
	assert.Equal(t, "client-supplied", rec2.Header().Get("X-Request-ID"))
}
