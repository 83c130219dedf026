package graph

import (
	"context"
	"sync"

	"github.com/mindlog-ai/knowledge-engine/internal/types"
)

// MockClient is a mock implementation of Client for testing.
// It replays configured results in order and records every executed query
// for verification.
type MockClient struct {
	mu sync.Mutex

	connected    bool
	healthStatus types.HealthStatus

	// Configurable responses
	results    []Result
	queryErr   error
	connectErr error

	// Recorded calls
	ExecutedQueries []string
	ExecutedParams  []map[string]any
}

// NewMockClient creates a new mock graph client for testing.
func NewMockClient() *MockClient {
	return &MockClient{
		healthStatus: types.Healthy("mock graph client"),
	}
}

// QueueResult appends a result to be returned by the next Query call.
// Results are consumed in FIFO order; when exhausted, Query returns an
// empty result.
func (m *MockClient) QueueResult(r Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

// QueueRows is a convenience wrapper that queues a result built from rows.
func (m *MockClient) QueueRows(rows []map[string]any) {
	columns := []string{}
	if len(rows) > 0 {
		for k := range rows[0] {
			columns = append(columns, k)
		}
	}
	m.QueueResult(Result{Records: rows, Columns: columns})
}

// SetQueryError makes every subsequent Query call fail with err.
func (m *MockClient) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryErr = err
}

// SetConnectError makes Connect fail with err.
func (m *MockClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectErr = err
}

// SetHealth overrides the health status returned by Health.
func (m *MockClient) SetHealth(status types.HealthStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthStatus = status
}

// Connect simulates establishing a connection.
func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connectErr != nil {
		return m.connectErr
	}
	m.connected = true
	return nil
}

// Close simulates closing the connection.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// Health returns the configured health status.
func (m *MockClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.healthStatus
}

// Query records the call and replays the next configured result.
func (m *MockClient) Query(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ExecutedQueries = append(m.ExecutedQueries, cypher)
	m.ExecutedParams = append(m.ExecutedParams, params)

	if m.queryErr != nil {
		return Result{}, m.queryErr
	}

	if len(m.results) == 0 {
		return Result{Records: []map[string]any{}, Columns: []string{}}, nil
	}

	next := m.results[0]
	m.results = m.results[1:]
	return next, nil
}
