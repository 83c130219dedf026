package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *EngineError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewError(QUERY_EMPTY, "question text is empty"),
			expected: "[QUERY_EMPTY] question text is empty",
		},
		{
			name:     "with cause",
			err:      WrapError(QUERY_EXECUTION_FAILED, "cypher execution failed", errors.New("connection refused")),
			expected: "[QUERY_EXECUTION_FAILED] cypher execution failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestEngineError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := WrapError(SCHEMA_LOAD_FAILED, "schema load failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestEngineError_Is_MatchesByCode(t *testing.T) {
	err := WrapError(QUERY_EXECUTION_FAILED, "first failure", errors.New("boom"))
	target := NewError(QUERY_EXECUTION_FAILED, "different message")

	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, NewError(QUERY_EMPTY, "other code")))
}

func TestEngineError_WrappedChain(t *testing.T) {
	root := errors.New("socket closed")
	mid := WrapError(QUERY_EXECUTION_FAILED, "query failed", root)
	outer := fmt.Errorf("pipeline: %w", mid)

	var engineErr *EngineError
	require.True(t, errors.As(outer, &engineErr))
	assert.Equal(t, QUERY_EXECUTION_FAILED, engineErr.Code)
	assert.ErrorIs(t, outer, root)
}

func TestNewRetryableError(t *testing.T) {
	err := NewRetryableError(LLM_PROVIDER_UNAVAILABLE, "provider timeout")
	assert.True(t, err.Retryable)
	assert.False(t, NewError(LLM_PROVIDER_UNAVAILABLE, "x").Retryable)
}
