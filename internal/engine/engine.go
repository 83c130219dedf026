package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindlog-ai/knowledge-engine/internal/graph"
)

// Describer produces a free-text intent description for questions the
// pattern library could not classify. Implementations may consult an LLM;
// the engine never uses the result for classification itself.
type Describer interface {
	DescribeIntent(ctx context.Context, question string) (string, error)
}

// Engine runs the full question pipeline: analyze the text, generate a
// Cypher query, execute it against the graph, and format the rows into an
// Answer. The engine holds no per-request state; only the read-only pattern
// library is shared across calls.
type Engine struct {
	analyzer  *Analyzer
	generator *Generator
	formatter *Formatter
	client    graph.Client
	logger    *slog.Logger
	describer Describer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used by the engine and its
// components.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDescriber sets the optional advanced-analysis hook consulted when
// classification misses. Leaving it unset keeps the pipeline fully
// deterministic.
func WithDescriber(d Describer) Option {
	return func(e *Engine) {
		e.describer = d
	}
}

// New creates an Engine over the given pattern library and graph client.
func New(library *Library, client graph.Client, opts ...Option) *Engine {
	e := &Engine{
		client: client,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.analyzer = NewAnalyzer(library, e.logger)
	e.generator = NewGenerator(library, e.logger)
	e.formatter = NewFormatter()

	return e
}

// Analyze exposes the analysis step on its own, for callers that want the
// classification without executing a query.
func (e *Engine) Analyze(question string) Analysis {
	return e.analyzer.Analyze(question)
}

// Generate exposes the generation step on its own.
func (e *Engine) Generate(analysis Analysis) string {
	return e.generator.Generate(analysis)
}

// Process runs the pipeline end to end for one question. An execution
// failure is reported as a failed Answer with an error message; it is never
// fatal and produces no partial results. Zero rows is a valid outcome
// distinguished from failure only by the absence of an execution error.
func (e *Engine) Process(ctx context.Context, question string) Answer {
	e.logger.Info("processing question", "question", question)

	analysis := e.analyzer.Analyze(question)

	if e.describer != nil && analysis.Intent == IntentUnknown {
		if desc, err := e.describer.DescribeIntent(ctx, question); err == nil && desc != "" {
			analysis.IntentDescription = desc
		} else if err != nil {
			e.logger.Warn("intent describer failed", "error", err)
		}
	}

	cypher := e.generator.Generate(analysis)

	result, err := e.client.Query(ctx, cypher, nil)
	if err != nil {
		e.logger.Error("query execution failed", "error", err)
		return Answer{
			Success:   false,
			Message:   fmt.Sprintf("질의 처리 중 오류가 발생했습니다: %v", err),
			Data:      []map[string]any{},
			Analysis:  analysis,
			Timestamp: time.Now(),
			Error:     err.Error(),
			Debug: &DebugInfo{
				GeneratedCypher: cypher,
			},
		}
	}

	answer := e.formatter.Format(analysis, result.Records)
	answer.Debug = &DebugInfo{
		GeneratedCypher: cypher,
		RawResultCount:  len(result.Records),
	}

	e.logger.Info("question processed",
		"intent", analysis.Intent,
		"success", answer.Success,
		"rows", len(result.Records))

	return answer
}
