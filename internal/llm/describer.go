// Package llm provides an optional LLM-backed intent describer for
// questions the pattern library cannot classify. The deterministic pipeline
// never depends on it; when no provider is configured the engine falls back
// to its static descriptions.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/mindlog-ai/knowledge-engine/internal/config"
	"github.com/mindlog-ai/knowledge-engine/internal/types"
)

// describePrompt asks the model for a one-sentence Korean description of
// what the user is trying to find out.
const describePrompt = `다음 질문에서 사용자가 알고 싶어하는 것을 한 문장으로 설명해 주세요.

질문: %s

설명:`

// Describer generates natural-language intent descriptions using a
// langchaingo chat model.
type Describer struct {
	model    llms.Model
	provider string
}

// NewDescriber creates a describer for the configured provider. It returns
// an error when the provider is unknown or cannot be initialized.
func NewDescriber(cfg config.LLMConfig) (*Describer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic":
		return newAnthropicDescriber(cfg)
	case "openai":
		return newOpenAIDescriber(cfg)
	default:
		return nil, types.NewError(types.LLM_PROVIDER_UNAVAILABLE,
			fmt.Sprintf("unsupported llm provider %q", cfg.Provider))
	}
}

func newAnthropicDescriber(cfg config.LLMConfig) (*Describer, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, types.NewError(types.LLM_PROVIDER_UNAVAILABLE,
			"anthropic api key not configured")
	}

	opts := []anthropic.Option{anthropic.WithToken(apiKey)}
	if cfg.Model != "" {
		opts = append(opts, anthropic.WithModel(cfg.Model))
	}

	model, err := anthropic.New(opts...)
	if err != nil {
		return nil, types.WrapError(types.LLM_PROVIDER_UNAVAILABLE,
			"failed to initialize anthropic provider", err)
	}

	return &Describer{model: model, provider: "anthropic"}, nil
}

func newOpenAIDescriber(cfg config.LLMConfig) (*Describer, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, types.NewError(types.LLM_PROVIDER_UNAVAILABLE,
			"openai api key not configured")
	}

	opts := []openai.Option{openai.WithToken(apiKey)}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, types.WrapError(types.LLM_PROVIDER_UNAVAILABLE,
			"failed to initialize openai provider", err)
	}

	return &Describer{model: model, provider: "openai"}, nil
}

// Provider returns the name of the backing provider.
func (d *Describer) Provider() string {
	return d.provider
}

// DescribeIntent asks the model for a short Korean description of the
// question's intent. The response is trimmed to a single line.
func (d *Describer) DescribeIntent(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf(describePrompt, question)

	resp, err := llms.GenerateFromSinglePrompt(ctx, d.model, prompt,
		llms.WithTemperature(0.0),
		llms.WithMaxTokens(256),
	)
	if err != nil {
		return "", types.WrapError(types.LLM_COMPLETION_FAILED,
			"intent description request failed", err)
	}

	description := strings.TrimSpace(resp)
	if idx := strings.IndexByte(description, '\n'); idx >= 0 {
		description = strings.TrimSpace(description[:idx])
	}
	if description == "" {
		return "", types.NewError(types.LLM_COMPLETION_FAILED,
			"provider returned empty description")
	}
	return description, nil
}
