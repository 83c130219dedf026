package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mindlog-ai/knowledge-engine/internal/types"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

// Validator validates engine configuration using struct tags plus
// cross-field rules the tags cannot express.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a configuration validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks cfg for structural and semantic errors. It returns an
// EngineError with code CONFIG_VALIDATION_FAILED describing all failures.
func (v *Validator) Validate(cfg *Config) error {
	var problems []string

	if err := v.validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				problems = append(problems, fmt.Sprintf(
					"field %s failed %s validation", ve.Namespace(), ve.Tag()))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	if err := cfg.Graph.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if cfg.Logging.Level != "" && !validLogLevels[strings.ToLower(cfg.Logging.Level)] {
		problems = append(problems, fmt.Sprintf(
			"invalid logging level %q (expected debug, info, warn, or error)", cfg.Logging.Level))
	}
	if cfg.Logging.Format != "" && !validLogFormats[strings.ToLower(cfg.Logging.Format)] {
		problems = append(problems, fmt.Sprintf(
			"invalid logging format %q (expected json or text)", cfg.Logging.Format))
	}

	if cfg.LLM.Provider != "" {
		switch strings.ToLower(cfg.LLM.Provider) {
		case "anthropic", "openai":
		default:
			problems = append(problems, fmt.Sprintf(
				"unsupported llm provider %q", cfg.LLM.Provider))
		}
	}

	if len(problems) > 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, strings.Join(problems, "; "))
	}
	return nil
}
