package ai

import (
	"fmt"
	"time"

	"github.com/medimind/backend/config"
)

// NewProvider builds the analysis provider named in configuration.
func NewProvider(cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "", "groq":
		return NewGroqProvider(GroqConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
