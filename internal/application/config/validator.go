package config

import (
	"errors"
	"fmt"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.Registry.Dir == "" {
		return errors.New("registry.dir must be set")
	}
	if cfg.Model.Endpoint != "" {
		if cfg.Model.MaxTokens <= 0 {
			return fmt.Errorf("model.max_tokens must be > 0, got %d", cfg.Model.MaxTokens)
		}
		if cfg.Model.TimeoutSeconds <= 0 {
			return fmt.Errorf("model.timeout must be > 0, got %d", cfg.Model.TimeoutSeconds)
		}
	}
	if cfg.Advisory.TimeoutSeconds <= 0 {
		return fmt.Errorf("advisory.timeout must be > 0, got %d", cfg.Advisory.TimeoutSeconds)
	}
	if cfg.Advisory.APIKeyEnvVar == "" {
		return errors.New("advisory.api_key_env_var must be set")
	}
	if cfg.Narration.QueueSize < 0 {
		return fmt.Errorf("narration.queue_size must be >= 0, got %d", cfg.Narration.QueueSize)
	}
	if cfg.Execution.TimeoutSeconds < 0 {
		return fmt.Errorf("execution.timeout must be >= 0, got %d", cfg.Execution.TimeoutSeconds)
	}
	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must be >= 0, got %d", cfg.History.RetentionDays)
	}
	return nil
}
