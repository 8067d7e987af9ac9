// Package doctor runs environment diagnostics, the equivalent of a
// pre-flight hardware and configuration check.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	appconfig "github.com/HarshaNaik703/Shibu-Robo/internal/application/config"
	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/pkg/filesystem"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Registry       ports.Registry
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, s.registryCheck(ctx))
	checks = append(checks, advisoryCheck(cfg.Advisory))
	checks = append(checks, modelCheck(cfg.Model))
	checks = append(checks, speechCheck(cfg.Narration))
	checks = append(checks, historyCheck(cfg.History))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) registryCheck(ctx context.Context) domain.HealthCheck {
	if s.Registry == nil {
		return warn("Registry", "registry not initialized")
	}
	entries, err := s.Registry.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRegistryUnavailable) {
			return warn("Registry", "commands directory missing; only advisory verdicts possible")
		}
		return fail("Registry", err.Error())
	}
	if len(entries) == 0 {
		return warn("Registry", "commands directory is empty")
	}
	return ok("Registry", fmt.Sprintf("%d artifacts found", len(entries)))
}

func advisoryCheck(settings domain.AdvisorySettings) domain.HealthCheck {
	keyVar := settings.APIKeyEnvVar
	if keyVar == "" {
		keyVar = "GEMINI_API_KEY"
	}
	if os.Getenv(keyVar) == "" {
		return warn("Advisory service", fmt.Sprintf("%s not set; unresolved commands will be declined", keyVar))
	}
	return ok("Advisory service", "credential present")
}

func modelCheck(settings domain.ModelSettings) domain.HealthCheck {
	if settings.Endpoint == "" {
		return warn("Model backend", "no endpoint configured; token-overlap matching only")
	}
	return ok("Model backend", fmt.Sprintf("%s (%s)", settings.Endpoint, settings.ModelID))
}

func speechCheck(settings domain.NarrationSettings) domain.HealthCheck {
	if !settings.Enabled {
		return ok("Speech", "narration disabled")
	}
	program := settings.SpeechProgram
	if program == "" {
		program = "espeak"
	}
	if _, err := exec.LookPath(program); err != nil {
		return warn("Speech", fmt.Sprintf("%s not on PATH; narration falls back to console", program))
	}
	return ok("Speech", fmt.Sprintf("%s available", program))
}

func historyCheck(settings domain.HistorySettings) domain.HealthCheck {
	if !settings.Enabled {
		return ok("History", "disabled")
	}
	dir := filepath.Join(filesystem.UserHome(), ".shibu", "history")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return warn("History", fmt.Sprintf("directory not writable: %v", err))
	}
	return ok("History", dir)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
