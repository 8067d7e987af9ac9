// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The resolution pipeline depends only on these abstractions; concrete
// adapters live in the infrastructure layer. This keeps the orchestrator
// testable with small stubs and free of HTTP, filesystem, and process
// concerns.
package ports

import (
	"context"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.shibu/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Registry enumerates the action artifact directory. Snapshot re-reads the
// directory on every call; there is no cached index. A missing directory
// yields domain.ErrRegistryUnavailable, which callers treat as an empty
// registry rather than a fatal error.
type Registry interface {
	Snapshot(context.Context) ([]domain.RegistryEntry, error)
}

// Matcher maps an utterance onto a registry entry, or nil when nothing
// qualifies. A nil candidate with a nil error is the normal fall-through
// outcome, not a failure.
type Matcher interface {
	Match(ctx context.Context, utterance string, entries []domain.RegistryEntry) (*domain.MatchCandidate, error)
}

// ModelBackend is the optional generative inference collaborator used by the
// approximate matcher. Complete returns whatever text the backend produced;
// the caller owns all interpretation of it.
type ModelBackend interface {
	Name() string
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// AdvisoryClassifier obtains a feasibility/safety verdict for an utterance
// that resolved to no local artifact. Implementations fail closed: an
// unreachable or misconfigured service yields Safe=false, never an error
// that crosses the tier boundary.
type AdvisoryClassifier interface {
	Classify(ctx context.Context, utterance string) domain.AdvisoryVerdict
}

// ActionExecutor launches a resolved artifact as an isolated child process.
type ActionExecutor interface {
	Execute(ctx context.Context, entry domain.RegistryEntry) (domain.ExecutionResult, error)
}

// Narrator publishes status lines for the speech side channel. Announce is
// non-blocking; implementations drop events rather than stall the pipeline.
type Narrator interface {
	Announce(event domain.NarrationEvent)
}

// HistoryRepository persists resolution runs.
type HistoryRepository interface {
	Save(record domain.ResolutionRecord) error
	Records(limit int, search string) ([]domain.ResolutionRecord, error)
	Clear() error
	ExportJSON(dest string) error
}

// ConfirmationPrompter asks the operator before running a matched artifact
// when confirm_before_execute is set.
type ConfirmationPrompter interface {
	Confirm(entry domain.RegistryEntry) (bool, error)
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
