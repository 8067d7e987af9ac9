// Package match implements the local matching tiers of the resolution
// pipeline: deterministic substring and token-coverage matching, plus the
// approximate token-overlap and model-backed fallbacks.
package match

import (
	"context"
	"strings"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// ExactMatcher implements the first two tiers: exact substring matching and
// heuristic token coverage. Both tiers return the first qualifying entry in
// snapshot order rather than the best-scored one; with registries of tens of
// entries the simplicity wins over ranking.
type ExactMatcher struct{}

// NewExactMatcher builds the deterministic matcher.
func NewExactMatcher() *ExactMatcher {
	return &ExactMatcher{}
}

// Match implements ports.Matcher.
func (m *ExactMatcher) Match(_ context.Context, utterance string, entries []domain.RegistryEntry) (*domain.MatchCandidate, error) {
	if pattern := domain.UtterancePattern(utterance); pattern != "" {
		for _, entry := range entries {
			if strings.Contains(strings.ToLower(entry.Name), pattern) {
				return &domain.MatchCandidate{Entry: entry, Tier: domain.TierExact}, nil
			}
		}
	}

	tokens := domain.SignificantTokens(utterance)
	if len(tokens) == 0 {
		return nil, nil
	}
	// Only the first two significant tokens participate. Longer commands
	// lose their trailing intent words here; observed behavior, kept.
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}

	for _, entry := range entries {
		if coversAll(tokens, domain.NameTokens(entry.Name)) {
			return &domain.MatchCandidate{Entry: entry, Tier: domain.TierHeuristic}, nil
		}
	}
	return nil, nil
}

// coversAll reports whether every utterance token appears as a substring of
// at least one name token.
func coversAll(tokens, nameTokens []string) bool {
	for _, token := range tokens {
		covered := false
		for _, nameToken := range nameTokens {
			if strings.Contains(nameToken, token) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

var _ ports.Matcher = (*ExactMatcher)(nil)
