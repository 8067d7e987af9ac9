package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// ApproximateMatcher is the third tier. With no backend configured it scores
// entries by token overlap with the utterance. With a backend it asks the
// model to pick a filename and resolves the answer back into the registry;
// a failed backend call degrades to the overlap fallback instead of
// propagating, so this matcher never sinks a resolution run.
type ApproximateMatcher struct {
	backend   ports.ModelBackend
	maxTokens int
	logger    ports.Logger
}

const defaultCompletionTokens = 32

// NewApproximateMatcher builds the matcher. backend may be nil.
func NewApproximateMatcher(backend ports.ModelBackend, maxTokens int, logger ports.Logger) *ApproximateMatcher {
	if maxTokens <= 0 {
		maxTokens = defaultCompletionTokens
	}
	return &ApproximateMatcher{backend: backend, maxTokens: maxTokens, logger: logger}
}

// Match implements ports.Matcher.
func (m *ApproximateMatcher) Match(ctx context.Context, utterance string, entries []domain.RegistryEntry) (*domain.MatchCandidate, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	if m.backend == nil {
		return overlapCandidate(utterance, entries), nil
	}

	answer, err := m.backend.Complete(ctx, buildSelectionPrompt(utterance, entries), m.maxTokens)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("model backend failed, degrading to token overlap", map[string]interface{}{
				"backend": m.backend.Name(),
				"error":   err.Error(),
			})
		}
		return overlapCandidate(utterance, entries), nil
	}

	line := firstAnswerLine(answer)
	if line == "" {
		return nil, nil
	}
	return resolveAnswer(line, entries), nil
}

// buildSelectionPrompt embeds the utterance and every candidate name and
// pins the expected answer format to a single filename.
func buildSelectionPrompt(utterance string, entries []domain.RegistryEntry) string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return fmt.Sprintf(
		"You map a spoken robot command to one script filename.\n"+
			"Command: %q\n"+
			"Available files: %s\n"+
			"Answer with exactly one filename from the list and nothing else.",
		utterance, strings.Join(names, ", "))
}

// firstAnswerLine extracts the first non-empty line of the backend's reply
// and strips surrounding quotes and backticks.
func firstAnswerLine(answer string) string {
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "\"'`")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// resolveAnswer maps the model's answer line back onto a registry entry via
// three tiers: verbatim name match, case-insensitive substring match, and
// token-overlap scoring with dots and separators treated as delimiters.
func resolveAnswer(line string, entries []domain.RegistryEntry) *domain.MatchCandidate {
	for _, entry := range entries {
		if line == entry.Name {
			return &domain.MatchCandidate{Entry: entry, Tier: domain.TierModel}
		}
	}

	lowered := strings.ToLower(line)
	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		if strings.Contains(lowered, name) || strings.Contains(name, lowered) {
			return &domain.MatchCandidate{Entry: entry, Tier: domain.TierModel}
		}
	}

	if candidate := overlapCandidate(strings.Join(domain.NameTokens(line), " "), entries); candidate != nil {
		candidate.Tier = domain.TierModel
		return candidate
	}
	return nil
}

// overlapCandidate scores every entry by how many significant utterance
// tokens appear as substrings of its lower-cased name. The strictly highest
// scorer wins; ties keep the first-seen entry; a best score of zero means no
// candidate.
func overlapCandidate(utterance string, entries []domain.RegistryEntry) *domain.MatchCandidate {
	tokens := domain.SignificantTokens(utterance)
	if len(tokens) == 0 {
		return nil
	}

	var best *domain.MatchCandidate
	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		score := 0
		for _, token := range tokens {
			if strings.Contains(name, token) {
				score++
			}
		}
		if score > 0 && (best == nil || score > best.Score) {
			best = &domain.MatchCandidate{Entry: entry, Score: score, Tier: domain.TierOverlap}
		}
	}
	return best
}

var _ ports.Matcher = (*ApproximateMatcher)(nil)
