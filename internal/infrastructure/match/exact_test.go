package match

import (
	"context"
	"testing"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

func entries(names ...string) []domain.RegistryEntry {
	out := make([]domain.RegistryEntry, 0, len(names))
	for _, name := range names {
		out = append(out, domain.RegistryEntry{Name: name, Path: "/cmd/" + name})
	}
	return out
}

func TestExactTierSubstringMatch(t *testing.T) {
	m := NewExactMatcher()
	candidate, err := m.Match(context.Background(), "celebrate", entries("move_forward.sh", "celebrate.py"))
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if candidate == nil || candidate.Entry.Name != "celebrate.py" {
		t.Fatalf("Match() = %+v, want celebrate.py", candidate)
	}
	if candidate.Tier != domain.TierExact {
		t.Fatalf("tier = %s, want exact", candidate.Tier)
	}
}

func TestExactTierFirstInSnapshotOrderWins(t *testing.T) {
	m := NewExactMatcher()
	candidate, err := m.Match(context.Background(), "move", entries("move_backward.sh", "move_forward.sh"))
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if candidate == nil || candidate.Entry.Name != "move_backward.sh" {
		t.Fatalf("Match() = %+v, want first entry move_backward.sh", candidate)
	}
}

func TestHeuristicTierFirstTwoTokens(t *testing.T) {
	m := NewExactMatcher()
	// Pattern "move_forward_please" is not a substring of any name, but the
	// first two significant tokens both appear in move_forward.sh's tokens.
	candidate, err := m.Match(context.Background(), "move forward please", entries("move_forward.sh", "celebrate.py"))
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if candidate == nil || candidate.Entry.Name != "move_forward.sh" {
		t.Fatalf("Match() = %+v, want move_forward.sh", candidate)
	}
	if candidate.Tier != domain.TierHeuristic {
		t.Fatalf("tier = %s, want heuristic", candidate.Tier)
	}
}

func TestHeuristicTierIgnoresTokensBeyondTwo(t *testing.T) {
	m := NewExactMatcher()
	// The third token "backward" must not disqualify the entry: only the
	// first two significant tokens participate.
	candidate, err := m.Match(context.Background(), "move forward backward", entries("move_forward.sh"))
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if candidate == nil || candidate.Entry.Name != "move_forward.sh" {
		t.Fatalf("Match() = %+v, want move_forward.sh", candidate)
	}
}

func TestHeuristicTierRequiresAllTokensCovered(t *testing.T) {
	m := NewExactMatcher()
	candidate, err := m.Match(context.Background(), "move sideways", entries("move_forward.sh"))
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if candidate != nil {
		t.Fatalf("Match() = %+v, want nil", candidate)
	}
}

func TestExactMatcherEmptyRegistry(t *testing.T) {
	m := NewExactMatcher()
	candidate, err := m.Match(context.Background(), "celebrate", nil)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if candidate != nil {
		t.Fatalf("Match() = %+v, want nil", candidate)
	}
}
