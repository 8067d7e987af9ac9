// Package resolver contains the resolution orchestrator: the state machine
// that escalates an utterance through the matching tiers and the advisory
// classifier, then executes or reports.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// Service sequences one resolution run per utterance. Runs are synchronous
// and single-threaded; only the narrator operates detached.
type Service struct {
	Registry      ports.Registry
	ExactMatcher  ports.Matcher
	ApproxMatcher ports.Matcher
	Advisory      ports.AdvisoryClassifier
	Executor      ports.ActionExecutor
	Narrator      ports.Narrator
	Prompter      ports.ConfirmationPrompter
	HistoryStore  ports.HistoryRepository
	Logger        ports.Logger
}

// Resolve processes a single utterance end to end. Tier failures are
// contained: a failing matcher falls through to the next tier, and only a
// failure in the final tier terminates the run as an error outcome.
func (s *Service) Resolve(req domain.ResolveRequest) (domain.ResolutionOutcome, error) {
	if s.Registry == nil || s.ExactMatcher == nil || s.ApproxMatcher == nil ||
		s.Advisory == nil || s.Executor == nil || s.Narrator == nil || s.Logger == nil {
		return domain.ResolutionOutcome{}, errors.New("resolver.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	utterance := domain.NormalizeUtterance(req.Utterance)
	if utterance == "" {
		return domain.ResolutionOutcome{Kind: domain.OutcomeNoInput}, nil
	}

	entries := s.snapshot(ctx)

	s.announce(domain.StageExact, "Let me check my commands.", domain.EmotionConcentration)
	candidate := s.runMatcher(ctx, s.ExactMatcher, utterance, entries)

	if candidate == nil {
		s.announce(domain.StageApprox, "Nothing exact. Let me think harder.", domain.EmotionConcentration)
		candidate = s.runMatcher(ctx, s.ApproxMatcher, utterance, entries)
	}

	var outcome domain.ResolutionOutcome
	if candidate != nil {
		outcome = s.executeCandidate(ctx, req, *candidate)
	} else {
		s.announce(domain.StageAdvisory, "I do not know that one. Let me ask my cloud brain.", domain.EmotionConfusion)
		outcome = s.classify(ctx, utterance)
	}

	s.announceOutcome(outcome)
	s.record(req, utterance, outcome, time.Since(start))
	return outcome, nil
}

// snapshot reads the registry, treating an unavailable directory as an empty
// catalog so the advisory tier still runs.
func (s *Service) snapshot(ctx context.Context) []domain.RegistryEntry {
	entries, err := s.Registry.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRegistryUnavailable) {
			s.Logger.Warn("registry unavailable, continuing with no local candidates", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			s.Logger.Error("registry snapshot failed", err, nil)
		}
		return nil
	}
	return entries
}

// runMatcher invokes one matching tier with panic and error containment.
func (s *Service) runMatcher(ctx context.Context, matcher ports.Matcher, utterance string, entries []domain.RegistryEntry) (candidate *domain.MatchCandidate) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("matcher tier panicked", fmt.Errorf("%v", r), nil)
			candidate = nil
		}
	}()

	result, err := matcher.Match(ctx, utterance, entries)
	if err != nil {
		s.Logger.Warn("matcher tier failed, falling through", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return result
}

// classify runs the advisory tier. This is the last tier, so a panic here
// terminates the run as an error outcome rather than falling through.
func (s *Service) classify(ctx context.Context, utterance string) (outcome domain.ResolutionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprintf("advisory tier panicked: %v", r)
			s.Logger.Error("advisory tier panicked", errors.New(reason), nil)
			outcome = domain.ResolutionOutcome{Kind: domain.OutcomeError, Tier: domain.TierAdvisory, Reason: reason}
		}
	}()

	verdict := s.Advisory.Classify(ctx, utterance)
	if verdict.Safe {
		return domain.ResolutionOutcome{
			Kind:    domain.OutcomeFeasibleNoArtifact,
			Tier:    domain.TierAdvisory,
			Verdict: &verdict,
		}
	}
	return domain.ResolutionOutcome{
		Kind:    domain.OutcomeInfeasible,
		Tier:    domain.TierAdvisory,
		Verdict: &verdict,
	}
}

// executeCandidate launches the matched artifact. Declined confirmation and
// dry runs still resolve to the executed outcome kind with no execution
// attempt attached.
func (s *Service) executeCandidate(ctx context.Context, req domain.ResolveRequest, candidate domain.MatchCandidate) domain.ResolutionOutcome {
	entry := candidate.Entry
	outcome := domain.ResolutionOutcome{
		Kind:  domain.OutcomeExecuted,
		Tier:  candidate.Tier,
		Entry: &entry,
	}

	if req.DryRun {
		outcome.Reason = "dry run, execution skipped"
		return outcome
	}
	if s.Prompter != nil && s.Prompter.Enabled() {
		approved, err := s.Prompter.Confirm(entry)
		if err != nil || !approved {
			outcome.Reason = "execution declined"
			return outcome
		}
	}

	s.announce(domain.StageExecute, fmt.Sprintf("Running %s.", entry.Name), domain.EmotionDetermination)
	result, err := s.Executor.Execute(ctx, entry)
	outcome.Execution = &result
	if err != nil {
		s.Logger.Warn("artifact launch failed", map[string]interface{}{
			"entry": entry.Name,
			"error": err.Error(),
		})
	}
	return outcome
}

func (s *Service) announce(stage domain.Stage, text string, emotion domain.Emotion) {
	s.Narrator.Announce(domain.NarrationEvent{Stage: stage, Text: text, Emotion: emotion})
}

func (s *Service) announceOutcome(outcome domain.ResolutionOutcome) {
	switch outcome.Kind {
	case domain.OutcomeExecuted:
		if outcome.Execution == nil {
			s.announce(domain.StageOutcome, fmt.Sprintf("I found %s but did not run it.", outcome.Entry.Name), domain.EmotionNeutral)
		} else if outcome.Execution.Ran {
			s.announce(domain.StageOutcome, "Done!", domain.EmotionSatisfaction)
		} else {
			s.announce(domain.StageOutcome, "That did not work.", domain.EmotionSadness)
		}
	case domain.OutcomeFeasibleNoArtifact:
		s.announce(domain.StageOutcome, "I could probably do that, but I have no script for it yet.", domain.EmotionNeutral)
	case domain.OutcomeInfeasible:
		s.announce(domain.StageOutcome, "I do not think I should do that.", domain.EmotionSadness)
	case domain.OutcomeError:
		s.announce(domain.StageOutcome, "Something went wrong inside my head.", domain.EmotionConfusion)
	}
}

// record persists the run; history failures only log.
func (s *Service) record(req domain.ResolveRequest, utterance string, outcome domain.ResolutionOutcome, elapsed time.Duration) {
	if s.HistoryStore == nil {
		return
	}

	rec := domain.ResolutionRecord{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now(),
		Utterance:  utterance,
		Outcome:    string(outcome.Kind),
		Tier:       string(outcome.Tier),
		DurationMS: elapsed.Milliseconds(),
	}
	if outcome.Entry != nil {
		rec.Entry = outcome.Entry.Name
	}
	if outcome.Execution != nil {
		rec.Executed = true
		rec.Success = outcome.Execution.Ran
		rec.ExitCode = outcome.Execution.ExitCode
	}
	if outcome.Verdict != nil {
		rec.Verdict = outcome.Verdict.RawText
	}

	if err := s.HistoryStore.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

// Compile-time interface compliance check
var _ domain.ResolverService = (*Service)(nil)
