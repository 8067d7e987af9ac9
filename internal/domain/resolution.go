package domain

import "context"

// MatchTier identifies which strategy produced a candidate.
type MatchTier string

const (
	TierExact     MatchTier = "exact"
	TierHeuristic MatchTier = "heuristic"
	TierOverlap   MatchTier = "overlap"
	TierModel     MatchTier = "model"
	TierAdvisory  MatchTier = "advisory"
)

// MatchCandidate is a transient result of one matching tier. It never
// outlives the resolution run that produced it.
type MatchCandidate struct {
	Entry RegistryEntry
	Score int
	Tier  MatchTier
}

// OutcomeKind enumerates terminal states of a resolution run.
type OutcomeKind string

const (
	// OutcomeExecuted means a local artifact was resolved and launched. The
	// launch attempt, not the artifact's own exit status, is what this
	// outcome guarantees.
	OutcomeExecuted OutcomeKind = "executed"
	// OutcomeFeasibleNoArtifact means no local artifact matched but the
	// advisory service judged the request feasible.
	OutcomeFeasibleNoArtifact OutcomeKind = "feasible_no_artifact"
	// OutcomeInfeasible means no artifact matched and the advisory service
	// declined (or was unreachable; the classifier fails closed).
	OutcomeInfeasible OutcomeKind = "infeasible"
	// OutcomeNoInput means the utterance was empty after normalization.
	OutcomeNoInput OutcomeKind = "no_input"
	// OutcomeError means the final tier itself failed.
	OutcomeError OutcomeKind = "error"
)

// ResolutionOutcome is the terminal value of one pipeline run.
type ResolutionOutcome struct {
	Kind      OutcomeKind
	Tier      MatchTier
	Entry     *RegistryEntry
	Verdict   *AdvisoryVerdict
	Execution *ExecutionResult
	Reason    string
}

// ExecutionResult wraps details from the action executor.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}

// ResolveRequest captures one utterance to resolve.
type ResolveRequest struct {
	Context   context.Context
	Utterance string
	DryRun    bool
	Debug     bool
}

// ResolverService exposes the use-case boundary for one resolution run.
type ResolverService interface {
	Resolve(ResolveRequest) (ResolutionOutcome, error)
}
