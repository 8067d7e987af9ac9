package cli

import (
	"fmt"
	"io"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

// RenderOutcome prints a resolution outcome in a friendly, ASCII-only
// format.
func RenderOutcome(out io.Writer, outcome domain.ResolutionOutcome) {
	switch outcome.Kind {
	case domain.OutcomeNoInput:
		fmt.Fprintln(out, "Nothing to resolve.")

	case domain.OutcomeExecuted:
		fmt.Fprintf(out, "Resolved to %s (tier: %s)\n", outcome.Entry.Name, outcome.Tier)
		if outcome.Execution == nil {
			fmt.Fprintf(out, "Not executed: %s\n", outcome.Reason)
			return
		}
		if outcome.Execution.Ran {
			fmt.Fprintf(out, "Executed successfully in %dms.\n", outcome.Execution.DurationMS)
		} else if outcome.Execution.Err != nil {
			fmt.Fprintf(out, "Execution failed (exit %d): %v\n", outcome.Execution.ExitCode, outcome.Execution.Err)
		}
		if outcome.Execution.Stdout != "" {
			fmt.Fprintln(out, "stdout:")
			fmt.Fprintln(out, outcome.Execution.Stdout)
		}
		if outcome.Execution.Stderr != "" {
			fmt.Fprintln(out, "stderr:")
			fmt.Fprintln(out, outcome.Execution.Stderr)
		}

	case domain.OutcomeFeasibleNoArtifact:
		fmt.Fprintln(out, "No local script matches, but the request looks feasible.")
		fmt.Fprintln(out, "Add a script to the registry directory to teach Shibu this action.")

	case domain.OutcomeInfeasible:
		fmt.Fprintln(out, "Request declined: no local script and the advisory verdict was negative.")
		if outcome.Verdict != nil && outcome.Verdict.RawText != "" {
			fmt.Fprintf(out, "Advisory said: %s\n", outcome.Verdict.RawText)
		}

	case domain.OutcomeError:
		fmt.Fprintf(out, "Resolution error: %s\n", outcome.Reason)
	}
}
