package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HarshaNaik703/Shibu-Robo/internal/app"
	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

func newResolveCommand(container *app.Container) *cobra.Command {
	var (
		dryRun  bool
		debug   bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "resolve [utterance]",
		Short: "Resolve one utterance to a local action",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(container, cmd, args, dryRun, debug, timeout)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "resolve without executing the matched artifact")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose tier diagnostics")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall resolution timeout (e.g. 45s)")
	return cmd
}

// runResolve is the shared resolve flow, invoked by both the resolve
// subcommand and the bare-utterance root command.
func runResolve(container *app.Container, cmd *cobra.Command, args []string, dryRun, debug bool, timeout time.Duration) error {
	defer container.Close()

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	outcome, err := container.ResolverService.Resolve(domain.ResolveRequest{
		Context:   ctx,
		Utterance: strings.Join(args, " "),
		DryRun:    dryRun,
		Debug:     debug,
	})
	if err != nil {
		return err
	}
	RenderOutcome(cmd.OutOrStdout(), outcome)
	return nil
}
