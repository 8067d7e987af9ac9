// Package cli wires the cobra command surface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/HarshaNaik703/Shibu-Robo/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. A bare utterance argument list
// resolves directly, so `shibu move forward` works without a subcommand.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	if container.Config.Execution.Confirm {
		container.ResolverService.Prompter = NewPrompter(nil, nil)
	}

	root := &cobra.Command{
		Use:   "shibu [utterance]",
		Short: "Shibu - voice command dispatcher",
		Long:  "Shibu resolves natural-language commands to local action scripts, with model-backed matching and a cloud advisory fallback.",
		// ArbitraryArgs so a bare utterance is not rejected as an unknown
		// subcommand before RunE runs.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runResolve(container, cmd, args, false, false, 0)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newResolveCommand(container))
	root.AddCommand(newListenCommand(container))
	root.AddCommand(newRegistryCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
