package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HarshaNaik703/Shibu-Robo/internal/app"
	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/executor"
)

func newRegistryCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "List the action artifacts Shibu can resolve",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			entries, err := container.Registry.Snapshot(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrRegistryUnavailable) {
					fmt.Fprintf(out, "Registry directory %s does not exist.\n", container.Registry.Dir())
					fmt.Fprintln(out, "Create it and drop executable scripts inside to teach Shibu actions.")
					return nil
				}
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintf(out, "No artifacts in %s.\n", container.Registry.Dir())
				return nil
			}
			fmt.Fprintf(out, "%d artifacts in %s:\n", len(entries), container.Registry.Dir())
			for _, entry := range entries {
				marker := " "
				if entry.IsExecutable {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %-30s %s\n", marker, entry.Name, executor.KindFor(entry))
			}
			return nil
		},
	}
}
