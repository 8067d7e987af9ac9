package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HarshaNaik703/Shibu-Robo/internal/app"
	appconfig "github.com/HarshaNaik703/Shibu-Robo/internal/application/config"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the active configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := container.ConfigLoader.Path()
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := appconfig.Validate(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid.")
			return nil
		},
	}

	cmd.AddCommand(showCmd, pathCmd, validateCmd)
	return cmd
}
