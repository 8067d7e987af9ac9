package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HarshaNaik703/Shibu-Robo/internal/app"
	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment Shibu needs to run",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			out := cmd.OutOrStdout()

			for _, check := range report.Checks {
				label := "PASS"
				switch check.Status {
				case domain.HealthWarn:
					label = "WARN"
				case domain.HealthError:
					label = "FAIL"
				}
				fmt.Fprintf(out, "[%s] %-18s %s\n", label, check.Name, check.Details)
			}
			if err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}
