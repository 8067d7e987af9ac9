package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HarshaNaik703/Shibu-Robo/internal/app"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past resolution runs",
	}

	var (
		limit  int
		search string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent resolution runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return errors.New("history is disabled in config")
			}
			records, err := container.HistoryStore.Records(limit, search)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No resolution runs recorded.")
				return nil
			}
			for _, rec := range records {
				entry := rec.Entry
				if entry == "" {
					entry = "-"
				}
				fmt.Fprintf(out, "%s  %-20s  %-22q -> %s (%s)\n",
					rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Outcome, rec.Utterance, entry, rec.Tier)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "maximum records to show")
	listCmd.Flags().StringVar(&search, "search", "", "filter by utterance or entry substring")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return errors.New("history is disabled in config")
			}
			if err := container.HistoryStore.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export history as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return errors.New("history is disabled in config")
			}
			if err := container.HistoryStore.ExportJSON(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported history to %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, clearCmd, exportCmd)
	return cmd
}
