package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HarshaNaik703/Shibu-Robo/internal/app"
	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

// newListenCommand runs the interactive loop: one line in, one resolution
// out, strictly sequential. It stands in for the microphone collaborator.
func newListenCommand(container *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Read utterances from stdin and resolve them one at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Shibu is online and ready! (type 'exit' to stop)")
			container.ResolverService.Narrator.Announce(domain.NarrationEvent{
				Stage:   domain.StageListening,
				Text:    "I'm listening.",
				Emotion: domain.EmotionListening,
			})

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "you> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "exit" || line == "quit" {
					break
				}

				outcome, err := container.ResolverService.Resolve(domain.ResolveRequest{
					Context:   cmd.Context(),
					Utterance: line,
					DryRun:    dryRun,
				})
				if err != nil {
					container.Logger.Error("resolution failed", err, nil)
					continue
				}
				RenderOutcome(out, outcome)
			}

			fmt.Fprintln(out, "Goodbye.")
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "resolve without executing matched artifacts")
	return cmd
}
