package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// Prompter asks the operator before an artifact runs.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter builds a prompter; nil readers/writers default to stdin and
// stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: in, out: out}
}

// Enabled implements ports.ConfirmationPrompter.
func (p *Prompter) Enabled() bool {
	return true
}

// Confirm implements ports.ConfirmationPrompter.
func (p *Prompter) Confirm(entry domain.RegistryEntry) (bool, error) {
	fmt.Fprintf(p.out, "Run %s? [y/N] ", entry.Name)
	reader := bufio.NewReader(p.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
