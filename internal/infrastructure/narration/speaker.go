package narration

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

// Speaker renders one narration line.
type Speaker interface {
	Say(text string, emotion domain.Emotion)
}

// NewSpeaker picks the best available speaker: the configured speech program
// when it is on PATH, the console otherwise.
func NewSpeaker(program string) Speaker {
	if program == "" {
		program = "espeak"
	}
	if path, err := exec.LookPath(program); err == nil {
		return &CommandSpeaker{program: path}
	}
	return &ConsoleSpeaker{out: os.Stdout}
}

// CommandSpeaker shells out to a TTS program such as espeak. Each line is a
// separate short-lived process; a failed invocation is silently dropped,
// matching the fire-and-forget contract.
type CommandSpeaker struct {
	program string
}

// Say implements Speaker.
func (s *CommandSpeaker) Say(text string, _ domain.Emotion) {
	fmt.Printf("Shibu says: %s\n", text)
	_ = exec.Command(s.program, text).Run()
}

// ConsoleSpeaker prints narration lines to a writer. Used when no TTS
// program is installed and in tests.
type ConsoleSpeaker struct {
	out io.Writer
}

// NewConsoleSpeaker builds a console speaker over the given writer.
func NewConsoleSpeaker(out io.Writer) *ConsoleSpeaker {
	return &ConsoleSpeaker{out: out}
}

// Say implements Speaker.
func (s *ConsoleSpeaker) Say(text string, emotion domain.Emotion) {
	fmt.Fprintf(s.out, "Shibu says: %s [%s]\n", text, emotion)
}
