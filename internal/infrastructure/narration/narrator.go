// Package narration implements the spoken status side channel. The pipeline
// emits events onto a buffered channel; a detached worker consumes and
// speaks them, so narration timing never couples to tier transitions.
package narration

import (
	"sync"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

const defaultQueueSize = 8

// Worker is the consuming side of the narration channel.
type Worker struct {
	events  chan domain.NarrationEvent
	speaker Speaker
	logger  ports.Logger
	done    chan struct{}
	closed  sync.Once
}

// NewWorker builds a narration worker and starts its consumer goroutine.
func NewWorker(speaker Speaker, queueSize int, logger ports.Logger) *Worker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	w := &Worker{
		events:  make(chan domain.NarrationEvent, queueSize),
		speaker: speaker,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.done)
	for event := range w.events {
		w.speaker.Say(event.Text, event.Emotion)
	}
}

// Announce implements ports.Narrator. A full queue drops the event instead
// of blocking the caller.
func (w *Worker) Announce(event domain.NarrationEvent) {
	select {
	case w.events <- event:
	default:
		if w.logger != nil {
			w.logger.Debug("narration queue full, dropping event", map[string]interface{}{
				"stage": string(event.Stage),
			})
		}
	}
}

// Close drains remaining events and stops the worker. Safe to call more
// than once.
func (w *Worker) Close() {
	w.closed.Do(func() {
		close(w.events)
		<-w.done
	})
}

// Nop discards all narration events. Used when narration is disabled.
type Nop struct{}

// Announce implements ports.Narrator.
func (Nop) Announce(domain.NarrationEvent) {}

var (
	_ ports.Narrator = (*Worker)(nil)
	_ ports.Narrator = Nop{}
)
