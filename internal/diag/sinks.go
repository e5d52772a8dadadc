package diag

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MemorySink collects events for inspection (tests, the failure summary).
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Emit(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

// Events returns a copy of everything emitted so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// CountKind returns how many events of the given kind were emitted.
func (s *MemorySink) CountKind(k Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// LoggerSink forwards events to a zerolog logger.
type LoggerSink struct {
	Log zerolog.Logger
}

func (s LoggerSink) Emit(e Event) {
	var ev *zerolog.Event
	switch e.Severity {
	case SeverityError:
		ev = s.Log.Error()
	case SeverityWarning:
		ev = s.Log.Warn()
	default:
		ev = s.Log.Info()
	}
	ev.Str("kind", string(e.Kind)).
		Str("file", e.Filename).
		Msg(e.Message)
}

// Tee fans one event out to several sinks.
func Tee(sinks ...Sink) Sink { return tee(sinks) }

type tee []Sink

func (t tee) Emit(e Event) {
	for _, s := range t {
		s.Emit(e)
	}
}
