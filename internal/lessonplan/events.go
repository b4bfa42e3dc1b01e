package lessonplan

import (
	"context"
	"time"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/logger"
	"github.com/abhisek/keypals/internal/store"
)

// EventKind names a lesson engine event.
type EventKind string

const (
	EventPlanCreated      EventKind = store.LessonEventPlanCreated
	EventOutlineFailed    EventKind = store.LessonEventOutlineFailed
	EventSessionGenerated EventKind = store.LessonEventSessionGenerated
	EventSessionFallback  EventKind = store.LessonEventSessionFallback
)

// Event is emitted by the generators. Err is set for failures the engine
// recovered from.
type Event struct {
	Kind          EventKind
	PlanID        string
	Title         string
	Category      catalog.Category
	SessionNumber int
	TotalSessions int
	Stage         Stage
	Difficulty    Difficulty
	Fallback      bool
	Latency       time.Duration
	Err           error
}

// EventSink receives engine events. Emit must not block for long and has
// no way to fail the operation that produced the event.
type EventSink interface {
	Emit(ctx context.Context, e Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(ctx context.Context, e Event)

func (f SinkFunc) Emit(ctx context.Context, e Event) { f(ctx, e) }

// NopSink discards events.
type NopSink struct{}

func (NopSink) Emit(context.Context, Event) {}

// MultiSink fans each event out to every sink in order.
type MultiSink []EventSink

func (m MultiSink) Emit(ctx context.Context, e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(ctx, e)
		}
	}
}

// LogSink writes events to a logger. Recovered failures log at warn.
type LogSink struct {
	Log *logger.Logger
}

func (s LogSink) Emit(_ context.Context, e Event) {
	if s.Log == nil {
		return
	}
	kv := []any{
		"plan_id", e.PlanID,
		"category", string(e.Category),
	}
	if e.SessionNumber > 0 {
		kv = append(kv,
			"session", e.SessionNumber,
			"total", e.TotalSessions,
			"stage", string(e.Stage),
			"difficulty", e.Difficulty.String(),
			"latency_ms", e.Latency.Milliseconds(),
		)
	}

	switch e.Kind {
	case EventSessionFallback, EventOutlineFailed:
		if e.Err != nil {
			kv = append(kv, "error", e.Err)
		}
		s.Log.Warn(string(e.Kind), kv...)
	default:
		s.Log.Info(string(e.Kind), kv...)
	}
}

// StoreSink appends events to the lesson event log.
type StoreSink struct {
	Repo store.EventRepo
	Log  *logger.Logger
}

func (s StoreSink) Emit(ctx context.Context, e Event) {
	if s.Repo == nil {
		return
	}
	data := store.LessonEventData{
		Kind:          string(e.Kind),
		PlanID:        e.PlanID,
		Title:         e.Title,
		Category:      string(e.Category),
		SessionNumber: e.SessionNumber,
		TotalSessions: e.TotalSessions,
		Stage:         string(e.Stage),
		Fallback:      e.Fallback,
		LatencyMs:     e.Latency.Milliseconds(),
	}
	if e.SessionNumber > 0 {
		data.Difficulty = e.Difficulty.String()
	}
	if e.Err != nil {
		data.ErrorMessage = e.Err.Error()
	}

	// The event log is best effort; a cancelled request still gets recorded.
	if err := s.Repo.AppendLessonEvent(context.WithoutCancel(ctx), data); err != nil && s.Log != nil {
		s.Log.Warn("failed to record lesson event", "kind", string(e.Kind), "error", err)
	}
}
