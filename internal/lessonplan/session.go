package lessonplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/keypals/internal/content"
)

// SessionGenerator produces the next session of a plan. It makes exactly
// one provider call per session and substitutes built-in content when the
// call fails or returns nothing usable.
type SessionGenerator struct {
	provider content.Provider
	sink     EventSink
	now      func() time.Time
}

// NewSessionGenerator creates a session generator. A nil sink discards events.
func NewSessionGenerator(provider content.Provider, sink EventSink) *SessionGenerator {
	if sink == nil {
		sink = NopSink{}
	}
	return &SessionGenerator{provider: provider, sink: sink, now: time.Now}
}

// GenerateNextSession builds session CurrentSession+1 of plan. previous is
// the text the session continues from, normally plan.Transcript().
//
// The plan is not modified; apply the result with Advance. Provider
// failures never surface as errors. The only errors are ErrPlanComplete
// and the context's error when ctx ends during the call.
func (g *SessionGenerator) GenerateNextSession(ctx context.Context, plan *Plan, previous string) (Session, error) {
	if plan == nil {
		return Session{}, errors.New("nil lesson plan")
	}
	n := plan.CurrentSession + 1
	if n > plan.TotalSessions {
		return Session{}, fmt.Errorf("session %d of %d: %w", n, plan.TotalSessions, ErrPlanComplete)
	}

	stage := PlanStage(n, plan.TotalSessions, plan.Category)
	action := SessionAction(n, plan.TotalSessions, plan.Category)

	start := g.now()
	lines, err := g.request(ctx, plan, n, previous, stage, action)
	latency := g.now().Sub(start)

	ev := Event{
		PlanID:        plan.ID,
		Title:         plan.Title,
		Category:      plan.Category,
		SessionNumber: n,
		TotalSessions: plan.TotalSessions,
		Stage:         stage.Stage,
		Latency:       latency,
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Session{}, ctxErr
		}

		s := Fallback(plan.Category, n)
		s.Stage = stage.Stage
		s.CreatedAt = g.now()

		ev.Kind = EventSessionFallback
		ev.Difficulty = s.Difficulty
		ev.Fallback = true
		ev.Err = err
		g.sink.Emit(ctx, ev)
		return s, nil
	}

	text := strings.Join(lines, "\n")
	s := Session{
		Number:           n,
		Content:          text,
		Objective:        stage.Objective,
		Stage:            stage.Stage,
		Difficulty:       Classify(text),
		EstimatedMinutes: estimateMinutes(text),
		CreatedAt:        g.now(),
	}

	ev.Kind = EventSessionGenerated
	ev.Difficulty = s.Difficulty
	g.sink.Emit(ctx, ev)
	return s, nil
}

func (g *SessionGenerator) request(ctx context.Context, plan *Plan, n int, previous string, stage StageInstruction, action string) ([]string, error) {
	if g.provider == nil {
		return nil, &content.Error{Kind: content.Transport, Err: errors.New("no content provider")}
	}

	res, err := g.provider.Generate(ctx, content.Request{
		Kind:        content.KindSentence,
		Topic:       plan.Title,
		Instruction: buildSessionInstruction(plan, n, previous, stage, action),
		LearnerAge:  plan.LearnerAge,
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, &content.Error{Kind: content.MalformedResponse, Err: errors.New("nil result")}
	}

	lines := sanitizeLines(res.Text)
	if len(lines) == 0 {
		return nil, &content.Error{Kind: content.MalformedResponse, Err: errors.New("no usable lines")}
	}
	return lines, nil
}
