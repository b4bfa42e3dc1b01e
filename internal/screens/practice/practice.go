// Package practice is the typing screen for one lesson plan.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/lessonplan"
	"github.com/abhisek/keypals/internal/router"
	"github.com/abhisek/keypals/internal/screen"
	"github.com/abhisek/keypals/internal/screens/summary"
	"github.com/abhisek/keypals/internal/ui/components"
	"github.com/abhisek/keypals/internal/ui/layout"
)

// Lessons is the part of the lesson engine the screen drives.
type Lessons interface {
	Start(ctx context.Context, tmpl catalog.Template, learnerAge int, interests []string) (*lessonplan.Plan, error)
	Next(ctx context.Context, plan *lessonplan.Plan) (*lessonplan.Plan, lessonplan.Session, error)
}

// Learner describes who the lesson is for.
type Learner struct {
	Age       int
	Interests []string
}

// PracticeScreen walks a learner through a plan one session at a time.
// At most one Start or Next call is in flight; while it runs the input
// and the next button are disabled.
type PracticeScreen struct {
	ctx     context.Context
	lessons Lessons
	tmpl    catalog.Template
	learner Learner
	now     func() time.Time

	plan    *lessonplan.Plan
	session lessonplan.Session
	lines   []string
	line    int
	pending bool

	input   components.TextInput
	next    components.Button
	stats   Stats
	results []summary.Result
	hint    string
	errMsg  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a practice screen for tmpl. ctx bounds every engine call.
func New(ctx context.Context, lessons Lessons, tmpl catalog.Template, learner Learner) *PracticeScreen {
	s := &PracticeScreen{
		ctx:     ctx,
		lessons: lessons,
		tmpl:    tmpl,
		learner: learner,
		now:     time.Now,
		input:   components.NewTextInput("type the line above, then press enter", 0),
	}
	s.next = components.Button{
		Label:     "Next part",
		WaitLabel: "writing the next part...",
		OnPress:   s.requestNext,
	}
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	s.setPending(true)
	lessons, ctx, tmpl, learner := s.lessons, s.ctx, s.tmpl, s.learner
	return func() tea.Msg {
		plan, err := lessons.Start(ctx, tmpl, learner.Age, learner.Interests)
		return planReadyMsg{Plan: plan, Err: err}
	}
}

func (s *PracticeScreen) Title() string {
	if s.plan != nil {
		return s.plan.Title
	}
	return s.tmpl.Title
}

// Status shows which part is on screen.
func (s *PracticeScreen) Status() string {
	if s.plan == nil || s.session.Number == 0 {
		return ""
	}
	return fmt.Sprintf("part %d of %d", s.session.Number, s.plan.TotalSessions)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "" && s.plan == nil:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.pending:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.sessionDone():
		label := "Next part"
		if s.plan.Complete() {
			label = "See how it went"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: label},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check line"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		return s.handlePlanReady(msg)

	case sessionReadyMsg:
		return s.handleSessionReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handlePlanReady(msg planReadyMsg) (screen.Screen, tea.Cmd) {
	s.setPending(false)
	if msg.Err != nil {
		s.errMsg = "This lesson could not start: " + msg.Err.Error()
		return s, nil
	}
	s.plan = msg.Plan
	return s, s.requestNext()
}

func (s *PracticeScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	s.setPending(false)
	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return s, nil
		}
		// Every provider failure already became built-in content, so this
		// is a plan state problem. Leave the button on for another try.
		s.errMsg = msg.Err.Error()
		s.next.Active = !s.plan.Complete()
		return s, nil
	}

	s.errMsg = ""
	s.plan = msg.Plan
	s.session = msg.Session
	s.lines = msg.Session.Lines()
	s.line = 0
	s.stats = Stats{}
	s.hint = ""
	s.input.Reset()

	if s.sessionDone() {
		s.finishSession()
		return s, nil
	}
	s.input.SetDisabled(false)
	return s, s.input.Init()
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" && s.plan == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.pending || s.plan == nil {
		return s, nil
	}

	// Nothing to type: a finished session, or a first session that failed.
	if s.session.Number == 0 || s.sessionDone() {
		if msg.String() != "enter" {
			return s, nil
		}
		if s.sessionDone() && s.plan.Complete() {
			sum := summary.New(s.plan, s.results)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
		}
		// Pressing turns the button off; requestNext keeps it off until
		// the new session is typed.
		var cmd tea.Cmd
		s.next, cmd = s.next.Update(msg)
		return s, cmd
	}

	if msg.String() == "enter" {
		s.submitLine()
		return s, nil
	}

	if s.stats.StartedAt.IsZero() {
		s.stats.StartedAt = s.now()
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitLine checks the input against the current line. A match moves to
// the next line; a miss keeps the text so it can be fixed.
func (s *PracticeScreen) submitLine() {
	typed := strings.TrimRight(s.input.Value(), " ")
	if typed == "" {
		return
	}
	if s.stats.StartedAt.IsZero() {
		s.stats.StartedAt = s.now()
	}

	if !s.stats.Record(s.lines[s.line], typed) {
		s.hint = "Nearly. The coloured letter shows where to look."
		return
	}

	s.hint = ""
	s.line++
	s.input.Reset()
	if s.sessionDone() {
		s.finishSession()
	}
}

func (s *PracticeScreen) finishSession() {
	s.stats.EndedAt = s.now()
	s.results = append(s.results, summary.Result{
		Number:    s.session.Number,
		Stage:     string(s.session.Stage),
		Fallback:  s.session.Fallback,
		Lines:     s.stats.Lines,
		Attempts:  s.stats.Attempts,
		Accuracy:  s.stats.Accuracy(),
		WPM:       s.stats.WPM(),
		Duration:  s.stats.Duration(),
		Objective: s.session.Objective,
	})
	s.input.SetDisabled(true)
	s.next.Active = !s.plan.Complete()
}

// requestNext starts generating the next session. It is a no-op while a
// call is in flight or once the plan is complete.
func (s *PracticeScreen) requestNext() tea.Cmd {
	if s.pending || s.plan == nil || s.plan.Complete() {
		return nil
	}
	s.setPending(true)
	lessons, ctx, plan := s.lessons, s.ctx, s.plan
	return func() tea.Msg {
		next, sess, err := lessons.Next(ctx, plan)
		return sessionReadyMsg{Plan: next, Session: sess, Err: err}
	}
}

func (s *PracticeScreen) setPending(p bool) {
	s.pending = p
	if p {
		s.next.Active = false
		s.input.SetDisabled(true)
	}
}

func (s *PracticeScreen) sessionDone() bool {
	return s.session.Number > 0 && s.line >= len(s.lines)
}
