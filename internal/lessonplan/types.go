// Package lessonplan turns a catalog template into a multi-session typing
// lesson. Plans are values: sessions are produced one at a time by a
// SessionGenerator and applied with Advance, which returns a new Plan.
package lessonplan

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/keypals/internal/catalog"
)

var (
	// ErrPlanComplete is returned when a session is requested or applied
	// after every session of the plan exists.
	ErrPlanComplete = errors.New("lesson plan is complete")

	// ErrOutOfOrder is returned by Advance when the session number does not
	// follow the plan's cursor.
	ErrOutOfOrder = errors.New("session out of order")
)

// Difficulty is the three-level difficulty of a session's text.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Session is one generated unit of typing content. Sessions are never
// modified once created.
type Session struct {
	Number           int
	Content          string
	Objective        string
	Stage            Stage
	Difficulty       Difficulty
	EstimatedMinutes int

	// Fallback is set when Content came from the built-in passages instead
	// of the provider.
	Fallback  bool
	CreatedAt time.Time
}

// Lines returns the session's sentences, one per element.
func (s Session) Lines() []string {
	if s.Content == "" {
		return nil
	}
	return strings.Split(s.Content, "\n")
}

// Plan is the state of one lesson in progress. CurrentSession always equals
// len(Sessions), and Sessions[i].Number == i+1.
type Plan struct {
	ID             string
	Title          string
	Category       catalog.Category
	TotalSessions  int
	CurrentSession int
	Sessions       []Session

	// LearnerAge is 0 when unknown.
	LearnerAge int
	Interests  []string

	// Outline is advisory text from the provider; nothing parses it.
	Outline string

	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// Complete reports whether every session has been generated.
func (p *Plan) Complete() bool {
	return p.CurrentSession >= p.TotalSessions
}

// Remaining returns how many sessions are still to be generated.
func (p *Plan) Remaining() int {
	return max(0, p.TotalSessions-p.CurrentSession)
}

// Progress returns the fraction of sessions generated, in [0, 1].
func (p *Plan) Progress() float64 {
	if p.TotalSessions <= 0 {
		return 0
	}
	return min(1, float64(p.CurrentSession)/float64(p.TotalSessions))
}

// Transcript joins the content of every session so far, each labelled
// with its part number. It is what the next session continues from.
func (p *Plan) Transcript() string {
	parts := make([]string, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		parts = append(parts, "part "+strconv.Itoa(s.Number)+":\n"+s.Content)
	}
	return strings.Join(parts, "\n\n")
}

// clone returns a copy that shares no slices with p.
func (p *Plan) clone() *Plan {
	c := *p
	c.Sessions = slices.Clone(p.Sessions)
	c.Interests = slices.Clone(p.Interests)
	return &c
}
