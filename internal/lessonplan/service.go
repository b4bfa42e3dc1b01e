package lessonplan

import (
	"context"
	"errors"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/content"
)

// Service ties plan creation and session generation together for callers
// such as the CLI and the practice screen. Calls for one plan must be
// serialized by the caller.
type Service struct {
	plans    *Generator
	sessions *SessionGenerator
}

// NewService creates a lesson service on top of provider.
func NewService(provider content.Provider, cfg Config, sink EventSink) *Service {
	return &Service{
		plans:    NewGenerator(provider, cfg, sink),
		sessions: NewSessionGenerator(provider, sink),
	}
}

// Start creates a new plan for tmpl.
func (s *Service) Start(ctx context.Context, tmpl catalog.Template, learnerAge int, interests []string) (*Plan, error) {
	return s.plans.CreatePlan(ctx, tmpl, learnerAge, interests)
}

// Next generates the following session and returns the advanced plan along
// with the new session. On error the returned plan is nil and the input
// plan is still valid.
func (s *Service) Next(ctx context.Context, plan *Plan) (*Plan, Session, error) {
	if plan == nil {
		return nil, Session{}, errors.New("nil lesson plan")
	}
	sess, err := s.sessions.GenerateNextSession(ctx, plan, plan.Transcript())
	if err != nil {
		return nil, Session{}, err
	}
	next, err := Advance(plan, sess)
	if err != nil {
		return nil, Session{}, err
	}
	return next, sess, nil
}
