package lessonplan

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/content"
)

// Generator creates new lesson plans from catalog templates.
type Generator struct {
	provider content.Provider
	cfg      Config
	sink     EventSink
	now      func() time.Time
	newID    func() string
}

// NewGenerator creates a plan generator. provider is only used for the
// optional outline and may be nil when outlines are disabled.
func NewGenerator(provider content.Provider, cfg Config, sink EventSink) *Generator {
	if sink == nil {
		sink = NopSink{}
	}
	return &Generator{
		provider: provider,
		cfg:      cfg,
		sink:     sink,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// CreatePlan starts an empty plan for tmpl. learnerAge may be 0 when
// unknown. A failed outline request is reported to the sink and leaves
// Outline empty; it never fails plan creation.
func (g *Generator) CreatePlan(ctx context.Context, tmpl catalog.Template, learnerAge int, interests []string) (*Plan, error) {
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	now := g.now()
	plan := &Plan{
		ID:             g.newID(),
		Title:          tmpl.Title,
		Category:       tmpl.Category,
		TotalSessions:  tmpl.SuggestedSessions,
		CurrentSession: 0,
		Sessions:       []Session{},
		LearnerAge:     max(0, learnerAge),
		Interests:      cleanInterests(interests),
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	if g.cfg.OutlineEnabled && g.provider != nil {
		g.requestOutline(ctx, plan, tmpl)
	}

	g.sink.Emit(ctx, Event{
		Kind:          EventPlanCreated,
		PlanID:        plan.ID,
		Title:         plan.Title,
		Category:      plan.Category,
		TotalSessions: plan.TotalSessions,
	})
	return plan, nil
}

func (g *Generator) requestOutline(ctx context.Context, plan *Plan, tmpl catalog.Template) {
	start := g.now()
	res, err := g.provider.Generate(ctx, content.Request{
		Kind:        content.KindScene,
		Topic:       tmpl.Title,
		Instruction: fmt.Sprintf("%s\nThe lesson has %d sessions.", tmpl.Description, tmpl.SuggestedSessions),
		LearnerAge:  plan.LearnerAge,
	})
	if err == nil && (res == nil || strings.TrimSpace(res.Text) == "") {
		err = &content.Error{Kind: content.MalformedResponse, Err: fmt.Errorf("empty outline")}
	}
	if err != nil {
		g.sink.Emit(ctx, Event{
			Kind:          EventOutlineFailed,
			PlanID:        plan.ID,
			Title:         plan.Title,
			Category:      plan.Category,
			TotalSessions: plan.TotalSessions,
			Latency:       g.now().Sub(start),
			Err:           err,
		})
		return
	}
	plan.Outline = strings.TrimSpace(res.Text)
}

func cleanInterests(interests []string) []string {
	var out []string
	for _, in := range interests {
		in = strings.TrimSpace(in)
		if in != "" && !slices.Contains(out, in) {
			out = append(out, in)
		}
	}
	return out
}

// NewCustomTemplate builds a template for a free-form title. The category
// is derived from the title once, here, and stored on the template.
func NewCustomTemplate(title string, sessions int, ages catalog.AgeRange) (catalog.Template, error) {
	title = strings.TrimSpace(title)
	t := catalog.Template{
		ID:                "custom-" + slug(title),
		Title:             title,
		Category:          catalog.ClassifyTitle(title),
		Description:       title,
		SuggestedSessions: sessions,
		Ages:              ages,
	}
	if err := t.Validate(); err != nil {
		return catalog.Template{}, err
	}
	return t, nil
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
