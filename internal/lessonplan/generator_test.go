package lessonplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/content"
)

func newTestGenerator(p content.Provider, cfg Config, sink EventSink) *Generator {
	g := NewGenerator(p, cfg, sink)
	g.now = func() time.Time { return fixedNow }
	g.newID = func() string { return "plan-1" }
	return g
}

func TestCreatePlan_Empty(t *testing.T) {
	tmpl, err := catalog.Get("animals")
	require.NoError(t, err)
	sink := &recordingSink{}

	plan, err := newTestGenerator(nil, DefaultConfig(), sink).CreatePlan(context.Background(), tmpl, 8, nil)
	require.NoError(t, err)

	assert.Equal(t, "plan-1", plan.ID)
	assert.Equal(t, "Animal Adventures", plan.Title)
	assert.Equal(t, catalog.CategoryAnimals, plan.Category)
	assert.Equal(t, 5, plan.TotalSessions)
	assert.Equal(t, 0, plan.CurrentSession)
	assert.NotNil(t, plan.Sessions)
	assert.Empty(t, plan.Sessions)
	assert.Equal(t, 8, plan.LearnerAge)
	assert.Empty(t, plan.Outline)
	assert.Equal(t, fixedNow, plan.CreatedAt)
	assert.Equal(t, fixedNow, plan.LastAccessedAt)
	assert.False(t, plan.Complete())
	assert.Equal(t, 5, plan.Remaining())
	assert.Zero(t, plan.Progress())
	assert.Empty(t, plan.Transcript())

	assert.Equal(t, []EventKind{EventPlanCreated}, sink.kinds())
}

func TestCreatePlan_RealIDs(t *testing.T) {
	tmpl, _ := catalog.Get("space")
	g := NewGenerator(nil, DefaultConfig(), nil)

	a, err := g.CreatePlan(context.Background(), tmpl, 0, nil)
	require.NoError(t, err)
	b, err := g.CreatePlan(context.Background(), tmpl, 0, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
}

func TestCreatePlan_Interests(t *testing.T) {
	tmpl, _ := catalog.Get("ocean")
	plan, err := newTestGenerator(nil, DefaultConfig(), nil).
		CreatePlan(context.Background(), tmpl, -2, []string{" sharks ", "", "whales", "sharks"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sharks", "whales"}, plan.Interests)
	assert.Equal(t, 0, plan.LearnerAge)
}

func TestCreatePlan_InvalidTemplate(t *testing.T) {
	_, err := newTestGenerator(nil, DefaultConfig(), nil).
		CreatePlan(context.Background(), catalog.Template{Title: "x", Category: catalog.CategoryStory}, 8, nil)
	require.ErrorIs(t, err, catalog.ErrInvalidTemplate)
}

func TestCreatePlan_Outline(t *testing.T) {
	tmpl, _ := catalog.Get("dinosaurs")
	provider := &scriptedProvider{replies: []scriptedReply{{text: "Dino Days\n1. meet the dinosaurs\n"}}}
	cfg := DefaultConfig()
	cfg.OutlineEnabled = true

	plan, err := newTestGenerator(provider, cfg, nil).CreatePlan(context.Background(), tmpl, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dino Days\n1. meet the dinosaurs", plan.Outline)
	assert.Empty(t, plan.Sessions)

	require.Len(t, provider.reqs, 1)
	assert.Equal(t, content.KindScene, provider.reqs[0].Kind)
	assert.Equal(t, 7, provider.reqs[0].LearnerAge)
	assert.Contains(t, provider.reqs[0].Instruction, "4 sessions")
}

func TestCreatePlan_OutlineFailureIsNotFatal(t *testing.T) {
	tmpl, _ := catalog.Get("story")
	provider := &scriptedProvider{replies: []scriptedReply{{err: &content.Error{Kind: content.Transport, Err: errors.New("timeout")}}}}
	sink := &recordingSink{}
	cfg := DefaultConfig()
	cfg.OutlineEnabled = true

	plan, err := newTestGenerator(provider, cfg, sink).CreatePlan(context.Background(), tmpl, 9, nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Outline)
	assert.Equal(t, 0, plan.CurrentSession)
	assert.Empty(t, plan.Sessions)

	assert.Equal(t, []EventKind{EventOutlineFailed, EventPlanCreated}, sink.kinds())
	assert.True(t, content.IsTransport(sink.events[0].Err))
}

func TestCreatePlan_OutlineDisabledSkipsProvider(t *testing.T) {
	tmpl, _ := catalog.Get("story")
	provider := &scriptedProvider{}
	_, err := newTestGenerator(provider, DefaultConfig(), nil).CreatePlan(context.Background(), tmpl, 9, nil)
	require.NoError(t, err)
	assert.Empty(t, provider.reqs)
}

func TestNewCustomTemplate(t *testing.T) {
	tests := []struct {
		title  string
		wantID string
		want   catalog.Category
	}{
		{"My Ocean Trip", "custom-my-ocean-trip", catalog.CategoryOcean},
		{"Under the Sea: A Story", "custom-under-the-sea-a-story", catalog.CategoryStory},
		{"Under the Sea Stories", "custom-under-the-sea-stories", catalog.CategoryOcean},
		{"  Invent a Planet!  ", "custom-invent-a-planet", catalog.CategoryCreative},
		{"Trains", "custom-trains", catalog.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			tmpl, err := NewCustomTemplate(tt.title, 4, catalog.AgeRange{Min: 5, Max: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, tmpl.ID)
			assert.Equal(t, tt.want, tmpl.Category)
			assert.Equal(t, 4, tmpl.SuggestedSessions)
		})
	}

	_, err := NewCustomTemplate("Space", 0, catalog.AgeRange{Min: 5, Max: 10})
	require.ErrorIs(t, err, catalog.ErrInvalidTemplate)
	_, err = NewCustomTemplate("   ", 3, catalog.AgeRange{Min: 5, Max: 10})
	require.ErrorIs(t, err, catalog.ErrInvalidTemplate)
}

// A custom title is classified once. The same category then drives both
// the session actions and the built-in passages, so "Space Story" gets
// story passages even though it names space.
func TestNewCustomTemplate_OneCategoryForActionsAndPassages(t *testing.T) {
	tmpl, err := NewCustomTemplate("Space Story", 3, catalog.AgeRange{Min: 5, Max: 10})
	require.NoError(t, err)
	require.Equal(t, catalog.CategoryStory, tmpl.Category)

	assert.Equal(t, FallbackPassages(catalog.CategoryStory), FallbackPassages(tmpl.Category))
	assert.NotEqual(t, FallbackPassages(catalog.CategorySpace), FallbackPassages(tmpl.Category))
	assert.Equal(t, Fallback(catalog.CategoryStory, 1).Content, Fallback(tmpl.Category, 1).Content)
}
