package lessonplan

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/content"
	"github.com/abhisek/keypals/internal/llm"
	"github.com/abhisek/keypals/internal/logger"
	"github.com/abhisek/keypals/internal/store"
)

func openTestRepo(t *testing.T) store.EventRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(context.Background(), fmt.Sprintf("file:lessonplan_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestService_RunsWholePlan(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockText("The sun is a star.\nIt is very hot."),
		llm.MockText("mercury is close to the sun."),
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
		llm.MockText("   "),
		llm.MockText("we learned a lot about space."),
	)
	repo := openTestRepo(t)
	core, logs := observer.New(zap.DebugLevel)
	sink := MultiSink{
		StoreSink{Repo: repo},
		LogSink{Log: logger.FromZap(zap.New(core))},
	}

	svc := NewService(content.NewLLMProvider(mock, DefaultConfig().ContentConfig()), DefaultConfig(), sink)
	tmpl, err := catalog.Get("space")
	require.NoError(t, err)

	ctx := context.Background()
	plan, err := svc.Start(ctx, tmpl, 9, []string{"rockets"})
	require.NoError(t, err)

	var fallbacks []int
	for !plan.Complete() {
		next, s, err := svc.Next(ctx, plan)
		require.NoError(t, err)
		require.Equal(t, plan.CurrentSession+1, s.Number)
		if s.Fallback {
			fallbacks = append(fallbacks, s.Number)
		}
		plan = next
	}

	assert.Equal(t, []int{3, 4}, fallbacks)
	require.Len(t, plan.Sessions, 5)
	for i, s := range plan.Sessions {
		assert.Equal(t, i+1, s.Number)
	}
	assert.Equal(t, "the sun is a star.\nit is very hot.", plan.Sessions[0].Content)
	assert.Equal(t, StageConclusion, plan.Sessions[4].Stage)
	assert.Equal(t, FallbackPassages(catalog.CategorySpace)[3%3], plan.Sessions[2].Content)

	// One provider call per session; the second prompt carries the first session.
	require.Equal(t, 5, mock.CallCount())
	assert.Contains(t, mock.Calls[1].Messages[0].Content, "part 1:\nthe sun is a star.")
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Learner interests: rockets")

	_, _, err = svc.Next(ctx, plan)
	require.ErrorIs(t, err, ErrPlanComplete)
	assert.Equal(t, 5, mock.CallCount())

	events, err := repo.QueryLessonEvents(ctx, plan.ID, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 6)
	kinds := make([]string, len(events))
	for i, e := range events {
		kinds[len(events)-1-i] = e.Kind
	}
	assert.Equal(t, []string{
		store.LessonEventPlanCreated,
		store.LessonEventSessionGenerated,
		store.LessonEventSessionGenerated,
		store.LessonEventSessionFallback,
		store.LessonEventSessionFallback,
		store.LessonEventSessionGenerated,
	}, kinds)
	assert.Contains(t, events[2].ErrorMessage, "transport")
	assert.Contains(t, events[1].ErrorMessage, "malformed-response")

	assert.Equal(t, 2, logs.FilterMessage(string(EventSessionFallback)).Len())
	assert.Equal(t, 3, logs.FilterMessage(string(EventSessionGenerated)).Len())
}

func TestService_NextNilPlan(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	_, _, err := svc.Next(context.Background(), nil)
	require.Error(t, err)
}
