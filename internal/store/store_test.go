package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.db == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by TestOpenFileDatabase.
		{"busy_timeout", "5000"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keypals.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"llm_request_events", "lesson_events", "global_sequence"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson-session", InputTokens: 120, OutputTokens: 60, LatencyMs: 300, Success: true, RequestBody: "[user]\nwrite", ResponseBody: "the cat naps."},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson-session", LatencyMs: 100, Success: false, ErrorMessage: "LLM provider unavailable"},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson-outline", InputTokens: 80, OutputTokens: 40, LatencyMs: 200, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, "", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Purpose != "lesson-outline" {
		t.Errorf("newest purpose = %q, want lesson-outline", got[0].Purpose)
	}
	if got[1].Success || got[1].ErrorMessage == "" {
		t.Errorf("expected failed event with message, got %+v", got[1])
	}

	sessions, err := repo.QueryLLMEvents(ctx, "lesson-session", QueryOpts{})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("lesson-session events = %d, want 2", len(sessions))
	}
	for _, e := range sessions {
		if e.Purpose != "lesson-session" {
			t.Errorf("purpose filter let through %q", e.Purpose)
		}
	}

	first, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first == nil || first.ResponseBody != "the cat naps." {
		t.Fatalf("unexpected event: %+v", first)
	}
	if time.Since(first.Timestamp) > time.Minute {
		t.Errorf("timestamp not recent: %v", first.Timestamp)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson-session",
			InputTokens: 100, OutputTokens: 50, LatencyMs: int64(100 * (i + 1)), Success: i != 2,
		})
	}
	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o", Purpose: "lesson-outline",
		InputTokens: 10, OutputTokens: 5, Success: true,
	})

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	sess := byPurpose[1]
	if sess.Purpose != "lesson-session" || sess.Calls != 3 || sess.Failures != 1 {
		t.Errorf("unexpected session stats: %+v", sess)
	}
	if sess.InputTokens != 300 || sess.OutputTokens != 150 || sess.AvgLatencyMs != 200 {
		t.Errorf("unexpected session totals: %+v", sess)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "gpt-4o-mini" || byModel[1].Calls != 3 {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}

func TestLessonEventsFilterByPlan(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LessonEventData{
		{Kind: LessonEventPlanCreated, PlanID: "a", Title: "Animal Adventures", Category: "education-animals", TotalSessions: 5},
		{Kind: LessonEventSessionGenerated, PlanID: "a", SessionNumber: 1, TotalSessions: 5, Stage: "introduction", Difficulty: "medium"},
		{Kind: LessonEventPlanCreated, PlanID: "b", Title: "Let's Make a Story", Category: "story", TotalSessions: 5},
		{Kind: LessonEventSessionFallback, PlanID: "a", SessionNumber: 2, TotalSessions: 5, Difficulty: "easy", Fallback: true, ErrorMessage: "rate limited"},
	}
	for _, e := range appends {
		if err := repo.AppendLessonEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLessonEvents(ctx, "a", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Kind != LessonEventSessionFallback || !got[0].Fallback || got[0].SessionNumber != 2 {
		t.Errorf("unexpected newest event: %+v", got[0])
	}

	all, err := repo.QueryLessonEvents(ctx, "", QueryOpts{After: 2})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("after filter len = %d, want 2", len(all))
	}

	none, err := repo.QueryLessonEvents(ctx, "", QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query future: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no events from the future, got %d", len(none))
	}
}

func TestLessonAndLLMEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendLessonEvent(ctx, LessonEventData{Kind: LessonEventPlanCreated, PlanID: "p"})
	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "lesson-session", Success: true})
	_ = repo.AppendLessonEvent(ctx, LessonEventData{Kind: LessonEventSessionGenerated, PlanID: "p", SessionNumber: 1})

	lessons, _ := repo.QueryLessonEvents(ctx, "p", QueryOpts{})
	llms, _ := repo.QueryLLMEvents(ctx, "", QueryOpts{})
	if len(lessons) != 2 || len(llms) != 1 {
		t.Fatalf("unexpected counts: %d lessons, %d llm", len(lessons), len(llms))
	}
	if !(lessons[1].Sequence < llms[0].Sequence && llms[0].Sequence < lessons[0].Sequence) {
		t.Errorf("sequences not interleaved: %d, %d, %d", lessons[1].Sequence, llms[0].Sequence, lessons[0].Sequence)
	}
}
