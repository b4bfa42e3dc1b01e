package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// Lesson event kinds.
const (
	LessonEventPlanCreated      = "plan-created"
	LessonEventOutlineFailed    = "outline-failed"
	LessonEventSessionGenerated = "session-generated"
	LessonEventSessionFallback  = "session-fallback"
)

// LessonEventData records one step in a lesson plan's life.
type LessonEventData struct {
	Kind          string
	PlanID        string
	Title         string
	Category      string
	SessionNumber int
	TotalSessions int
	Stage         string
	Difficulty    string
	Fallback      bool
	LatencyMs     int64
	ErrorMessage  string
}

// LessonEventRecord is a stored lesson event.
type LessonEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LessonEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first. An empty purpose
	// matches every event.
	QueryLLMEvents(ctx context.Context, purpose string, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates calls and tokens per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendLessonEvent records a lesson plan event.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// QueryLessonEvents returns lesson events, newest first. An empty
	// planID matches every plan.
	QueryLessonEvents(ctx context.Context, planID string, opts QueryOpts) ([]LessonEventRecord, error)
}
