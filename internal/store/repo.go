package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = driver default of 50)
	Purpose string // filter LLM events by purpose ("" = all)
}

// LLMRequestEventData captures one call to a generation provider.
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

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ResultRecordData captures the outcome of one finished quiz.
type ResultRecordData struct {
	SessionID  string
	Subject    string
	Topic      string
	Level      string
	Score      int
	Total      int
	Percentage float64
	Tier       string
}

// ResultRecord is a stored quiz outcome.
type ResultRecord struct {
	ID        int
	Timestamp time.Time
	ResultRecordData
}

// EventRepo provides append and query access to the history database.
type EventRepo interface {
	// AppendLLMRequest records a generation provider call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates usage per served model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendResult records a finished quiz outcome.
	AppendResult(ctx context.Context, data ResultRecordData) error

	// RecentResults returns recent quiz outcomes, newest first.
	RecentResults(ctx context.Context, limit int) ([]ResultRecord, error)
}
