package model

import (
	"github.com/cloudwego/eino/schema"
)

// AppState is the graph local state of one question.
// It is only touched inside eino state handlers or compose.ProcessState,
// which serialize access.
type AppState struct {
	History              []*schema.Message
	ToolCallCount        int
	ToolCallLimitReached bool
	ToolCallIDSeq        int // synthesizes tool_call_id when the provider omits it

	TotalCostUSD float64
}

// QueryInput is one question about the inventory.
type QueryInput struct {
	Query string `json:"query"`
}
