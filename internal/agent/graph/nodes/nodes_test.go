package nodes

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chative-core-poc-v1/inventory/internal/agent/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

func init() {
	logx.Disable()
}

func TestToolLimit(t *testing.T) {
	state := &model.AppState{}

	assert.False(t, incrementToolCallAndCheck(state, 2))
	assert.False(t, checkAndMarkToolLimit(state, 2))
	assert.False(t, incrementToolCallAndCheck(state, 2))

	assert.True(t, checkAndMarkToolLimit(state, 2))
	assert.True(t, state.ToolCallLimitReached)
	assert.False(t, checkAndMarkToolLimit(state, 2), "marks only once")

	assert.Equal(t, DefaultMaxToolCalls, NormalizeMaxToolCalls(0))
	assert.Equal(t, DefaultMaxToolCalls, NormalizeMaxToolCalls(-1))
	assert.Equal(t, 3, NormalizeMaxToolCalls(3))
}

func TestChatModelPostHandler(t *testing.T) {
	ctx := context.Background()
	post := NewChatModelPostHandler("gemini-2.5-flash")
	state := &model.AppState{}

	out := schema.AssistantMessage("", []schema.ToolCall{
		{Function: schema.FunctionCall{Name: "search_product", Arguments: `{"query":"laptop"}`}},
		{ID: "given", Function: schema.FunctionCall{Name: "check_stock", Arguments: `{"product_name":"laptop","quantity":1}`}},
	})
	out.ResponseMeta = &schema.ResponseMeta{Usage: &schema.TokenUsage{PromptTokens: 1_000_000, CompletionTokens: 100_000, TotalTokens: 1_100_000}}

	got, err := post(ctx, out, state)
	require.NoError(t, err)

	assert.Equal(t, "call_1", got.ToolCalls[0].ID)
	assert.Equal(t, "given", got.ToolCalls[1].ID)
	assert.InDelta(t, 0.55, state.TotalCostUSD, 1e-9)
	assert.InDelta(t, 0.55, got.Extra["usage_cost_total_usd"], 1e-9)
	assert.Contains(t, got.Extra, "usage_cost")
	assert.Len(t, state.History, 1)

	_, err = post(ctx, nil, state)
	assert.Error(t, err)
}

func TestChatModelPreHandler(t *testing.T) {
	ctx := context.Background()
	pre := NewChatModelPreHandler(1)
	state := &model.AppState{}

	msgs, err := pre(ctx, []*schema.Message{schema.SystemMessage("sys"), schema.UserMessage("hi")}, state)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	state.ToolCallCount = 1
	msgs, err = pre(ctx, []*schema.Message{schema.ToolMessage("{}", "call_1")}, state)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, schema.System, msgs[3].Role)
	assert.Contains(t, msgs[3].Content, "maximum tool call limit (1)")
}

func TestNewChatModelRequiresKey(t *testing.T) {
	_, err := NewChatModel(context.Background(), model.AgentConfig{Model: "gemini-2.5-flash"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
