package nodes

import (
	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/inventory/internal/agent/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

const DefaultMaxToolCalls = 10

// NormalizeMaxToolCalls returns the default for non-positive limits.
func NormalizeMaxToolCalls(n int) int {
	if n <= 0 {
		return DefaultMaxToolCalls
	}
	return n
}

// checkAndMarkToolLimit marks the state once the tool budget is used up.
// Returns true only on the call that marks it.
func checkAndMarkToolLimit(state *model.AppState, max int) bool {
	max = NormalizeMaxToolCalls(max)
	if !state.ToolCallLimitReached && state.ToolCallCount >= max {
		state.ToolCallLimitReached = true
		return true
	}
	return false
}

// incrementToolCallAndCheck counts one tool round and reports whether it went over budget.
func incrementToolCallAndCheck(state *model.AppState, max int) bool {
	max = NormalizeMaxToolCalls(max)
	state.ToolCallCount++
	if state.ToolCallCount > max {
		state.ToolCallLimitReached = true
		return true
	}
	return false
}

// attachUsageCost prices the token usage of out, stores it in out.Extra and
// adds it to the running total of the question.
func attachUsageCost(out *schema.Message, state *model.AppState, modelName string) {
	if out == nil || out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	cost := model.ComputeCost(usage, model.ResolvePricing(modelName))

	if out.Extra == nil {
		out.Extra = map[string]any{}
	}
	out.Extra["usage_cost"] = map[string]any{
		"currency":          "USD",
		"model":             modelName,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
		"input_cost":        cost.Input,
		"output_cost":       cost.Output,
		"total_cost":        cost.Total,
	}

	state.TotalCostUSD += cost.Total
	out.Extra["usage_cost_total_usd"] = state.TotalCostUSD

	logx.Debug().
		Str("node", NodeChatModel).
		Str("model", modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("total_cost_usd", cost.Total).
		Msg("LLM usage")
}
