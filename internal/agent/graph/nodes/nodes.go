package nodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/inventory/internal/agent/graph/prompts"
	"github.com/Chative-core-poc-v1/inventory/internal/agent/model"
	invmodel "github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

const (
	NodeInputConverter = "input_converter"
	NodeChatModel      = "chat_model"
	NodeToolExecutor   = "tool_executor"
)

// CatalogSource exposes the catalog the system prompt describes.
type CatalogSource interface {
	Catalog() *invmodel.Catalog
}

// NewInputConverterPreHandler resets the per-question counters.
func NewInputConverterPreHandler() func(context.Context, model.QueryInput, *model.AppState) (model.QueryInput, error) {
	return func(ctx context.Context, in model.QueryInput, s *model.AppState) (model.QueryInput, error) {
		s.History = nil
		s.ToolCallCount = 0
		s.ToolCallLimitReached = false
		s.ToolCallIDSeq = 0
		s.TotalCostUSD = 0
		return in, nil
	}
}

// NewInputConverterNode turns the question into the system + user messages.
func NewInputConverterNode(catalog CatalogSource, promptCfg model.PromptConfig) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, input model.QueryInput) ([]*schema.Message, error) {
		query := strings.TrimSpace(input.Query)
		if query == "" {
			return nil, fmt.Errorf("query is empty")
		}

		systemPrompt, err := prompts.RenderSystem(ctx, promptCfg, catalog.Catalog())
		if err != nil {
			return nil, fmt.Errorf("render system prompt: %w", err)
		}

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(query),
		}, nil
	})
}

// NewChatModelPreHandler accumulates the conversation in state and, once the
// tool budget is spent, asks the model to wrap up.
func NewChatModelPreHandler(maxToolCalls int) func(context.Context, []*schema.Message, *model.AppState) ([]*schema.Message, error) {
	return func(ctx context.Context, in []*schema.Message, state *model.AppState) ([]*schema.Message, error) {
		state.History = append(state.History, in...)

		if checkAndMarkToolLimit(state, maxToolCalls) {
			wrapUp := schema.SystemMessage(fmt.Sprintf(
				"SYSTEM NOTICE: You have reached the maximum tool call limit (%d). "+
					"Answer with the information you already gathered and say what you could not check.",
				NormalizeMaxToolCalls(maxToolCalls),
			))
			state.History = append(state.History, wrapUp)
		}

		logx.Debug().Int("messages", len(state.History)).Msg("AI thinking...")
		return state.History, nil
	}
}

// NewChatModelPostHandler prices the call, fills missing tool call ids and records the reply.
func NewChatModelPostHandler(modelName string) func(context.Context, *schema.Message, *model.AppState) (*schema.Message, error) {
	return func(ctx context.Context, out *schema.Message, state *model.AppState) (*schema.Message, error) {
		if out == nil {
			return nil, fmt.Errorf("chat model returned no message")
		}

		attachUsageCost(out, state, modelName)

		for i := range out.ToolCalls {
			if strings.TrimSpace(out.ToolCalls[i].ID) == "" {
				state.ToolCallIDSeq++
				out.ToolCalls[i].ID = fmt.Sprintf("call_%d", state.ToolCallIDSeq)
			}
		}

		state.History = append(state.History, out)

		if len(out.ToolCalls) > 0 {
			logx.Debug().Int("tool_count", len(out.ToolCalls)).Msg("Calling tools")
		} else {
			logx.Debug().Msg("AI response ready")
		}
		return out, nil
	}
}

// NewToolExecutorCondition routes to the tools while the model asks for them
// and the budget allows it.
func NewToolExecutorCondition() func(context.Context, *schema.Message) (string, error) {
	return func(ctx context.Context, input *schema.Message) (string, error) {
		var limitReached bool
		err := compose.ProcessState(ctx, func(_ context.Context, state *model.AppState) error {
			limitReached = state.ToolCallLimitReached
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("read state: %w", err)
		}

		if limitReached {
			logx.Debug().Msg("Tool limit reached previously - routing to end")
			return compose.END, nil
		}
		if len(input.ToolCalls) > 0 {
			logx.Debug().Int("tool_count", len(input.ToolCalls)).Msg("Routing to ToolExecutor")
			return NodeToolExecutor, nil
		}
		return compose.END, nil
	}
}

// NewToolExecutorPreHandler counts tool rounds against the budget.
func NewToolExecutorPreHandler(maxToolCalls int) func(context.Context, *schema.Message, *model.AppState) (*schema.Message, error) {
	return func(ctx context.Context, in *schema.Message, state *model.AppState) (*schema.Message, error) {
		if incrementToolCallAndCheck(state, maxToolCalls) {
			logx.Warn().
				Int("tool_call_count", state.ToolCallCount).
				Int("max_tool_calls", NormalizeMaxToolCalls(maxToolCalls)).
				Msg("Tool call limit exceeded - flagging and continuing")
			return in, nil
		}

		logx.Debug().Int("tool_call_count", state.ToolCallCount).Msg("Tool execution attempt")
		return in, nil
	}
}
