package nodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/Chative-core-poc-v1/inventory/internal/agent/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

var ErrNoAPIKey = errors.New("GEMINI_API_KEY is not set")

// ChatModel is a chat model tools can be bound to; *gemini.ChatModel satisfies it.
type ChatModel interface {
	einomodel.BaseChatModel
	BindTools(tools []*schema.ToolInfo) error
}

var _ ChatModel = (*gemini.ChatModel)(nil)

// NewChatModel creates the Gemini chat model of the agent.
func NewChatModel(ctx context.Context, config model.AgentConfig) (*gemini.ChatModel, error) {
	if config.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	geminiCfg := &gemini.Config{
		Client:      client,
		Model:       config.Model,
		Temperature: &config.Temperature,
		MaxTokens:   &config.MaxTokens,
	}
	if config.ThinkingBudget > 0 {
		geminiCfg.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  genai.Ptr(config.ThinkingBudget),
		}
	}

	chatModel, err := gemini.NewChatModel(ctx, geminiCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating chat model")
		return nil, fmt.Errorf("error creating chat model: %w", err)
	}
	return chatModel, nil
}

// BindTools binds the tool schemas to the chat model.
func BindTools(cm ChatModel, tools []*schema.ToolInfo) error {
	if err := cm.BindTools(tools); err != nil {
		logx.Error().Err(err).Msg("Failed to bind tools")
		return fmt.Errorf("failed to bind tools: %w", err)
	}
	logx.Debug().Int("tools", len(tools)).Msg("Successfully bound tools to chat model")
	return nil
}
