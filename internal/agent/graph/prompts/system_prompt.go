package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/inventory/internal/agent/graph/tools"
	"github.com/Chative-core-poc-v1/inventory/internal/agent/model"
	invmodel "github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

//go:embed template/system_prompt.txt
var coreSystemPrompt string

// RenderSystem renders the agent system prompt through the eino prompt
// component so prompt callbacks fire.
func RenderSystem(ctx context.Context, config model.PromptConfig, catalog *invmodel.Catalog) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(coreSystemPrompt),
	)
	vars := map[string]any{
		"BusinessType": config.BusinessType,
		"BusinessName": config.BusinessName,
		"ProductCount": catalog.Len(),
		"Categories":   strings.Join(catalog.Categories(), ", "),
		"SearchTool":   tools.ToolSearchProduct,
		"DetailsTool":  tools.ToolGetProductDetails,
		"StockTool":    tools.ToolCheckStock,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}
