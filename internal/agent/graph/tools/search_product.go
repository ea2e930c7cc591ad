package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory"
	invmodel "github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

type SearchProductInput struct {
	Query string `json:"query"`
}

type SearchProductOutput struct {
	invmodel.LookupResult
	Message string `json:"message"`
}

func createSearchProductTool(inv Inventory) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchProduct,
			Desc: "Search the product catalog by name. Tolerates partial names, spaces or hyphens instead of underscores and word order changes. Returns the product with its final price when one product matches, or up to 5 similar product names when the query is ambiguous. Use this tool whenever the customer mentions a product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Product name or part of it, e.g. laptop, cable hdmi, gaming, disco externo.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			if strings.TrimSpace(in.Query) == "" {
				return nil, fmt.Errorf("query is required")
			}

			result := inv.Lookup(in.Query)
			return &SearchProductOutput{
				LookupResult: result,
				Message:      inventory.FormatLookup(result),
			}, nil
		},
	)
}
