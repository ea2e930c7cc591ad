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

type GetProductDetailsInput struct {
	ProductName string `json:"product_name"`
}

type GetProductDetailsOutput struct {
	Found   bool                  `json:"found"`
	Product *invmodel.ProductView `json:"product,omitempty"`
	Card    string                `json:"card"`
}

func createGetProductDetailsTool(inv Inventory) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Get the full product card of one catalog product: price after discounts and promotions, stock, rating, brand, delivery days, warranty, weight, color, online availability and shipping. Use the exact product name returned by search_product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_name": {
					Type:     "string",
					Desc:     "Exact catalog product name from search_product results (e.g., laptop, disco_ssd).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if strings.TrimSpace(in.ProductName) == "" {
				return nil, fmt.Errorf("product_name is required")
			}

			view, ok := inv.Product(in.ProductName)
			if !ok {
				return &GetProductDetailsOutput{
					Card: fmt.Sprintf("Product '%s' not found in our catalog. Use %s first.", in.ProductName, ToolSearchProduct),
				}, nil
			}
			return &GetProductDetailsOutput{
				Found:   true,
				Product: &view,
				Card:    inventory.FormatProduct(view),
			}, nil
		},
	)
}
