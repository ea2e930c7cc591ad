package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	invmodel "github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

type CheckStockInput struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

func createCheckStockTool(inv Inventory) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCheckStock,
			Desc: "Check whether a quantity of a product can be ordered. On success returns the remaining stock, delivery days and any volume discount triggered by the quantity. On shortage returns the deficit, estimated restock days and up to 3 in-stock alternatives of the same category with a similar price. Unknown names return up to 3 suggestions.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_name": {
					Type:     "string",
					Desc:     "Catalog product name (e.g., monitor, hub_usb).",
					Required: true,
				},
				"quantity": {
					Type:     "integer",
					Desc:     "Units the customer wants to order. 0 just reports the available stock.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *CheckStockInput) (*invmodel.StockCheck, error) {
			if strings.TrimSpace(in.ProductName) == "" {
				return nil, fmt.Errorf("product_name is required")
			}

			check, err := inv.CheckStock(in.ProductName, in.Quantity)
			if err != nil {
				return nil, err
			}
			return &check, nil
		},
	)
}
