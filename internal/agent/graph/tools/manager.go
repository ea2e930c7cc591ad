package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	invmodel "github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

const (
	ToolSearchProduct     = "search_product"
	ToolGetProductDetails = "get_product_details"
	ToolCheckStock        = "check_stock"
)

// Inventory is the part of the live inventory the tools read from.
type Inventory interface {
	Catalog() *invmodel.Catalog
	Lookup(name string) invmodel.LookupResult
	Product(name string) (invmodel.ProductView, bool)
	CheckStock(name string, qty int) (invmodel.StockCheck, error)
}

// GetQueryTools returns every tool the agent may call.
func GetQueryTools(inv Inventory) []tool.BaseTool {
	return []tool.BaseTool{
		createSearchProductTool(inv),
		createGetProductDetailsTool(inv),
		createCheckStockTool(inv),
	}
}

// GetToolInfos collects the tool schemas to bind to a chat model.
func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
