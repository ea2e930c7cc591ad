package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Chative-core-poc-v1/inventory/internal/agent/graph/tools"
)

const maxQuantity = 1_000_000

// sanitizeToolArguments coerces the loosely typed arguments models tend to
// produce. It never fails: unparsable input is passed through untouched.
func sanitizeToolArguments(_ context.Context, name, arguments string) (string, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(arguments), &m); err != nil {
		return arguments, nil
	}

	switch name {
	case tools.ToolSearchProduct:
		coerceString(m, "query")
	case tools.ToolGetProductDetails:
		coerceString(m, "product_name")
	case tools.ToolCheckStock:
		coerceString(m, "product_name")
		if v, ok := m["quantity"]; ok {
			switch vv := v.(type) {
			case float64:
				m["quantity"] = clampQuantity(vv)
			case string:
				if n, err := strconv.ParseFloat(strings.TrimSpace(vv), 64); err == nil && !math.IsNaN(n) {
					m["quantity"] = clampQuantity(n)
				} else {
					delete(m, "quantity")
				}
			default:
				delete(m, "quantity")
			}
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return arguments, nil
	}
	return string(b), nil
}

func coerceString(m map[string]any, key string) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch vv := v.(type) {
	case string:
		m[key] = strings.TrimSpace(vv)
	default:
		m[key] = strings.TrimSpace(fmt.Sprint(v))
	}
}

// clampQuantity truncates v into [0, maxQuantity]. Clamping happens before the
// int conversion, which is undefined for out of range floats.
func clampQuantity(v float64) int {
	return int(math.Trunc(math.Min(math.Max(v, 0), maxQuantity)))
}
