package model

import (
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

func TestComputeCost(t *testing.T) {
	usage := &schema.TokenUsage{PromptTokens: 2_000_000, CompletionTokens: 400_000, TotalTokens: 2_400_000}

	cost := ComputeCost(usage, ResolvePricing("gemini-2.5-flash"))
	assert.InDelta(t, 0.60, cost.Input, 1e-9)
	assert.InDelta(t, 1.00, cost.Output, 1e-9)
	assert.InDelta(t, 1.60, cost.Total, 1e-9)

	assert.Zero(t, ComputeCost(usage, ResolvePricing("unknown-model")))
	assert.Zero(t, ComputeCost(nil, ResolvePricing("gemini-2.5-flash")))
}
