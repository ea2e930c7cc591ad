package model

import (
	"github.com/cloudwego/eino/schema"
)

// Pricing is the USD price per million tokens.
type Pricing struct {
	InputPerM  float64
	OutputPerM float64
}

// Cost is what one chat model call spent while answering an inventory question.
type Cost struct {
	Input  float64
	Output float64
	Total  float64
}

// Gemini standard text pricing.
var defaultPricing = map[string]Pricing{
	"gemini-2.5-pro":        {InputPerM: 1.25, OutputPerM: 10.00},
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
}

// ResolvePricing looks the agent model up; unknown models are free.
func ResolvePricing(model string) Pricing {
	return defaultPricing[model]
}

func ComputeCost(usage *schema.TokenUsage, p Pricing) Cost {
	if usage == nil {
		return Cost{}
	}
	in := p.InputPerM * float64(usage.PromptTokens) / 1_000_000
	out := p.OutputPerM * float64(usage.CompletionTokens) / 1_000_000
	return Cost{Input: in, Output: out, Total: in + out}
}
