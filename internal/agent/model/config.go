package model

// ================ Config ================

// AgentConfig configures the optional question answering agent. The API key is
// only checked when the agent is actually built.
type AgentConfig struct {
	APIKey         string  `envconfig:"GEMINI_API_KEY"`
	BaseURL        string  `envconfig:"GEMINI_BASE_URL"`
	Model          string  `envconfig:"AGENT_MODEL" default:"gemini-2.5-flash"`
	MaxTokens      int     `envconfig:"AGENT_MAX_TOKENS" default:"2000"`
	Temperature    float32 `envconfig:"AGENT_TEMPERATURE" default:"0.2"`
	ToolMaxCalls   int     `envconfig:"AGENT_TOOL_MAX_CALLS" default:"10"`
	ThinkingBudget int32   `envconfig:"AGENT_THINKING_BUDGET" default:"0"`
}

type PromptConfig struct {
	BusinessType string `envconfig:"PROMPT_BUSINESS_TYPE" default:"electronics store"`
	BusinessName string `envconfig:"PROMPT_BUSINESS_NAME" default:"TechHub"`
}
