package models

// Provider tags understood by the relay.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

// Pricing is cost per 1M tokens. Descriptive metadata only, never enforced.
type Pricing struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// LLMModel is a catalog entry describing one selectable upstream model.
type LLMModel struct {
	ID            string  `json:"id"` // provider-specific model string
	Name          string  `json:"name"`
	Provider      string  `json:"provider"` // "openai", "anthropic", "google"
	Endpoint      string  `json:"endpoint"`
	Description   string  `json:"description"`
	Pricing       Pricing `json:"pricing"`
	ContextLength int     `json:"contextLength"`
	Enabled       bool    `json:"enabled"`
}
