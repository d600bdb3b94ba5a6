// Package catalog holds the static list of selectable models and per-model
// metadata. The chat store and relay treat these entries as opaque read-only
// data; pricing and context length are descriptive only.
package catalog

import "github.com/unichat-ai/unichat/models"

// AvailableModels lists every model the application knows about, enabled or
// not. Disabled entries stay displayable for existing conversations but are
// not re-offered for selection.
var AvailableModels = []models.LLMModel{
	// OpenAI models
	{
		ID:          "gpt-4.1-nano",
		Name:        "GPT-4.1 Nano",
		Provider:    models.ProviderOpenAI,
		Endpoint:    "https://api.openai.com/v1/chat/completions",
		Description: "Fastest, most cost-effective model for low-latency tasks",
		Pricing: models.Pricing{
			Input:  0.1,
			Output: 0.4,
		},
		ContextLength: 128000,
		Enabled:       true,
	},
	{
		ID:          "gpt-4.1-mini",
		Name:        "GPT-4.1 Mini",
		Provider:    models.ProviderOpenAI,
		Endpoint:    "https://api.openai.com/v1/chat/completions",
		Description: "Affordable model balancing speed and intelligence",
		Pricing: models.Pricing{
			Input:  0.4,
			Output: 1.6,
		},
		ContextLength: 128000,
		Enabled:       true,
	},
	{
		ID:          "gpt-4.1",
		Name:        "GPT-4.1",
		Provider:    models.ProviderOpenAI,
		Endpoint:    "https://api.openai.com/v1/chat/completions",
		Description: "Smartest model for complex tasks",
		Pricing: models.Pricing{
			Input:  2.0,
			Output: 8.0,
		},
		ContextLength: 128000,
		Enabled:       true,
	},
	{
		ID:          "gpt-3.5-turbo",
		Name:        "GPT-3.5 Turbo",
		Provider:    models.ProviderOpenAI,
		Endpoint:    "https://api.openai.com/v1/chat/completions",
		Description: "Cheap, fast general-purpose model",
		Pricing: models.Pricing{
			Input:  0.5,
			Output: 1.5,
		},
		ContextLength: 16385,
		Enabled:       true,
	},

	// Anthropic models
	{
		ID:          "claude-3-5-sonnet-20241022",
		Name:        "Claude 3.5 Sonnet",
		Provider:    models.ProviderAnthropic,
		Endpoint:    "https://api.anthropic.com/v1/messages",
		Description: "Highest-capability Claude model",
		Pricing: models.Pricing{
			Input:  3.0,
			Output: 15.0,
		},
		ContextLength: 200000,
		Enabled:       true,
	},
	{
		ID:          "claude-3-haiku-20240307",
		Name:        "Claude 3 Haiku",
		Provider:    models.ProviderAnthropic,
		Endpoint:    "https://api.anthropic.com/v1/messages",
		Description: "Fast, efficient Claude model",
		Pricing: models.Pricing{
			Input:  0.25,
			Output: 1.25,
		},
		ContextLength: 200000,
		Enabled:       true,
	},

	// Google models
	{
		ID:          "gemini-2.0-flash",
		Name:        "Gemini 2.0 Flash",
		Provider:    models.ProviderGoogle,
		Endpoint:    "https://generativelanguage.googleapis.com/v1beta/models",
		Description: "Fast multimodal Gemini model",
		Pricing: models.Pricing{
			Input:  0.1,
			Output: 0.4,
		},
		ContextLength: 1000000,
		Enabled:       true,
	},
}

// ModelByID returns the catalog entry with the given id, or nil.
func ModelByID(id string) *models.LLMModel {
	for i := range AvailableModels {
		if AvailableModels[i].ID == id {
			m := AvailableModels[i]
			return &m
		}
	}
	return nil
}

// ModelsByProvider returns every catalog entry for one provider.
func ModelsByProvider(provider string) []models.LLMModel {
	var out []models.LLMModel
	for _, m := range AvailableModels {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out
}

// EnabledModels returns the entries offered for selection.
func EnabledModels() []models.LLMModel {
	var out []models.LLMModel
	for _, m := range AvailableModels {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out
}
