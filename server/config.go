package server

import (
	"github.com/unichat-ai/unichat/catalog"
	"github.com/unichat-ai/unichat/chat"
	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/relay"
	"github.com/unichat-ai/unichat/relay/anthropic"
	"github.com/unichat-ai/unichat/relay/google"
	"github.com/unichat-ai/unichat/relay/openai"
)

// Config holds configuration for the HTTP server.
type Config struct {
	Addr   string
	Relay  *relay.Relay
	Models []models.LLMModel
	Store  *chat.Store
}

// NewConfig creates a configuration with default values: every built-in
// provider adapter registered and the full catalog exposed.
func NewConfig() *Config {
	rl := relay.New()
	rl.Register(models.ProviderOpenAI, &openai.Client{})
	rl.Register(models.ProviderAnthropic, &anthropic.Client{})
	rl.Register(models.ProviderGoogle, &google.Client{})

	return &Config{
		Addr:   ":8000",
		Relay:  rl,
		Models: catalog.AvailableModels,
	}
}

// WithAddr sets the listen address.
func (c *Config) WithAddr(addr string) *Config {
	c.Addr = addr
	return c
}

// WithRelay replaces the relay, dropping the default adapter registrations.
func (c *Config) WithRelay(rl *relay.Relay) *Config {
	c.Relay = rl
	return c
}

// WithModels replaces the model catalog served by /api/models.
func (c *Config) WithModels(ms []models.LLMModel) *Config {
	c.Models = ms
	return c
}

// WithStore attaches a chat store, enabling the conversation endpoints.
func (c *Config) WithStore(store *chat.Store) *Config {
	c.Store = store
	return c
}
