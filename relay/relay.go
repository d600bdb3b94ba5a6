// Package relay translates normalized chat requests into provider-specific
// upstream calls and normalizes the results back into one shape. The relay is
// stateless across calls and holds no conversation data.
package relay

import (
	"context"
	"sync"

	"github.com/unichat-ai/unichat/models"
)

// Provider is one adapter: it turns a message history plus a model descriptor
// into exactly one upstream call and returns the extracted reply text. A
// cancelled ctx must abort the in-flight network operation.
type Provider interface {
	Send(ctx context.Context, messages []models.Message, model models.LLMModel) (string, error)
}

// Relay dispatches requests to registered providers by the model descriptor's
// provider tag. Adding a provider means registering one more adapter; the
// dispatch site never changes.
type Relay struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// New creates an empty relay. Register adapters before calling Send.
func New() *Relay {
	return &Relay{providers: make(map[string]Provider)}
}

// Register binds a provider tag to an adapter, replacing any previous binding.
func (r *Relay) Register(provider string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider] = p
}

// Send validates the request, dispatches to the matching adapter, and returns
// the normalized result. Exactly one upstream attempt is made; retry policy
// belongs to the caller.
func (r *Relay) Send(ctx context.Context, req models.ChatRequest) (models.ChatResult, error) {
	if len(req.Messages) == 0 || req.Model == nil {
		return models.ChatResult{}, &ValidationError{Reason: "messages and model are required"}
	}

	r.mu.RLock()
	p, ok := r.providers[req.Model.Provider]
	r.mu.RUnlock()
	if !ok {
		return models.ChatResult{}, &UnsupportedProviderError{Provider: req.Model.Provider}
	}

	content, err := p.Send(ctx, req.Messages, *req.Model)
	if err != nil {
		return models.ChatResult{}, err
	}

	return models.ChatResult{Content: content, Model: req.Model.ID}, nil
}
