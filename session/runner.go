// Package session drives complete chat turns: user message into the store,
// relay round trip, assistant reply (or error) back into the store. It keeps
// one cancellation token per conversation so an in-flight turn can be aborted.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/unichat-ai/unichat/chat"
	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/relay"
)

// ErrNoModelSelected is returned when neither a global selection nor a bound
// conversation model is available for a turn.
var ErrNoModelSelected = errors.New("session: no model selected")

type turnToken struct {
	cancel context.CancelFunc
}

// Runner orchestrates turns against one chat store and one relay.
type Runner struct {
	store *chat.Store
	relay *relay.Relay

	mu       sync.Mutex
	inflight map[string]*turnToken // chat id -> active cancellation token
}

// NewRunner creates a runner over the given store and relay.
func NewRunner(store *chat.Store, rl *relay.Relay) *Runner {
	return &Runner{
		store:    store,
		relay:    rl,
		inflight: make(map[string]*turnToken),
	}
}

// SendMessage runs one turn: the user message is appended before the relay
// call is issued, and the assistant reply is appended only after it resolves.
// On a non-cancellation failure no assistant message is appended, the store's
// error field is set, and the loading flag is cleared. A cancelled turn
// appends nothing and records no error.
func (r *Runner) SendMessage(ctx context.Context, chatID, content string) (models.Message, error) {
	c := r.store.ChatByID(chatID)
	if c == nil {
		return models.Message{}, chat.ErrChatNotFound
	}

	model := r.store.SelectedModel()
	if model == nil {
		m := c.Model
		model = &m
	}
	if model.ID == "" {
		return models.Message{}, ErrNoModelSelected
	}

	if _, err := r.store.AppendMessage(chatID, models.Message{
		Role:    models.RoleUser,
		Content: content,
	}); err != nil {
		return models.Message{}, err
	}
	r.store.SetLoading(true)

	turnCtx, cancel := context.WithCancel(ctx)
	token := &turnToken{cancel: cancel}
	r.track(chatID, token)
	defer r.untrack(chatID, token)
	defer cancel()

	// Re-read so the relay sees the user message just appended.
	history, err := r.history(chatID)
	if err != nil {
		r.store.SetLoading(false)
		return models.Message{}, err
	}
	result, err := r.relay.Send(turnCtx, models.ChatRequest{
		Messages: history,
		Model:    model,
	})
	r.store.SetLoading(false)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Cancellation is not a failure: nothing appended, no error recorded.
			return models.Message{}, err
		}
		r.store.SetError(err.Error())
		return models.Message{}, err
	}

	reply, err := r.store.AppendMessage(chatID, models.Message{
		Role:    models.RoleAssistant,
		Content: result.Content,
		Model:   result.Model,
	})
	if err != nil {
		// Conversation deleted while the relay call was in flight.
		return models.Message{}, err
	}

	return reply, nil
}

// history returns the conversation's current message list. The conversation
// can be deleted by a concurrent request at any point during a turn, so a
// miss here is ErrChatNotFound, never a panic.
func (r *Runner) history(chatID string) ([]models.Message, error) {
	c := r.store.ChatByID(chatID)
	if c == nil {
		return nil, chat.ErrChatNotFound
	}
	return c.Messages, nil
}

// Cancel aborts the in-flight turn for the given conversation, if any.
func (r *Runner) Cancel(chatID string) {
	r.mu.Lock()
	token := r.inflight[chatID]
	r.mu.Unlock()
	if token != nil {
		token.cancel()
	}
}

// track installs the token for a conversation. Starting a new turn implicitly
// invalidates the previous token.
func (r *Runner) track(chatID string, token *turnToken) {
	r.mu.Lock()
	prev := r.inflight[chatID]
	r.inflight[chatID] = token
	r.mu.Unlock()
	if prev != nil {
		prev.cancel()
	}
}

// untrack removes the token only if it is still the active one for the
// conversation.
func (r *Runner) untrack(chatID string, token *turnToken) {
	r.mu.Lock()
	if r.inflight[chatID] == token {
		delete(r.inflight, chatID)
	}
	r.mu.Unlock()
}
