// Package chat implements the conversation store: the single source of truth
// for conversations, the active selection, and transient UI-facing flags.
// All mutations go through Store methods under one mutex; reads return copies,
// so callers never observe a partial update.
package chat

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/stores"
)

const (
	// titleMaxLen is how many characters of the first user message become the
	// conversation title before truncation kicks in.
	titleMaxLen = 50

	defaultTitle = "New conversation"
)

var (
	ErrChatNotFound    = errors.New("chat: conversation not found")
	ErrMessageNotFound = errors.New("chat: message not found")
)

// Store owns the set of conversations, the active conversation pointer, the
// global model selection, and the loading/error flags. It performs no network
// access; the relay is invoked by the orchestrating caller, never from here.
type Store struct {
	mu            sync.Mutex
	chats         []*models.Chat // ordered, newest first
	activeChatID  string         // "" means no active conversation
	selectedModel *models.LLMModel
	loading       bool
	lastError     string // "" means no error

	snapshots stores.SnapshotStore
}

// NewStore creates a store backed by the given snapshot port. If the port
// holds a previous snapshot it is restored; transient flags always start at
// their defaults. When no model selection survives the load, the first entry
// of available becomes the default selection.
func NewStore(snapshots stores.SnapshotStore, available []models.LLMModel) *Store {
	s := &Store{snapshots: snapshots}

	if snapshots != nil {
		snap, err := snapshots.Load()
		if err != nil {
			log.Printf("Warning: failed to load chat snapshot, starting fresh: %v", err)
		} else {
			for i := range snap.Chats {
				c := snap.Chats[i]
				s.chats = append(s.chats, &c)
			}
			s.activeChatID = snap.ActiveChatID
			s.selectedModel = snap.SelectedModel
		}
	}

	if s.selectedModel == nil && len(available) > 0 {
		m := available[0]
		s.selectedModel = &m
	}

	return s
}

// CreateChat inserts a new empty conversation at the front of the collection,
// makes it active, and points the global model selection at model. Returns the
// new conversation id.
func (s *Store) CreateChat(model models.LLMModel) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c := &models.Chat{
		ID:        uuid.NewString(),
		Title:     defaultTitle,
		Messages:  []models.Message{},
		Model:     model,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.chats = append([]*models.Chat{c}, s.chats...)
	s.activeChatID = c.ID
	m := model
	s.selectedModel = &m

	s.persistLocked()
	return c.ID
}

// DeleteChat removes the conversation with the given id. Deleting an id that
// does not exist is a no-op. Deleting the active conversation clears the
// active pointer; the store never auto-selects a replacement.
func (s *Store) DeleteChat(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return
	}

	s.chats = append(s.chats[:idx], s.chats[idx+1:]...)
	if s.activeChatID == id {
		s.activeChatID = ""
	}

	s.persistLocked()
}

// SetActiveChat sets the active conversation pointer. Passing "" clears it.
// When the id resolves to an existing conversation the global model selection
// is synchronized to that conversation's bound model.
func (s *Store) SetActiveChat(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeChatID = id
	if idx := s.indexLocked(id); idx >= 0 {
		m := s.chats[idx].Model
		s.selectedModel = &m
	}

	s.persistLocked()
}

// AppendMessage assigns an id and timestamp to msg, appends it to the
// conversation, and refreshes UpdatedAt. The first user message of a
// conversation also derives the title. Returns the stored message.
func (s *Store) AppendMessage(chatID string, msg models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(chatID)
	if idx < 0 {
		return models.Message{}, ErrChatNotFound
	}

	c := s.chats[idx]
	now := time.Now()
	msg.ID = uuid.NewString()
	msg.Timestamp = now

	if len(c.Messages) == 0 && msg.Role == models.RoleUser {
		c.Title = deriveTitle(msg.Content)
	}

	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = now

	s.persistLocked()
	return msg, nil
}

// UpdateMessage replaces the content of an existing message in place and
// refreshes the conversation's UpdatedAt. The message count never changes.
func (s *Store) UpdateMessage(chatID, messageID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(chatID)
	if idx < 0 {
		return ErrChatNotFound
	}

	c := s.chats[idx]
	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			c.Messages[i].Content = content
			c.UpdatedAt = time.Now()
			s.persistLocked()
			return nil
		}
	}

	return ErrMessageNotFound
}

// SetSelectedModel sets the global model selection without touching any
// conversation. Passing nil clears the selection.
func (s *Store) SetSelectedModel(model *models.LLMModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if model == nil {
		s.selectedModel = nil
	} else {
		m := *model
		s.selectedModel = &m
	}

	s.persistLocked()
}

// SetLoading sets the transient loading flag. Never persisted.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetError records the last error message. Last write wins; a later successful
// operation does not clear it. Never persisted.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = msg
}

// ClearError resets the error flag.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// ActiveChat returns a copy of the active conversation, or nil.
func (s *Store) ActiveChat() *models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneByIDLocked(s.activeChatID)
}

// ChatByID returns a copy of the conversation with the given id, or nil.
func (s *Store) ChatByID(id string) *models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneByIDLocked(id)
}

// Chats returns copies of every conversation, newest first.
func (s *Store) Chats() []models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Chat, len(s.chats))
	for i, c := range s.chats {
		out[i] = c.Clone()
	}
	return out
}

// ActiveChatID returns the active conversation id, or "".
func (s *Store) ActiveChatID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeChatID
}

// SelectedModel returns a copy of the global model selection, or nil.
func (s *Store) SelectedModel() *models.LLMModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedModel == nil {
		return nil
	}
	m := *s.selectedModel
	return &m
}

// Loading reports the transient loading flag.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Snapshot returns the persistable subset of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{ActiveChatID: s.activeChatID}
	snap.Chats = make([]models.Chat, len(s.chats))
	for i, c := range s.chats {
		snap.Chats[i] = c.Clone()
	}
	if s.selectedModel != nil {
		m := *s.selectedModel
		snap.SelectedModel = &m
	}
	return snap
}

// persistLocked saves the current snapshot through the port. Persistence is
// best-effort: a failed save is logged, never surfaced as a store error.
func (s *Store) persistLocked() {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(s.snapshotLocked()); err != nil {
		log.Printf("Warning: failed to persist chat snapshot: %v", err)
	}
}

func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range s.chats {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) cloneByIDLocked(id string) *models.Chat {
	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}
	c := s.chats[idx].Clone()
	return &c
}

// deriveTitle builds a conversation title from the first user message: the
// first 50 characters, with an ellipsis marker when truncated.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleMaxLen {
		return content
	}
	return string(runes[:titleMaxLen]) + "..."
}
