package models

// Snapshot is the persisted subset of chat store state. Transient flags
// (loading, error) are excluded by design and reset on every load.
type Snapshot struct {
	Chats         []Chat    `json:"conversations"`
	ActiveChatID  string    `json:"activeConversationId,omitempty"`
	SelectedModel *LLMModel `json:"selectedModel,omitempty"`
}
