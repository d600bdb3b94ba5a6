package stores

import (
	"gorm.io/gorm"

	"github.com/unichat-ai/unichat/models"
)

// SnapshotRecord is the single-row table backing a persisted snapshot. The
// chat collection and model selection are stored as marshaled JSON, so schema
// changes in the chat model never require a migration here.
type SnapshotRecord struct {
	gorm.Model
	SnapshotKey       string `gorm:"uniqueIndex;not null"`
	ChatsJSON         string `gorm:"type:json"`
	ActiveChatID      string
	SelectedModelJSON string `gorm:"type:json"`
}

// SnapshotStore persists the durable subset of chat state (conversations,
// active id, selected model). Saves are best-effort from the caller's point of
// view; transient flags are never part of a snapshot.
type SnapshotStore interface {
	Save(snap models.Snapshot) error
	Load() (models.Snapshot, error)

	// Connection management
	Connect() error
	Close() error

	// Health check
	Ping() error
}

// StoreConfig holds configuration for snapshot stores.
type StoreConfig struct {
	Type       string            `json:"type"`       // "sqlite", "postgres", "memory"
	Connection string            `json:"connection"` // connection string or file path
	Options    map[string]string `json:"options"`    // additional options
}

// NewStoreConfig creates a new store configuration.
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
		Options:    make(map[string]string),
	}
}

// WithOption adds an option to the store configuration.
func (c *StoreConfig) WithOption(key, value string) *StoreConfig {
	c.Options[key] = value
	return c
}
