package stores

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/unichat-ai/unichat/models"
)

// SQLiteStore implements SnapshotStore for SQLite databases.
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(config *StoreConfig) (*SQLiteStore, error) {
	if config.Type != "sqlite" {
		return nil, fmt.Errorf("invalid store type for SQLite store: %s", config.Type)
	}

	store := &SQLiteStore{
		path: config.Connection,
	}

	if err := store.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	return store, nil
}

// NewSQLiteStoreSimple creates a new SQLite store with just a file path.
func NewSQLiteStoreSimple(dbPath string) (*SQLiteStore, error) {
	config := NewStoreConfig("sqlite", dbPath)
	return NewSQLiteStore(config)
}

// Connect establishes a connection to the SQLite database.
func (s *SQLiteStore) Connect() error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	s.db = db

	// Auto-migrate the schema
	if err := s.db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// Ping checks if the database connection is alive.
func (s *SQLiteStore) Ping() error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Save writes the snapshot, replacing the previously stored one.
func (s *SQLiteStore) Save(snap models.Snapshot) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	rec, err := marshalSnapshot(snap)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&SnapshotRecord{}).Where("snapshot_key = ?", rec.SnapshotKey).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing snapshot: %w", err)
	}

	if count == 0 {
		if err := s.db.Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to create snapshot record: %w", err)
		}
		return nil
	}

	updates := map[string]interface{}{
		"chats_json":          rec.ChatsJSON,
		"active_chat_id":      rec.ActiveChatID,
		"selected_model_json": rec.SelectedModelJSON,
	}
	if err := s.db.Model(&SnapshotRecord{}).Where("snapshot_key = ?", rec.SnapshotKey).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update snapshot record: %w", err)
	}

	return nil
}

// Load reads the stored snapshot. A missing record is not an error; it returns
// an empty snapshot so a fresh database starts the application clean.
func (s *SQLiteStore) Load() (models.Snapshot, error) {
	if s.db == nil {
		return models.Snapshot{}, fmt.Errorf("database connection is nil")
	}

	var rec SnapshotRecord
	err := s.db.Where("snapshot_key = ?", defaultSnapshotKey).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Snapshot{}, nil
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	return unmarshalSnapshot(rec)
}
