package stores

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/unichat-ai/unichat/models"
)

// PostgresStore implements SnapshotStore for PostgreSQL databases.
type PostgresStore struct {
	db  *gorm.DB
	dsn string
}

// NewPostgresStore creates a new PostgreSQL store.
func NewPostgresStore(config *StoreConfig) (*PostgresStore, error) {
	if config.Type != "postgres" {
		return nil, fmt.Errorf("invalid store type for PostgreSQL store: %s", config.Type)
	}

	store := &PostgresStore{
		dsn: config.Connection,
	}

	if err := store.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	return store, nil
}

// NewPostgresStoreSimple creates a new PostgreSQL store with just a DSN.
func NewPostgresStoreSimple(dsn string) (*PostgresStore, error) {
	config := NewStoreConfig("postgres", dsn)
	return NewPostgresStore(config)
}

// Connect establishes a connection to the PostgreSQL database.
func (s *PostgresStore) Connect() error {
	db, err := gorm.Open(postgres.Open(s.dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	s.db = db

	if err := s.db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
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
func (s *PostgresStore) Ping() error {
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
func (s *PostgresStore) Save(snap models.Snapshot) error {
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

// Load reads the stored snapshot, returning an empty one when no record exists.
func (s *PostgresStore) Load() (models.Snapshot, error) {
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
