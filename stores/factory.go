package stores

import (
	"fmt"
)

// NewStore creates a new snapshot store based on the configuration.
func NewStore(config *StoreConfig) (SnapshotStore, error) {
	switch config.Type {
	case "sqlite":
		return NewSQLiteStore(config)
	case "postgres":
		return NewPostgresStore(config)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}

// NewSQLiteStoreDefault creates a SQLite store with default settings.
func NewSQLiteStoreDefault() (SnapshotStore, error) {
	return NewSQLiteStoreSimple("unichat.sqlite")
}

// NewPostgresStoreDefault creates a PostgreSQL store from connection parameters.
func NewPostgresStoreDefault(host, user, password, dbname string, port int) (SnapshotStore, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)
	return NewPostgresStoreSimple(dsn)
}
