package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/unichat-ai/unichat/catalog"
	"github.com/unichat-ai/unichat/chat"
	"github.com/unichat-ai/unichat/server"
	"github.com/unichat-ai/unichat/stores"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	storeType := os.Getenv("SNAPSHOT_STORE")
	if storeType == "" {
		storeType = "sqlite"
	}
	connection := os.Getenv("SNAPSHOT_CONNECTION")
	if connection == "" {
		connection = "unichat.sqlite"
	}

	snapshots, err := stores.NewStore(stores.NewStoreConfig(storeType, connection))
	if err != nil {
		log.Fatalf("Failed to create snapshot store: %v", err)
	}
	defer snapshots.Close()

	chatStore := chat.NewStore(snapshots, catalog.EnabledModels())

	saver := stores.NewAutoSaver(chatStore, snapshots, os.Getenv("SNAPSHOT_BACKUP_CRON"))
	if err := saver.Start(); err != nil {
		log.Printf("Warning: snapshot autosave disabled: %v", err)
	}
	defer saver.Stop()

	cfg := server.NewConfig().WithStore(chatStore)
	if addr := os.Getenv("UNICHAT_ADDR"); addr != "" {
		cfg.WithAddr(addr)
	}

	log.Printf("unichat listening on %s", cfg.Addr)
	if err := server.Run(cfg); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
