package stores

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/unichat-ai/unichat/models"
)

// DefaultBackupSchedule re-saves the snapshot every five minutes.
const DefaultBackupSchedule = "@every 5m"

// SnapshotSource is anything that can produce the current snapshot on demand.
// The chat store satisfies this.
type SnapshotSource interface {
	Snapshot() models.Snapshot
}

// AutoSaver periodically writes the source's current snapshot to a snapshot
// store. Per-mutation saves already keep the store fresh; the autosaver is a
// safety net against a save that failed mid-session.
type AutoSaver struct {
	scheduler *cron.Cron
	source    SnapshotSource
	store     SnapshotStore
	schedule  string
	entryID   cron.EntryID
}

// NewAutoSaver creates an autosaver with the given cron schedule. An empty
// schedule falls back to DefaultBackupSchedule.
func NewAutoSaver(source SnapshotSource, store SnapshotStore, schedule string) *AutoSaver {
	if schedule == "" {
		schedule = DefaultBackupSchedule
	}
	return &AutoSaver{
		scheduler: cron.New(),
		source:    source,
		store:     store,
		schedule:  schedule,
	}
}

// Start registers the backup job and starts the scheduler.
func (a *AutoSaver) Start() error {
	if a.source == nil || a.store == nil {
		return fmt.Errorf("autosaver requires both a snapshot source and a store")
	}

	entryID, err := a.scheduler.AddFunc(a.schedule, func() {
		if err := a.store.Save(a.source.Snapshot()); err != nil {
			log.Printf("Warning: periodic snapshot save failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot backup: %w", err)
	}

	a.entryID = entryID
	a.scheduler.Start()
	return nil
}

// Stop halts the scheduler. Running jobs finish; no new ones fire.
func (a *AutoSaver) Stop() {
	a.scheduler.Stop()
}
