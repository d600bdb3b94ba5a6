package stores

import (
	"testing"
	"time"

	"github.com/unichat-ai/unichat/models"
)

type fixedSource struct {
	snap models.Snapshot
}

func (s *fixedSource) Snapshot() models.Snapshot { return s.snap }

func TestAutoSaver_RequiresSourceAndStore(t *testing.T) {
	if err := NewAutoSaver(nil, NewMemoryStore(), "").Start(); err == nil {
		t.Error("Expected an error without a source")
	}
	if err := NewAutoSaver(&fixedSource{}, nil, "").Start(); err == nil {
		t.Error("Expected an error without a store")
	}
}

func TestAutoSaver_RejectsBadSchedule(t *testing.T) {
	saver := NewAutoSaver(&fixedSource{}, NewMemoryStore(), "not a schedule")
	if err := saver.Start(); err == nil {
		t.Error("Expected an error for an unparseable schedule")
	}
}

func TestAutoSaver_PeriodicallySaves(t *testing.T) {
	store := NewMemoryStore()
	source := &fixedSource{snap: sampleSnapshot()}

	saver := NewAutoSaver(source, store, "@every 10ms")
	if err := saver.Start(); err != nil {
		t.Fatal(err)
	}
	defer saver.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := store.Load()
		if err != nil {
			t.Fatal(err)
		}
		if len(snap.Chats) == 1 && snap.Chats[0].ID == "c1" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Autosaver never wrote the snapshot")
}
