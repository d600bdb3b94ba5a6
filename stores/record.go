package stores

import (
	"encoding/json"
	"fmt"

	"github.com/unichat-ai/unichat/models"
)

// defaultSnapshotKey identifies the single snapshot row each store keeps.
const defaultSnapshotKey = "default"

func marshalSnapshot(snap models.Snapshot) (SnapshotRecord, error) {
	chatsJSON, err := json.Marshal(snap.Chats)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("failed to marshal chats for database: %w", err)
	}

	modelJSON := ""
	if snap.SelectedModel != nil {
		b, err := json.Marshal(snap.SelectedModel)
		if err != nil {
			return SnapshotRecord{}, fmt.Errorf("failed to marshal selected model for database: %w", err)
		}
		modelJSON = string(b)
	}

	return SnapshotRecord{
		SnapshotKey:       defaultSnapshotKey,
		ChatsJSON:         string(chatsJSON),
		ActiveChatID:      snap.ActiveChatID,
		SelectedModelJSON: modelJSON,
	}, nil
}

func unmarshalSnapshot(rec SnapshotRecord) (models.Snapshot, error) {
	snap := models.Snapshot{ActiveChatID: rec.ActiveChatID}

	if rec.ChatsJSON != "" && rec.ChatsJSON != "null" {
		if err := json.Unmarshal([]byte(rec.ChatsJSON), &snap.Chats); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to unmarshal stored chats: %w", err)
		}
	}

	if rec.SelectedModelJSON != "" && rec.SelectedModelJSON != "null" {
		var m models.LLMModel
		if err := json.Unmarshal([]byte(rec.SelectedModelJSON), &m); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to unmarshal stored model selection: %w", err)
		}
		snap.SelectedModel = &m
	}

	return snap, nil
}
