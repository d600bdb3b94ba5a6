package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/stores"
)

func testModel() models.LLMModel {
	return models.LLMModel{
		ID:       "gpt-4.1-mini",
		Name:     "GPT-4.1 Mini",
		Provider: models.ProviderOpenAI,
		Enabled:  true,
	}
}

func TestCreateChat_UniqueIDs(t *testing.T) {
	s := NewStore(nil, nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := s.CreateChat(testModel())
		if seen[id] {
			t.Fatalf("Duplicate conversation id: %s", id)
		}
		seen[id] = true
	}
}

func TestCreateChat_SetsActiveAndSelection(t *testing.T) {
	s := NewStore(nil, nil)

	model := testModel()
	id := s.CreateChat(model)

	if s.ActiveChatID() != id {
		t.Errorf("Expected active id %s, got %s", id, s.ActiveChatID())
	}
	sel := s.SelectedModel()
	if sel == nil || sel.ID != model.ID {
		t.Errorf("Expected selected model %s, got %+v", model.ID, sel)
	}
}

func TestCreateChat_InsertsAtFront(t *testing.T) {
	s := NewStore(nil, nil)

	first := s.CreateChat(testModel())
	second := s.CreateChat(testModel())

	chats := s.Chats()
	if len(chats) != 2 {
		t.Fatalf("Expected 2 conversations, got %d", len(chats))
	}
	if chats[0].ID != second || chats[1].ID != first {
		t.Errorf("Expected newest-first order, got %s then %s", chats[0].ID, chats[1].ID)
	}
}

func TestDeleteChat_ActiveClearsPointer(t *testing.T) {
	s := NewStore(nil, nil)

	id := s.CreateChat(testModel())
	s.DeleteChat(id)

	if s.ActiveChatID() != "" {
		t.Errorf("Expected active id cleared, got %s", s.ActiveChatID())
	}
	if s.ChatByID(id) != nil {
		t.Error("Expected conversation removed")
	}
}

func TestDeleteChat_NonActiveKeepsPointer(t *testing.T) {
	s := NewStore(nil, nil)

	other := s.CreateChat(testModel())
	active := s.CreateChat(testModel())
	s.DeleteChat(other)

	if s.ActiveChatID() != active {
		t.Errorf("Expected active id %s unchanged, got %s", active, s.ActiveChatID())
	}
}

func TestDeleteChat_UnknownIsNoOp(t *testing.T) {
	s := NewStore(nil, nil)

	id := s.CreateChat(testModel())
	s.DeleteChat("missing")

	if len(s.Chats()) != 1 || s.ActiveChatID() != id {
		t.Error("Deleting an unknown id must not change anything")
	}
}

func TestSetActiveChat_SyncsModelSelection(t *testing.T) {
	s := NewStore(nil, nil)

	first := s.CreateChat(models.LLMModel{ID: "claude-3-haiku-20240307", Provider: models.ProviderAnthropic})
	s.CreateChat(testModel())

	s.SetActiveChat(first)

	if s.ActiveChatID() != first {
		t.Errorf("Expected active id %s, got %s", first, s.ActiveChatID())
	}
	sel := s.SelectedModel()
	if sel == nil || sel.ID != "claude-3-haiku-20240307" {
		t.Errorf("Expected selection synced to the conversation's model, got %+v", sel)
	}
}

func TestSetActiveChat_ClearWithEmptyID(t *testing.T) {
	s := NewStore(nil, nil)

	s.CreateChat(testModel())
	s.SetActiveChat("")

	if s.ActiveChatID() != "" {
		t.Errorf("Expected no active conversation, got %s", s.ActiveChatID())
	}
	if s.ActiveChat() != nil {
		t.Error("Expected ActiveChat to return nil")
	}
}

func TestAppendMessage_AssignsIDAndTimestamp(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())

	msg, err := s.AppendMessage(id, models.Message{Role: models.RoleUser, Content: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID == "" {
		t.Error("Expected message id assigned")
	}
	if msg.Timestamp.IsZero() {
		t.Error("Expected timestamp assigned")
	}
}

func TestAppendMessage_UnknownConversation(t *testing.T) {
	s := NewStore(nil, nil)

	if _, err := s.AppendMessage("missing", models.Message{Role: models.RoleUser, Content: "hi"}); err != ErrChatNotFound {
		t.Errorf("Expected ErrChatNotFound, got %v", err)
	}
}

func TestAppendMessage_TitleTruncation(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())

	long := strings.Repeat("quicksort ", 7) + "x" // 71 characters
	if len(long) != 71 {
		t.Fatalf("Test setup: expected 71 characters, got %d", len(long))
	}

	if _, err := s.AppendMessage(id, models.Message{Role: models.RoleUser, Content: long}); err != nil {
		t.Fatal(err)
	}

	want := long[:50] + "..."
	if got := s.ChatByID(id).Title; got != want {
		t.Errorf("Expected title %q, got %q", want, got)
	}
}

func TestAppendMessage_TitleShortMessage(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())

	short := strings.Repeat("ab", 20) // 40 characters
	if _, err := s.AppendMessage(id, models.Message{Role: models.RoleUser, Content: short}); err != nil {
		t.Fatal(err)
	}

	if got := s.ChatByID(id).Title; got != short {
		t.Errorf("Expected title %q, got %q", short, got)
	}
}

func TestAppendMessage_TitleOnlyFromFirstUserMessage(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())

	if _, err := s.AppendMessage(id, models.Message{Role: models.RoleUser, Content: "first question"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AppendMessage(id, models.Message{Role: models.RoleUser, Content: "second question"}); err != nil {
		t.Fatal(err)
	}

	if got := s.ChatByID(id).Title; got != "first question" {
		t.Errorf("Expected title from the first user message, got %q", got)
	}
}

func TestAppendMessage_AssistantFirstKeepsDefaultTitle(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())

	if _, err := s.AppendMessage(id, models.Message{Role: models.RoleAssistant, Content: "hello"}); err != nil {
		t.Fatal(err)
	}

	if got := s.ChatByID(id).Title; got != defaultTitle {
		t.Errorf("Expected default title, got %q", got)
	}
}

func TestUpdateMessage_ChangesContentNotCount(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())

	msg, err := s.AppendMessage(id, models.Message{Role: models.RoleUser, Content: "before"})
	if err != nil {
		t.Fatal(err)
	}
	countBefore := len(s.ChatByID(id).Messages)
	updatedBefore := s.ChatByID(id).UpdatedAt

	time.Sleep(2 * time.Millisecond)
	if err := s.UpdateMessage(id, msg.ID, "after"); err != nil {
		t.Fatal(err)
	}

	c := s.ChatByID(id)
	if len(c.Messages) != countBefore {
		t.Errorf("Expected message count unchanged at %d, got %d", countBefore, len(c.Messages))
	}
	if c.Messages[0].Content != "after" {
		t.Errorf("Expected updated content, got %q", c.Messages[0].Content)
	}
	if !c.UpdatedAt.After(updatedBefore) {
		t.Error("Expected UpdatedAt refreshed by UpdateMessage")
	}
}

func TestUpdateMessage_UnknownIDs(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())

	if err := s.UpdateMessage("missing", "m", "x"); err != ErrChatNotFound {
		t.Errorf("Expected ErrChatNotFound, got %v", err)
	}
	if err := s.UpdateMessage(id, "missing", "x"); err != ErrMessageNotFound {
		t.Errorf("Expected ErrMessageNotFound, got %v", err)
	}
}

func TestTransientFlags(t *testing.T) {
	s := NewStore(nil, nil)

	s.SetLoading(true)
	if !s.Loading() {
		t.Error("Expected loading true")
	}
	s.SetLoading(false)

	s.SetError("boom")
	if s.Err() != "boom" {
		t.Errorf("Expected error %q, got %q", "boom", s.Err())
	}

	// A later mutation must not clear the error; only ClearError does.
	s.CreateChat(testModel())
	if s.Err() != "boom" {
		t.Error("Expected error preserved across unrelated mutations")
	}

	s.ClearError()
	if s.Err() != "" {
		t.Errorf("Expected error cleared, got %q", s.Err())
	}
}

func TestDefaultModelSelection(t *testing.T) {
	available := []models.LLMModel{testModel(), {ID: "claude-3-haiku-20240307"}}
	s := NewStore(stores.NewMemoryStore(), available)

	sel := s.SelectedModel()
	if sel == nil || sel.ID != available[0].ID {
		t.Errorf("Expected first available model selected by default, got %+v", sel)
	}

	empty := NewStore(stores.NewMemoryStore(), nil)
	if empty.SelectedModel() != nil {
		t.Error("Expected no selection with an empty catalog")
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	port := stores.NewMemoryStore()

	s1 := NewStore(port, nil)
	id := s1.CreateChat(testModel())
	if _, err := s1.AppendMessage(id, models.Message{Role: models.RoleUser, Content: "remember me"}); err != nil {
		t.Fatal(err)
	}
	s1.SetLoading(true)
	s1.SetError("transient")

	s2 := NewStore(port, nil)
	c := s2.ChatByID(id)
	if c == nil {
		t.Fatal("Expected conversation restored from snapshot")
	}
	if len(c.Messages) != 1 || c.Messages[0].Content != "remember me" {
		t.Errorf("Expected messages restored, got %+v", c.Messages)
	}
	if s2.ActiveChatID() != id {
		t.Errorf("Expected active id restored, got %s", s2.ActiveChatID())
	}
	if sel := s2.SelectedModel(); sel == nil || sel.ID != testModel().ID {
		t.Errorf("Expected model selection restored, got %+v", sel)
	}

	// Transient flags always reset on load.
	if s2.Loading() {
		t.Error("Expected loading flag reset on load")
	}
	if s2.Err() != "" {
		t.Errorf("Expected error reset on load, got %q", s2.Err())
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewStore(nil, nil)
	id := s.CreateChat(testModel())
	if _, err := s.AppendMessage(id, models.Message{Role: models.RoleUser, Content: "original"}); err != nil {
		t.Fatal(err)
	}

	c := s.ChatByID(id)
	c.Messages[0].Content = "tampered"
	c.Title = "tampered"

	fresh := s.ChatByID(id)
	if fresh.Messages[0].Content != "original" {
		t.Error("Mutating a returned chat must not affect the store")
	}
}
