package models

// ChatRequest is the normalized relay request: the visible conversation
// history plus the model descriptor selecting the upstream adapter.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	Model    *LLMModel `json:"model"`
}
