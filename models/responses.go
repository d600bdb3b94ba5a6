package models

// ChatResult is the normalized relay reply: the extracted text plus an echo of
// the model id that produced it.
type ChatResult struct {
	Content string `json:"content"`
	Model   string `json:"model"`
}

// APIResponse is the JSON envelope every HTTP endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
