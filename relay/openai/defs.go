package openai

// OpenAI Chat Completions API types

// OpenAIRequest is the request body for the Chat Completions API.
type OpenAIRequest struct {
	Model       string      `json:"model"`
	Messages    []OpenAIMsg `json:"messages"`
	MaxTokens   int         `json:"max_tokens"`
	Temperature float64     `json:"temperature"`
}

// OpenAIMsg is a message in the OpenAI format. The relay forwards roles
// as-is, including any leading system message.
type OpenAIMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIResponse is the non-streaming response.
type OpenAIResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"` // "chat.completion"
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

type Choice struct {
	Index        int       `json:"index"`
	Message      OpenAIMsg `json:"message"`
	FinishReason *string   `json:"finish_reason,omitempty"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ErrorResponse from the API.
type ErrorResponse struct {
	Error OpenAIError `json:"error"`
}

type OpenAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}
