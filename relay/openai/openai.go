package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/relay"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1/chat/completions"
	DefaultAPIKeyEnv   = "OPENAI_API_KEY"
	DefaultMaxTokens   = 4000
	DefaultTemperature = 0.7
)

// upstreamErrorFallback is reported when the provider returns a non-success
// status without a parseable error message.
const upstreamErrorFallback = "Unknown error"

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Client implements the relay Provider interface for the OpenAI Chat
// Completions API and any OpenAI-compatible endpoint.
type Client struct {
	BaseURL     string       // Optional: custom API endpoint
	APIKeyEnv   string       // Optional: env var name for API key (defaults to OPENAI_API_KEY)
	HTTPClient  *http.Client // Optional: custom HTTP client
	MaxTokens   int          // Optional: defaults to 4000
	Temperature *float64     // Optional: defaults to 0.7
}

// Send forwards the full message list as-is in a single array and extracts
// the reply from the first returned choice. One attempt, no retries.
func (c *Client) Send(ctx context.Context, messages []models.Message, model models.LLMModel) (string, error) {
	apiKeyEnv := c.APIKeyEnv
	if apiKeyEnv == "" {
		apiKeyEnv = DefaultAPIKeyEnv
	}
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return "", &relay.ConfigurationError{Provider: models.ProviderOpenAI, Message: "OpenAI API key not configured"}
	}

	maxTokens := c.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	temperature := DefaultTemperature
	if c.Temperature != nil {
		temperature = *c.Temperature
	}

	openAIReq := OpenAIRequest{
		Model:       model.ID,
		Messages:    make([]OpenAIMsg, 0, len(messages)),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	for _, msg := range messages {
		openAIReq.Messages = append(openAIReq.Messages, OpenAIMsg{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	jsonBytes, err := json.Marshal(openAIReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &relay.NetworkError{Provider: models.ProviderOpenAI, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &relay.NetworkError{Provider: models.ProviderOpenAI, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		message := upstreamErrorFallback
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		return "", &relay.ProviderError{Provider: models.ProviderOpenAI, Status: resp.StatusCode, Message: message}
	}

	var openAIResp OpenAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(openAIResp.Choices) == 0 {
		return "", nil
	}
	return openAIResp.Choices[0].Message.Content, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
