package anthropic

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
	DefaultBaseURL    = "https://api.anthropic.com/v1/messages"
	DefaultAPIVersion = "2023-06-01"
	DefaultAPIKeyEnv  = "ANTHROPIC_API_KEY"
	DefaultMaxTokens  = 4000
)

const upstreamErrorFallback = "Unknown error"

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Client implements the relay Provider interface for the Anthropic Messages
// API.
type Client struct {
	BaseURL    string       // Optional: custom API endpoint
	APIKeyEnv  string       // Optional: env var name for API key (defaults to ANTHROPIC_API_KEY)
	APIVersion string       // Optional: anthropic-version header value
	HTTPClient *http.Client // Optional: custom HTTP client
	MaxTokens  int          // Optional: defaults to 4000
}

// Send splits the input: the first system-role message becomes the top-level
// system field, all other messages become the conversation array with roles
// collapsed to exactly "user" or "assistant". The reply is extracted from the
// first content block. One attempt, no retries.
func (c *Client) Send(ctx context.Context, messages []models.Message, model models.LLMModel) (string, error) {
	apiKeyEnv := c.APIKeyEnv
	if apiKeyEnv == "" {
		apiKeyEnv = DefaultAPIKeyEnv
	}
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return "", &relay.ConfigurationError{Provider: models.ProviderAnthropic, Message: "Anthropic API key not configured"}
	}

	maxTokens := c.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	anthropicReq := AnthropicRequest{
		Model:     model.ID,
		MaxTokens: maxTokens,
	}
	for _, msg := range messages {
		if msg.Role == models.RoleSystem {
			if anthropicReq.System == "" {
				anthropicReq.System = msg.Content
			}
			continue
		}
		role := models.RoleUser
		if msg.Role == models.RoleAssistant {
			role = models.RoleAssistant
		}
		anthropicReq.Messages = append(anthropicReq.Messages, AnthropicMsg{
			Role:    role,
			Content: msg.Content,
		})
	}

	jsonBytes, err := json.Marshal(anthropicReq)
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
	c.setHeaders(req, apiKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &relay.NetworkError{Provider: models.ProviderAnthropic, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &relay.NetworkError{Provider: models.ProviderAnthropic, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		message := upstreamErrorFallback
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		return "", &relay.ProviderError{Provider: models.ProviderAnthropic, Status: resp.StatusCode, Message: message}
	}

	var anthropicResp AnthropicResponse
	if err := json.Unmarshal(body, &anthropicResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(anthropicResp.Content) == 0 {
		return "", nil
	}
	return anthropicResp.Content[0].Text, nil
}

func (c *Client) setHeaders(req *http.Request, apiKey string) {
	version := c.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("anthropic-version", version)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
