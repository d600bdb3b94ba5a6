package google

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/relay"
)

const (
	DefaultAPIKeyEnv = "GEMINI_API_KEY"
	DefaultMaxTokens = 4000
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Client implements the relay Provider interface for the Gemini API through
// the official genai SDK.
type Client struct {
	APIKeyEnv string // Optional: env var name for API key (defaults to GEMINI_API_KEY)
	MaxTokens int32  // Optional: defaults to 4000
}

// Send maps the message history onto Gemini contents: the first system-role
// message becomes the system instruction, assistant messages take the "model"
// role, everything else the "user" role. One attempt, no retries.
func (c *Client) Send(ctx context.Context, messages []models.Message, model models.LLMModel) (string, error) {
	apiKeyEnv := c.APIKeyEnv
	if apiKeyEnv == "" {
		apiKeyEnv = DefaultAPIKeyEnv
	}
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return "", &relay.ConfigurationError{Provider: models.ProviderGoogle, Message: "Gemini API key not configured"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &relay.NetworkError{Provider: models.ProviderGoogle, Err: err}
	}

	system, contents := buildContents(messages)

	maxTokens := c.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	config := &genai.GenerateContentConfig{MaxOutputTokens: maxTokens}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, model.ID, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &relay.ProviderError{Provider: models.ProviderGoogle, Status: apiErr.Code, Message: apiErr.Message}
		}
		return "", &relay.NetworkError{Provider: models.ProviderGoogle, Err: err}
	}

	return resp.Text(), nil
}

// buildContents maps the message history onto Gemini contents: the first
// system-role message is hoisted out as the system instruction, assistant
// messages take the "model" role, everything else the "user" role.
func buildContents(messages []models.Message) (string, []*genai.Content) {
	var system string
	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			if system == "" {
				system = msg.Content
			}
		case models.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	return system, contents
}
