// Package server exposes the relay and the chat store over HTTP: the chat
// relay endpoint, the model catalog, conversation management, and a
// request/response websocket variant of the relay endpoint.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/relay"
	"github.com/unichat-ai/unichat/session"
)

// Router builds the gin engine for the given configuration. Conversation
// endpoints are registered only when a chat store is attached.
func Router(cfg *Config) *gin.Engine {
	router := gin.Default()
	api := router.Group("/api")

	api.POST("/chat", handleChat(cfg))
	api.GET("/chat/ws", handleChatWS(cfg))
	api.GET("/models", handleModels(cfg))

	if cfg.Store != nil {
		runner := session.NewRunner(cfg.Store, cfg.Relay)
		api.GET("/conversations", handleListChats(cfg))
		api.POST("/conversations", handleCreateChat(cfg))
		api.GET("/conversations/:id", handleGetChat(cfg))
		api.DELETE("/conversations/:id", handleDeleteChat(cfg))
		api.POST("/conversations/:id/messages", handleSendMessage(cfg, runner))
		api.POST("/conversations/:id/cancel", handleCancelTurn(runner))
	}

	return router
}

// Run starts the HTTP server on the configured address.
func Run(cfg *Config) error {
	return Router(cfg).Run(cfg.Addr)
}

// handleChat is the stateless relay endpoint: one normalized request in, one
// normalized reply or structured error out.
func handleChat(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Messages and model are required"})
			return
		}

		result, err := cfg.Relay.Send(c.Request.Context(), req)
		if err != nil {
			c.JSON(statusForRelayError(err), models.APIResponse{Success: false, Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: result})
	}
}

// handleModels serves the catalog entries offered for selection.
func handleModels(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		enabled := make([]models.LLMModel, 0, len(cfg.Models))
		for _, m := range cfg.Models {
			if m.Enabled {
				enabled = append(enabled, m)
			}
		}
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: enabled})
	}
}

// statusForRelayError maps the relay error taxonomy onto HTTP status codes:
// client mistakes get 400, upstream and configuration trouble gets 500.
func statusForRelayError(err error) int {
	var validationErr *relay.ValidationError
	var unsupportedErr *relay.UnsupportedProviderError
	if errors.As(err, &validationErr) || errors.As(err, &unsupportedErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
