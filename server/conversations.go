package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unichat-ai/unichat/chat"
	"github.com/unichat-ai/unichat/models"
	"github.com/unichat-ai/unichat/session"
)

// createChatRequest is the body for POST /api/conversations.
type createChatRequest struct {
	Model *models.LLMModel `json:"model"`
}

// sendMessageRequest is the body for POST /api/conversations/:id/messages.
type sendMessageRequest struct {
	Content string `json:"content"`
}

func handleListChats(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: cfg.Store.Chats()})
	}
}

func handleCreateChat(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Model == nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Model is required"})
			return
		}

		id := cfg.Store.CreateChat(*req.Model)
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: cfg.Store.ChatByID(id)})
	}
}

func handleGetChat(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatRecord := cfg.Store.ChatByID(c.Param("id"))
		if chatRecord == nil {
			c.JSON(http.StatusNotFound, models.APIResponse{Success: false, Error: "Conversation not found"})
			return
		}
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: chatRecord})
	}
}

func handleDeleteChat(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg.Store.DeleteChat(c.Param("id"))
		c.JSON(http.StatusOK, models.APIResponse{Success: true})
	}
}

// handleSendMessage runs a full turn against the conversation: user message,
// relay round trip, assistant reply.
func handleSendMessage(cfg *Config, runner *session.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Content is required"})
			return
		}

		reply, err := runner.SendMessage(c.Request.Context(), c.Param("id"), req.Content)
		if err != nil {
			switch {
			case errors.Is(err, chat.ErrChatNotFound):
				c.JSON(http.StatusNotFound, models.APIResponse{Success: false, Error: "Conversation not found"})
			case errors.Is(err, context.Canceled):
				c.JSON(http.StatusOK, models.APIResponse{Success: false, Error: "Turn cancelled"})
			default:
				c.JSON(statusForRelayError(err), models.APIResponse{Success: false, Error: err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: reply})
	}
}

func handleCancelTurn(runner *session.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		runner.Cancel(c.Param("id"))
		c.JSON(http.StatusOK, models.APIResponse{Success: true})
	}
}
