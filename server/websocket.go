package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/unichat-ai/unichat/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleChatWS serves the relay over a websocket: one ChatRequest frame in,
// one APIResponse frame out. No token streaming; each turn is a single
// request/response pair like the HTTP endpoint.
func handleChatWS(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		for {
			var req models.ChatRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("WebSocket error: %v", err)
				}
				return
			}

			result, err := cfg.Relay.Send(c.Request.Context(), req)
			if err != nil {
				if writeErr := conn.WriteJSON(models.APIResponse{Success: false, Error: err.Error()}); writeErr != nil {
					return
				}
				continue
			}

			if err := conn.WriteJSON(models.APIResponse{Success: true, Data: result}); err != nil {
				return
			}
		}
	}
}
