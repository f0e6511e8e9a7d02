package chat

import (
	"log"
	"net/http"
	"time"

	"krishi/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type socketMessage struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
	UserID   string `json:"userId,omitempty"`
}

type socketReply struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
	Error     string    `json:"error,omitempty"`
}

// Socket serves GET /ws/chat: a long-lived advisory conversation over one
// websocket, same semantics per message as POST /api/chat.
func (h *Handler) Socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var in socketMessage
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		if in.Message == "" {
			if err := conn.WriteJSON(socketReply{Error: "Message is required"}); err != nil {
				return
			}
			continue
		}
		if in.Language == "" {
			in.Language = "en"
		}

		response, err := h.advisory.GenerateAdvice(r.Context(), in.Message, in.Language)
		if err != nil {
			log.Printf("chat: advice failed: %v", err)
			if err := conn.WriteJSON(socketReply{Error: "Failed to generate response"}); err != nil {
				return
			}
			continue
		}

		if in.UserID != "" {
			if _, err := h.store.CreateChatMessage(r.Context(), models.ChatMessage{
				UserID:   in.UserID,
				Message:  in.Message,
				Response: response,
				Language: in.Language,
			}); err != nil {
				log.Printf("chat: persist failed: %v", err)
			}
		}

		if err := conn.WriteJSON(socketReply{
			Message:   in.Message,
			Response:  response,
			Language:  in.Language,
			CreatedAt: time.Now(),
		}); err != nil {
			return
		}
	}
}
