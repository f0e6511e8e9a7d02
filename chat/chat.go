package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"krishi/advisory"
	"krishi/models"
	"krishi/mq"
	"krishi/store"
	"krishi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	store    store.Storage
	advisory advisory.Client
}

func NewHandler(s store.Storage, a advisory.Client) *Handler {
	return &Handler{store: s, advisory: a}
}

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	UserID   string `json:"userId"`
}

// Chat serves POST /api/chat. One request is one question/answer exchange;
// the pair is stored as a single record when a userId is supplied.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	response, err := h.advisory.GenerateAdvice(r.Context(), req.Message, req.Language)
	if err != nil {
		log.Printf("chat: advice failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	if req.UserID != "" {
		msg, err := h.store.CreateChatMessage(r.Context(), models.ChatMessage{
			UserID:   req.UserID,
			Message:  req.Message,
			Response: response,
			Language: req.Language,
		})
		if err != nil {
			log.Printf("chat: persist failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate response")
			return
		}
		mq.Emit("chat-message-created", mq.Event{EntityType: "chat-message", Method: "POST", EntityID: msg.ID, UserID: req.UserID})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"response": response})
}

// GetUserChats serves GET /api/user/:userId/chats.
func (h *Handler) GetUserChats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	msgs, err := h.store.GetChatMessagesByUser(r.Context(), ps.ByName("userId"))
	if err != nil {
		log.Printf("chat: history lookup failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user chat history")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, msgs)
}
