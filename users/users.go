package users

import (
	"encoding/json"
	"log"
	"net/http"

	"krishi/store"
	"krishi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	store store.Storage
}

func NewHandler(s store.Storage) *Handler {
	return &Handler{store: s}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUser serves POST /api/users. There is no authentication layer;
// accounts only exist so history lookups have an owner.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, req.Password)
	if err == store.ErrDuplicateUsername {
		utils.RespondWithError(w, http.StatusConflict, "Username already taken")
		return
	}
	if err != nil {
		log.Printf("users: create failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GetUser serves GET /api/users/:username.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := h.store.GetUserByUsername(r.Context(), ps.ByName("username"))
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("users: lookup failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
