package connections

import (
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

// GetConnections serves GET /api/business-connections?crop=...
// The crop filter is a case-insensitive substring match on buyingCrop.
func (h *Handler) GetConnections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := h.store.GetBusinessConnections(r.Context(), r.URL.Query().Get("crop"))
	if err != nil {
		log.Printf("connections: list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch business connections")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
