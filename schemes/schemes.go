package schemes

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

// GetSchemes serves GET /api/government-schemes?active=true
func (h *Handler) GetSchemes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	activeOnly := r.URL.Query().Get("active") == "true"
	list, err := h.store.GetGovernmentSchemes(r.Context(), activeOnly)
	if err != nil {
		log.Printf("schemes: list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch government schemes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
