package marketplace

import (
	"encoding/json"
	"log"
	"net/http"

	"krishi/models"
	"krishi/mq"
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

// GetItems serves GET /api/marketplace?category=...
// category is an exact match; no category returns the whole table.
func (h *Handler) GetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := h.store.GetMarketplaceItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("marketplace: list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch marketplace items")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

type createItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	SellerID    string  `json:"sellerId"`
	InStock     *bool   `json:"inStock"`
}

// CreateItem serves POST /api/marketplace.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Description == "" || req.Category == "" || req.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	item, err := h.store.CreateMarketplaceItem(r.Context(), models.MarketplaceItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		SellerID:    req.SellerID,
		InStock:     inStock,
	})
	if err != nil {
		log.Printf("marketplace: create failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create marketplace item")
		return
	}

	mq.Emit("marketplace-item-created", mq.Event{EntityType: "marketplace-item", Method: "POST", EntityID: item.ID, UserID: item.SellerID})
	utils.RespondWithJSON(w, http.StatusOK, item)
}
