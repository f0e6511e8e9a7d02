package prices

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"krishi/models"
	"krishi/mq"
	"krishi/rdx"
	"krishi/store"
	"krishi/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	cacheKey = "market_prices"
	cacheTTL = 15 * time.Minute
)

type Handler struct {
	store store.Storage
}

func NewHandler(s store.Storage) *Handler {
	return &Handler{store: s}
}

// GetPrices serves GET /api/market-prices. The full quote table is small
// and read often, so it sits in Redis until the next update.
func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if val, ok := rdx.Get(r.Context(), cacheKey); ok {
		var cached []models.MarketPrice
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, cached)
			return
		}
	}

	list, err := h.store.GetMarketPrices(r.Context())
	if err != nil {
		log.Printf("prices: list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch market prices")
		return
	}

	if data, err := json.Marshal(list); err == nil {
		rdx.Set(r.Context(), cacheKey, string(data), cacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

type updatePriceRequest struct {
	CropName        string  `json:"cropName"`
	PricePerQuintal float64 `json:"pricePerQuintal"`
	ChangePercent   float64 `json:"changePercent"`
	Market          string  `json:"market"`
}

// UpdatePrice serves POST /api/market-prices. Additive: a new quote row is
// inserted, earlier quotes for the crop stay untouched.
func (h *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CropName == "" || req.Market == "" || req.PricePerQuintal <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	price, err := h.store.UpdateMarketPrice(r.Context(), models.MarketPrice{
		CropName:        req.CropName,
		PricePerQuintal: req.PricePerQuintal,
		ChangePercent:   req.ChangePercent,
		Market:          req.Market,
	})
	if err != nil {
		log.Printf("prices: update failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update market price")
		return
	}

	rdx.Del(r.Context(), cacheKey)
	mq.Emit("market-price-updated", mq.Event{EntityType: "market-price", Method: "POST", EntityID: price.ID})
	utils.RespondWithJSON(w, http.StatusOK, price)
}
