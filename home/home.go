package home

import (
	"log"
	"net/http"
	"strings"

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

// GetHomeContent handles the dashboard endpoints under /api/home/:section.
func (h *Handler) GetHomeContent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	section := strings.ToLower(ps.ByName("section"))

	var (
		data interface{}
		err  error
	)

	switch section {
	case "categories":
		data, err = h.getMarketplaceCategories(r)
	case "schemes":
		data, err = h.store.GetGovernmentSchemes(r.Context(), true)
	case "prices":
		data, err = h.store.GetMarketPrices(r.Context())
	case "seasonal-tips":
		data, err = getSeasonalTips()
	default:
		utils.RespondWithError(w, http.StatusNotFound, "Invalid API route")
		return
	}

	if err != nil {
		log.Printf("home: %s failed: %v", section, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch data")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, data)
}

// getMarketplaceCategories returns the distinct categories currently on sale.
func (h *Handler) getMarketplaceCategories(r *http.Request) ([]string, error) {
	items, err := h.store.GetMarketplaceItems(r.Context(), "")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}

// getSeasonalTips returns a list of seasonal farming tips.
func getSeasonalTips() ([]string, error) {
	return []string{
		"Time to sow wheat in North India",
		"Tomatoes thrive in warm afternoons",
		"Use shade nets for spinach during peak sun",
	}, nil
}
