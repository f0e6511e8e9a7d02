package weather

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"krishi/models"
	"krishi/rdx"
	"krishi/utils"

	"github.com/julienschmidt/httprouter"
)

const cacheTTL = 30 * time.Minute

type Handler struct {
	provider Provider
}

func NewHandler(p Provider) *Handler {
	return &Handler{provider: p}
}

// GetWeather serves GET /api/weather?location=...
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		location = DefaultLocation
	}

	cacheKey := "weather:" + strings.ToLower(location)
	if val, ok := rdx.Get(r.Context(), cacheKey); ok {
		var cached models.WeatherReport
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, cached)
			return
		}
	}

	report, err := h.provider.Current(r.Context(), location)
	if err != nil {
		log.Printf("weather: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch weather data")
		return
	}

	if data, err := json.Marshal(report); err == nil {
		rdx.Set(r.Context(), cacheKey, string(data), cacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, report)
}
