package prices

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"krishi/models"
	"krishi/store"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(s store.Storage) *httprouter.Router {
	h := NewHandler(s)
	router := httprouter.New()
	router.GET("/api/market-prices", h.GetPrices)
	router.POST("/api/market-prices", h.UpdatePrice)
	return router
}

func getPrices(t *testing.T, router *httprouter.Router) []models.MarketPrice {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/market-prices", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var prices []models.MarketPrice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prices))
	return prices
}

func TestGetPricesReturnsSeeds(t *testing.T) {
	router := newTestRouter(store.NewMemory())
	prices := getPrices(t, router)
	assert.Len(t, prices, 3)
}

func TestUpdatePriceAppendsQuote(t *testing.T) {
	router := newTestRouter(store.NewMemory())
	before := getPrices(t, router)

	payload := `{"cropName":"Onion","pricePerQuintal":1720,"changePercent":4.2,"market":"Nashik Mandi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/market-prices", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.MarketPrice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	after := getPrices(t, router)
	assert.Len(t, after, len(before)+1)
}

func TestUpdatePriceValidation(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/api/market-prices", strings.NewReader(`{"cropName":"Onion"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
