package home

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"krishi/store"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getSection(t *testing.T, section string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(store.NewMemory())
	router := httprouter.New()
	router.GET("/api/home/:section", h.GetHomeContent)

	req := httptest.NewRequest(http.MethodGet, "/api/home/"+section, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHomeCategories(t *testing.T) {
	rec := getSection(t, "categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.ElementsMatch(t, []string{"machinery", "technology", "testing", "irrigation"}, categories)
}

func TestHomeSections(t *testing.T) {
	for _, section := range []string{"schemes", "prices", "seasonal-tips"} {
		rec := getSection(t, section)
		assert.Equal(t, http.StatusOK, rec.Code, section)
		assert.NotEqual(t, "[]", rec.Body.String(), section)
	}
}

func TestHomeUnknownSection(t *testing.T) {
	rec := getSection(t, "lottery")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
