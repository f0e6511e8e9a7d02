package schemes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"krishi/models"
	"krishi/store"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listSchemes(t *testing.T, query string) []models.GovernmentScheme {
	t.Helper()
	h := NewHandler(store.NewMemory())
	router := httprouter.New()
	router.GET("/api/government-schemes", h.GetSchemes)

	req := httptest.NewRequest(http.MethodGet, "/api/government-schemes"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var schemes []models.GovernmentScheme
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schemes))
	return schemes
}

func TestGetSchemesReturnsAll(t *testing.T) {
	schemes := listSchemes(t, "")
	assert.Len(t, schemes, 3)
	for _, s := range schemes {
		assert.NotEmpty(t, s.Eligibility)
		assert.NotEmpty(t, s.DocumentsRequired)
	}
}

func TestGetSchemesActiveOnly(t *testing.T) {
	schemes := listSchemes(t, "?active=true")
	require.Len(t, schemes, 2)
	for _, s := range schemes {
		assert.Equal(t, "active", s.Status)
	}
}
