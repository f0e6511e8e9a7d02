package connections

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

func listConnections(t *testing.T, query string) []models.BusinessConnection {
	t.Helper()
	h := NewHandler(store.NewMemory())
	router := httprouter.New()
	router.GET("/api/business-connections", h.GetConnections)

	req := httptest.NewRequest(http.MethodGet, "/api/business-connections"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var conns []models.BusinessConnection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conns))
	return conns
}

func TestGetConnectionsNoFilter(t *testing.T) {
	assert.Len(t, listConnections(t, ""), 2)
}

func TestGetConnectionsCropSubstringIsCaseInsensitive(t *testing.T) {
	for _, q := range []string{"tom", "TOM", "Tom"} {
		conns := listConnections(t, "?crop="+q)
		require.Len(t, conns, 1, "query %q", q)
		assert.Equal(t, "Tomatoes", conns[0].BuyingCrop)
	}
}

func TestGetConnectionsNoMatchIsEmptyList(t *testing.T) {
	assert.Empty(t, listConnections(t, "?crop=sugarcane"))
}
