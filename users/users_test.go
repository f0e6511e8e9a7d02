package users

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

func newTestRouter() *httprouter.Router {
	h := NewHandler(store.NewMemory())
	router := httprouter.New()
	router.POST("/api/users", h.CreateUser)
	router.GET("/api/users/:username", h.GetUser)
	return router
}

func postUser(t *testing.T, router *httprouter.Router, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndFetchUser(t *testing.T) {
	router := newTestRouter()

	rec := postUser(t, router, `{"username":"ravi","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.NotEmpty(t, user.ID)
	// the password never leaves the server
	assert.NotContains(t, rec.Body.String(), "secret")

	getReq := httptest.NewRequest(http.MethodGet, "/api/users/ravi", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)
	assert.Contains(t, getRec.Body.String(), user.ID)
}

func TestCreateUserValidationAndConflict(t *testing.T) {
	router := newTestRouter()

	rec := postUser(t, router, `{"username":"ravi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	require.Equal(t, http.StatusOK, postUser(t, router, `{"username":"ravi","password":"a"}`).Code)
	assert.Equal(t, http.StatusConflict, postUser(t, router, `{"username":"ravi","password":"b"}`).Code)
}

func TestGetUnknownUser(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/users/nobody", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
