package weather

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"krishi/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getWeather(t *testing.T, query string) models.WeatherReport {
	t.Helper()
	h := NewHandler(NewStatic())
	router := httprouter.New()
	router.GET("/api/weather", h.GetWeather)

	req := httptest.NewRequest(http.MethodGet, "/api/weather"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report models.WeatherReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	return report
}

func TestGetWeatherDefaultsLocation(t *testing.T) {
	report := getWeather(t, "")
	assert.Equal(t, DefaultLocation, report.Location)
	assert.Len(t, report.Forecast, 3)
	assert.NotEmpty(t, report.Advisory)
}

func TestGetWeatherEchoesRequestedLocation(t *testing.T) {
	report := getWeather(t, "?location=Nagpur")
	assert.Equal(t, "Nagpur", report.Location)
	assert.Len(t, report.Forecast, 3)
}
