package weather

import (
	"context"

	"krishi/models"
)

const DefaultLocation = "Pune, Maharashtra"

// Provider returns the current conditions and short forecast for a
// location. The static implementation below stands in until a real
// weather API is wired up; callers only ever see this interface.
type Provider interface {
	Current(ctx context.Context, location string) (models.WeatherReport, error)
}

type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) Current(_ context.Context, location string) (models.WeatherReport, error) {
	if location == "" {
		location = DefaultLocation
	}
	return models.WeatherReport{
		Location:    location,
		Temperature: 28,
		Condition:   "Partly Cloudy",
		Forecast: []models.ForecastDay{
			{Day: "Today", High: 32, Low: 24, Condition: "Sunny", Icon: "fas fa-sun"},
			{Day: "Tomorrow", High: 26, Low: 20, Condition: "Rainy", Icon: "fas fa-cloud-rain"},
			{Day: "Day 3", High: 29, Low: 22, Condition: "Cloudy", Icon: "fas fa-cloud"},
		},
		Advisory: "Rain expected tomorrow. Good time for transplanting. Avoid pesticide application for next 2 days.",
	}, nil
}
