package routes

import (
	"net/http"

	"krishi/advisory"
	"krishi/chat"
	"krishi/connections"
	"krishi/diseases"
	"krishi/home"
	"krishi/marketplace"
	"krishi/prices"
	"krishi/ratelim"
	"krishi/schemes"
	"krishi/store"
	"krishi/users"
	"krishi/weather"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/uploads/diseases/*filepath", http.Dir("static/uploads/diseases"))
}

func AddDiseaseRoutes(router *httprouter.Router, s store.Storage, a advisory.Client, rl *ratelim.RateLimiter) {
	h := diseases.NewHandler(s, a)
	router.POST("/api/detect-disease", rl.Limit(h.DetectDisease))
	router.GET("/api/user/:userId/diseases", h.GetUserDiseases)
}

func AddChatRoutes(router *httprouter.Router, s store.Storage, a advisory.Client, rl *ratelim.RateLimiter) {
	h := chat.NewHandler(s, a)
	router.POST("/api/chat", rl.Limit(h.Chat))
	router.GET("/api/user/:userId/chats", h.GetUserChats)
	router.GET("/ws/chat", h.Socket)
}

func AddWeatherRoutes(router *httprouter.Router, p weather.Provider) {
	h := weather.NewHandler(p)
	router.GET("/api/weather", h.GetWeather)
}

func AddMarketplaceRoutes(router *httprouter.Router, s store.Storage) {
	h := marketplace.NewHandler(s)
	router.GET("/api/marketplace", h.GetItems)
	router.POST("/api/marketplace", h.CreateItem)
}

func AddSchemeRoutes(router *httprouter.Router, s store.Storage) {
	h := schemes.NewHandler(s)
	router.GET("/api/government-schemes", h.GetSchemes)
}

func AddPriceRoutes(router *httprouter.Router, s store.Storage) {
	h := prices.NewHandler(s)
	router.GET("/api/market-prices", h.GetPrices)
	router.POST("/api/market-prices", h.UpdatePrice)
}

func AddConnectionRoutes(router *httprouter.Router, s store.Storage) {
	h := connections.NewHandler(s)
	router.GET("/api/business-connections", h.GetConnections)
}

func AddUserRoutes(router *httprouter.Router, s store.Storage) {
	h := users.NewHandler(s)
	router.POST("/api/users", h.CreateUser)
	router.GET("/api/users/:username", h.GetUser)
}

func AddHomeRoutes(router *httprouter.Router, s store.Storage) {
	h := home.NewHandler(s)
	router.GET("/api/home/:section", h.GetHomeContent)
}
