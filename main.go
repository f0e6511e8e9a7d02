package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"krishi/advisory"
	"krishi/db"
	"krishi/middleware"
	"krishi/ratelim"
	"krishi/rdx"
	"krishi/routes"
	"krishi/store"
	"krishi/weather"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
)

func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// Set up all routes and middleware layers
func setupRouter(storage store.Storage, adv advisory.Client, wx weather.Provider) http.Handler {
	router := httprouter.New()
	router.GET("/health", Index)

	rateLimiter := ratelim.NewRateLimiter()

	routes.AddChatRoutes(router, storage, adv, rateLimiter)
	routes.AddConnectionRoutes(router, storage)
	routes.AddDiseaseRoutes(router, storage, adv, rateLimiter)
	routes.AddHomeRoutes(router, storage)
	routes.AddMarketplaceRoutes(router, storage)
	routes.AddPriceRoutes(router, storage)
	routes.AddSchemeRoutes(router, storage)
	routes.AddStaticRoutes(router)
	routes.AddUserRoutes(router, storage)
	routes.AddWeatherRoutes(router, wx)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return middleware.Recover(middleware.Logging(middleware.SecurityHeaders(c.Handler(router))))
}

func newStorage(ctx context.Context) (store.Storage, *mongo.Client) {
	if os.Getenv("KRISHI_STORE") != "mongo" {
		return store.NewMemory(), nil
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatalf("KRISHI_STORE=mongo requires MONGODB_URI")
	}
	client, database, err := db.Connect(ctx, uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	m := store.NewMongo(database)
	if err := m.EnsureSeed(ctx); err != nil {
		log.Fatalf("Failed to seed MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")
	return m, client
}

func newAdvisory() advisory.Client {
	provider := os.Getenv("ADVISORY_PROVIDER")
	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "mock" || (provider == "" && apiKey == "") {
		log.Println("Advisory: using mock client")
		return advisory.NewMock()
	}
	return advisory.NewOpenAI(apiKey, os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_MODEL"))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	ctx := context.Background()

	storage, mongoClient := newStorage(ctx)
	if mongoClient != nil {
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Mongo disconnect failed: %v", err)
			}
		}()
	}

	rdx.Init(os.Getenv("REDIS_ADDR"))

	handler := setupRouter(storage, newAdvisory(), weather.NewStatic())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Krishi AI server started on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on port %s: %v", port, err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	log.Println("Shutdown signal received. Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
