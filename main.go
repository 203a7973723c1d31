package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"mingle_server/logger"
	"mingle_server/routes"
	"mingle_server/services"
	"mingle_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	appLog := logger.New(os.Getenv("LOG_LEVEL"))

	// Initialize DynamoDB client and service
	appLog.Info("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(appLog)
	dynamoService := &services.DynamoService{Client: dynamoClient, Log: appLog.With("service", "dynamo")}

	// Device session storage: Redis when configured, in-memory otherwise.
	var sessionStore services.KeyValueStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisStore, err := services.NewRedisStore(addr, appLog)
		if err != nil {
			appLog.Fatal("Failed to connect to Redis", "err", err)
		}
		defer redisStore.Close()
		sessionStore = redisStore
	} else {
		appLog.Warn("REDIS_ADDR not set, session storage is in-memory only")
		sessionStore = services.NewMemoryStore()
	}

	// Initialize Services
	imageCache := services.NewImageCache()
	s3Service := services.NewS3Service(imageCache, appLog.With("service", "s3"))
	eventService := &services.EventService{Dynamo: dynamoService, Log: appLog.With("service", "events")}
	statsService := &services.StatsService{Dynamo: dynamoService, Log: appLog.With("service", "stats")}
	interactionService := &services.InteractionService{Dynamo: dynamoService, Log: appLog.With("service", "interactions")}
	profileService := &services.ProfileService{Dynamo: dynamoService, Images: s3Service, Log: appLog.With("service", "profiles")}
	sessionService := &services.SessionService{Store: sessionStore, Cache: imageCache, Log: appLog.With("service", "sessions")}

	// Realtime dashboard hub
	hub := socket.NewHub(appLog.With("service", "socket"))
	go func() {
		if err := hub.Server().Serve(); err != nil {
			appLog.Error("Socket server stopped", "err", err)
		}
	}()
	defer hub.Server().Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Mingle")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterStatsRoutes(r, statsService, hub, appLog.With("controller", "stats"))
	routes.RegisterSessionRoutes(r, sessionService, appLog.With("controller", "session"))
	routes.RegisterEventRoutes(r, eventService, appLog.With("controller", "events"))
	routes.RegisterProfileRoutes(r, profileService, interactionService, appLog.With("controller", "profiles"))
	routes.RegisterInteractionRoutes(r, interactionService, appLog.With("controller", "interactions"))
	routes.RegisterS3Routes(r, s3Service, appLog.With("controller", "s3"))
	r.Handle("/socket.io/", hub.Server())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	appLog.Info("Starting server", "port", port)
	if err := http.ListenAndServe(":"+port, corsHandler); err != nil {
		appLog.Fatal("Server stopped", "err", err)
	}
}
