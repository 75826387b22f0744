// ./connect21-backend/cmd/server/main.go
package main

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	"connect21/backend/internal/config"
	"connect21/backend/internal/database"
	"connect21/backend/internal/handlers"
	"connect21/backend/internal/middleware"
	"connect21/backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	credentials, err := cfg.ServiceAccountJSON()
	if err != nil {
		log.Fatalf("error preparing service account credentials: %v", err)
	}

	// Initialize Firebase Admin SDK
	ctx := context.Background()
	opt := option.WithCredentialsJSON(credentials)
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: cfg.DatabaseURL}, opt)
	if err != nil {
		log.Fatalf("error initializing app: %v", err)
	}

	store, err := database.NewStore(ctx, app)
	if err != nil {
		log.Fatalf("error getting Database client: %v", err)
	}
	identity, err := services.NewIdentityService(ctx, app)
	if err != nil {
		log.Fatalf("error getting Auth client: %v", err)
	}
	directory, err := services.NewDirectoryService(ctx, credentials, cfg.DirectoryAdmin)
	if err != nil {
		log.Fatalf("Failed to initialize Directory Service: %v", err)
	}

	h := handlers.New(store, identity, directory)

	// Initialize Gin Router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.GET("/", handlers.HealthCheck)
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/categories", h.GetCategories)
		api.GET("/prompts/:dt", h.GetPrompts)
		api.GET("/users", h.ListUsers)
		api.GET("/userData", h.GetUserData)
		api.POST("/users/adduser", h.AddUser)
		api.POST("/users/createuser", h.CreateUser)
		api.GET("/getdbpath", h.GetDBPath)
		api.POST("/gamedata", h.SaveGameData)

		v1 := api.Group("/v1")
		{
			v1.POST("/addtester/android", h.AddAndroidTester)
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
