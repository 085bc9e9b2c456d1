package router

import (
	"log"

	"github.com/artemkap/goblog/backend/internal/handlers"
	"github.com/artemkap/goblog/backend/internal/middleware"
	"github.com/artemkap/goblog/backend/internal/repositories"
	"github.com/artemkap/goblog/backend/internal/storage"
	"github.com/artemkap/goblog/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, mgClient *mongo.Client, cfg *config.Config) error {
	db := mgClient.Database("blog")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)

	// --- Upload strategy is picked once at startup, not per request ---
	var images handlers.ImageRemover
	switch cfg.UploadStrategy {
	case "s3":
		signedStore, err := storage.NewSignedURLStorage(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey,
		)
		if err != nil {
			return err
		}
		signedUploadHandler := handlers.NewSignedUploadHandler(signedStore)
		e.GET("/s3Url", signedUploadHandler.SignURL)
		log.Println("Pre-signed URL upload route configured.")
	default:
		localStore := storage.NewLocalStorage(cfg.UploadDir)
		images = localStore
		uploadHandler := handlers.NewUploadHandler(localStore)
		e.POST("/upload", uploadHandler.Upload, middleware.JWTAuthMiddleware(cfg.JWTSecret))
		e.Static("/uploads", cfg.UploadDir)
		log.Println("Local upload routes configured.")
	}

	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)

	// Auth routes
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth)
	log.Println("Auth routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo, images)
	e.GET("/posts", postHandler.GetPosts)
	e.GET("/posts/:id", postHandler.GetPost)
	e.POST("/posts", postHandler.CreatePost, auth)
	e.PATCH("/posts/:id", postHandler.UpdatePost, auth)
	e.DELETE("/posts/:id", postHandler.DeletePost, auth)
	e.GET("/tags", postHandler.GetTags)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(postRepo, userRepo)
	e.GET("/comments", commentHandler.GetComments)
	e.POST("/comments", commentHandler.AddComment, auth)
	e.DELETE("/comments/:id", commentHandler.DeleteComment, auth)
	e.POST("/postByComment", commentHandler.PostsByComment)
	log.Println("Comment routes configured.")

	log.Println("All routes configured.")
	return nil
}
