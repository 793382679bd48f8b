package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobnetwork-backend/config"
	_ "go-jobnetwork-backend/docs" // Important for Swagger
	v1 "go-jobnetwork-backend/internal/delivery/http/v1"
	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/internal/repository/postgres"
	"go-jobnetwork-backend/internal/usecase"
	"go-jobnetwork-backend/pkg/auth"
	"go-jobnetwork-backend/pkg/database"
	"go-jobnetwork-backend/pkg/email"
	"go-jobnetwork-backend/pkg/logger"
	"go-jobnetwork-backend/pkg/redis"
	"go-jobnetwork-backend/pkg/storage"
	"go-jobnetwork-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Network Backend API
// @version         1.0
// @description     Backend for a job-board social network: ranked post feed, follows, CVs, applications.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job network backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Document Storage
	var fileStore domain.FileStore = storage.Disabled{}
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to set up document storage", "error", err)
			os.Exit(1)
		}
		fileStore = s3Store
	} else {
		logger.Log.Warn("S3_BUCKET not configured - CV uploads will be unavailable")
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	followRepo := postgres.NewFollowRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup Email Service (status notifications; optional)
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - status notifications disabled")
	}

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo)
	followUC := usecase.NewFollowUsecase(followRepo, userRepo)
	postUC := usecase.NewPostUsecase(postRepo, followRepo, userRepo, cvRepo, time.Now)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, postRepo, cvRepo, userRepo, emailService, time.Now)
	cvUC := usecase.NewCVUsecase(cvRepo, fileStore)

	// 9. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 10. Setup Auth Provider (JWKS, for RS256 tokens)
	jwksProvider := auth.NewProvider(cfg.JWKSUrl)

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		FollowUC:      followUC,
		PostUC:        postUC,
		ApplicationUC: applicationUC,
		CVUC:          cvUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 12. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
