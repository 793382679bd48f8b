package v1

import (
	"net/http"
	"time"

	"go-jobnetwork-backend/config"
	"go-jobnetwork-backend/internal/delivery/http/middleware"
	"go-jobnetwork-backend/internal/delivery/http/response"
	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	FollowUC      domain.FollowUsecase
	PostUC        domain.PostUsecase
	ApplicationUC domain.ApplicationUsecase
	CVUC          domain.CVUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewFollowHandler(protected, deps.FollowUC)
		NewPostHandler(protected, deps.PostUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewCVHandler(protected, deps.CVUC, middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()))
	}

	return r
}
