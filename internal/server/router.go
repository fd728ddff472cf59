package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/focusbridge-backend/internal/handlers"
	"github.com/yungbote/focusbridge-backend/internal/middleware"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log               *logger.Logger
	AllowedOrigin     string
	AuthMiddleware    *middleware.AuthMiddleware
	HealthHandler     *handlers.HealthHandler
	OnboardingHandler *handlers.OnboardingHandler
	ChatHandler       *handlers.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(middleware.ErrorHandler(cfg.Log))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/health", cfg.HealthHandler.Check)

	api := router.Group("/api")
	{
		// Chat takes an explicit userId and carries no auth gate; the client
		// calls it before sign-in completes.
		api.POST("/chat", cfg.ChatHandler.Send)

		// ===============
		// || Protected ||
		// ===============
		api.POST("/onboarding", cfg.AuthMiddleware.RequireAuth(), cfg.OnboardingHandler.Complete)
	}

	return router
}
