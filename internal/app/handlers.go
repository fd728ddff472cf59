package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/focusbridge-backend/internal/handlers"
	"github.com/yungbote/focusbridge-backend/internal/middleware"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/server"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

type Handlers struct {
	Health     *handlers.HealthHandler
	Onboarding *handlers.OnboardingHandler
	Chat       *handlers.ChatHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     handlers.NewHealthHandler(serviceset.Health),
		Onboarding: handlers.NewOnboardingHandler(serviceset.Onboarding),
		Chat:       handlers.NewChatHandler(serviceset.Chat),
	}
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:               log,
		AllowedOrigin:     cfg.AllowedOrigin,
		AuthMiddleware:    middlewareset.Auth,
		HealthHandler:     handlerset.Health,
		OnboardingHandler: handlerset.Onboarding,
		ChatHandler:       handlerset.Chat,
	})
}
