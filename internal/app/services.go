package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/focusbridge-backend/internal/clients/supabase"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Onboarding services.OnboardingService
	Chat       services.ChatService
	Health     services.HealthService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	supabaseClient, err := supabase.New(log, cfg.Supabase)
	if err != nil {
		return Services{}, fmt.Errorf("init supabase client: %w", err)
	}

	return Services{
		Auth:       services.NewAuthService(log, supabaseClient),
		Onboarding: services.NewOnboardingService(db, log, reposet.User, reposet.UserProfile),
		Chat:       services.NewChatService(db, log, reposet.User, reposet.Conversation, reposet.Message),
		Health:     services.NewHealthService(db, log),
	}, nil
}
