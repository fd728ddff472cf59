package app

import (
	"github.com/yungbote/focusbridge-backend/internal/clients/supabase"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/utils"
)

type Config struct {
	Environment   string
	Host          string
	Port          string
	AllowedOrigin string
	Supabase      supabase.Config
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Environment:   utils.GetEnv("APP_ENV", "development", log),
		Host:          utils.GetEnv("HOST", "0.0.0.0", log),
		Port:          utils.GetEnv("PORT", "3001", log),
		AllowedOrigin: utils.GetEnv("CORS_ORIGIN", "http://localhost:3000", log),
		Supabase:      supabase.ConfigFromEnv(log),
	}
}
