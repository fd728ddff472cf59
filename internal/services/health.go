package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/yungbote/focusbridge-backend/internal/pkg/errors"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
)

type HealthService interface {
	Check(ctx context.Context) error
}

type healthService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthService(db *gorm.DB, log *logger.Logger) HealthService {
	return &healthService{db: db, log: log.With("service", "HealthService")}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		s.log.Warn("Store ping failed", "error", err)
		return fmt.Errorf("%w: %v", apperrors.Unavailable("Database connection failed"), err)
	}
	return nil
}
