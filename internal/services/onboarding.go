package services

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/focusbridge-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/focusbridge-backend/internal/pkg/errors"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/repos"
	"github.com/yungbote/focusbridge-backend/internal/requestdata"
	"github.com/yungbote/focusbridge-backend/internal/types"
)

type OnboardingInput struct {
	ADHDType        string
	Struggles       []string
	SensoryTriggers []string
	Goals           []string
}

type OnboardingResult struct {
	User    *types.User
	Profile *types.UserProfile
}

type OnboardingService interface {
	// Complete records the onboarding profile for the authenticated user.
	// Safe to retry until a completed profile exists; after that it conflicts.
	Complete(ctx context.Context, input OnboardingInput) (*OnboardingResult, error)
}

type onboardingService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	profileRepo repos.UserProfileRepo
}

func NewOnboardingService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, profileRepo repos.UserProfileRepo) OnboardingService {
	return &onboardingService{
		db:          db,
		log:         log.With("service", "OnboardingService"),
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *onboardingService) Complete(ctx context.Context, input OnboardingInput) (*OnboardingResult, error) {
	au := requestdata.GetAuthUser(ctx)
	if au == nil {
		return nil, apperrors.Unauthorized("missing authenticated user")
	}
	if input.SensoryTriggers == nil {
		input.SensoryTriggers = []string{}
	}

	var result OnboardingResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		profile, err := s.profileRepo.GetByUserID(dbc, au.ID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if profile != nil && profile.OnboardingCompleted {
			return apperrors.Conflict("User has already completed onboarding")
		}

		user, err := s.userRepo.GetByID(dbc, au.ID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if user == nil {
			// First contact with this identity: reconcile the provider
			// subject into a local row.
			user, err = s.userRepo.Create(dbc, &types.User{ID: au.ID, Email: au.Email})
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
		}

		stored, err := s.profileRepo.Upsert(dbc, &types.UserProfile{
			UserID:              user.ID,
			ADHDType:            input.ADHDType,
			Struggles:           datatypes.NewJSONSlice(input.Struggles),
			SensoryTriggers:     datatypes.NewJSONSlice(input.SensoryTriggers),
			Goals:               datatypes.NewJSONSlice(input.Goals),
			OnboardingCompleted: true,
		})
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		result.User = user
		result.Profile = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Onboarding completed", "user_id", au.ID)
	return &result, nil
}
