package repos

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/focusbridge-backend/internal/pkg/dbctx"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/types"
)

type UserProfileRepo interface {
	// GetByUserID returns (nil, nil) when the user has no profile yet.
	GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.UserProfile, error)
	// Upsert creates the profile or updates the existing row for the same
	// user_id in one statement, then returns the stored row.
	Upsert(dbc dbctx.Context, profile *types.UserProfile) (*types.UserProfile, error)
}

type userProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserProfileRepo(db *gorm.DB, log *logger.Logger) UserProfileRepo {
	return &userProfileRepo{db: db, log: log.With("repo", "UserProfileRepo")}
}

func (r *userProfileRepo) GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.UserProfile, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.UserProfile
	if err := txx.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *userProfileRepo) Upsert(dbc dbctx.Context, profile *types.UserProfile) (*types.UserProfile, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"adhd_type",
				"struggles",
				"sensory_triggers",
				"goals",
				"onboarding_completed",
				"updated_at",
			}),
		}).
		Create(profile).Error; err != nil {
		return nil, err
	}
	// Re-read so the conflict path returns the persisted row (its original id
	// and created_at), not the candidate we inserted with.
	return r.GetByUserID(dbc, profile.UserID)
}
