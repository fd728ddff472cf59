package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ADHDTypeInattentive = "inattentive"
	ADHDTypeHyperactive = "hyperactive"
	ADHDTypeCombined    = "combined"
)

// UserProfile is the 1:1 onboarding record for a user. Once
// OnboardingCompleted is set, resubmission is rejected upstream.
type UserProfile struct {
	ID                  uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID                  `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"userId"`
	ADHDType            string                     `gorm:"not null;column:adhd_type" json:"adhdType"`
	Struggles           datatypes.JSONSlice[string] `gorm:"not null;column:struggles" json:"struggles"`
	SensoryTriggers     datatypes.JSONSlice[string] `gorm:"not null;column:sensory_triggers" json:"sensoryTriggers"`
	Goals               datatypes.JSONSlice[string] `gorm:"not null;column:goals" json:"goals"`
	OnboardingCompleted bool                       `gorm:"not null;default:false;column:onboarding_completed" json:"onboardingCompleted"`
	CreatedAt           time.Time                  `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time                  `gorm:"not null" json:"updatedAt"`
}

func (UserProfile) TableName() string { return "user_profile" }

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
