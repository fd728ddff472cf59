package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/repos"
	"github.com/yungbote/focusbridge-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gormDB.AutoMigrate(
		&types.User{},
		&types.UserProfile{},
		&types.Conversation{},
		&types.Message{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return gormDB
}

type testEnv struct {
	db          *gorm.DB
	userRepo    repos.UserRepo
	profileRepo repos.UserProfileRepo
	convRepo    repos.ConversationRepo
	messageRepo repos.MessageRepo
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gormDB := newTestDB(t)
	log := logger.NewNop()
	return testEnv{
		db:          gormDB,
		userRepo:    repos.NewUserRepo(gormDB, log),
		profileRepo: repos.NewUserProfileRepo(gormDB, log),
		convRepo:    repos.NewConversationRepo(gormDB, log),
		messageRepo: repos.NewMessageRepo(gormDB, log),
	}
}
