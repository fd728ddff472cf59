package repos

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/focusbridge-backend/internal/pkg/dbctx"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
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
	// A second pool connection would see a fresh in-memory database.
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

func testDBC() dbctx.Context {
	return dbctx.Context{Ctx: context.Background()}
}

func testLog() *logger.Logger {
	return logger.NewNop()
}
