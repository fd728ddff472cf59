package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/repos"
)

type Repos struct {
	User         repos.UserRepo
	UserProfile  repos.UserProfileRepo
	Conversation repos.ConversationRepo
	Message      repos.MessageRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		UserProfile:  repos.NewUserProfileRepo(db, log),
		Conversation: repos.NewConversationRepo(db, log),
		Message:      repos.NewMessageRepo(db, log),
	}
}
