package repos

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/focusbridge-backend/internal/pkg/dbctx"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/types"
)

type ConversationRepo interface {
	Create(dbc dbctx.Context, conversation *types.Conversation) (*types.Conversation, error)
	// GetByIDForUser scopes the lookup to the owning user so a foreign
	// conversation id behaves exactly like a missing one.
	GetByIDForUser(dbc dbctx.Context, id, userID uuid.UUID) (*types.Conversation, error)
}

type conversationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConversationRepo(db *gorm.DB, log *logger.Logger) ConversationRepo {
	return &conversationRepo{db: db, log: log.With("repo", "ConversationRepo")}
}

func (r *conversationRepo) Create(dbc dbctx.Context, conversation *types.Conversation) (*types.Conversation, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(conversation).Error; err != nil {
		return nil, err
	}
	return conversation, nil
}

func (r *conversationRepo) GetByIDForUser(dbc dbctx.Context, id, userID uuid.UUID) (*types.Conversation, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.Conversation
	if err := txx.WithContext(dbc.Ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
