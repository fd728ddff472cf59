package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/focusbridge-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/focusbridge-backend/internal/pkg/errors"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/repos"
	"github.com/yungbote/focusbridge-backend/internal/types"
)

// assistantPlaceholder is the stand-in reply until response generation is
// integrated.
const assistantPlaceholder = "I received your message. AI integration is pending."

type ChatInput struct {
	UserID         uuid.UUID
	Message        string
	ConversationID *uuid.UUID
}

type ChatResult struct {
	ConversationID   uuid.UUID
	UserMessage      *types.Message
	AssistantMessage *types.Message
}

type ChatService interface {
	// Send appends the user message to the resolved conversation and the
	// placeholder assistant reply right after it.
	Send(ctx context.Context, input ChatInput) (*ChatResult, error)
}

type chatService struct {
	db               *gorm.DB
	log              *logger.Logger
	userRepo         repos.UserRepo
	conversationRepo repos.ConversationRepo
	messageRepo      repos.MessageRepo
}

func NewChatService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, conversationRepo repos.ConversationRepo, messageRepo repos.MessageRepo) ChatService {
	return &chatService{
		db:               db,
		log:              log.With("service", "ChatService"),
		userRepo:         userRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

func (s *chatService) Send(ctx context.Context, input ChatInput) (*ChatResult, error) {
	var result ChatResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		user, err := s.userRepo.GetByID(dbc, input.UserID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if user == nil {
			return apperrors.NotFound("User not found")
		}

		var conversation *types.Conversation
		if input.ConversationID != nil {
			conversation, err = s.conversationRepo.GetByIDForUser(dbc, *input.ConversationID, input.UserID)
			if err != nil {
				return fmt.Errorf("load conversation: %w", err)
			}
			if conversation == nil {
				return apperrors.NotFound("Conversation not found")
			}
		} else {
			conversation, err = s.conversationRepo.Create(dbc, &types.Conversation{UserID: input.UserID})
			if err != nil {
				return fmt.Errorf("create conversation: %w", err)
			}
		}

		userMessage, err := s.messageRepo.Create(dbc, &types.Message{
			ConversationID: conversation.ID,
			Role:           types.MessageRoleUser,
			Content:        input.Message,
		})
		if err != nil {
			return fmt.Errorf("create user message: %w", err)
		}

		assistantMessage, err := s.messageRepo.Create(dbc, &types.Message{
			ConversationID: conversation.ID,
			Role:           types.MessageRoleAssistant,
			Content:        assistantPlaceholder,
		})
		if err != nil {
			return fmt.Errorf("create assistant message: %w", err)
		}

		result.ConversationID = conversation.ID
		result.UserMessage = userMessage
		result.AssistantMessage = assistantMessage
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
