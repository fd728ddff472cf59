package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/focusbridge-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/focusbridge-backend/internal/pkg/errors"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/types"
)

func seedUser(t *testing.T, env testEnv) *types.User {
	t.Helper()
	user, err := env.userRepo.Create(dbctx.Context{Ctx: context.Background()}, &types.User{
		ID:    uuid.New(),
		Email: "chat@example.com",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestChatSendCreatesConversationAndMessagePair(t *testing.T) {
	env := newTestEnv(t)
	svc := NewChatService(env.db, logger.NewNop(), env.userRepo, env.convRepo, env.messageRepo)
	user := seedUser(t, env)

	result, err := svc.Send(context.Background(), ChatInput{UserID: user.ID, Message: "hello"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if result.ConversationID == uuid.Nil {
		t.Fatal("expected a fresh conversation id")
	}
	if result.UserMessage.Content != "hello" || result.UserMessage.Role != types.MessageRoleUser {
		t.Fatalf("user message wrong: %+v", result.UserMessage)
	}
	if result.AssistantMessage.Role != types.MessageRoleAssistant {
		t.Fatalf("assistant message wrong: %+v", result.AssistantMessage)
	}
	if result.AssistantMessage.Content != assistantPlaceholder {
		t.Fatalf("assistant content: got %q", result.AssistantMessage.Content)
	}

	stored, err := env.messageRepo.ListByConversation(dbctx.Context{Ctx: context.Background()}, result.ConversationID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected exactly user+assistant messages, got %d", len(stored))
	}
	if stored[0].Role != types.MessageRoleUser || stored[1].Role != types.MessageRoleAssistant {
		t.Fatalf("messages out of order: %s then %s", stored[0].Role, stored[1].Role)
	}
}

func TestChatSendAppendsToExistingConversation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewChatService(env.db, logger.NewNop(), env.userRepo, env.convRepo, env.messageRepo)
	user := seedUser(t, env)

	first, err := svc.Send(context.Background(), ChatInput{UserID: user.ID, Message: "first"})
	if err != nil {
		t.Fatalf("first send: %v", err)
	}

	conversationID := first.ConversationID
	second, err := svc.Send(context.Background(), ChatInput{
		UserID:         user.ID,
		Message:        "second",
		ConversationID: &conversationID,
	})
	if err != nil {
		t.Fatalf("second send: %v", err)
	}
	if second.ConversationID != conversationID {
		t.Fatalf("conversation changed: got %s, want %s", second.ConversationID, conversationID)
	}

	stored, err := env.messageRepo.ListByConversation(dbctx.Context{Ctx: context.Background()}, conversationID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(stored) != 4 {
		t.Fatalf("expected 4 messages after two sends, got %d", len(stored))
	}
}

func TestChatSendUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewChatService(env.db, logger.NewNop(), env.userRepo, env.convRepo, env.messageRepo)

	_, err := svc.Send(context.Background(), ChatInput{UserID: uuid.New(), Message: "hello"})
	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestChatSendForeignConversationHiddenAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewChatService(env.db, logger.NewNop(), env.userRepo, env.convRepo, env.messageRepo)
	owner := seedUser(t, env)

	intruder, err := env.userRepo.Create(dbctx.Context{Ctx: context.Background()}, &types.User{
		ID:    uuid.New(),
		Email: "intruder@example.com",
	})
	if err != nil {
		t.Fatalf("seed intruder: %v", err)
	}

	first, err := svc.Send(context.Background(), ChatInput{UserID: owner.ID, Message: "mine"})
	if err != nil {
		t.Fatalf("owner send: %v", err)
	}

	conversationID := first.ConversationID
	_, err = svc.Send(context.Background(), ChatInput{
		UserID:         intruder.ID,
		Message:        "yours?",
		ConversationID: &conversationID,
	})
	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("foreign conversation should read as not found, got %v", err)
	}

	stored, err := env.messageRepo.ListByConversation(dbctx.Context{Ctx: context.Background()}, conversationID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("failed send must not write messages: got %d rows", len(stored))
	}
}
