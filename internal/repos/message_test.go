package repos

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/focusbridge-backend/internal/types"
)

func TestMessageRepoListOrderedByCreation(t *testing.T) {
	gormDB := newTestDB(t)
	conversationRepo := NewConversationRepo(gormDB, testLog())
	messageRepo := NewMessageRepo(gormDB, testLog())
	dbc := testDBC()

	conversation, err := conversationRepo.Create(dbc, &types.Conversation{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}

	base := time.Now().UTC()
	rows := []*types.Message{
		{ConversationID: conversation.ID, Role: types.MessageRoleUser, Content: "hello", CreatedAt: base},
		{ConversationID: conversation.ID, Role: types.MessageRoleAssistant, Content: "hi", CreatedAt: base.Add(time.Millisecond)},
		{ConversationID: conversation.ID, Role: types.MessageRoleUser, Content: "again", CreatedAt: base.Add(2 * time.Millisecond)},
	}
	for _, row := range rows {
		if _, err := messageRepo.Create(dbc, row); err != nil {
			t.Fatalf("create message %q: %v", row.Content, err)
		}
	}

	got, err := messageRepo.ListByConversation(dbc, conversation.ID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	wantContents := []string{"hello", "hi", "again"}
	for i, want := range wantContents {
		if got[i].Content != want {
			t.Fatalf("message %d out of order: got %q, want %q", i, got[i].Content, want)
		}
	}
}

func TestMessageRepoListByConversationEmpty(t *testing.T) {
	gormDB := newTestDB(t)
	messageRepo := NewMessageRepo(gormDB, testLog())

	got, err := messageRepo.ListByConversation(testDBC(), uuid.New())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no messages, got %d", len(got))
	}
}
