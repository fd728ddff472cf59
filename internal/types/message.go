package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message ordering within a conversation is by creation time; the chat flow
// always appends a user message followed by one assistant message.
type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index;column:conversation_id" json:"conversationId"`
	Role           string    `gorm:"not null;column:role" json:"role"`
	Content        string    `gorm:"not null;column:content" json:"content"`
	CreatedAt      time.Time `gorm:"not null;index" json:"createdAt"`
}

func (Message) TableName() string { return "message" }

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
