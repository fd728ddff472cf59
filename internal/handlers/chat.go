package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/focusbridge-backend/internal/pkg/validation"
	"github.com/yungbote/focusbridge-backend/internal/services"
	"github.com/yungbote/focusbridge-backend/internal/types"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type ChatRequest struct {
	UserID         string  `json:"userId" binding:"required,uuid"`
	Message        string  `json:"message" binding:"required,min=1,max=5000"`
	ConversationID *string `json:"conversationId" binding:"omitempty,uuid"`
}

// POST /api/chat
func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validation.Wrap(err))
		return
	}

	input := services.ChatInput{
		// Already validated as uuids by the binding tags.
		UserID:  uuid.MustParse(req.UserID),
		Message: req.Message,
	}
	if req.ConversationID != nil {
		conversationID := uuid.MustParse(*req.ConversationID)
		input.ConversationID = &conversationID
	}

	result, err := h.chatService.Send(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversationId":   result.ConversationID,
		"userMessage":      messageProjection(result.UserMessage),
		"assistantMessage": messageProjection(result.AssistantMessage),
	})
}

func messageProjection(m *types.Message) gin.H {
	return gin.H{
		"id":        m.ID,
		"role":      m.Role,
		"content":   m.Content,
		"createdAt": m.CreatedAt,
	}
}
