package dto

import (
	"github.com/google/uuid"

	"rentalku_backend/internals/features/messages/model"
)

// ================== REQUEST ==================
type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Body        string    `json:"body" validate:"required"`
}

// ================== RESPONSE ==================
type MessageResponse struct {
	MessageID   uuid.UUID `json:"message_id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedAt   string    `json:"created_at"`
}

// ================ CONVERSION =================
func ToMessageResponse(m *model.MessageModel) *MessageResponse {
	return &MessageResponse{
		MessageID:   m.MessageID,
		SenderID:    m.MessageSenderID,
		RecipientID: m.MessageRecipientID,
		Body:        m.MessageBody,
		Read:        m.MessageRead,
		CreatedAt:   m.MessageCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToMessageResponseList(models []model.MessageModel) []MessageResponse {
	var result []MessageResponse
	for _, m := range models {
		result = append(result, *ToMessageResponse(&m))
	}
	return result
}
