package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageModel struct {
	MessageID          uuid.UUID `gorm:"column:message_id;primaryKey;type:uuid" json:"message_id"`
	MessageSenderID    uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null;index" json:"message_sender_id"`
	MessageRecipientID uuid.UUID `gorm:"column:message_recipient_id;type:uuid;not null;index" json:"message_recipient_id"`

	MessageBody string `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageRead bool   `gorm:"column:message_read;not null;default:false" json:"message_read"`

	MessageCreatedAt time.Time `gorm:"column:message_created_at;not null;index" json:"message_created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}

func (m *MessageModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	if m.MessageCreatedAt.IsZero() {
		m.MessageCreatedAt = time.Now()
	}
	return nil
}
