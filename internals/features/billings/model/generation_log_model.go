package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingGenerationLog records one generation attempt per (user, month).
// The unique key on that pair is the sole duplicate guard for the monthly
// generation cron; failed attempts are logged too so a retry can be audited.
type BillingGenerationLog struct {
	GenerationLogID        uuid.UUID  `gorm:"column:generation_log_id;primaryKey;type:uuid" json:"generation_log_id"`
	GenerationLogUserID    uuid.UUID  `gorm:"column:generation_log_user_id;type:uuid;not null;uniqueIndex:uniq_generation_user_month,priority:1" json:"generation_log_user_id"`
	GenerationLogMonth     string     `gorm:"column:generation_log_month;type:varchar(7);not null;uniqueIndex:uniq_generation_user_month,priority:2" json:"generation_log_month"` // YYYY-MM
	GenerationLogBillingID *uuid.UUID `gorm:"column:generation_log_billing_id;type:uuid" json:"generation_log_billing_id"`

	GenerationLogSuccess   bool    `gorm:"column:generation_log_success;not null;default:false" json:"generation_log_success"`
	GenerationLogEmailSent bool    `gorm:"column:generation_log_email_sent;not null;default:false" json:"generation_log_email_sent"`
	GenerationLogError     *string `gorm:"column:generation_log_error;type:text" json:"generation_log_error,omitempty"`

	GenerationLogCreatedAt time.Time `gorm:"column:generation_log_created_at;not null" json:"generation_log_created_at"`
}

func (BillingGenerationLog) TableName() string {
	return "billing_generation_logs"
}

func (m *BillingGenerationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if m.GenerationLogID == uuid.Nil {
		m.GenerationLogID = uuid.New()
	}
	if m.GenerationLogCreatedAt.IsZero() {
		m.GenerationLogCreatedAt = time.Now()
	}
	return nil
}
