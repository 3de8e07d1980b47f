package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeBillingCreated   NotificationType = "billing_created"
	NotificationTypeBillingReminder  NotificationType = "billing_reminder"
	NotificationTypePaymentReceived  NotificationType = "payment_received"
	NotificationTypeMaintenanceFixed NotificationType = "maintenance_fixed"
	NotificationTypeMessageReceived  NotificationType = "message_received"
)

type NotificationModel struct {
	NotificationID     uuid.UUID        `gorm:"column:notification_id;primaryKey;type:uuid" json:"notification_id"`
	NotificationUserID uuid.UUID        `gorm:"column:notification_user_id;type:uuid;not null;index;uniqueIndex:uniq_notification_daily,priority:1" json:"notification_user_id"`
	NotificationType   NotificationType `gorm:"column:notification_type;type:varchar(40);not null;uniqueIndex:uniq_notification_daily,priority:2" json:"notification_type"`

	NotificationMessage string `gorm:"column:notification_message;type:text;not null" json:"notification_message"`

	// related entity (billing, maintenance request, message). NULLs never
	// collide in the unique index; daily-deduped kinds always set this.
	NotificationRelatedID *uuid.UUID `gorm:"column:notification_related_id;type:uuid;uniqueIndex:uniq_notification_daily,priority:3" json:"notification_related_id"`

	// calendar-day component of the dedup key. Stored as a plain YYYY-MM-DD
	// string so the key round-trips byte-identically on every driver.
	NotificationDay string `gorm:"column:notification_day;type:varchar(10);not null;uniqueIndex:uniq_notification_daily,priority:4" json:"notification_day"`

	NotificationRead      bool      `gorm:"column:notification_read;not null;default:false;index" json:"notification_read"`
	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;not null;index" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	if m.NotificationCreatedAt.IsZero() {
		m.NotificationCreatedAt = time.Now()
	}
	if m.NotificationDay == "" {
		m.NotificationDay = m.NotificationCreatedAt.Format("2006-01-02")
	}
	return nil
}
