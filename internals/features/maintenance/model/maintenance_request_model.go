package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusFixed      MaintenanceStatus = "fixed"
)

type MaintenanceRequestModel struct {
	MaintenanceID         uuid.UUID `gorm:"column:maintenance_id;primaryKey;type:uuid" json:"maintenance_id"`
	MaintenanceUserID     uuid.UUID `gorm:"column:maintenance_user_id;type:uuid;not null;index" json:"maintenance_user_id"`
	MaintenancePropertyID uuid.UUID `gorm:"column:maintenance_property_id;type:uuid;not null;index" json:"maintenance_property_id"`
	MaintenanceUnit       *string   `gorm:"column:maintenance_unit;type:varchar(50)" json:"maintenance_unit,omitempty"`

	MaintenanceDescription string         `gorm:"column:maintenance_description;type:text;not null" json:"maintenance_description"`
	MaintenancePhotoURLs   pq.StringArray `gorm:"column:maintenance_photo_urls;type:text[]" json:"maintenance_photo_urls"`

	MaintenanceStatus MaintenanceStatus `gorm:"column:maintenance_status;type:varchar(20);not null;default:'open';index" json:"maintenance_status"`

	MaintenanceCreatedAt time.Time `gorm:"column:maintenance_created_at;not null" json:"maintenance_created_at"`
	MaintenanceUpdatedAt time.Time `gorm:"column:maintenance_updated_at;not null" json:"maintenance_updated_at"`
}

func (MaintenanceRequestModel) TableName() string {
	return "maintenance_requests"
}

func (m *MaintenanceRequestModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.MaintenanceID == uuid.Nil {
		m.MaintenanceID = uuid.New()
	}
	now := time.Now()
	if m.MaintenanceCreatedAt.IsZero() {
		m.MaintenanceCreatedAt = now
	}
	m.MaintenanceUpdatedAt = now
	return nil
}

func (m *MaintenanceRequestModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.MaintenanceUpdatedAt = time.Now()
	return nil
}
