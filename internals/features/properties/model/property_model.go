package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyModel struct {
	PropertyID      uuid.UUID `gorm:"column:property_id;primaryKey;type:uuid" json:"property_id"`
	PropertyName    string    `gorm:"column:property_name;type:varchar(255);not null" json:"property_name"`
	PropertyAddress string    `gorm:"column:property_address;type:text" json:"property_address"`

	// per-property utility pricing, e.g. {"water_per_cubic": 35, "electric_per_kwh": 12.5}
	PropertyUtilityRates datatypes.JSON `gorm:"column:property_utility_rates;type:jsonb" json:"property_utility_rates"`

	PropertyCreatedAt time.Time `gorm:"column:property_created_at;not null" json:"property_created_at"`
	PropertyUpdatedAt time.Time `gorm:"column:property_updated_at;not null" json:"property_updated_at"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

func (m *PropertyModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.PropertyID == uuid.Nil {
		m.PropertyID = uuid.New()
	}
	now := time.Now()
	if m.PropertyCreatedAt.IsZero() {
		m.PropertyCreatedAt = now
	}
	m.PropertyUpdatedAt = now
	return nil
}

func (m *PropertyModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PropertyUpdatedAt = time.Now()
	return nil
}
