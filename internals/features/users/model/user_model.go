package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`

	// nullable: walk-in tenants may have no email on file
	UserEmail        *string `gorm:"column:user_email;type:varchar(255);uniqueIndex" json:"user_email"`
	UserPasswordHash string  `gorm:"column:user_password_hash;type:varchar(255)" json:"-"`

	UserFirstName string `gorm:"column:user_first_name;type:varchar(100)" json:"user_first_name"`
	UserLastName  string `gorm:"column:user_last_name;type:varchar(100)" json:"user_last_name"`
	UserRole      string `gorm:"column:user_role;type:varchar(20);not null;default:'tenant';index" json:"user_role"`

	// tenancy
	UserPropertyID *uuid.UUID `gorm:"column:user_property_id;type:uuid;index" json:"user_property_id"`
	UserUnitNumber *string    `gorm:"column:user_unit_number;type:varchar(50)" json:"user_unit_number"`

	// monthly amounts used by the billing generator (PHP)
	UserMonthlyRent     float64 `gorm:"column:user_monthly_rent;type:numeric(12,2);not null;default:0" json:"user_monthly_rent"`
	UserMonthlyWater    float64 `gorm:"column:user_monthly_water;type:numeric(12,2);not null;default:0" json:"user_monthly_water"`
	UserMonthlyElectric float64 `gorm:"column:user_monthly_electric;type:numeric(12,2);not null;default:0" json:"user_monthly_electric"`

	UserMoveInDate      *time.Time `gorm:"column:user_move_in_date;type:date" json:"user_move_in_date"`
	UserHasLeftProperty bool       `gorm:"column:user_has_left_property;not null;default:false;index" json:"user_has_left_property"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// DisplayName returns "First Last" trimmed, falling back to "Tenant" when
// both names are blank. Reminder message text depends on this fallback.
func (u *UserModel) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.UserFirstName) + " " + strings.TrimSpace(u.UserLastName))
	if name == "" {
		return "Tenant"
	}
	return name
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *UserModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}
