package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS
// =========================================================

type BillingType string

const (
	BillingTypeRent    BillingType = "rent"
	BillingTypeUtility BillingType = "utility"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ComputePaymentStatus derives the status purely from amount paid vs total.
// Billings are never deleted; payment recording is the only mutation path.
func ComputePaymentStatus(amountPaid, total float64) PaymentStatus {
	switch {
	case total > 0 && amountPaid >= total:
		return PaymentStatusPaid
	case amountPaid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// =========================================================
// MODEL
// =========================================================

type BillingModel struct {
	BillingID uuid.UUID `gorm:"column:billing_id;primaryKey;type:uuid" json:"billing_id"`

	BillingUserID     uuid.UUID `gorm:"column:billing_user_id;type:uuid;not null;index" json:"billing_user_id"`
	BillingPropertyID uuid.UUID `gorm:"column:billing_property_id;type:uuid;not null;index" json:"billing_property_id"`
	BillingUnit       *string   `gorm:"column:billing_unit;type:varchar(50)" json:"billing_unit,omitempty"`

	BillingType BillingType `gorm:"column:billing_type;type:varchar(20);not null;default:'rent';index" json:"billing_type"`

	BillingTotalRent     float64 `gorm:"column:billing_total_rent;type:numeric(12,2);not null;default:0;check:billing_total_rent>=0" json:"billing_total_rent"`
	BillingTotalWater    float64 `gorm:"column:billing_total_water;type:numeric(12,2);not null;default:0;check:billing_total_water>=0" json:"billing_total_water"`
	BillingTotalElectric float64 `gorm:"column:billing_total_electric;type:numeric(12,2);not null;default:0;check:billing_total_electric>=0" json:"billing_total_electric"`

	BillingAmountPaid    float64       `gorm:"column:billing_amount_paid;type:numeric(12,2);not null;default:0" json:"billing_amount_paid"`
	BillingPaymentStatus PaymentStatus `gorm:"column:billing_payment_status;type:varchar(20);not null;default:'pending';index" json:"billing_payment_status"`

	BillingDueDate   *time.Time `gorm:"column:billing_due_date;type:date;index" json:"billing_due_date"`
	BillingIssueDate time.Time  `gorm:"column:billing_issue_date;type:date;not null" json:"billing_issue_date"`

	BillingCreatedAt time.Time `gorm:"column:billing_created_at;not null" json:"billing_created_at"`
	BillingUpdatedAt time.Time `gorm:"column:billing_updated_at;not null" json:"billing_updated_at"`
}

func (BillingModel) TableName() string {
	return "billings"
}

// TotalAmount is rent + water + electric.
func (b *BillingModel) TotalAmount() float64 {
	return b.BillingTotalRent + b.BillingTotalWater + b.BillingTotalElectric
}

func (m *BillingModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.BillingID == uuid.Nil {
		m.BillingID = uuid.New()
	}
	if m.BillingIssueDate.IsZero() {
		m.BillingIssueDate = time.Now()
	}
	now := time.Now()
	if m.BillingCreatedAt.IsZero() {
		m.BillingCreatedAt = now
	}
	m.BillingUpdatedAt = now
	return nil
}

func (m *BillingModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.BillingUpdatedAt = time.Now()
	return nil
}
