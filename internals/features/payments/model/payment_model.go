package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodGateway PaymentMethod = "gateway"
)

type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateSettled   PaymentState = "settled"
	PaymentStateFailed    PaymentState = "failed"
	PaymentStateCancelled PaymentState = "cancelled"
)

type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;primaryKey;type:uuid" json:"payment_id"`
	PaymentBillingID uuid.UUID `gorm:"column:payment_billing_id;type:uuid;not null;index" json:"payment_billing_id"`
	PaymentPayerID   uuid.UUID `gorm:"column:payment_payer_id;type:uuid;not null;index" json:"payment_payer_id"`

	PaymentAmount float64       `gorm:"column:payment_amount;type:numeric(12,2);not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(16);not null" json:"payment_method"`
	PaymentState  PaymentState  `gorm:"column:payment_state;type:varchar(16);not null;default:'pending'" json:"payment_state"`

	// Gateway order id; unique so notifications can be matched back.
	PaymentExternalOrderID *string `gorm:"column:payment_external_order_id;type:varchar(64);uniqueIndex" json:"payment_external_order_id,omitempty"`
	PaymentSnapToken       *string `gorm:"column:payment_snap_token;type:varchar(128)" json:"payment_snap_token,omitempty"`

	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;not null" json:"payment_created_at"`
	PaymentSettledAt *time.Time `gorm:"column:payment_settled_at" json:"payment_settled_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) (err error) {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	if p.PaymentCreatedAt.IsZero() {
		p.PaymentCreatedAt = time.Now()
	}
	if p.PaymentState == "" {
		p.PaymentState = PaymentStatePending
	}
	return nil
}
