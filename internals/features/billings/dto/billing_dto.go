package dto

import (
	"time"

	"github.com/google/uuid"

	"rentalku_backend/internals/features/billings/model"
)

// ================== REQUEST ==================
type CreateBillingRequest struct {
	UserID        uuid.UUID  `json:"user_id" validate:"required"`
	PropertyID    uuid.UUID  `json:"property_id" validate:"required"`
	Unit          *string    `json:"unit"`
	BillingType   string     `json:"billing_type" validate:"required,oneof=rent utility"`
	TotalRent     float64    `json:"total_rent" validate:"gte=0"`
	TotalWater    float64    `json:"total_water" validate:"gte=0"`
	TotalElectric float64    `json:"total_electric" validate:"gte=0"`
	DueDate       *time.Time `json:"due_date"`
}

// ================== RESPONSE ==================
type BillingResponse struct {
	BillingID     uuid.UUID  `json:"billing_id"`
	UserID        uuid.UUID  `json:"user_id"`
	PropertyID    uuid.UUID  `json:"property_id"`
	Unit          *string    `json:"unit"`
	BillingType   string     `json:"billing_type"`
	TotalRent     float64    `json:"total_rent"`
	TotalWater    float64    `json:"total_water"`
	TotalElectric float64    `json:"total_electric"`
	TotalAmount   float64    `json:"total_amount"`
	AmountPaid    float64    `json:"amount_paid"`
	PaymentStatus string     `json:"payment_status"`
	DueDate       *time.Time `json:"due_date"`
	IssueDate     time.Time  `json:"issue_date"`
	CreatedAt     string     `json:"created_at"`
}

// ================ CONVERSION =================
func (r *CreateBillingRequest) ToModel() *model.BillingModel {
	return &model.BillingModel{
		BillingUserID:        r.UserID,
		BillingPropertyID:    r.PropertyID,
		BillingUnit:          r.Unit,
		BillingType:          model.BillingType(r.BillingType),
		BillingTotalRent:     r.TotalRent,
		BillingTotalWater:    r.TotalWater,
		BillingTotalElectric: r.TotalElectric,
		BillingDueDate:       r.DueDate,
	}
}

func ToBillingResponse(m *model.BillingModel) *BillingResponse {
	return &BillingResponse{
		BillingID:     m.BillingID,
		UserID:        m.BillingUserID,
		PropertyID:    m.BillingPropertyID,
		Unit:          m.BillingUnit,
		BillingType:   string(m.BillingType),
		TotalRent:     m.BillingTotalRent,
		TotalWater:    m.BillingTotalWater,
		TotalElectric: m.BillingTotalElectric,
		TotalAmount:   m.TotalAmount(),
		AmountPaid:    m.BillingAmountPaid,
		PaymentStatus: string(m.BillingPaymentStatus),
		DueDate:       m.BillingDueDate,
		IssueDate:     m.BillingIssueDate,
		CreatedAt:     m.BillingCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToBillingResponseList(models []model.BillingModel) []BillingResponse {
	var result []BillingResponse
	for _, m := range models {
		result = append(result, *ToBillingResponse(&m))
	}
	return result
}
