package dto

import (
	"github.com/google/uuid"

	"rentalku_backend/internals/features/payments/model"
)

// ================== REQUEST ==================
type CreateGatewayPaymentRequest struct {
	BillingID uuid.UUID `json:"billing_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
}

type RecordCashPaymentRequest struct {
	BillingID uuid.UUID `json:"billing_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
}

// GatewayNotificationRequest mirrors the fields of the Midtrans HTTP
// notification we act on; everything else in the payload is ignored.
type GatewayNotificationRequest struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// ================== RESPONSE ==================
type PaymentResponse struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	BillingID       uuid.UUID `json:"billing_id"`
	PayerID         uuid.UUID `json:"payer_id"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"method"`
	State           string    `json:"state"`
	ExternalOrderID *string   `json:"external_order_id,omitempty"`
	SnapToken       *string   `json:"snap_token,omitempty"`
	RedirectURL     string    `json:"redirect_url,omitempty"`
	CreatedAt       string    `json:"created_at"`
}

// ================ CONVERSION =================
func ToPaymentResponse(p *model.PaymentModel, redirectURL string) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:       p.PaymentID,
		BillingID:       p.PaymentBillingID,
		PayerID:         p.PaymentPayerID,
		Amount:          p.PaymentAmount,
		Method:          string(p.PaymentMethod),
		State:           string(p.PaymentState),
		ExternalOrderID: p.PaymentExternalOrderID,
		SnapToken:       p.PaymentSnapToken,
		RedirectURL:     redirectURL,
		CreatedAt:       p.PaymentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToPaymentResponseList(models []model.PaymentModel) []PaymentResponse {
	var result []PaymentResponse
	for _, p := range models {
		result = append(result, *ToPaymentResponse(&p, ""))
	}
	return result
}
