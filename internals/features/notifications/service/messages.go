package service

import (
	"fmt"
	"time"

	helper "rentalku_backend/internals/helpers"
)

// Typed message constructors, one per notification kind. These are
// formatting helpers only; they build the exact strings persisted on the
// notification row.

type BillingCreatedParams struct {
	UnitLabel string
	Amount    float64
	DueDate   *time.Time
}

func BillingCreatedMessage(p BillingCreatedParams) string {
	if p.DueDate != nil {
		return fmt.Sprintf("Your monthly bill for %s is ready: %s, due on %s.",
			p.UnitLabel, helper.FormatPeso(p.Amount), helper.FormatDate(*p.DueDate))
	}
	return fmt.Sprintf("Your monthly bill for %s is ready: %s.",
		p.UnitLabel, helper.FormatPeso(p.Amount))
}

type PaymentReceivedParams struct {
	TenantName string
	UnitLabel  string
	Amount     float64
}

func PaymentReceivedMessage(p PaymentReceivedParams) string {
	return fmt.Sprintf("Payment received: %s from %s (%s).",
		helper.FormatPeso(p.Amount), p.TenantName, p.UnitLabel)
}

type MaintenanceFixedParams struct {
	UnitLabel   string
	Description string
}

func MaintenanceFixedMessage(p MaintenanceFixedParams) string {
	return fmt.Sprintf("Your maintenance request for %s has been fixed: %s",
		p.UnitLabel, p.Description)
}

type MessageReceivedParams struct {
	SenderName string
}

func MessageReceivedMessage(p MessageReceivedParams) string {
	return fmt.Sprintf("New message from %s.", p.SenderName)
}
