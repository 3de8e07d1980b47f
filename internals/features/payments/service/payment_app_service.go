package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"rentalku_backend/internals/constants"
	billingModel "rentalku_backend/internals/features/billings/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	notifService "rentalku_backend/internals/features/notifications/service"
	"rentalku_backend/internals/features/payments/model"
	userModel "rentalku_backend/internals/features/users/model"
)

// SettlePayment marks the payment settled and folds its amount into the
// billing inside one transaction. Landlord notifications are written after
// the commit; a notification failure never rolls the money back.
func SettlePayment(db *gorm.DB, payment *model.PaymentModel) error {
	var billing billingModel.BillingModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&billing, "billing_id = ?", payment.PaymentBillingID).Error; err != nil {
			return err
		}

		billing.BillingAmountPaid += payment.PaymentAmount
		billing.BillingPaymentStatus = billingModel.ComputePaymentStatus(billing.BillingAmountPaid, billing.TotalAmount())
		if err := tx.Model(&billingModel.BillingModel{}).
			Where("billing_id = ?", billing.BillingID).
			Updates(map[string]interface{}{
				"billing_amount_paid":    billing.BillingAmountPaid,
				"billing_payment_status": billing.BillingPaymentStatus,
			}).Error; err != nil {
			return err
		}

		now := time.Now()
		payment.PaymentState = model.PaymentStateSettled
		payment.PaymentSettledAt = &now
		return tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(map[string]interface{}{
				"payment_state":      payment.PaymentState,
				"payment_settled_at": payment.PaymentSettledAt,
			}).Error
	})
	if err != nil {
		return err
	}

	notifyLandlordsPaymentReceived(db, &billing, payment)
	return nil
}

func notifyLandlordsPaymentReceived(db *gorm.DB, billing *billingModel.BillingModel, payment *model.PaymentModel) {
	var tenant userModel.UserModel
	tenantName := "Tenant"
	if err := db.First(&tenant, "user_id = ?", billing.BillingUserID).Error; err == nil {
		tenantName = tenant.DisplayName()
	}

	unitLabel := "Unit"
	if tenant.UserUnitNumber != nil && *tenant.UserUnitNumber != "" {
		unitLabel = *tenant.UserUnitNumber
	} else if billing.BillingUnit != nil && *billing.BillingUnit != "" {
		unitLabel = *billing.BillingUnit
	}

	var landlords []userModel.UserModel
	if err := db.
		Where("user_role = ? AND user_property_id = ? AND user_has_left_property = ?",
			constants.RoleLandlord, billing.BillingPropertyID, false).
		Find(&landlords).Error; err != nil {
		log.Printf("[ERROR] Payment landlord lookup: %v", err)
		return
	}

	msg := notifService.PaymentReceivedMessage(notifService.PaymentReceivedParams{
		TenantName: tenantName,
		UnitLabel:  unitLabel,
		Amount:     payment.PaymentAmount,
	})
	notifs := notifService.NewNotificationService(db)
	// related id is the payment, not the billing: two payments against the
	// same billing on the same day must both notify.
	for _, landlord := range landlords {
		if _, err := notifs.Create(landlord.UserID, notifModel.NotificationTypePaymentReceived, msg, &payment.PaymentID); err != nil {
			log.Printf("[ERROR] Payment notification for landlord %s: %v", landlord.UserID, err)
		}
	}
}
