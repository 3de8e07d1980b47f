package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingModel "rentalku_backend/internals/features/billings/model"
	"rentalku_backend/internals/features/payments/dto"
	"rentalku_backend/internals/features/payments/model"
	"rentalku_backend/internals/features/payments/service"
	userModel "rentalku_backend/internals/features/users/model"
	helper "rentalku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// 🟢 POST /api/u/payments — tenant starts an online payment for their own billing
func (ctrl *PaymentController) CreateGatewayPayment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateGatewayPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var billing billingModel.BillingModel
	if err := ctrl.DB.First(&billing, "billing_id = ? AND billing_user_id = ?", req.BillingID, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Billing not found")
	}
	if billing.BillingPaymentStatus == billingModel.PaymentStatusPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Billing is already fully paid")
	}

	var payer userModel.UserModel
	if err := ctrl.DB.First(&payer, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	payment := &model.PaymentModel{
		PaymentBillingID: billing.BillingID,
		PaymentPayerID:   userID,
		PaymentAmount:    req.Amount,
		PaymentMethod:    model.PaymentMethodGateway,
	}
	if err := ctrl.DB.Create(payment).Error; err != nil {
		log.Printf("[ERROR] Payment create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	orderID := fmt.Sprintf("RENT-%s-%d", strings.ToUpper(payment.PaymentID.String()[:8]), time.Now().Unix())
	payment.PaymentExternalOrderID = &orderID

	email := ""
	if payer.UserEmail != nil {
		email = *payer.UserEmail
	}
	cust := service.CustomerInput{
		FirstName: payer.UserFirstName,
		LastName:  payer.UserLastName,
		Email:     email,
	}
	desc := fmt.Sprintf("Rent payment %s", billing.BillingIssueDate.Format("Jan 2006"))
	token, redirectURL, err := service.GenerateSnapToken(*payment, cust, desc)
	if err != nil {
		log.Printf("[ERROR] Snap token for payment %s: %v", payment.PaymentID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to initiate payment with gateway")
	}
	payment.PaymentSnapToken = &token

	if err := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ?", payment.PaymentID).
		Updates(map[string]interface{}{
			"payment_external_order_id": payment.PaymentExternalOrderID,
			"payment_snap_token":        payment.PaymentSnapToken,
		}).Error; err != nil {
		log.Printf("[ERROR] Payment token save: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save payment")
	}

	return helper.JsonCreated(c, "Payment initiated", dto.ToPaymentResponse(payment, redirectURL))
}

// 🟢 GET /api/u/payments — the caller's own payments, newest first
func (ctrl *PaymentController) MyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctrl.DB.Model(&model.PaymentModel{}).Where("payment_payer_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] Payments fetch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.JsonList(c, "", dto.ToPaymentResponseList(payments),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/a/payments/cash — landlord records an offline payment; settles immediately
func (ctrl *PaymentController) RecordCashPayment(c *fiber.Ctx) error {
	landlordID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordCashPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var billing billingModel.BillingModel
	if err := ctrl.DB.First(&billing, "billing_id = ?", req.BillingID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Billing not found")
	}

	payment := &model.PaymentModel{
		PaymentBillingID: billing.BillingID,
		PaymentPayerID:   landlordID,
		PaymentAmount:    req.Amount,
		PaymentMethod:    model.PaymentMethodCash,
	}
	if err := ctrl.DB.Create(payment).Error; err != nil {
		log.Printf("[ERROR] Cash payment create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	if err := service.SettlePayment(ctrl.DB, payment); err != nil {
		log.Printf("[ERROR] Cash payment settle: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to settle payment")
	}

	return helper.JsonCreated(c, "Payment recorded", dto.ToPaymentResponse(payment, ""))
}

// 🟢 POST /api/payments/notification — gateway callback (no auth; matched by order id)
func (ctrl *PaymentController) HandleGatewayNotification(c *fiber.Ctx) error {
	var req dto.GatewayNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}
	if req.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id is required")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_external_order_id = ?", req.OrderID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Unknown order id")
	}

	// Settlement callbacks may be re-sent; only pending payments move forward.
	if payment.PaymentState != model.PaymentStatePending {
		return helper.JsonOK(c, "Already processed", nil)
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		if req.TransactionStatus == "capture" && req.FraudStatus != "accept" {
			return helper.JsonOK(c, "Awaiting fraud review", nil)
		}
		if err := service.SettlePayment(ctrl.DB, &payment); err != nil {
			log.Printf("[ERROR] Gateway settle for order %s: %v", req.OrderID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to settle payment")
		}
		return helper.JsonOK(c, "Payment settled", nil)

	case "deny", "cancel", "expire":
		state := model.PaymentStateFailed
		if req.TransactionStatus == "cancel" {
			state = model.PaymentStateCancelled
		}
		if err := ctrl.DB.Model(&model.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Update("payment_state", state).Error; err != nil {
			log.Printf("[ERROR] Gateway state update for order %s: %v", req.OrderID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
		}
		return helper.JsonOK(c, "Payment closed", nil)
	}

	return helper.JsonOK(c, "Ignored transaction status", nil)
}
