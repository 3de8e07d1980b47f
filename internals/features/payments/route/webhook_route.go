package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/payments/controller"
)

// PaymentWebhookRoutes is mounted outside the auth groups; the endpoint is
// also listed in the auth middleware's skip paths.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	api.Post("/payments/notification", ctrl.HandleGatewayNotification)
}
