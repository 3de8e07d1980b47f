package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/payments/controller"
)

func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payments := admin.Group("/payments")
	payments.Post("/cash", ctrl.RecordCashPayment)
}
