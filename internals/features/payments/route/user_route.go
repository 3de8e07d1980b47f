package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/payments/controller"
)

func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payments := user.Group("/payments")
	payments.Post("/", ctrl.CreateGatewayPayment)
	payments.Get("/", ctrl.MyPayments)
}
