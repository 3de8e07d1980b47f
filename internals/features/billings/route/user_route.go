package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/billings/controller"
)

func BillingUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBillingController(db)

	billings := user.Group("/billings")
	billings.Get("/", ctrl.MyBillings) // 🟢 Own billing history
}
