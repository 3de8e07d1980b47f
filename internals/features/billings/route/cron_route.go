package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/billings/controller"
	"rentalku_backend/internals/mailer"
)

func BillingCronRoutes(cron fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctrl := controller.NewCronController(db, mail)

	cron.Get("/rent-billing", ctrl.RunRentBilling)
}
