package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/billings/controller"
	"rentalku_backend/internals/mailer"
)

func BillingAdminRoutes(admin fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctrl := controller.NewBillingController(db)
	reminderCtrl := controller.NewReminderController(db, mail)

	billings := admin.Group("/billings")
	billings.Post("/", ctrl.CreateBilling)
	billings.Get("/", ctrl.ListBillings)
	billings.Post("/check-reminders", reminderCtrl.CheckReminders) // 🟢 Scan + create reminders
	billings.Get("/check-reminders", reminderCtrl.GetReminderStatus)
}
