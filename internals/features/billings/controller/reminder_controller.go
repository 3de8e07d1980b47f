package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/billings/service"
	helper "rentalku_backend/internals/helpers"
	"rentalku_backend/internals/mailer"
)

type ReminderController struct {
	Reminders *service.ReminderService
}

func NewReminderController(db *gorm.DB, mail mailer.Mailer) *ReminderController {
	return &ReminderController{
		Reminders: service.NewReminderService(db, mail),
	}
}

// 🟢 POST /api/a/billings/check-reminders — scan + create
// Response keys are part of the API contract consumed by the dashboard.
func (ctrl *ReminderController) CheckReminders(c *fiber.Ctx) error {
	summary, err := ctrl.Reminders.Run(time.Now())
	if err != nil {
		log.Printf("[ERROR] Reminder run failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check reminders")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":               true,
		"message":               "Billing reminders checked",
		"notifications_created": summary.NotificationsCreated,
		"notifications_skipped": summary.NotificationsSkipped,
		"emails_sent":           summary.EmailsSent,
		"emails_failed":         summary.EmailsFailed,
		"billings_checked":      summary.BillingsChecked,
	})
}

// 🟢 GET /api/a/billings/check-reminders — read-only urgency summary
func (ctrl *ReminderController) GetReminderStatus(c *fiber.Ctx) error {
	status, err := ctrl.Reminders.Status(time.Now())
	if err != nil {
		log.Printf("[ERROR] Reminder status failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reminder status")
	}

	return helper.JsonOK(c, "", status)
}
