package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifications := user.Group("/notifications")
	notifications.Get("/", ctrl.GetNotifications)       // 🟢 Own notifications
	notifications.Post("/", ctrl.MarkRead)              // 🟢 Mark one / all read
	notifications.Delete("/", ctrl.DeleteNotifications) // 🛑 Delete one / clear read
}
