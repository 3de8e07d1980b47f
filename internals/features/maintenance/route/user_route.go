package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/maintenance/controller"
)

func MaintenanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaintenanceController(db)

	maintenance := user.Group("/maintenance")
	maintenance.Post("/", ctrl.CreateRequest) // 🟢 File a request
	maintenance.Get("/", ctrl.MyRequests)     // 🟢 Own requests
}
