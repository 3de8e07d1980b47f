package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/maintenance/controller"
)

func MaintenanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaintenanceController(db)

	maintenance := admin.Group("/maintenance")
	maintenance.Get("/", ctrl.ListRequests)
	maintenance.Patch("/:id/status", ctrl.UpdateStatus)
}
