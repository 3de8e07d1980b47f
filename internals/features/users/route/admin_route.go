package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/users/controller"
)

func TenantAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	tenants := admin.Group("/tenants")
	tenants.Post("/", ctrl.CreateTenant)          // 🟢 Onboard a tenant
	tenants.Get("/", ctrl.ListTenants)            // 🟢 List tenants (by property)
	tenants.Patch("/:id/offboard", ctrl.OffboardTenant)
}
