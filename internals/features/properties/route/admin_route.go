package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/properties/controller"
)

func PropertyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPropertyController(db)

	properties := admin.Group("/properties")
	properties.Post("/", ctrl.CreateProperty)
	properties.Get("/", ctrl.ListProperties)
	properties.Put("/:id", ctrl.UpdateProperty)
}
