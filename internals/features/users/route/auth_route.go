package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/users/controller"
	"rentalku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
