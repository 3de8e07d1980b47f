package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/messages/controller"
)

func MessageUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMessageController(db)

	messages := user.Group("/messages")
	messages.Post("/", ctrl.SendMessage)
	messages.Get("/", ctrl.GetConversation)
	messages.Patch("/:id/read", ctrl.MarkRead)
}
