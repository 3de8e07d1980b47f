package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/messages/dto"
	"rentalku_backend/internals/features/messages/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	notifService "rentalku_backend/internals/features/notifications/service"
	userModel "rentalku_backend/internals/features/users/model"
	helper "rentalku_backend/internals/helpers"
)

type MessageController struct {
	DB     *gorm.DB
	Notifs *notifService.NotificationService
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{
		DB:     db,
		Notifs: notifService.NewNotificationService(db),
	}
}

// 🟢 POST /api/u/messages — send; recipient gets a notification
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	senderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var recipient userModel.UserModel
	if err := ctrl.DB.First(&recipient, "user_id = ?", req.RecipientID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Recipient not found")
	}

	msg := &model.MessageModel{
		MessageSenderID:    senderID,
		MessageRecipientID: req.RecipientID,
		MessageBody:        req.Body,
	}
	if err := ctrl.DB.Create(msg).Error; err != nil {
		log.Printf("[ERROR] Message create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	senderName, _ := c.Locals("user_name").(string)
	if senderName == "" {
		senderName = "a user"
	}
	notifMsg := notifService.MessageReceivedMessage(notifService.MessageReceivedParams{SenderName: senderName})
	if _, err := ctrl.Notifs.Create(req.RecipientID, notifModel.NotificationTypeMessageReceived, notifMsg, &msg.MessageID); err != nil {
		log.Printf("[ERROR] Message notification: %v", err)
	}

	return helper.JsonCreated(c, "Message sent", dto.ToMessageResponse(msg))
}

// 🟢 GET /api/u/messages?with=<user_id> — conversation (both directions)
func (ctrl *MessageController) GetConversation(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	otherID, err := uuid.Parse(c.Query("with"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or missing 'with' user id")
	}

	var messages []model.MessageModel
	if err := ctrl.DB.
		Where("(message_sender_id = ? AND message_recipient_id = ?) OR (message_sender_id = ? AND message_recipient_id = ?)",
			userID, otherID, otherID, userID).
		Order("message_created_at ASC").
		Find(&messages).Error; err != nil {
		log.Printf("[ERROR] Conversation fetch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch conversation")
	}

	return helper.JsonOK(c, "", dto.ToMessageResponseList(messages))
}

// 🟢 PATCH /api/u/messages/:id/read — recipient-scoped
func (ctrl *MessageController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_id = ? AND message_recipient_id = ?", id, userID).
		Update("message_read", true)
	if res.Error != nil {
		log.Printf("[ERROR] Message mark read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	return helper.JsonUpdated(c, "Message marked as read", nil)
}
