package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/notifications/dto"
	"rentalku_backend/internals/features/notifications/model"
	helper "rentalku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications  (+ pagination, owner-scoped)
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] List notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.JsonList(c, "", dto.ToNotificationResponseList(notifs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/u/notifications — mark one read, or {"mark_all_as_read": true}
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.MarkAllAsRead {
		// no-op when nothing is unread
		if err := ctrl.DB.Model(&model.NotificationModel{}).
			Where("notification_user_id = ? AND notification_read = FALSE", userID).
			Update("notification_read", true).Error; err != nil {
			log.Printf("[ERROR] Mark all read: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
		}
		return helper.JsonUpdated(c, "All notifications marked as read", nil)
	}

	if req.NotificationID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "notification_id is required")
	}

	var notif model.NotificationModel
	if err := ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", req.NotificationID, userID).
		First(&notif).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification")
	}

	if err := ctrl.DB.Model(&notif).Update("notification_read", true).Error; err != nil {
		log.Printf("[ERROR] Mark read: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}

	return helper.JsonUpdated(c, "Notification marked as read", dto.ToNotificationResponse(&notif))
}

// 🛑 DELETE /api/u/notifications — delete one, or {"clear_read": true}
func (ctrl *NotificationController) DeleteNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.ClearRead {
		res := ctrl.DB.
			Where("notification_user_id = ? AND notification_read = TRUE", userID).
			Delete(&model.NotificationModel{})
		if res.Error != nil {
			log.Printf("[ERROR] Clear read notifications: %v", res.Error)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notifications")
		}
		return helper.JsonDeleted(c, "Read notifications cleared", fiber.Map{"deleted": res.RowsAffected})
	}

	if req.NotificationID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "notification_id is required")
	}

	res := ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", req.NotificationID, userID).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete notification: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.JsonDeleted(c, "Notification deleted", nil)
}
