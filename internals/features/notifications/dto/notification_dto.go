package dto

import (
	"github.com/google/uuid"

	"rentalku_backend/internals/features/notifications/model"
)

// ================== REQUEST ==================
type MarkReadRequest struct {
	NotificationID *uuid.UUID `json:"notification_id"`
	MarkAllAsRead  bool       `json:"mark_all_as_read"`
}

type DeleteRequest struct {
	NotificationID *uuid.UUID `json:"notification_id"`
	ClearRead      bool       `json:"clear_read"`
}

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID uuid.UUID              `json:"notification_id"`
	Type           model.NotificationType `json:"type"`
	Message        string                 `json:"message"`
	RelatedID      *uuid.UUID             `json:"related_id"`
	Read           bool                   `json:"read"`
	CreatedAt      string                 `json:"created_at"`
}

// ================ CONVERSION =================
func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID: m.NotificationID,
		Type:           m.NotificationType,
		Message:        m.NotificationMessage,
		RelatedID:      m.NotificationRelatedID,
		Read:           m.NotificationRead,
		CreatedAt:      m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	var result []NotificationResponse
	for _, m := range models {
		result = append(result, *ToNotificationResponse(&m))
	}
	return result
}
