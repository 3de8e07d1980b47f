package dto

import (
	"github.com/google/uuid"

	"rentalku_backend/internals/features/maintenance/model"
)

// ================== REQUEST ==================
type CreateMaintenanceRequest struct {
	PropertyID  uuid.UUID `json:"property_id" validate:"required"`
	Unit        *string   `json:"unit"`
	Description string    `json:"description" validate:"required"`
	PhotoURLs   []string  `json:"photo_urls"`
}

type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress fixed"`
}

// ================== RESPONSE ==================
type MaintenanceResponse struct {
	MaintenanceID uuid.UUID `json:"maintenance_id"`
	UserID        uuid.UUID `json:"user_id"`
	PropertyID    uuid.UUID `json:"property_id"`
	Unit          *string   `json:"unit"`
	Description   string    `json:"description"`
	PhotoURLs     []string  `json:"photo_urls"`
	Status        string    `json:"status"`
	CreatedAt     string    `json:"created_at"`
}

// ================ CONVERSION =================
func ToMaintenanceResponse(m *model.MaintenanceRequestModel) *MaintenanceResponse {
	return &MaintenanceResponse{
		MaintenanceID: m.MaintenanceID,
		UserID:        m.MaintenanceUserID,
		PropertyID:    m.MaintenancePropertyID,
		Unit:          m.MaintenanceUnit,
		Description:   m.MaintenanceDescription,
		PhotoURLs:     m.MaintenancePhotoURLs,
		Status:        string(m.MaintenanceStatus),
		CreatedAt:     m.MaintenanceCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToMaintenanceResponseList(models []model.MaintenanceRequestModel) []MaintenanceResponse {
	var result []MaintenanceResponse
	for _, m := range models {
		result = append(result, *ToMaintenanceResponse(&m))
	}
	return result
}
