package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"rentalku_backend/internals/features/properties/model"
)

// ================== REQUEST ==================
type PropertyRequest struct {
	Name         string         `json:"name" validate:"required"`
	Address      string         `json:"address"`
	UtilityRates datatypes.JSON `json:"utility_rates"`
}

// ================== RESPONSE ==================
type PropertyResponse struct {
	PropertyID   uuid.UUID      `json:"property_id"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	UtilityRates datatypes.JSON `json:"utility_rates"`
	CreatedAt    string         `json:"created_at"`
}

// ================ CONVERSION =================
func (r *PropertyRequest) ToModel() *model.PropertyModel {
	return &model.PropertyModel{
		PropertyName:         r.Name,
		PropertyAddress:      r.Address,
		PropertyUtilityRates: r.UtilityRates,
	}
}

func ToPropertyResponse(m *model.PropertyModel) *PropertyResponse {
	return &PropertyResponse{
		PropertyID:   m.PropertyID,
		Name:         m.PropertyName,
		Address:      m.PropertyAddress,
		UtilityRates: m.PropertyUtilityRates,
		CreatedAt:    m.PropertyCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToPropertyResponseList(models []model.PropertyModel) []PropertyResponse {
	var result []PropertyResponse
	for _, m := range models {
		result = append(result, *ToPropertyResponse(&m))
	}
	return result
}
