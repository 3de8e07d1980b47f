package dto

import (
	"time"

	"github.com/google/uuid"

	"rentalku_backend/internals/features/users/model"
)

// ================== REQUEST ==================
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateTenantRequest struct {
	Email           *string    `json:"email" validate:"omitempty,email"`
	Password        string     `json:"password" validate:"omitempty,min=8"`
	FirstName       string     `json:"first_name" validate:"required"`
	LastName        string     `json:"last_name"`
	PropertyID      uuid.UUID  `json:"property_id" validate:"required"`
	UnitNumber      *string    `json:"unit_number"`
	MonthlyRent     float64    `json:"monthly_rent" validate:"gte=0"`
	MonthlyWater    float64    `json:"monthly_water" validate:"gte=0"`
	MonthlyElectric float64    `json:"monthly_electric" validate:"gte=0"`
	MoveInDate      *time.Time `json:"move_in_date"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	Email           *string    `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Role            string     `json:"role"`
	PropertyID      *uuid.UUID `json:"property_id"`
	UnitNumber      *string    `json:"unit_number"`
	MonthlyRent     float64    `json:"monthly_rent"`
	MonthlyWater    float64    `json:"monthly_water"`
	MonthlyElectric float64    `json:"monthly_electric"`
	MoveInDate      *time.Time `json:"move_in_date"`
	HasLeftProperty bool       `json:"has_left_property"`
	CreatedAt       string     `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ================ CONVERSION =================
func (r *CreateTenantRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		UserEmail:           r.Email,
		UserFirstName:       r.FirstName,
		UserLastName:        r.LastName,
		UserRole:            "tenant",
		UserPropertyID:      &r.PropertyID,
		UserUnitNumber:      r.UnitNumber,
		UserMonthlyRent:     r.MonthlyRent,
		UserMonthlyWater:    r.MonthlyWater,
		UserMonthlyElectric: r.MonthlyElectric,
		UserMoveInDate:      r.MoveInDate,
	}
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:          m.UserID,
		Email:           m.UserEmail,
		FirstName:       m.UserFirstName,
		LastName:        m.UserLastName,
		Role:            m.UserRole,
		PropertyID:      m.UserPropertyID,
		UnitNumber:      m.UserUnitNumber,
		MonthlyRent:     m.UserMonthlyRent,
		MonthlyWater:    m.UserMonthlyWater,
		MonthlyElectric: m.UserMonthlyElectric,
		MoveInDate:      m.UserMoveInDate,
		HasLeftProperty: m.UserHasLeftProperty,
		CreatedAt:       m.UserCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	var result []UserResponse
	for _, m := range models {
		result = append(result, *ToUserResponse(&m))
	}
	return result
}
