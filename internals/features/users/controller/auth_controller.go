package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentalku_backend/internals/configs"
	"rentalku_backend/internals/features/users/dto"
	"rentalku_backend/internals/features/users/model"
	helper "rentalku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[ERROR] Login lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"role":      user.UserRole,
		"user_name": user.DisplayName(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] Token signing failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: signed,
		User:        *dto.ToUserResponse(&user),
	})
}
