package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentalku_backend/internals/constants"
	"rentalku_backend/internals/features/users/dto"
	"rentalku_backend/internals/features/users/model"
	helper "rentalku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/u/profile
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "", dto.ToUserResponse(&user))
}

// 🟢 POST /api/a/tenants  — landlord onboards a tenant
func (ctrl *UserController) CreateTenant(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	tenant := req.ToModel()
	if req.Email != nil && req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[ERROR] Password hash failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tenant")
		}
		tenant.UserPasswordHash = string(hash)
	}

	if err := ctrl.DB.Create(tenant).Error; err != nil {
		log.Printf("[ERROR] Tenant create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tenant")
	}

	return helper.JsonCreated(c, "Tenant onboarded", dto.ToUserResponse(tenant))
}

// 🟢 GET /api/a/tenants?property_id=...  (+ pagination)
func (ctrl *UserController) ListTenants(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{}).Where("user_role = ?", constants.RoleTenant)
	if propertyID := c.Query("property_id"); propertyID != "" {
		id, err := uuid.Parse(propertyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("user_property_id = ?", id)
	}
	if c.Query("active") == "true" {
		q = q.Where("user_has_left_property = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count tenants: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tenants")
	}

	var tenants []model.UserModel
	if err := q.
		Order("user_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&tenants).Error; err != nil {
		log.Printf("[ERROR] List tenants: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tenants")
	}

	return helper.JsonList(c, "", dto.ToUserResponseList(tenants),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 PATCH /api/a/tenants/:id/offboard
func (ctrl *UserController) OffboardTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var tenant model.UserModel
	if err := ctrl.DB.First(&tenant, "user_id = ? AND user_role = ?", id, constants.RoleTenant).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tenant not found")
	}

	if err := ctrl.DB.Model(&tenant).Update("user_has_left_property", true).Error; err != nil {
		log.Printf("[ERROR] Offboard tenant: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to offboard tenant")
	}

	return helper.JsonUpdated(c, "Tenant offboarded", dto.ToUserResponse(&tenant))
}
