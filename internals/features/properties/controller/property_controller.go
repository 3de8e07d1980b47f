package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/properties/dto"
	"rentalku_backend/internals/features/properties/model"
	helper "rentalku_backend/internals/helpers"
)

type PropertyController struct {
	DB *gorm.DB
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

// 🟢 POST /api/a/properties
func (ctrl *PropertyController) CreateProperty(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	prop := req.ToModel()
	if err := ctrl.DB.Create(prop).Error; err != nil {
		log.Printf("[ERROR] Property create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create property")
	}

	return helper.JsonCreated(c, "Property created", dto.ToPropertyResponse(prop))
}

// 🟢 GET /api/a/properties  (+ pagination)
func (ctrl *PropertyController) ListProperties(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PropertyModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count properties")
	}

	var props []model.PropertyModel
	if err := ctrl.DB.
		Order("property_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&props).Error; err != nil {
		log.Printf("[ERROR] List properties: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch properties")
	}

	return helper.JsonList(c, "", dto.ToPropertyResponseList(props),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 PUT /api/a/properties/:id
func (ctrl *PropertyController) UpdateProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Property not found")
	}

	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	prop.PropertyName = req.Name
	prop.PropertyAddress = req.Address
	if req.UtilityRates != nil {
		prop.PropertyUtilityRates = req.UtilityRates
	}
	if err := ctrl.DB.Save(&prop).Error; err != nil {
		log.Printf("[ERROR] Property update failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update property")
	}

	return helper.JsonUpdated(c, "Property updated", dto.ToPropertyResponse(&prop))
}
