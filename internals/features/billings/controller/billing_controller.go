package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/billings/dto"
	"rentalku_backend/internals/features/billings/model"
	helper "rentalku_backend/internals/helpers"
)

type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

// 🟢 POST /api/a/billings — manual billing creation
func (ctrl *BillingController) CreateBilling(c *fiber.Ctx) error {
	var req dto.CreateBillingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	billing := req.ToModel()
	if err := ctrl.DB.Create(billing).Error; err != nil {
		log.Printf("[ERROR] Billing create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create billing")
	}

	return helper.JsonCreated(c, "Billing created", dto.ToBillingResponse(billing))
}

// 🟢 GET /api/a/billings?property_id=&status=  (+ pagination)
func (ctrl *BillingController) ListBillings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.BillingModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		id, err := uuid.Parse(propertyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("billing_property_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("billing_payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count billings")
	}

	var billings []model.BillingModel
	if err := q.
		Order("billing_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&billings).Error; err != nil {
		log.Printf("[ERROR] List billings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch billings")
	}

	return helper.JsonList(c, "", dto.ToBillingResponseList(billings),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/billings — tenant's own billings
func (ctrl *BillingController) MyBillings(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.BillingModel{}).
		Where("billing_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count billings")
	}

	var billings []model.BillingModel
	if err := ctrl.DB.
		Where("billing_user_id = ?", userID).
		Order("billing_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&billings).Error; err != nil {
		log.Printf("[ERROR] My billings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch billings")
	}

	return helper.JsonList(c, "", dto.ToBillingResponseList(billings),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
