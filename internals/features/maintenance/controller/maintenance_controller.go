package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/maintenance/dto"
	"rentalku_backend/internals/features/maintenance/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	notifService "rentalku_backend/internals/features/notifications/service"
	helper "rentalku_backend/internals/helpers"
)

type MaintenanceController struct {
	DB     *gorm.DB
	Notifs *notifService.NotificationService
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{
		DB:     db,
		Notifs: notifService.NewNotificationService(db),
	}
}

// 🟢 POST /api/u/maintenance — tenant files a request
func (ctrl *MaintenanceController) CreateRequest(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	request := &model.MaintenanceRequestModel{
		MaintenanceUserID:      userID,
		MaintenancePropertyID:  req.PropertyID,
		MaintenanceUnit:        req.Unit,
		MaintenanceDescription: req.Description,
		MaintenancePhotoURLs:   req.PhotoURLs,
	}
	if err := ctrl.DB.Create(request).Error; err != nil {
		log.Printf("[ERROR] Maintenance create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create maintenance request")
	}

	return helper.JsonCreated(c, "Maintenance request filed", dto.ToMaintenanceResponse(request))
}

// 🟢 GET /api/u/maintenance — tenant's own requests
func (ctrl *MaintenanceController) MyRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var requests []model.MaintenanceRequestModel
	if err := ctrl.DB.
		Where("maintenance_user_id = ?", userID).
		Order("maintenance_created_at DESC").
		Find(&requests).Error; err != nil {
		log.Printf("[ERROR] My maintenance requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch maintenance requests")
	}

	return helper.JsonOK(c, "", dto.ToMaintenanceResponseList(requests))
}

// 🟢 GET /api/a/maintenance?property_id=&status=  (+ pagination)
func (ctrl *MaintenanceController) ListRequests(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MaintenanceRequestModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		id, err := uuid.Parse(propertyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("maintenance_property_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("maintenance_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count maintenance requests")
	}

	var requests []model.MaintenanceRequestModel
	if err := q.
		Order("maintenance_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&requests).Error; err != nil {
		log.Printf("[ERROR] List maintenance requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch maintenance requests")
	}

	return helper.JsonList(c, "", dto.ToMaintenanceResponseList(requests),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 PATCH /api/a/maintenance/:id/status — landlord updates progress.
// Marking a request fixed notifies the tenant.
func (ctrl *MaintenanceController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.UpdateMaintenanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var request model.MaintenanceRequestModel
	if err := ctrl.DB.First(&request, "maintenance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Maintenance request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch maintenance request")
	}

	newStatus := model.MaintenanceStatus(req.Status)
	if err := ctrl.DB.Model(&request).Update("maintenance_status", newStatus).Error; err != nil {
		log.Printf("[ERROR] Maintenance status update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update maintenance request")
	}
	request.MaintenanceStatus = newStatus

	if newStatus == model.MaintenanceStatusFixed {
		unit := "Unit"
		if request.MaintenanceUnit != nil && *request.MaintenanceUnit != "" {
			unit = *request.MaintenanceUnit
		}
		msg := notifService.MaintenanceFixedMessage(notifService.MaintenanceFixedParams{
			UnitLabel:   unit,
			Description: request.MaintenanceDescription,
		})
		if _, err := ctrl.Notifs.Create(request.MaintenanceUserID, notifModel.NotificationTypeMaintenanceFixed, msg, &request.MaintenanceID); err != nil {
			log.Printf("[ERROR] Maintenance-fixed notification: %v", err)
		}
	}

	return helper.JsonUpdated(c, "Maintenance request updated", dto.ToMaintenanceResponse(&request))
}
