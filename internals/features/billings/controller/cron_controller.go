package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/billings/service"
	helper "rentalku_backend/internals/helpers"
	"rentalku_backend/internals/mailer"
)

type CronController struct {
	Generator *service.GeneratorService
}

func NewCronController(db *gorm.DB, mail mailer.Mailer) *CronController {
	return &CronController{
		Generator: service.NewGeneratorService(db, mail),
	}
}

// 🟢 GET /api/cron/rent-billing — external scheduler entry point.
// Idempotent per (user, month) via the generation log.
func (ctrl *CronController) RunRentBilling(c *fiber.Ctx) error {
	summary, err := ctrl.Generator.Run(time.Now())
	if err != nil {
		log.Printf("[ERROR] Rent billing generation failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Rent billing generation failed")
	}

	return helper.JsonOK(c, "Rent billing generation finished", summary)
}
