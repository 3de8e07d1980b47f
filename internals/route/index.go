package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/constants"
	billingRoute "rentalku_backend/internals/features/billings/route"
	maintenanceRoute "rentalku_backend/internals/features/maintenance/route"
	messageRoute "rentalku_backend/internals/features/messages/route"
	notificationRoute "rentalku_backend/internals/features/notifications/route"
	paymentRoute "rentalku_backend/internals/features/payments/route"
	propertyRoute "rentalku_backend/internals/features/properties/route"
	userRoute "rentalku_backend/internals/features/users/route"
	"rentalku_backend/internals/mailer"
	"rentalku_backend/internals/middlewares"
	authMiddleware "rentalku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	mail := mailer.NewFromEnv()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, db)

	// ===================== WEBHOOKS =====================
	// mounted before the auth groups; also in the auth skip list
	api := app.Group("/api")
	paymentRoute.PaymentWebhookRoutes(api, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	userRoute.UserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)
	billingRoute.BillingUserRoutes(user, db)
	maintenanceRoute.MaintenanceUserRoutes(user, db)
	messageRoute.MessageUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)

	// ===================== ADMIN (LANDLORD) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorLandlord("property management"),
			constants.LandlordAndAbove...,
		),
	)
	userRoute.TenantAdminRoutes(admin, db)
	propertyRoute.PropertyAdminRoutes(admin, db)
	billingRoute.BillingAdminRoutes(admin, db, mail)
	maintenanceRoute.MaintenanceAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)

	// ===================== CRON =====================
	log.Println("[INFO] Setting up CRON group...")
	cron := app.Group("/api/cron", middlewares.CronAuth())
	billingRoute.BillingCronRoutes(cron, db, mail)
}
