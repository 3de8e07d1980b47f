package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"rentalku_backend/internals/features/billings/service"
	"rentalku_backend/internals/mailer"
)

// StartBillingScheduler runs the daily rent generation and reminder pass at
// BILLING_CRON_HOUR (default 08:00 local). An external scheduler hitting
// /api/cron/rent-billing can coexist with this; the (user, month) log and
// the daily notification key keep repeats idempotent.
func StartBillingScheduler(db *gorm.DB, mail mailer.Mailer) {
	go func() {
		hour := 8
		if val := os.Getenv("BILLING_CRON_HOUR"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed >= 0 && parsed <= 23 {
				hour = parsed
			}
		}

		generator := service.NewGeneratorService(db, mail)
		reminders := service.NewReminderService(db, mail)

		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		log.Printf("[INFO] Billing scheduler started (daily at %02d:00)", hour)

		for now := range ticker.C {
			if now.Hour() != hour || now.Minute() != 0 {
				continue
			}

			log.Println("[CRON] Running rent billing generation...")
			if summary, err := generator.Run(now); err != nil {
				log.Printf("[CRON ERROR] Generation failed: %v", err)
			} else {
				log.Printf("[CRON] Generation done: created=%d skipped=%d no_rent=%d emails=%d/%d",
					summary.BillingsCreated, summary.SkippedExisting, summary.SkippedNoRent,
					summary.EmailsSent, summary.EmailsSent+summary.EmailsFailed)
			}

			log.Println("[CRON] Running billing reminder check...")
			if summary, err := reminders.Run(now); err != nil {
				log.Printf("[CRON ERROR] Reminder check failed: %v", err)
			} else {
				log.Printf("[CRON] Reminders done: created=%d skipped=%d emails=%d/%d checked=%d",
					summary.NotificationsCreated, summary.NotificationsSkipped,
					summary.EmailsSent, summary.EmailsSent+summary.EmailsFailed,
					summary.BillingsChecked)
			}
		}
	}()
}
