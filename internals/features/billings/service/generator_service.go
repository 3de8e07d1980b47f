package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	billingModel "rentalku_backend/internals/features/billings/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	notifService "rentalku_backend/internals/features/notifications/service"
	userModel "rentalku_backend/internals/features/users/model"
	helper "rentalku_backend/internals/helpers"
	"rentalku_backend/internals/mailer"
)

type GenerationSummary struct {
	TenantsChecked  int `json:"tenants_checked"`
	BillingsCreated int `json:"billings_created"`
	SkippedExisting int `json:"skipped_existing"`
	SkippedNoRent   int `json:"skipped_no_rent"`
	EmailsSent      int `json:"emails_sent"`
	EmailsFailed    int `json:"emails_failed"`
}

type GeneratorService struct {
	DB     *gorm.DB
	Mail   mailer.Mailer
	Notifs *notifService.NotificationService
}

func NewGeneratorService(db *gorm.DB, mail mailer.Mailer) *GeneratorService {
	return &GeneratorService{
		DB:     db,
		Mail:   mail,
		Notifs: notifService.NewNotificationService(db),
	}
}

// Run generates rent billings for every active tenant whose move-in
// day-of-month equals today's. The (user, month) generation log is the sole
// duplicate guard, so re-running within the same month is a no-op per tenant.
// Tenants with zero configured rent get a failed log row instead of a
// zero-amount bill.
func (s *GeneratorService) Run(today time.Time) (*GenerationSummary, error) {
	today = helper.StartOfDay(today)
	monthKey := today.Format("2006-01")
	summary := &GenerationSummary{}

	var tenants []userModel.UserModel
	if err := s.DB.
		Where("user_role = ?", "tenant").
		Where("user_has_left_property = FALSE").
		Where("user_move_in_date IS NOT NULL").
		Where("user_property_id IS NOT NULL").
		Find(&tenants).Error; err != nil {
		return nil, err
	}

	for i := range tenants {
		tenant := &tenants[i]
		summary.TenantsChecked++

		if tenant.UserMoveInDate.Day() != today.Day() {
			continue
		}

		var existing billingModel.BillingGenerationLog
		err := s.DB.
			Where("generation_log_user_id = ? AND generation_log_month = ?", tenant.UserID, monthKey).
			First(&existing).Error
		if err == nil {
			summary.SkippedExisting++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] Generation log lookup (user=%s): %v", tenant.UserID, err)
			continue
		}

		if tenant.UserMonthlyRent <= 0 {
			summary.SkippedNoRent++
			s.writeLog(tenant, monthKey, nil, false, false, strPtr("monthly rent not configured"))
			continue
		}

		dueDate := today.AddDate(0, 0, 7)
		billing := &billingModel.BillingModel{
			BillingUserID:     tenant.UserID,
			BillingPropertyID: *tenant.UserPropertyID,
			BillingUnit:       tenant.UserUnitNumber,
			BillingType:       billingModel.BillingTypeRent,
			BillingTotalRent:  tenant.UserMonthlyRent,
			BillingDueDate:    &dueDate,
			BillingIssueDate:  today,
		}
		if err := s.DB.Create(billing).Error; err != nil {
			log.Printf("[ERROR] Billing create (user=%s): %v", tenant.UserID, err)
			s.writeLog(tenant, monthKey, nil, false, false, strPtr(err.Error()))
			continue
		}
		summary.BillingsCreated++

		unit := UnitLabel(tenant, billing)
		msg := notifService.BillingCreatedMessage(notifService.BillingCreatedParams{
			UnitLabel: unit,
			Amount:    billing.TotalAmount(),
			DueDate:   billing.BillingDueDate,
		})
		if _, err := s.Notifs.Create(tenant.UserID, notifModel.NotificationTypeBillingCreated, msg, &billing.BillingID); err != nil {
			log.Printf("[ERROR] Billing-created notification (user=%s): %v", tenant.UserID, err)
		}

		emailSent := false
		var emailErr *string
		if tenant.UserEmail != nil && *tenant.UserEmail != "" {
			body := statementBody(tenant.DisplayName(), unit, billing)
			if err := s.Mail.Send(*tenant.UserEmail, "Your Monthly Rent Statement", body); err != nil {
				log.Printf("[ERROR] Statement email to %s: %v", *tenant.UserEmail, err)
				summary.EmailsFailed++
				emailErr = strPtr(err.Error())
			} else {
				summary.EmailsSent++
				emailSent = true
			}
		}

		s.writeLog(tenant, monthKey, billing, true, emailSent, emailErr)
	}

	return summary, nil
}

func (s *GeneratorService) writeLog(tenant *userModel.UserModel, monthKey string, billing *billingModel.BillingModel, success, emailSent bool, errText *string) {
	entry := &billingModel.BillingGenerationLog{
		GenerationLogUserID:    tenant.UserID,
		GenerationLogMonth:     monthKey,
		GenerationLogSuccess:   success,
		GenerationLogEmailSent: emailSent,
		GenerationLogError:     errText,
	}
	if billing != nil {
		entry.GenerationLogBillingID = &billing.BillingID
	}
	if err := s.DB.Create(entry).Error; err != nil {
		log.Printf("[ERROR] Generation log write (user=%s month=%s): %v", tenant.UserID, monthKey, err)
	}
}

// statementBody is the plain-text statement mailed with each generated bill.
func statementBody(tenantName, unit string, b *billingModel.BillingModel) string {
	due := ""
	if b.BillingDueDate != nil {
		due = helper.FormatDate(*b.BillingDueDate)
	}
	return fmt.Sprintf(`Hi %s,

Your monthly rent statement for %s is ready.

Rent:  %s
Total: %s
Due:   %s

Please settle on or before the due date. Salamat po!

— Rentalku`,
		tenantName, unit,
		helper.FormatPeso(b.BillingTotalRent),
		helper.FormatPeso(b.TotalAmount()),
		due)
}

func strPtr(s string) *string { return &s }
