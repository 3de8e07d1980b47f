package service

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	billingModel "rentalku_backend/internals/features/billings/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	notifService "rentalku_backend/internals/features/notifications/service"
	userModel "rentalku_backend/internals/features/users/model"
	helper "rentalku_backend/internals/helpers"
	"rentalku_backend/internals/mailer"
)

// =========================================================
// URGENCY BUCKETS
// =========================================================

// UrgencyBucket is a derived, non-persisted classification of a billing's due
// date relative to "today". It is recomputed fresh on every run; the only
// thing that stops a repeat send is the per-day notification key, so the same
// billing notifies again the next day even inside the same bucket.
type UrgencyBucket string

const (
	BucketOverdue  UrgencyBucket = "overdue"
	BucketDueToday UrgencyBucket = "due_today"
	BucketDueSoon  UrgencyBucket = "due_soon"
	BucketUpcoming UrgencyBucket = "upcoming"
	BucketNone     UrgencyBucket = "none"
)

// DaysUntilDue is the whole-day distance between the two midnights; negative
// when the due date has passed.
func DaysUntilDue(dueDate, today time.Time) int {
	d := helper.StartOfDay(dueDate).Sub(helper.StartOfDay(today))
	return int(math.Round(d.Hours() / 24))
}

// ClassifyDaysUntilDue maps the day distance onto the fixed thresholds.
func ClassifyDaysUntilDue(days int) UrgencyBucket {
	switch {
	case days < 0:
		return BucketOverdue
	case days == 0:
		return BucketDueToday
	case days <= 3:
		return BucketDueSoon
	case days <= 7:
		return BucketUpcoming
	default:
		return BucketNone
	}
}

// UnitLabel falls back user.unit → billing.unit → "Unit".
func UnitLabel(tenant *userModel.UserModel, billing *billingModel.BillingModel) string {
	if tenant != nil && tenant.UserUnitNumber != nil && *tenant.UserUnitNumber != "" {
		return *tenant.UserUnitNumber
	}
	if billing.BillingUnit != nil && *billing.BillingUnit != "" {
		return *billing.BillingUnit
	}
	return "Unit"
}

// =========================================================
// MESSAGE TEXT
// =========================================================

func dueClause(bucket UrgencyBucket, days int, dueDate time.Time) string {
	due := helper.FormatDate(dueDate)
	switch bucket {
	case BucketOverdue:
		return fmt.Sprintf("was due on %s and is now %d day(s) overdue", due, -days)
	case BucketDueToday:
		return fmt.Sprintf("is due today (%s)", due)
	case BucketDueSoon:
		return fmt.Sprintf("is due in %d day(s), on %s", days, due)
	default: // upcoming
		return fmt.Sprintf("is coming up on %s", due)
	}
}

// TenantReminderMessage is the tenant-facing string persisted on the
// notification row; the Filipino lead-in mirrors the stored message format.
func TenantReminderMessage(tenantName, unit string, amount float64, bucket UrgencyBucket, days int, dueDate time.Time) string {
	return fmt.Sprintf("Rent Reminder (Paalala sa Upa): Hi %s, your rent for %s amounting to %s %s.",
		tenantName, unit, helper.FormatPeso(amount), dueClause(bucket, days, dueDate))
}

// LandlordReminderMessage is the landlord-facing string.
func LandlordReminderMessage(tenantName, unit string, amount float64, bucket UrgencyBucket, days int, dueDate time.Time) string {
	return fmt.Sprintf("Rent Reminder: %s (%s) has rent of %s that %s.",
		tenantName, unit, helper.FormatPeso(amount), dueClause(bucket, days, dueDate))
}

func reminderSubject(bucket UrgencyBucket) string {
	if bucket == BucketOverdue {
		return "Overdue Rent Notice"
	}
	return "Rent Payment Reminder"
}

// =========================================================
// EVALUATOR
// =========================================================

type ReminderSummary struct {
	NotificationsCreated int `json:"notifications_created"`
	NotificationsSkipped int `json:"notifications_skipped"`
	EmailsSent           int `json:"emails_sent"`
	EmailsFailed         int `json:"emails_failed"`
	BillingsChecked      int `json:"billings_checked"`
}

type ReminderService struct {
	DB     *gorm.DB
	Mail   mailer.Mailer
	Notifs *notifService.NotificationService
}

func NewReminderService(db *gorm.DB, mail mailer.Mailer) *ReminderService {
	return &ReminderService{
		DB:     db,
		Mail:   mail,
		Notifs: notifService.NewNotificationService(db),
	}
}

// Run scans all outstanding rent billings and emits at most one reminder
// notification per (user, billing, day). `today` is passed in explicitly so
// bucket classification stays testable; callers truncate to midnight, but
// Run re-truncates defensively.
//
// Error policy: per-item failures are logged and the loop continues; only a
// failure of the initial scan aborts the run. Email failures never roll back
// the notification insert.
func (s *ReminderService) Run(today time.Time) (*ReminderSummary, error) {
	today = helper.StartOfDay(today)
	summary := &ReminderSummary{}

	billings, err := s.outstandingRentBillings()
	if err != nil {
		return nil, err
	}
	summary.BillingsChecked = len(billings)
	if len(billings) == 0 {
		return summary, nil
	}

	tenantsByID, landlordsByProperty, err := s.preloadUsers(billings)
	if err != nil {
		return nil, err
	}

	for i := range billings {
		b := &billings[i]

		days := DaysUntilDue(*b.BillingDueDate, today)
		bucket := ClassifyDaysUntilDue(days)
		if bucket == BucketNone {
			continue
		}

		tenant, hasTenant := tenantsByID[b.BillingUserID]
		unit := UnitLabel(tenant, b)
		tenantName := "Tenant"
		if hasTenant {
			tenantName = tenant.DisplayName()
		}
		amount := b.TotalAmount()

		// tenant branch: only when an email is on file; a tenant without
		// one gets no tenant-side notification and no send attempt.
		if hasTenant && tenant.UserEmail != nil && *tenant.UserEmail != "" {
			msg := TenantReminderMessage(tenantName, unit, amount, bucket, days, *b.BillingDueDate)
			s.deliver(summary, tenant.UserID, *tenant.UserEmail, msg, bucket, b.BillingID, today)
		}

		// every landlord of the property gets an independent candidate
		for _, landlord := range landlordsByProperty[b.BillingPropertyID] {
			msg := LandlordReminderMessage(tenantName, unit, amount, bucket, days, *b.BillingDueDate)
			email := ""
			if landlord.UserEmail != nil {
				email = *landlord.UserEmail
			}
			s.deliver(summary, landlord.UserID, email, msg, bucket, b.BillingID, today)
		}
	}

	return summary, nil
}

// deliver performs the conflict-guarded insert and, for freshly created
// notifications only, the best-effort email send.
func (s *ReminderService) deliver(summary *ReminderSummary, userID uuid.UUID, email, msg string, bucket UrgencyBucket, billingID uuid.UUID, today time.Time) {
	created, err := s.Notifs.CreateDaily(userID, notifModel.NotificationTypeBillingReminder, msg, &billingID, today)
	if err != nil {
		log.Printf("[ERROR] Reminder notification insert (user=%s billing=%s): %v", userID, billingID, err)
		return
	}
	if !created {
		summary.NotificationsSkipped++
		return
	}
	summary.NotificationsCreated++

	if email == "" {
		return
	}
	if err := s.Mail.Send(email, reminderSubject(bucket), msg); err != nil {
		log.Printf("[ERROR] Reminder email to %s: %v", email, err)
		summary.EmailsFailed++
		return
	}
	summary.EmailsSent++
}

func (s *ReminderService) outstandingRentBillings() ([]billingModel.BillingModel, error) {
	var billings []billingModel.BillingModel
	err := s.DB.
		Where("billing_type = ?", billingModel.BillingTypeRent).
		Where("billing_payment_status IN ?", []billingModel.PaymentStatus{
			billingModel.PaymentStatusPending,
			billingModel.PaymentStatusPartial,
		}).
		Where("billing_due_date IS NOT NULL").
		Find(&billings).Error
	return billings, err
}

// preloadUsers batch-fetches every tenant and landlord the loop will touch,
// so the per-billing iteration issues no queries of its own.
func (s *ReminderService) preloadUsers(billings []billingModel.BillingModel) (map[uuid.UUID]*userModel.UserModel, map[uuid.UUID][]userModel.UserModel, error) {
	tenantIDSet := map[uuid.UUID]struct{}{}
	propertyIDSet := map[uuid.UUID]struct{}{}
	for i := range billings {
		tenantIDSet[billings[i].BillingUserID] = struct{}{}
		propertyIDSet[billings[i].BillingPropertyID] = struct{}{}
	}

	tenantIDs := make([]uuid.UUID, 0, len(tenantIDSet))
	for id := range tenantIDSet {
		tenantIDs = append(tenantIDs, id)
	}
	propertyIDs := make([]uuid.UUID, 0, len(propertyIDSet))
	for id := range propertyIDSet {
		propertyIDs = append(propertyIDs, id)
	}

	var tenants []userModel.UserModel
	if err := s.DB.Where("user_id IN ?", tenantIDs).Find(&tenants).Error; err != nil {
		return nil, nil, err
	}
	tenantsByID := make(map[uuid.UUID]*userModel.UserModel, len(tenants))
	for i := range tenants {
		tenantsByID[tenants[i].UserID] = &tenants[i]
	}

	var landlords []userModel.UserModel
	if err := s.DB.
		Where("user_role = ?", "landlord").
		Where("user_property_id IN ?", propertyIDs).
		Find(&landlords).Error; err != nil {
		return nil, nil, err
	}
	landlordsByProperty := make(map[uuid.UUID][]userModel.UserModel)
	for _, l := range landlords {
		if l.UserPropertyID == nil {
			continue
		}
		landlordsByProperty[*l.UserPropertyID] = append(landlordsByProperty[*l.UserPropertyID], l)
	}

	return tenantsByID, landlordsByProperty, nil
}

// =========================================================
// READ-ONLY STATUS
// =========================================================

type ReminderStatusItem struct {
	BillingID   uuid.UUID     `json:"billing_id"`
	Unit        string        `json:"unit"`
	TenantName  string        `json:"tenant_name"`
	Amount      float64       `json:"amount"`
	DueDate     time.Time     `json:"due_date"`
	DaysUntil   int           `json:"days_until_due"`
	Bucket      UrgencyBucket `json:"urgency"`
	Status      string        `json:"payment_status"`
}

type ReminderStatus struct {
	Overdue  int                  `json:"overdue"`
	DueToday int                  `json:"due_today"`
	DueSoon  int                  `json:"due_soon"`
	Upcoming int                  `json:"upcoming"`
	Billings []ReminderStatusItem `json:"billings"`
}

// Status summarizes outstanding rent billings due within 7 days or already
// overdue, bucketed by urgency. No side effects.
func (s *ReminderService) Status(today time.Time) (*ReminderStatus, error) {
	today = helper.StartOfDay(today)

	billings, err := s.outstandingRentBillings()
	if err != nil {
		return nil, err
	}

	status := &ReminderStatus{Billings: []ReminderStatusItem{}}
	if len(billings) == 0 {
		return status, nil
	}

	tenantsByID, _, err := s.preloadUsers(billings)
	if err != nil {
		return nil, err
	}

	for i := range billings {
		b := &billings[i]
		days := DaysUntilDue(*b.BillingDueDate, today)
		bucket := ClassifyDaysUntilDue(days)
		if bucket == BucketNone {
			continue
		}

		switch bucket {
		case BucketOverdue:
			status.Overdue++
		case BucketDueToday:
			status.DueToday++
		case BucketDueSoon:
			status.DueSoon++
		case BucketUpcoming:
			status.Upcoming++
		}

		tenant := tenantsByID[b.BillingUserID]
		tenantName := "Tenant"
		if tenant != nil {
			tenantName = tenant.DisplayName()
		}
		status.Billings = append(status.Billings, ReminderStatusItem{
			BillingID:  b.BillingID,
			Unit:       UnitLabel(tenant, b),
			TenantName: tenantName,
			Amount:     b.TotalAmount(),
			DueDate:    *b.BillingDueDate,
			DaysUntil:  days,
			Bucket:     bucket,
			Status:     string(b.BillingPaymentStatus),
		})
	}

	return status, nil
}
