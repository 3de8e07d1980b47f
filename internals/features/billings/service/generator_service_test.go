package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	billingModel "rentalku_backend/internals/features/billings/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	userModel "rentalku_backend/internals/features/users/model"
)

func seedMovedInTenant(t *testing.T, db *gorm.DB, email *string, rent float64, moveIn time.Time) *userModel.UserModel {
	t.Helper()
	tenant := seedTenant(t, db, email, propertyA, "Unit 2B", rent)
	require.NoError(t, db.Model(tenant).Update("user_move_in_date", moveIn).Error)
	tenant.UserMoveInDate = &moveIn
	return tenant
}

func TestGeneratorRun_CreatesBillingOnAnniversaryDay(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewGeneratorService(db, mail)

	// moved in on the 10th; today is March 10
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	moveIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedMovedInTenant(t, db, strP("maria@example.com"), 3500, moveIn)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TenantsChecked)
	assert.Equal(t, 1, summary.BillingsCreated)
	assert.Equal(t, 1, summary.EmailsSent)

	var billing billingModel.BillingModel
	require.NoError(t, db.First(&billing, "billing_user_id = ?", tenant.UserID).Error)
	assert.Equal(t, billingModel.BillingTypeRent, billing.BillingType)
	assert.Equal(t, 3500.0, billing.BillingTotalRent)
	assert.Equal(t, billingModel.PaymentStatusPending, billing.BillingPaymentStatus)
	require.NotNil(t, billing.BillingDueDate)
	assert.Equal(t, today.AddDate(0, 0, 7).Format("2006-01-02"), billing.BillingDueDate.Format("2006-01-02"))

	var notif notifModel.NotificationModel
	require.NoError(t, db.First(&notif, "notification_user_id = ?", tenant.UserID).Error)
	assert.Equal(t, notifModel.NotificationTypeBillingCreated, notif.NotificationType)
	assert.Contains(t, notif.NotificationMessage, "₱3,500.00")
	assert.Contains(t, notif.NotificationMessage, "Mar 17, 2025")

	var logEntry billingModel.BillingGenerationLog
	require.NoError(t, db.First(&logEntry, "generation_log_user_id = ?", tenant.UserID).Error)
	assert.True(t, logEntry.GenerationLogSuccess)
	assert.True(t, logEntry.GenerationLogEmailSent)
	assert.Equal(t, "2025-03", logEntry.GenerationLogMonth)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Your Monthly Rent Statement", mail.sent[0].Subject)
	assert.Contains(t, mail.sent[0].Body, "Salamat po!")
}

func TestGeneratorRun_SkipsOffAnniversaryDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGeneratorService(db, &stubMailer{})

	today := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	moveIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	seedMovedInTenant(t, db, strP("maria@example.com"), 3500, moveIn)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TenantsChecked)
	assert.Equal(t, 0, summary.BillingsCreated)

	var count int64
	require.NoError(t, db.Model(&billingModel.BillingModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGeneratorRun_MonthLogPreventsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGeneratorService(db, &stubMailer{})

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	moveIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	seedMovedInTenant(t, db, strP("maria@example.com"), 3500, moveIn)

	first, err := svc.Run(today)
	require.NoError(t, err)
	assert.Equal(t, 1, first.BillingsCreated)

	second, err := svc.Run(today)
	require.NoError(t, err)
	assert.Equal(t, 0, second.BillingsCreated)
	assert.Equal(t, 1, second.SkippedExisting)

	var count int64
	require.NoError(t, db.Model(&billingModel.BillingModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGeneratorRun_ZeroRentLogsFailureWithoutBilling(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGeneratorService(db, &stubMailer{})

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	moveIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedMovedInTenant(t, db, strP("maria@example.com"), 0, moveIn)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.BillingsCreated)
	assert.Equal(t, 1, summary.SkippedNoRent)

	var count int64
	require.NoError(t, db.Model(&billingModel.BillingModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	var logEntry billingModel.BillingGenerationLog
	require.NoError(t, db.First(&logEntry, "generation_log_user_id = ?", tenant.UserID).Error)
	assert.False(t, logEntry.GenerationLogSuccess)
	require.NotNil(t, logEntry.GenerationLogError)
	assert.Contains(t, *logEntry.GenerationLogError, "monthly rent not configured")
}

func TestGeneratorRun_NoEmailOnFileStillBills(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewGeneratorService(db, mail)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	moveIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedMovedInTenant(t, db, nil, 3500, moveIn)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.BillingsCreated)
	assert.Equal(t, 0, summary.EmailsSent)
	assert.Equal(t, 0, summary.EmailsFailed)
	assert.Empty(t, mail.sent)

	var logEntry billingModel.BillingGenerationLog
	require.NoError(t, db.First(&logEntry, "generation_log_user_id = ?", tenant.UserID).Error)
	assert.True(t, logEntry.GenerationLogSuccess)
	assert.False(t, logEntry.GenerationLogEmailSent)
}

func TestGeneratorRun_LeftTenantsExcluded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGeneratorService(db, &stubMailer{})

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	moveIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedMovedInTenant(t, db, strP("maria@example.com"), 3500, moveIn)
	require.NoError(t, db.Model(tenant).Update("user_has_left_property", true).Error)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TenantsChecked)
	assert.Equal(t, 0, summary.BillingsCreated)
}
