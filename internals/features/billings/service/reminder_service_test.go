package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billingModel "rentalku_backend/internals/features/billings/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
)

const propertyA = "11111111-1111-1111-1111-111111111111"
const propertyB = "22222222-2222-2222-2222-222222222222"

func TestDaysUntilDue(t *testing.T) {
	today := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntilDue(time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 3, DaysUntilDue(time.Date(2025, 3, 13, 23, 59, 0, 0, time.UTC), today))
	assert.Equal(t, -2, DaysUntilDue(time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 7, DaysUntilDue(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), today))
}

func TestClassifyDaysUntilDue(t *testing.T) {
	cases := []struct {
		days   int
		bucket UrgencyBucket
	}{
		{-10, BucketOverdue},
		{-1, BucketOverdue},
		{0, BucketDueToday},
		{1, BucketDueSoon},
		{3, BucketDueSoon},
		{4, BucketUpcoming},
		{7, BucketUpcoming},
		{8, BucketNone},
		{30, BucketNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bucket, ClassifyDaysUntilDue(tc.days), "days=%d", tc.days)
	}
}

func TestReminderRun_DueSoonNotifiesTenantAndLandlord(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewReminderService(db, mail)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, strP("maria@example.com"), propertyA, "Unit 2B", 3500)
	landlord := seedLandlord(t, db, "jose@example.com", propertyA)
	billing := seedRentBilling(t, db, tenant, 3500, today.AddDate(0, 0, 3), billingModel.PaymentStatusPending)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.BillingsChecked)
	assert.Equal(t, 2, summary.NotificationsCreated)
	assert.Equal(t, 0, summary.NotificationsSkipped)
	assert.Equal(t, 2, summary.EmailsSent)
	assert.Equal(t, 0, summary.EmailsFailed)

	var notifs []notifModel.NotificationModel
	require.NoError(t, db.Order("notification_created_at").Find(&notifs).Error)
	require.Len(t, notifs, 2)
	for _, n := range notifs {
		assert.Equal(t, notifModel.NotificationTypeBillingReminder, n.NotificationType)
		require.NotNil(t, n.NotificationRelatedID)
		assert.Equal(t, billing.BillingID, *n.NotificationRelatedID)
		assert.Equal(t, "2025-03-10", n.NotificationDay)
	}

	var tenantNotif notifModel.NotificationModel
	require.NoError(t, db.First(&tenantNotif, "notification_user_id = ?", tenant.UserID).Error)
	assert.Contains(t, tenantNotif.NotificationMessage, "Paalala sa Upa")
	assert.Contains(t, tenantNotif.NotificationMessage, "Maria Santos")
	assert.Contains(t, tenantNotif.NotificationMessage, "Unit 2B")
	assert.Contains(t, tenantNotif.NotificationMessage, "₱3,500.00")
	assert.Contains(t, tenantNotif.NotificationMessage, "is due in 3 day(s), on Mar 13, 2025")

	var landlordNotif notifModel.NotificationModel
	require.NoError(t, db.First(&landlordNotif, "notification_user_id = ?", landlord.UserID).Error)
	assert.Contains(t, landlordNotif.NotificationMessage, "Maria Santos (Unit 2B)")

	require.Len(t, mail.sent, 2)
	assert.Equal(t, "Rent Payment Reminder", mail.sent[0].Subject)
}

func TestReminderRun_SameDayRepeatSkips(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewReminderService(db, mail)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, strP("maria@example.com"), propertyA, "Unit 2B", 3500)
	seedLandlord(t, db, "jose@example.com", propertyA)
	seedRentBilling(t, db, tenant, 3500, today, billingModel.PaymentStatusPending)

	first, err := svc.Run(today)
	require.NoError(t, err)
	assert.Equal(t, 2, first.NotificationsCreated)

	second, err := svc.Run(today)
	require.NoError(t, err)
	assert.Equal(t, 0, second.NotificationsCreated)
	assert.Equal(t, 2, second.NotificationsSkipped)
	assert.Equal(t, 0, second.EmailsSent)

	// no email is attempted for a deduped candidate
	assert.Len(t, mail.sent, 2)

	var count int64
	require.NoError(t, db.Model(&notifModel.NotificationModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestReminderRun_NextDayNotifiesAgain(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewReminderService(db, mail)

	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, strP("maria@example.com"), propertyA, "Unit 2B", 3500)
	seedRentBilling(t, db, tenant, 3500, day1.AddDate(0, 0, 2), billingModel.PaymentStatusPending)

	_, err := svc.Run(day1)
	require.NoError(t, err)

	summary, err := svc.Run(day1.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NotificationsCreated)
	assert.Equal(t, 0, summary.NotificationsSkipped)

	var count int64
	require.NoError(t, db.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ?", tenant.UserID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestReminderRun_PaidAndFarOutBillingsIgnored(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewReminderService(db, mail)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, strP("maria@example.com"), propertyA, "Unit 2B", 3500)
	seedRentBilling(t, db, tenant, 3500, today, billingModel.PaymentStatusPaid)
	seedRentBilling(t, db, tenant, 3500, today.AddDate(0, 0, 20), billingModel.PaymentStatusPending)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	// the paid billing never enters the scan; the far-out one is bucket none
	assert.Equal(t, 1, summary.BillingsChecked)
	assert.Equal(t, 0, summary.NotificationsCreated)
	assert.Empty(t, mail.sent)
}

func TestReminderRun_TenantWithoutEmailLandlordOnly(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewReminderService(db, mail)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, nil, propertyA, "Unit 5", 4200)
	landlord := seedLandlord(t, db, "jose@example.com", propertyA)
	seedRentBilling(t, db, tenant, 4200, today.AddDate(0, 0, -2), billingModel.PaymentStatusPartial)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.NotificationsCreated)
	assert.Equal(t, 1, summary.EmailsSent)

	var notifs []notifModel.NotificationModel
	require.NoError(t, db.Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, landlord.UserID, notifs[0].NotificationUserID)
	assert.Contains(t, notifs[0].NotificationMessage, "2 day(s) overdue")

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Overdue Rent Notice", mail.sent[0].Subject)
	assert.Equal(t, "jose@example.com", mail.sent[0].To)
}

func TestReminderRun_EveryLandlordOfPropertyNotified(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{}
	svc := NewReminderService(db, mail)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, strP("maria@example.com"), propertyA, "Unit 2B", 3500)
	l1 := seedLandlord(t, db, "jose@example.com", propertyA)
	l2 := seedLandlord(t, db, "ana@example.com", propertyA)
	seedLandlord(t, db, "other@example.com", propertyB) // different property, untouched
	seedRentBilling(t, db, tenant, 3500, today.AddDate(0, 0, 5), billingModel.PaymentStatusPending)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	// tenant + two landlords
	assert.Equal(t, 3, summary.NotificationsCreated)
	assert.Equal(t, 3, summary.EmailsSent)

	for _, landlord := range []string{l1.UserID.String(), l2.UserID.String()} {
		var count int64
		require.NoError(t, db.Model(&notifModel.NotificationModel{}).
			Where("notification_user_id = ?", landlord).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	}
}

func TestReminderRun_EmailFailureKeepsNotification(t *testing.T) {
	db := setupTestDB(t)
	mail := &stubMailer{fail: true}
	svc := NewReminderService(db, mail)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, strP("maria@example.com"), propertyA, "Unit 2B", 3500)
	seedRentBilling(t, db, tenant, 3500, today, billingModel.PaymentStatusPending)

	summary, err := svc.Run(today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.NotificationsCreated)
	assert.Equal(t, 0, summary.EmailsSent)
	assert.Equal(t, 1, summary.EmailsFailed)

	var count int64
	require.NoError(t, db.Model(&notifModel.NotificationModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestReminderStatus_BucketsCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReminderService(db, &stubMailer{})

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tenant := seedTenant(t, db, strP("maria@example.com"), propertyA, "Unit 2B", 3500)
	seedRentBilling(t, db, tenant, 3500, today.AddDate(0, 0, -1), billingModel.PaymentStatusPending)
	seedRentBilling(t, db, tenant, 3500, today, billingModel.PaymentStatusPending)
	seedRentBilling(t, db, tenant, 3500, today.AddDate(0, 0, 2), billingModel.PaymentStatusPending)
	seedRentBilling(t, db, tenant, 3500, today.AddDate(0, 0, 6), billingModel.PaymentStatusPending)
	seedRentBilling(t, db, tenant, 3500, today.AddDate(0, 0, 15), billingModel.PaymentStatusPending)

	status, err := svc.Status(today)
	require.NoError(t, err)

	assert.Equal(t, 1, status.Overdue)
	assert.Equal(t, 1, status.DueToday)
	assert.Equal(t, 1, status.DueSoon)
	assert.Equal(t, 1, status.Upcoming)
	assert.Len(t, status.Billings, 4)

	// read-only: no notifications written
	var count int64
	require.NoError(t, db.Model(&notifModel.NotificationModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
