package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	billingModel "rentalku_backend/internals/features/billings/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	userModel "rentalku_backend/internals/features/users/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&billingModel.BillingModel{},
		&billingModel.BillingGenerationLog{},
		&notifModel.NotificationModel{},
	))
	return db
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type stubMailer struct {
	sent []sentMail
	fail bool
}

func (m *stubMailer) IsEnabled() bool { return true }

func (m *stubMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func strP(s string) *string { return &s }

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func dateP(t time.Time) *time.Time { return &t }

func seedTenant(t *testing.T, db *gorm.DB, email *string, propertyID, unit string, rent float64) *userModel.UserModel {
	t.Helper()
	pid := mustUUID(t, propertyID)
	u := &userModel.UserModel{
		UserEmail:       email,
		UserFirstName:   "Maria",
		UserLastName:    "Santos",
		UserRole:        "tenant",
		UserPropertyID:  &pid,
		UserUnitNumber:  strP(unit),
		UserMonthlyRent: rent,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedLandlord(t *testing.T, db *gorm.DB, email, propertyID string) *userModel.UserModel {
	t.Helper()
	pid := mustUUID(t, propertyID)
	u := &userModel.UserModel{
		UserEmail:      strP(email),
		UserFirstName:  "Jose",
		UserLastName:   "Reyes",
		UserRole:       "landlord",
		UserPropertyID: &pid,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRentBilling(t *testing.T, db *gorm.DB, tenant *userModel.UserModel, rent float64, due time.Time, status billingModel.PaymentStatus) *billingModel.BillingModel {
	t.Helper()
	b := &billingModel.BillingModel{
		BillingUserID:        tenant.UserID,
		BillingPropertyID:    *tenant.UserPropertyID,
		BillingUnit:          tenant.UserUnitNumber,
		BillingType:          billingModel.BillingTypeRent,
		BillingTotalRent:     rent,
		BillingPaymentStatus: status,
		BillingDueDate:       dateP(due),
		BillingIssueDate:     due.AddDate(0, 0, -7),
	}
	require.NoError(t, db.Create(b).Error)
	return b
}
