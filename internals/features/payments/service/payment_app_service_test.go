package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	billingModel "rentalku_backend/internals/features/billings/model"
	notifModel "rentalku_backend/internals/features/notifications/model"
	"rentalku_backend/internals/features/payments/model"
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
		&model.PaymentModel{},
		&notifModel.NotificationModel{},
	))
	return db
}

func strP(s string) *string { return &s }

func seedBillingWithParties(t *testing.T, db *gorm.DB) (*userModel.UserModel, *userModel.UserModel, *billingModel.BillingModel) {
	t.Helper()
	propertyID := uuid.New()

	tenant := &userModel.UserModel{
		UserEmail:      strP("maria@example.com"),
		UserFirstName:  "Maria",
		UserLastName:   "Santos",
		UserRole:       "tenant",
		UserPropertyID: &propertyID,
		UserUnitNumber: strP("Unit 2B"),
	}
	require.NoError(t, db.Create(tenant).Error)

	landlord := &userModel.UserModel{
		UserEmail:      strP("jose@example.com"),
		UserFirstName:  "Jose",
		UserLastName:   "Reyes",
		UserRole:       "landlord",
		UserPropertyID: &propertyID,
	}
	require.NoError(t, db.Create(landlord).Error)

	due := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	billing := &billingModel.BillingModel{
		BillingUserID:        tenant.UserID,
		BillingPropertyID:    propertyID,
		BillingUnit:          tenant.UserUnitNumber,
		BillingType:          billingModel.BillingTypeRent,
		BillingTotalRent:     3500,
		BillingPaymentStatus: billingModel.PaymentStatusPending,
		BillingDueDate:       &due,
		BillingIssueDate:     due.AddDate(0, 0, -7),
	}
	require.NoError(t, db.Create(billing).Error)

	return tenant, landlord, billing
}

func TestSettlePayment_PartialThenPaid(t *testing.T) {
	db := setupTestDB(t)
	tenant, landlord, billing := seedBillingWithParties(t, db)

	first := &model.PaymentModel{
		PaymentBillingID: billing.BillingID,
		PaymentPayerID:   tenant.UserID,
		PaymentAmount:    1500,
		PaymentMethod:    model.PaymentMethodGateway,
	}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, SettlePayment(db, first))

	var reloaded billingModel.BillingModel
	require.NoError(t, db.First(&reloaded, "billing_id = ?", billing.BillingID).Error)
	assert.Equal(t, 1500.0, reloaded.BillingAmountPaid)
	assert.Equal(t, billingModel.PaymentStatusPartial, reloaded.BillingPaymentStatus)

	assert.Equal(t, model.PaymentStateSettled, first.PaymentState)
	require.NotNil(t, first.PaymentSettledAt)

	second := &model.PaymentModel{
		PaymentBillingID: billing.BillingID,
		PaymentPayerID:   tenant.UserID,
		PaymentAmount:    2000,
		PaymentMethod:    model.PaymentMethodCash,
	}
	require.NoError(t, db.Create(second).Error)
	require.NoError(t, SettlePayment(db, second))

	require.NoError(t, db.First(&reloaded, "billing_id = ?", billing.BillingID).Error)
	assert.Equal(t, 3500.0, reloaded.BillingAmountPaid)
	assert.Equal(t, billingModel.PaymentStatusPaid, reloaded.BillingPaymentStatus)

	// landlord got one payment-received notification per settlement
	var notifs []notifModel.NotificationModel
	require.NoError(t, db.Where("notification_user_id = ?", landlord.UserID).Find(&notifs).Error)
	require.Len(t, notifs, 2)
	assert.Equal(t, notifModel.NotificationTypePaymentReceived, notifs[0].NotificationType)
	assert.Contains(t, notifs[0].NotificationMessage, "₱1,500.00")
	assert.Contains(t, notifs[0].NotificationMessage, "Maria Santos")
	assert.Contains(t, notifs[0].NotificationMessage, "Unit 2B")
}

func TestSettlePayment_UnknownBillingFails(t *testing.T) {
	db := setupTestDB(t)
	tenant, _, _ := seedBillingWithParties(t, db)

	orphan := &model.PaymentModel{
		PaymentBillingID: uuid.New(),
		PaymentPayerID:   tenant.UserID,
		PaymentAmount:    1000,
		PaymentMethod:    model.PaymentMethodCash,
	}
	require.NoError(t, db.Create(orphan).Error)

	err := SettlePayment(db, orphan)
	require.Error(t, err)

	// payment stays pending on failure
	var reloaded model.PaymentModel
	require.NoError(t, db.First(&reloaded, "payment_id = ?", orphan.PaymentID).Error)
	assert.Equal(t, model.PaymentStatePending, reloaded.PaymentState)
}
