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

	"rentalku_backend/internals/features/notifications/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.NotificationModel{}))
	return db
}

func TestCreateDaily_DedupesPerDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	userID := uuid.New()
	billingID := uuid.New()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	created, err := svc.CreateDaily(userID, model.NotificationTypeBillingReminder, "first", &billingID, day)
	require.NoError(t, err)
	assert.True(t, created)

	// same key, same day: silently dropped even with a different message
	created, err = svc.CreateDaily(userID, model.NotificationTypeBillingReminder, "second", &billingID, day)
	require.NoError(t, err)
	assert.False(t, created)

	var notifs []model.NotificationModel
	require.NoError(t, db.Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, "first", notifs[0].NotificationMessage)
	assert.Equal(t, "2025-03-10", notifs[0].NotificationDay)
}

func TestCreateDaily_DistinctKeysInsert(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	userID := uuid.New()
	otherUser := uuid.New()
	billingID := uuid.New()
	otherBilling := uuid.New()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	base, err := svc.CreateDaily(userID, model.NotificationTypeBillingReminder, "msg", &billingID, day)
	require.NoError(t, err)
	require.True(t, base)

	cases := []struct {
		name string
		run  func() (bool, error)
	}{
		{"different user", func() (bool, error) {
			return svc.CreateDaily(otherUser, model.NotificationTypeBillingReminder, "msg", &billingID, day)
		}},
		{"different related id", func() (bool, error) {
			return svc.CreateDaily(userID, model.NotificationTypeBillingReminder, "msg", &otherBilling, day)
		}},
		{"different type", func() (bool, error) {
			return svc.CreateDaily(userID, model.NotificationTypeBillingCreated, "msg", &billingID, day)
		}},
		{"different day", func() (bool, error) {
			return svc.CreateDaily(userID, model.NotificationTypeBillingReminder, "msg", &billingID, day.AddDate(0, 0, 1))
		}},
	}
	for _, tc := range cases {
		created, err := tc.run()
		require.NoError(t, err, tc.name)
		assert.True(t, created, tc.name)
	}
}

func TestCreate_SetsDayFromCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	userID := uuid.New()

	// each event carries its own related id, so plain inserts never collide
	for i := 0; i < 2; i++ {
		relatedID := uuid.New()
		notif, err := svc.Create(userID, model.NotificationTypeMessageReceived, "New message from Jose Reyes.", &relatedID)
		require.NoError(t, err)
		assert.Equal(t, notif.NotificationCreatedAt.Format("2006-01-02"), notif.NotificationDay)
		assert.False(t, notif.NotificationRead)
	}

	var count int64
	require.NoError(t, db.Model(&model.NotificationModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
