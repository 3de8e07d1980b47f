package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalku_backend/internals/features/notifications/model"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// Create inserts one notification row. No validation beyond required fields;
// FK existence of the user is the schema's job.
func (s *NotificationService) Create(userID uuid.UUID, typ model.NotificationType, message string, relatedID *uuid.UUID) (*model.NotificationModel, error) {
	notif := &model.NotificationModel{
		NotificationUserID:    userID,
		NotificationType:      typ,
		NotificationMessage:   message,
		NotificationRelatedID: relatedID,
	}
	if err := s.DB.Create(notif).Error; err != nil {
		return nil, err
	}
	return notif, nil
}

// CreateDaily inserts at most one notification per (user, type, related, day).
// The guard is the unique index itself: ON CONFLICT DO NOTHING, with zero
// rows affected reported as created=false. Overlapping runs (manual trigger
// during the scheduled one) therefore cannot double-insert.
func (s *NotificationService) CreateDaily(userID uuid.UUID, typ model.NotificationType, message string, relatedID *uuid.UUID, day time.Time) (bool, error) {
	notif := &model.NotificationModel{
		NotificationUserID:    userID,
		NotificationType:      typ,
		NotificationMessage:   message,
		NotificationRelatedID: relatedID,
		NotificationDay:       day.Format("2006-01-02"),
	}
	res := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(notif)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
