package repository

import (
	"freshcart/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetByCustomerID(customerID uint) ([]models.Notification, error)
	// MarkRead is idempotent: re-marking an already-read row changes nothing.
	MarkRead(id uint) error
	MarkAllRead(customerID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetByCustomerID(customerID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(customerID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("customer_id = ? AND is_read = ?", customerID, false).
		Update("is_read", true).Error
}
