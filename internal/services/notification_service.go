package services

import (
	"context"
	"log"

	"freshcart/internal/metric"
	"freshcart/internal/models"
	"freshcart/internal/redis"
	"freshcart/internal/repository"
	"freshcart/pkg/apperrors"
)

// Publisher is the real-time push channel. The Redis client satisfies it; a
// disconnected channel only costs the live push, never the persisted row.
type Publisher interface {
	PublishNotification(ctx context.Context, event *redis.NotificationEvent) error
	PublishRiderAlert(ctx context.Context, riderID uint, message string) error
}

// NotificationService persists lifecycle notifications and fans them out.
// Notify and NotifyRider are fire-and-forget: failures are logged, never
// surfaced, and never roll back the transition that triggered them.
type NotificationService interface {
	Notify(ctx context.Context, customerID uint, message string, orderID, deliveryID *uint)
	NotifyRider(ctx context.Context, riderID uint, message string)
	List(customerID uint) ([]models.Notification, error)
	MarkRead(customerID, notificationID uint) error
	MarkAllRead(customerID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	publisher        Publisher
}

func NewNotificationService(notificationRepo repository.NotificationRepository, publisher Publisher) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, publisher: publisher}
}

func (s *notificationService) Notify(ctx context.Context, customerID uint, message string, orderID, deliveryID *uint) {
	notification := &models.Notification{
		CustomerID: customerID,
		Message:    message,
		OrderID:    orderID,
		DeliveryID: deliveryID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		log.Printf("Warning: failed to persist notification for customer %d: %v", customerID, err)
		metric.NotificationsTotal.WithLabelValues("failed").Inc()
		return
	}

	event := &redis.NotificationEvent{
		NotificationID: notification.ID,
		CustomerID:     customerID,
		Message:        message,
		OrderID:        orderID,
		DeliveryID:     deliveryID,
		CreatedAt:      notification.CreatedAt,
	}
	if err := s.publisher.PublishNotification(ctx, event); err != nil {
		// The row is persisted; the customer picks it up by polling.
		log.Printf("Warning: failed to push notification %d: %v", notification.ID, err)
		metric.NotificationsTotal.WithLabelValues("failed").Inc()
		return
	}
	metric.NotificationsTotal.WithLabelValues("delivered").Inc()
}

func (s *notificationService) NotifyRider(ctx context.Context, riderID uint, message string) {
	if err := s.publisher.PublishRiderAlert(ctx, riderID, message); err != nil {
		log.Printf("Warning: failed to alert rider %d: %v", riderID, err)
	}
}

func (s *notificationService) List(customerID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetByCustomerID(customerID)
}

func (s *notificationService) MarkRead(customerID, notificationID uint) error {
	notification, err := s.notificationRepo.GetByID(notificationID)
	if err != nil {
		return asNotFound(err, "notification %d", notificationID)
	}
	if notification.CustomerID != customerID {
		return apperrors.Unauthorized("notification %d does not belong to customer %d", notificationID, customerID)
	}
	// Re-marking an already-read notification is a no-op, not an error.
	if notification.IsRead {
		return nil
	}
	return s.notificationRepo.MarkRead(notificationID)
}

func (s *notificationService) MarkAllRead(customerID uint) error {
	return s.notificationRepo.MarkAllRead(customerID)
}
