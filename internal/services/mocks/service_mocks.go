package mocks

import (
	"context"

	"freshcart/internal/models"
	"freshcart/internal/redis"
	"freshcart/internal/services"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// TxRunner executes the transaction body immediately; rollback semantics are
// the database's concern, not the unit under test.
type TxRunner struct{}

var _ services.TxRunner = TxRunner{}

func (TxRunner) InTx(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// PricingService is a testify mock of services.PricingService.
type PricingService struct {
	mock.Mock
}

var _ services.PricingService = (*PricingService)(nil)

func NewPricingService(t testingT) *PricingService {
	m := &PricingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PricingService) PriceCart(customerID, cartID uint, couponCode string, pointsToRedeem int) (*services.PricedSummary, error) {
	args := m.Called(customerID, cartID, couponCode, pointsToRedeem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PricedSummary), args.Error(1)
}

// NotificationService is a testify mock of services.NotificationService.
type NotificationService struct {
	mock.Mock
}

var _ services.NotificationService = (*NotificationService)(nil)

func NewNotificationService(t testingT) *NotificationService {
	m := &NotificationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotificationService) Notify(ctx context.Context, customerID uint, message string, orderID, deliveryID *uint) {
	m.Called(ctx, customerID, message, orderID, deliveryID)
}

func (m *NotificationService) NotifyRider(ctx context.Context, riderID uint, message string) {
	m.Called(ctx, riderID, message)
}

func (m *NotificationService) List(customerID uint) ([]models.Notification, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *NotificationService) MarkRead(customerID, notificationID uint) error {
	return m.Called(customerID, notificationID).Error(0)
}

func (m *NotificationService) MarkAllRead(customerID uint) error {
	return m.Called(customerID).Error(0)
}

// Publisher is a testify mock of services.Publisher.
type Publisher struct {
	mock.Mock
}

var _ services.Publisher = (*Publisher)(nil)

func NewPublisher(t testingT) *Publisher {
	m := &Publisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Publisher) PublishNotification(ctx context.Context, event *redis.NotificationEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *Publisher) PublishRiderAlert(ctx context.Context, riderID uint, message string) error {
	return m.Called(ctx, riderID, message).Error(0)
}
