package services_test

import (
	"context"
	"errors"
	"testing"

	"freshcart/internal/models"
	"freshcart/internal/redis"
	"freshcart/internal/services"
	"freshcart/internal/services/mocks"
	"freshcart/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func notificationSetup(t *testing.T) (*mocks.NotificationRepository, *mocks.Publisher, services.NotificationService) {
	repo := mocks.NewNotificationRepository(t)
	publisher := mocks.NewPublisher(t)
	svc := services.NewNotificationService(repo, publisher)
	return repo, publisher, svc
}

func TestNotify_PersistsThenPublishes(t *testing.T) {
	repo, publisher, svc := notificationSetup(t)

	orderID := uint(7)
	repo.On("Create", mock.AnythingOfType("*models.Notification")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Notification).ID = 3
	}).Return(nil)
	publisher.On("PublishNotification", mock.Anything, mock.MatchedBy(func(event *redis.NotificationEvent) bool {
		return event.NotificationID == 3 && event.CustomerID == 9
	})).Return(nil)

	svc.Notify(context.Background(), 9, "Your order #7 has been placed.", &orderID, nil)
}

func TestNotify_PublishFailureIsSwallowed(t *testing.T) {
	repo, publisher, svc := notificationSetup(t)

	repo.On("Create", mock.AnythingOfType("*models.Notification")).Return(nil)
	publisher.On("PublishNotification", mock.Anything, mock.Anything).
		Return(errors.New("redis: connection refused"))

	// Must not panic or surface the error; the row is already persisted.
	svc.Notify(context.Background(), 9, "Your rider has arrived.", nil, nil)
}

func TestNotify_PersistFailureSkipsPublish(t *testing.T) {
	repo, publisher, svc := notificationSetup(t)

	repo.On("Create", mock.AnythingOfType("*models.Notification")).
		Return(errors.New("db down"))

	svc.Notify(context.Background(), 9, "Order #7 delivered.", nil, nil)

	publisher.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo, _, svc := notificationSetup(t)

	repo.On("GetByID", uint(3)).Return(&models.Notification{
		ID: 3, CustomerID: 9, IsRead: true,
	}, nil)

	err := svc.MarkRead(9, 3)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "MarkRead", mock.Anything)
}

func TestMarkRead_FirstTime(t *testing.T) {
	repo, _, svc := notificationSetup(t)

	repo.On("GetByID", uint(3)).Return(&models.Notification{ID: 3, CustomerID: 9}, nil)
	repo.On("MarkRead", uint(3)).Return(nil)

	err := svc.MarkRead(9, 3)

	assert.NoError(t, err)
}

func TestMarkRead_ForeignNotification(t *testing.T) {
	repo, _, svc := notificationSetup(t)

	repo.On("GetByID", uint(3)).Return(&models.Notification{ID: 3, CustomerID: 42}, nil)

	err := svc.MarkRead(9, 3)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	repo.AssertNotCalled(t, "MarkRead", mock.Anything)
}
