package services_test

import (
	"context"
	"testing"
	"time"

	"freshcart/internal/models"
	"freshcart/internal/services"
	"freshcart/internal/services/mocks"
	"freshcart/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type lifecycleDeps struct {
	deliveryRepo *mocks.DeliveryRepository
	orderRepo    *mocks.OrderRepository
	customerRepo *mocks.CustomerRepository
	notifier     *mocks.NotificationService
}

func lifecycleSetup(t *testing.T) (lifecycleDeps, services.LifecycleService) {
	deps := lifecycleDeps{
		deliveryRepo: mocks.NewDeliveryRepository(t),
		orderRepo:    mocks.NewOrderRepository(t),
		customerRepo: mocks.NewCustomerRepository(t),
		notifier:     mocks.NewNotificationService(t),
	}
	svc := services.NewLifecycleService(mocks.TxRunner{}, deps.deliveryRepo, deps.orderRepo,
		deps.customerRepo, deps.notifier)
	return deps, svc
}

func assignedDelivery(riderID uint) *models.Delivery {
	return &models.Delivery{
		ID: 11, OrderID: 7, CustomerID: 9, RiderID: &riderID,
		Zone: models.ZoneDhanmondi, Status: string(models.DeliveryAssigned),
	}
}

func TestSetEstimatedTime(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	eta := time.Now().Add(45 * time.Minute)
	deps.deliveryRepo.On("GetByID", uint(11)).Return(assignedDelivery(5), nil)
	deps.deliveryRepo.On("SetEstimatedTime", uint(11), eta).Return(nil)

	err := svc.SetEstimatedTime(11, 5, eta)

	assert.NoError(t, err)
}

func TestSetEstimatedTime_WrongRider(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	deps.deliveryRepo.On("GetByID", uint(11)).Return(assignedDelivery(5), nil)

	err := svc.SetEstimatedTime(11, 6, time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	deps.deliveryRepo.AssertNotCalled(t, "SetEstimatedTime", mock.Anything, mock.Anything)
}

func TestSetEstimatedTime_AfterDeparture(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	riderID := uint(5)
	delivery := assignedDelivery(riderID)
	delivery.Status = string(models.DeliveryOutForDelivery)
	deps.deliveryRepo.On("GetByID", uint(11)).Return(delivery, nil)

	err := svc.SetEstimatedTime(11, riderID, time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestStartDelivery(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	deps.deliveryRepo.On("GetByID", uint(11)).Return(assignedDelivery(5), nil)
	deps.deliveryRepo.On("UpdateStatusIf", uint(11),
		[]models.DeliveryStatus{models.DeliveryAssigned}, models.DeliveryOutForDelivery).
		Return(int64(1), nil)
	deps.orderRepo.On("UpdateStatusIf", uint(7),
		[]models.OrderStatus{models.OrderConfirmed}, models.OrderShipped).
		Return(int64(1), nil)
	deps.notifier.On("Notify", mock.Anything, uint(9), mock.Anything, mock.Anything, mock.Anything).Return()

	err := svc.StartDelivery(context.Background(), 11, 5)

	assert.NoError(t, err)
}

func TestMarkArrival_FromIllegalState(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	riderID := uint(5)
	delivery := assignedDelivery(riderID)
	delivery.Status = string(models.DeliveryDelivered)
	deps.deliveryRepo.On("GetByID", uint(11)).Return(delivery, nil)
	deps.deliveryRepo.On("UpdateStatusIf", uint(11),
		[]models.DeliveryStatus{models.DeliveryAssigned, models.DeliveryOutForDelivery},
		models.DeliveryArrived).
		Return(int64(0), nil)

	err := svc.MarkArrival(context.Background(), 11, riderID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	deps.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPayment_SettlesAndCreditsPoints(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	riderID := uint(5)
	delivery := assignedDelivery(riderID)
	delivery.Status = string(models.DeliveryArrived)
	deps.deliveryRepo.On("GetByOrderID", uint(7)).Return(delivery, nil)
	deps.orderRepo.On("GetByID", uint(7)).Return(&models.Order{
		ID: 7, CustomerID: 9, Status: string(models.OrderShipped), PointsEarned: 10,
	}, nil)
	deps.deliveryRepo.On("UpdateStatusIf", uint(11),
		[]models.DeliveryStatus{models.DeliveryArrived}, models.DeliveryDelivered).
		Return(int64(1), nil)
	deps.orderRepo.On("UpdateStatusIf", uint(7),
		[]models.OrderStatus{models.OrderConfirmed, models.OrderShipped}, models.OrderDelivered).
		Return(int64(1), nil)
	deps.orderRepo.On("MarkPaid", uint(7)).Return(nil)
	deps.customerRepo.On("AddPointsEarned", uint(9), 10).Return(nil)
	deps.notifier.On("Notify", mock.Anything, uint(9), mock.Anything, mock.Anything, mock.Anything).Return()

	err := svc.ConfirmPayment(context.Background(), 7, riderID)

	assert.NoError(t, err)
}

func TestConfirmPayment_WrongRider(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	delivery := assignedDelivery(5)
	delivery.Status = string(models.DeliveryArrived)
	deps.deliveryRepo.On("GetByOrderID", uint(7)).Return(delivery, nil)

	err := svc.ConfirmPayment(context.Background(), 7, 6)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	deps.orderRepo.AssertNotCalled(t, "MarkPaid", mock.Anything)
	deps.customerRepo.AssertNotCalled(t, "AddPointsEarned", mock.Anything, mock.Anything)
}

func TestConfirmPayment_BeforeArrival(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	riderID := uint(5)
	delivery := assignedDelivery(riderID)
	delivery.Status = string(models.DeliveryOutForDelivery)
	deps.deliveryRepo.On("GetByOrderID", uint(7)).Return(delivery, nil)
	deps.orderRepo.On("GetByID", uint(7)).Return(&models.Order{
		ID: 7, CustomerID: 9, Status: string(models.OrderShipped), PointsEarned: 10,
	}, nil)
	deps.deliveryRepo.On("UpdateStatusIf", uint(11),
		[]models.DeliveryStatus{models.DeliveryArrived}, models.DeliveryDelivered).
		Return(int64(0), nil)

	err := svc.ConfirmPayment(context.Background(), 7, riderID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	deps.customerRepo.AssertNotCalled(t, "AddPointsEarned", mock.Anything, mock.Anything)
}

func TestMarkFailed_FlagsManualRestoration(t *testing.T) {
	deps, svc := lifecycleSetup(t)

	riderID := uint(5)
	delivery := assignedDelivery(riderID)
	delivery.Status = string(models.DeliveryOutForDelivery)
	deps.deliveryRepo.On("GetByID", uint(11)).Return(delivery, nil)
	deps.deliveryRepo.On("UpdateStatusIf", uint(11),
		[]models.DeliveryStatus{models.DeliveryAssigned, models.DeliveryOutForDelivery},
		models.DeliveryFailed).
		Return(int64(1), nil)
	deps.orderRepo.On("UpdateStatusIf", uint(7),
		[]models.OrderStatus{models.OrderConfirmed, models.OrderShipped}, models.OrderCancelled).
		Return(int64(1), nil)
	deps.orderRepo.On("FlagManualRestoration", uint(7)).Return(nil)
	deps.notifier.On("Notify", mock.Anything, uint(9), mock.Anything, mock.Anything, mock.Anything).Return()

	err := svc.MarkFailed(context.Background(), 11, riderID)

	assert.NoError(t, err)
}
