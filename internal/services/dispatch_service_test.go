package services_test

import (
	"context"
	"testing"

	"freshcart/internal/models"
	"freshcart/internal/services"
	"freshcart/internal/services/mocks"
	"freshcart/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type dispatchDeps struct {
	deliveryRepo *mocks.DeliveryRepository
	orderRepo    *mocks.OrderRepository
	riderRepo    *mocks.RiderRepository
	notifier     *mocks.NotificationService
}

func dispatchSetup(t *testing.T) (dispatchDeps, services.DispatchService) {
	deps := dispatchDeps{
		deliveryRepo: mocks.NewDeliveryRepository(t),
		orderRepo:    mocks.NewOrderRepository(t),
		riderRepo:    mocks.NewRiderRepository(t),
		notifier:     mocks.NewNotificationService(t),
	}
	svc := services.NewDispatchService(mocks.TxRunner{}, deps.deliveryRepo, deps.orderRepo,
		deps.riderRepo, deps.notifier)
	return deps, svc
}

func TestListAvailable_ScopedToRiderZone(t *testing.T) {
	deps, svc := dispatchSetup(t)

	deps.riderRepo.On("GetByID", uint(5)).Return(&models.Rider{ID: 5, Zone: models.ZoneMirpur}, nil)
	deps.deliveryRepo.On("ListPendingByZone", models.ZoneMirpur).Return([]models.Delivery{
		{ID: 11, OrderID: 7, Zone: models.ZoneMirpur, Status: string(models.DeliveryPending)},
		{ID: 12, OrderID: 8, Zone: models.ZoneMirpur, Status: string(models.DeliveryPending)},
	}, nil)

	summaries, err := svc.ListAvailable(5)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, uint(11), summaries[0].DeliveryID)
	assert.Equal(t, models.ZoneMirpur, summaries[0].Zone)
}

func TestAccept_WinnerClaimsAndConfirmsOrder(t *testing.T) {
	deps, svc := dispatchSetup(t)

	riderID := uint(5)
	deps.riderRepo.On("GetByID", riderID).Return(&models.Rider{ID: 5, Zone: models.ZoneUttara}, nil)
	deps.deliveryRepo.On("GetByID", uint(11)).Return(&models.Delivery{
		ID: 11, OrderID: 7, CustomerID: 9, Zone: models.ZoneUttara,
		Status: string(models.DeliveryPending),
	}, nil).Once()
	deps.deliveryRepo.On("Claim", uint(11), riderID).Return(int64(1), nil)
	deps.orderRepo.On("UpdateStatusIf", uint(7),
		[]models.OrderStatus{models.OrderPending}, models.OrderConfirmed).
		Return(int64(1), nil)
	deps.notifier.On("Notify", mock.Anything, uint(9), mock.Anything, mock.Anything, mock.Anything).Return()
	deps.deliveryRepo.On("GetByID", uint(11)).Return(&models.Delivery{
		ID: 11, OrderID: 7, CustomerID: 9, Zone: models.ZoneUttara,
		RiderID: &riderID, Status: string(models.DeliveryAssigned),
	}, nil).Once()

	summary, err := svc.Accept(context.Background(), riderID, 11)

	assert.NoError(t, err)
	assert.Equal(t, string(models.DeliveryAssigned), summary.Status)
	assert.Equal(t, riderID, *summary.RiderID)
}

func TestAccept_LoserGetsConflict(t *testing.T) {
	deps, svc := dispatchSetup(t)

	deps.riderRepo.On("GetByID", uint(6)).Return(&models.Rider{ID: 6, Zone: models.ZoneUttara}, nil)
	deps.deliveryRepo.On("GetByID", uint(11)).Return(&models.Delivery{
		ID: 11, OrderID: 7, CustomerID: 9, Status: string(models.DeliveryPending),
	}, nil)
	deps.deliveryRepo.On("Claim", uint(11), uint(6)).Return(int64(0), nil)

	_, err := svc.Accept(context.Background(), 6, 11)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	deps.orderRepo.AssertNotCalled(t, "UpdateStatusIf", mock.Anything, mock.Anything, mock.Anything)
	deps.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccept_UnknownDelivery(t *testing.T) {
	deps, svc := dispatchSetup(t)

	deps.riderRepo.On("GetByID", uint(5)).Return(&models.Rider{ID: 5}, nil)
	deps.deliveryRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Accept(context.Background(), 5, 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateZone_Valid(t *testing.T) {
	deps, svc := dispatchSetup(t)

	deps.riderRepo.On("GetByID", uint(5)).Return(&models.Rider{ID: 5, Zone: models.ZoneMirpur}, nil)
	deps.riderRepo.On("UpdateZone", uint(5), models.ZoneGulshan).Return(nil)

	err := svc.UpdateZone(5, models.ZoneGulshan)

	assert.NoError(t, err)
}

func TestUpdateZone_UnknownZone(t *testing.T) {
	deps, svc := dispatchSetup(t)

	err := svc.UpdateZone(5, models.Zone("Atlantis"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	deps.riderRepo.AssertNotCalled(t, "UpdateZone", mock.Anything, mock.Anything)
}

func TestListAssigned(t *testing.T) {
	deps, svc := dispatchSetup(t)

	riderID := uint(5)
	deps.deliveryRepo.On("GetByRiderID", riderID).Return([]models.Delivery{
		{ID: 11, OrderID: 7, RiderID: &riderID, Status: string(models.DeliveryAssigned)},
	}, nil)

	summaries, err := svc.ListAssigned(riderID)

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, string(models.DeliveryAssigned), summaries[0].Status)
}
