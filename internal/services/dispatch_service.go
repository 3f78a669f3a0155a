package services

import (
	"context"
	"fmt"
	"time"

	"freshcart/internal/metric"
	"freshcart/internal/models"
	"freshcart/internal/repository"
	"freshcart/pkg/apperrors"

	"gorm.io/gorm"
)

// DeliverySummary is the rider-facing view of a delivery.
type DeliverySummary struct {
	DeliveryID    uint        `json:"delivery_id"`
	OrderID       uint        `json:"order_id"`
	Zone          models.Zone `json:"zone"`
	Address       string      `json:"address"`
	Status        string      `json:"status"`
	RiderID       *uint       `json:"rider_id,omitempty"`
	EstimatedTime *time.Time  `json:"estimated_time,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// DispatchService matches pending deliveries to riders by zone and resolves
// the accept race so each delivery is assigned to at most one rider.
type DispatchService interface {
	// ListAvailable returns unclaimed pending deliveries in the rider's
	// declared zone. Read-only.
	ListAvailable(riderID uint) ([]DeliverySummary, error)
	// Accept claims a delivery for the rider. Exactly one of N concurrent
	// callers wins; the rest get Conflict and must not retry blindly.
	Accept(ctx context.Context, riderID, deliveryID uint) (*DeliverySummary, error)
	// UpdateZone re-declares the rider's zone, re-scoping subsequent
	// ListAvailable calls. Already-assigned deliveries are unaffected.
	UpdateZone(riderID uint, zone models.Zone) error
	ListAssigned(riderID uint) ([]DeliverySummary, error)
}

type dispatchService struct {
	txRunner     TxRunner
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
	riderRepo    repository.RiderRepository
	notifier     NotificationService
}

func NewDispatchService(
	txRunner TxRunner,
	deliveryRepo repository.DeliveryRepository,
	orderRepo repository.OrderRepository,
	riderRepo repository.RiderRepository,
	notifier NotificationService,
) DispatchService {
	return &dispatchService{
		txRunner:     txRunner,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		riderRepo:    riderRepo,
		notifier:     notifier,
	}
}

func (s *dispatchService) ListAvailable(riderID uint) ([]DeliverySummary, error) {
	rider, err := s.riderRepo.GetByID(riderID)
	if err != nil {
		return nil, asNotFound(err, "rider %d", riderID)
	}

	deliveries, err := s.deliveryRepo.ListPendingByZone(rider.Zone)
	if err != nil {
		return nil, err
	}
	return summarize(deliveries), nil
}

func (s *dispatchService) Accept(ctx context.Context, riderID, deliveryID uint) (*DeliverySummary, error) {
	if _, err := s.riderRepo.GetByID(riderID); err != nil {
		return nil, asNotFound(err, "rider %d", riderID)
	}
	delivery, err := s.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return nil, asNotFound(err, "delivery %d", deliveryID)
	}

	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		rows, err := deliveryRepo.Claim(deliveryID, riderID)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Another rider won, or the customer cancelled first.
			return apperrors.Conflict("delivery %d is no longer available", deliveryID)
		}

		rows, err = orderRepo.UpdateStatusIf(delivery.OrderID,
			[]models.OrderStatus{models.OrderPending}, models.OrderConfirmed)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("order %d changed state during accept", delivery.OrderID)
		}
		return nil
	})
	if err != nil {
		metric.AcceptsTotal.WithLabelValues("conflict").Inc()
		return nil, err
	}

	metric.AcceptsTotal.WithLabelValues("won").Inc()
	metric.TransitionsTotal.WithLabelValues(
		string(models.DeliveryPending), string(models.DeliveryAssigned)).Inc()
	s.notifier.Notify(ctx, delivery.CustomerID,
		fmt.Sprintf("Your order #%d has been confirmed and a rider is assigned.", delivery.OrderID),
		&delivery.OrderID, &deliveryID)

	claimed, err := s.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return nil, err
	}
	summary := toSummary(*claimed)
	return &summary, nil
}

func (s *dispatchService) UpdateZone(riderID uint, zone models.Zone) error {
	if !models.ValidZone(zone) {
		return apperrors.Validation("unknown zone %q", zone)
	}
	if _, err := s.riderRepo.GetByID(riderID); err != nil {
		return asNotFound(err, "rider %d", riderID)
	}
	return s.riderRepo.UpdateZone(riderID, zone)
}

func (s *dispatchService) ListAssigned(riderID uint) ([]DeliverySummary, error) {
	deliveries, err := s.deliveryRepo.GetByRiderID(riderID)
	if err != nil {
		return nil, err
	}
	return summarize(deliveries), nil
}

func summarize(deliveries []models.Delivery) []DeliverySummary {
	summaries := make([]DeliverySummary, 0, len(deliveries))
	for _, d := range deliveries {
		summaries = append(summaries, toSummary(d))
	}
	return summaries
}

func toSummary(d models.Delivery) DeliverySummary {
	return DeliverySummary{
		DeliveryID:    d.ID,
		OrderID:       d.OrderID,
		Zone:          d.Zone,
		Address:       d.Address,
		Status:        d.Status,
		RiderID:       d.RiderID,
		EstimatedTime: d.EstimatedTime,
		CreatedAt:     d.CreatedAt,
	}
}
