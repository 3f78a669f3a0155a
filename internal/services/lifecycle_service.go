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

// LifecycleService drives rider-triggered delivery transitions after
// assignment. Every transition is guarded twice: the assigned rider must be
// the actor, and the conditional update must find the delivery in a legal
// source state. A failed precondition is a Conflict, never a silent no-op.
type LifecycleService interface {
	// SetEstimatedTime records an ETA on an assigned delivery; no state change.
	SetEstimatedTime(deliveryID, riderID uint, estimatedTime time.Time) error
	// StartDelivery marks departure: assigned -> out_for_delivery, and the
	// order moves to shipped.
	StartDelivery(ctx context.Context, deliveryID, riderID uint) error
	// MarkArrival: assigned|out_for_delivery -> arrived.
	MarkArrival(ctx context.Context, deliveryID, riderID uint) error
	// ConfirmPayment settles cash on delivery: arrived -> delivered on both
	// records, payment recorded, and the order's earned points become usable.
	ConfirmPayment(ctx context.Context, orderID, riderID uint) error
	// MarkFailed: assigned|out_for_delivery -> failed; the order is cancelled
	// and flagged for manual stock restoration since the rider holds goods.
	MarkFailed(ctx context.Context, deliveryID, riderID uint) error
}

type lifecycleService struct {
	txRunner     TxRunner
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	notifier     NotificationService
}

func NewLifecycleService(
	txRunner TxRunner,
	deliveryRepo repository.DeliveryRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	notifier NotificationService,
) LifecycleService {
	return &lifecycleService{
		txRunner:     txRunner,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

// ownedDelivery fetches the delivery and verifies the acting rider is the
// assigned one.
func (s *lifecycleService) ownedDelivery(deliveryID, riderID uint) (*models.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return nil, asNotFound(err, "delivery %d", deliveryID)
	}
	if delivery.RiderID == nil || *delivery.RiderID != riderID {
		return nil, apperrors.Unauthorized("delivery %d is not assigned to rider %d", deliveryID, riderID)
	}
	return delivery, nil
}

func (s *lifecycleService) SetEstimatedTime(deliveryID, riderID uint, estimatedTime time.Time) error {
	delivery, err := s.ownedDelivery(deliveryID, riderID)
	if err != nil {
		return err
	}
	if models.DeliveryStatus(delivery.Status) != models.DeliveryAssigned {
		return apperrors.Conflict("delivery %d is %s, not assigned", deliveryID, delivery.Status)
	}
	return s.deliveryRepo.SetEstimatedTime(deliveryID, estimatedTime)
}

func (s *lifecycleService) StartDelivery(ctx context.Context, deliveryID, riderID uint) error {
	delivery, err := s.ownedDelivery(deliveryID, riderID)
	if err != nil {
		return err
	}

	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		rows, err := deliveryRepo.UpdateStatusIf(deliveryID,
			[]models.DeliveryStatus{models.DeliveryAssigned}, models.DeliveryOutForDelivery)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("delivery %d cannot depart from state %s", deliveryID, delivery.Status)
		}

		rows, err = orderRepo.UpdateStatusIf(delivery.OrderID,
			[]models.OrderStatus{models.OrderConfirmed}, models.OrderShipped)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("order %d changed state during departure", delivery.OrderID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metric.TransitionsTotal.WithLabelValues(
		string(models.DeliveryAssigned), string(models.DeliveryOutForDelivery)).Inc()
	s.notifier.Notify(ctx, delivery.CustomerID,
		fmt.Sprintf("Your order #%d is out for delivery.", delivery.OrderID),
		&delivery.OrderID, &deliveryID)
	return nil
}

func (s *lifecycleService) MarkArrival(ctx context.Context, deliveryID, riderID uint) error {
	delivery, err := s.ownedDelivery(deliveryID, riderID)
	if err != nil {
		return err
	}

	rows, err := s.deliveryRepo.UpdateStatusIf(deliveryID,
		[]models.DeliveryStatus{models.DeliveryAssigned, models.DeliveryOutForDelivery},
		models.DeliveryArrived)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.Conflict("delivery %d cannot arrive from state %s", deliveryID, delivery.Status)
	}

	metric.TransitionsTotal.WithLabelValues(delivery.Status, string(models.DeliveryArrived)).Inc()
	s.notifier.Notify(ctx, delivery.CustomerID,
		fmt.Sprintf("Your rider has arrived with order #%d.", delivery.OrderID),
		&delivery.OrderID, &deliveryID)
	return nil
}

func (s *lifecycleService) ConfirmPayment(ctx context.Context, orderID, riderID uint) error {
	delivery, err := s.deliveryRepo.GetByOrderID(orderID)
	if err != nil {
		return asNotFound(err, "delivery for order %d", orderID)
	}
	if delivery.RiderID == nil || *delivery.RiderID != riderID {
		return apperrors.Unauthorized("delivery %d is not assigned to rider %d", delivery.ID, riderID)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return asNotFound(err, "order %d", orderID)
	}

	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		customerRepo := s.customerRepo.WithTx(tx)

		rows, err := deliveryRepo.UpdateStatusIf(delivery.ID,
			[]models.DeliveryStatus{models.DeliveryArrived}, models.DeliveryDelivered)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("delivery %d cannot be settled from state %s", delivery.ID, delivery.Status)
		}

		rows, err = orderRepo.UpdateStatusIf(orderID,
			[]models.OrderStatus{models.OrderConfirmed, models.OrderShipped}, models.OrderDelivered)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("order %d changed state during settlement", orderID)
		}

		if err := orderRepo.MarkPaid(orderID); err != nil {
			return err
		}

		// Cash collected: the points earned on this order become usable now.
		if order.PointsEarned > 0 {
			if err := customerRepo.AddPointsEarned(order.CustomerID, order.PointsEarned); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	metric.TransitionsTotal.WithLabelValues(
		string(models.DeliveryArrived), string(models.DeliveryDelivered)).Inc()
	s.notifier.Notify(ctx, order.CustomerID,
		fmt.Sprintf("Order #%d delivered. You earned %d points.", orderID, order.PointsEarned),
		&orderID, &delivery.ID)
	return nil
}

func (s *lifecycleService) MarkFailed(ctx context.Context, deliveryID, riderID uint) error {
	delivery, err := s.ownedDelivery(deliveryID, riderID)
	if err != nil {
		return err
	}

	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		rows, err := deliveryRepo.UpdateStatusIf(deliveryID,
			[]models.DeliveryStatus{models.DeliveryAssigned, models.DeliveryOutForDelivery},
			models.DeliveryFailed)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("delivery %d cannot fail from state %s", deliveryID, delivery.Status)
		}

		rows, err = orderRepo.UpdateStatusIf(delivery.OrderID,
			[]models.OrderStatus{models.OrderConfirmed, models.OrderShipped}, models.OrderCancelled)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("order %d changed state during failure", delivery.OrderID)
		}

		// The rider still holds the picked goods; restoration is an explicit
		// admin act, same as a mid-delivery cancellation.
		return orderRepo.FlagManualRestoration(delivery.OrderID)
	})
	if err != nil {
		return err
	}

	metric.TransitionsTotal.WithLabelValues(delivery.Status, string(models.DeliveryFailed)).Inc()
	s.notifier.Notify(ctx, delivery.CustomerID,
		fmt.Sprintf("Delivery of order #%d failed. Our team will follow up.", delivery.OrderID),
		&delivery.OrderID, &deliveryID)
	return nil
}
