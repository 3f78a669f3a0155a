package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freshcart/internal/auth"
	"freshcart/internal/metric"
	"freshcart/internal/models"
	"freshcart/internal/repository"
	"freshcart/pkg/apperrors"

	"gorm.io/gorm"
)

// PlacementResult is what a successful placement returns to the customer.
type PlacementResult struct {
	OrderID     uint    `json:"order_id"`
	DeliveryID  uint    `json:"delivery_id"`
	TotalAmount float64 `json:"total_amount"`
}

// CancellationResult reports how a cancellation settled: Restored means stock
// came back synchronously, NeedsManualRestoration means an admin must confirm
// the goods returned before stock is restored.
type CancellationResult struct {
	OrderStatus            models.OrderStatus `json:"order_status"`
	NeedsManualRestoration bool               `json:"needs_manual_restoration"`
}

type OrderService interface {
	// PlaceOrder turns a priced cart into an order, its items, and a pending
	// delivery, all-or-nothing.
	PlaceOrder(ctx context.Context, customerID, cartID uint, couponCode string, pointsToRedeem int) (*PlacementResult, error)
	GetOrder(orderID uint, actor auth.Principal) (*models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	// CancelOrder applies the restoration policy for the delivery's state at
	// cancellation time.
	CancelOrder(ctx context.Context, orderID uint, actor auth.Principal) (*CancellationResult, error)
	// RestoreStock is the admin confirmation that goods held by a rider came
	// back; it restores stock exactly once per order.
	RestoreStock(ctx context.Context, orderID uint) error
}

type orderService struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	deliveryRepo repository.DeliveryRepository
	productRepo  repository.ProductRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	pricing      PricingService
	notifier     NotificationService
}

func NewOrderService(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	deliveryRepo repository.DeliveryRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	customerRepo repository.CustomerRepository,
	pricing PricingService,
	notifier NotificationService,
) OrderService {
	return &orderService{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		deliveryRepo: deliveryRepo,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		pricing:      pricing,
		notifier:     notifier,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, customerID, cartID uint, couponCode string, pointsToRedeem int) (*PlacementResult, error) {
	// Re-price server-side; a client-supplied total is never trusted.
	quote, err := s.pricing.PriceCart(customerID, cartID, couponCode, pointsToRedeem)
	if err != nil {
		metric.PlacementFailuresTotal.WithLabelValues(placementFailureReason(err)).Inc()
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, asNotFound(err, "customer %d", customerID)
	}

	var result PlacementResult
	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		customerRepo := s.customerRepo.WithTx(tx)

		// Decrement stock line by line; any shortfall aborts the whole
		// placement and the rollback undoes earlier decrements.
		for _, line := range quote.Lines {
			rows, err := productRepo.DecrementStock(line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return apperrors.OutOfStock("product %d (%s): requested %d", line.ProductID, line.Name, line.Quantity)
			}
		}

		order := &models.Order{
			CustomerID:     customerID,
			OrderDate:      time.Now(),
			Status:         string(models.OrderPending),
			Subtotal:       quote.Subtotal,
			VATAmount:      quote.VATAmount,
			DiscountAmount: quote.DiscountAmount,
			DeliveryFee:    quote.DeliveryFee,
			PointsUsed:     quote.PointsRedeemed,
			PointsEarned:   quote.PointsEarned,
			TotalAmount:    quote.GrandTotal,
			CouponCode:     quote.CouponCode,
		}
		for _, line := range quote.Lines {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		delivery := &models.Delivery{
			OrderID:    order.ID,
			CustomerID: customerID,
			Zone:       customer.Zone,
			Status:     string(models.DeliveryPending),
			Address:    customer.Address,
		}
		if err := deliveryRepo.Create(delivery); err != nil {
			return err
		}

		// Debit redeemed points against the live balance; earned points are
		// credited only when payment is confirmed on delivery.
		if quote.PointsRedeemed > 0 {
			rows, err := customerRepo.AddPointsUsed(customerID, quote.PointsRedeemed)
			if err != nil {
				return err
			}
			if rows == 0 {
				return apperrors.InsufficientBalance("redeeming %d points exceeds available balance", quote.PointsRedeemed)
			}
		}

		if err := cartRepo.Clear(cartID); err != nil {
			return err
		}

		result = PlacementResult{
			OrderID:     order.ID,
			DeliveryID:  delivery.ID,
			TotalAmount: order.TotalAmount,
		}
		return nil
	})
	if err != nil {
		metric.PlacementFailuresTotal.WithLabelValues(placementFailureReason(err)).Inc()
		return nil, err
	}

	metric.OrdersPlacedTotal.Inc()
	s.notifier.Notify(ctx, customerID,
		fmt.Sprintf("Your order #%d has been placed. Total: %.2f", result.OrderID, result.TotalAmount),
		&result.OrderID, &result.DeliveryID)

	return &result, nil
}

func (s *orderService) GetOrder(orderID uint, actor auth.Principal) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, asNotFound(err, "order %d", orderID)
	}
	if actor.Role == models.RoleCustomer && order.CustomerID != actor.ID {
		return nil, apperrors.Unauthorized("order %d does not belong to customer %d", orderID, actor.ID)
	}
	return order, nil
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func (s *orderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	return s.orderRepo.GetByStatus(status)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) CancelOrder(ctx context.Context, orderID uint, actor auth.Principal) (*CancellationResult, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, asNotFound(err, "order %d", orderID)
	}
	if !actor.IsAdmin() && order.CustomerID != actor.ID {
		return nil, apperrors.Unauthorized("order %d does not belong to customer %d", orderID, actor.ID)
	}
	if models.OrderTerminal(models.OrderStatus(order.Status)) {
		return nil, apperrors.Conflict("order %d is already %s", orderID, order.Status)
	}

	delivery, err := s.deliveryRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, asNotFound(err, "delivery for order %d", orderID)
	}

	var result CancellationResult
	switch models.DeliveryStatus(delivery.Status) {
	case models.DeliveryPending:
		// Never claimed: stock comes back inside the same transaction.
		err = s.txRunner.InTx(func(tx *gorm.DB) error {
			deliveryRepo := s.deliveryRepo.WithTx(tx)
			orderRepo := s.orderRepo.WithTx(tx)
			productRepo := s.productRepo.WithTx(tx)

			rows, err := deliveryRepo.UpdateStatusIf(delivery.ID,
				[]models.DeliveryStatus{models.DeliveryPending}, models.DeliveryCancelled)
			if err != nil {
				return err
			}
			if rows == 0 {
				// A rider accepted between our read and this write.
				return apperrors.Conflict("delivery %d is no longer pending", delivery.ID)
			}

			for _, item := range order.Items {
				if err := productRepo.RestoreStock(item.ProductID, item.Quantity); err != nil {
					return err
				}
			}

			rows, err = orderRepo.UpdateStatusIf(orderID,
				[]models.OrderStatus{models.OrderPending}, models.OrderRestored)
			if err != nil {
				return err
			}
			if rows == 0 {
				return apperrors.Conflict("order %d changed state during cancellation", orderID)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		result = CancellationResult{OrderStatus: models.OrderRestored}

	case models.DeliveryAssigned:
		// A rider already holds the goods; restoration waits for an explicit,
		// auditable admin confirmation.
		err = s.txRunner.InTx(func(tx *gorm.DB) error {
			deliveryRepo := s.deliveryRepo.WithTx(tx)
			orderRepo := s.orderRepo.WithTx(tx)

			rows, err := deliveryRepo.UpdateStatusIf(delivery.ID,
				[]models.DeliveryStatus{models.DeliveryAssigned}, models.DeliveryCancelled)
			if err != nil {
				return err
			}
			if rows == 0 {
				return apperrors.Conflict("delivery %d is no longer assigned", delivery.ID)
			}

			rows, err = orderRepo.UpdateStatusIf(orderID,
				[]models.OrderStatus{models.OrderConfirmed}, models.OrderCancelled)
			if err != nil {
				return err
			}
			if rows == 0 {
				return apperrors.Conflict("order %d changed state during cancellation", orderID)
			}
			return orderRepo.FlagManualRestoration(orderID)
		})
		if err != nil {
			return nil, err
		}
		if delivery.RiderID != nil {
			s.notifier.NotifyRider(ctx, *delivery.RiderID,
				fmt.Sprintf("Order #%d was cancelled. Please return the goods.", orderID))
		}
		result = CancellationResult{OrderStatus: models.OrderCancelled, NeedsManualRestoration: true}

	default:
		// Physical handoff has begun; cancellation window is closed.
		return nil, apperrors.Conflict("order %d cannot be cancelled while delivery is %s", orderID, delivery.Status)
	}

	s.notifier.Notify(ctx, order.CustomerID,
		fmt.Sprintf("Your order #%d has been cancelled.", orderID), &orderID, &delivery.ID)
	return &result, nil
}

func (s *orderService) RestoreStock(ctx context.Context, orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return asNotFound(err, "order %d", orderID)
	}

	return s.txRunner.InTx(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		// The flag is the idempotency guard: consuming it twice is impossible.
		rows, err := orderRepo.ConsumeManualRestoration(orderID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.Conflict("order %d stock already restored", orderID)
		}

		for _, item := range order.Items {
			if err := productRepo.RestoreStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

func placementFailureReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound):
		return "invalid_input"
	default:
		return "other"
	}
}
