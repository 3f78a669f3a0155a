package services

import (
	"time"

	"freshcart/internal/models"
	"freshcart/internal/repository"
	"freshcart/pkg/apperrors"
)

// PricedLine is one cart line priced at the effective (discounted) unit price.
type PricedLine struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	LineSubtotal float64 `json:"line_subtotal"`
	VATAmount    float64 `json:"vat_amount"`
	RewardPoints int     `json:"reward_points"`
}

// PricedSummary is the full quote for a cart. It carries everything the
// placement orchestrator needs to snapshot an order.
type PricedSummary struct {
	Lines          []PricedLine `json:"lines"`
	Subtotal       float64      `json:"subtotal"`
	VATAmount      float64      `json:"vat_amount"`
	DiscountAmount float64      `json:"discount_amount"`
	DeliveryFee    float64      `json:"delivery_fee"`
	PointsRedeemed int          `json:"points_redeemed"`
	PointsValue    float64      `json:"points_value"`
	PointsEarned   int          `json:"points_earned"`
	GrandTotal     float64      `json:"grand_total"`
	CouponCode     string       `json:"coupon_code,omitempty"`
}

// PricingPolicy carries the externally configured inputs: the flat delivery
// fee and the currency value of one loyalty point.
type PricingPolicy struct {
	DeliveryFee float64
	PointValue  float64
}

// PricingService computes a quote for a cart. It never mutates anything, so
// it is safe to call repeatedly for preview before placement commits.
type PricingService interface {
	PriceCart(customerID, cartID uint, couponCode string, pointsToRedeem int) (*PricedSummary, error)
}

type pricingService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	couponRepo   repository.CouponRepository
	customerRepo repository.CustomerRepository
	policy       PricingPolicy
}

func NewPricingService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
	customerRepo repository.CustomerRepository,
	policy PricingPolicy,
) PricingService {
	return &pricingService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		couponRepo:   couponRepo,
		customerRepo: customerRepo,
		policy:       policy,
	}
}

func (s *pricingService) PriceCart(customerID, cartID uint, couponCode string, pointsToRedeem int) (*PricedSummary, error) {
	if pointsToRedeem < 0 {
		return nil, apperrors.Validation("points_to_redeem must not be negative")
	}

	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, asNotFound(err, "cart %d", cartID)
	}
	if cart.CustomerID != customerID {
		return nil, apperrors.Unauthorized("cart %d does not belong to customer %d", cartID, customerID)
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.Validation("cart %d is empty", cartID)
	}

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, asNotFound(err, "customer %d", customerID)
	}

	productIDs := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Quantity < 1 {
			return nil, apperrors.Validation("product %d: quantity must be at least 1", item.ProductID)
		}
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var coupon *models.Coupon
	if couponCode != "" {
		coupon, err = s.couponRepo.GetByCode(couponCode)
		if err != nil {
			return nil, asNotFound(err, "coupon %q", couponCode)
		}
	}

	return computeQuote(cart.Items, byID, coupon, customer, pointsToRedeem, s.policy, time.Now())
}

// computeQuote is the pure pricing step: same inputs, same quote.
func computeQuote(
	items []models.CartItem,
	products map[uint]models.Product,
	coupon *models.Coupon,
	customer *models.Customer,
	pointsToRedeem int,
	policy PricingPolicy,
	now time.Time,
) (*PricedSummary, error) {
	summary := &PricedSummary{
		Lines:       make([]PricedLine, 0, len(items)),
		DeliveryFee: policy.DeliveryFee,
	}

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, apperrors.NotFound("product %d", item.ProductID)
		}

		unitPrice := product.UnitPriceAt(now)
		lineSubtotal := unitPrice * float64(item.Quantity)
		lineVAT := lineSubtotal * product.VATPercent / 100

		summary.Lines = append(summary.Lines, PricedLine{
			ProductID:    product.ID,
			Name:         product.Name,
			Quantity:     item.Quantity,
			UnitPrice:    unitPrice,
			LineSubtotal: lineSubtotal,
			VATAmount:    lineVAT,
			RewardPoints: product.RewardPoints * item.Quantity,
		})
		summary.Subtotal += lineSubtotal
		summary.VATAmount += lineVAT
		summary.PointsEarned += product.RewardPoints * item.Quantity
	}

	if coupon != nil {
		if !coupon.ValidAt(now) {
			return nil, apperrors.Validation("coupon %q is expired or inactive", coupon.Code)
		}
		if customer.AvailablePoints() < coupon.RequiredPoint {
			return nil, apperrors.Validation("coupon %q requires a balance of %d points", coupon.Code, coupon.RequiredPoint)
		}
		summary.DiscountAmount = (summary.Subtotal + summary.VATAmount) * coupon.DiscountPercent / 100
		summary.CouponCode = coupon.Code
	}

	if pointsToRedeem > 0 {
		if pointsToRedeem > customer.AvailablePoints() {
			return nil, apperrors.InsufficientBalance(
				"redeeming %d points exceeds available balance of %d",
				pointsToRedeem, customer.AvailablePoints())
		}
		summary.PointsRedeemed = pointsToRedeem
		summary.PointsValue = float64(pointsToRedeem) * policy.PointValue
	}

	total := summary.Subtotal + summary.VATAmount - summary.DiscountAmount + summary.DeliveryFee - summary.PointsValue
	if total < 0 {
		total = 0
	}
	summary.GrandTotal = total

	return summary, nil
}
