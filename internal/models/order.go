package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID                     uint           `json:"id" gorm:"primaryKey"`
	CustomerID             uint           `json:"customer_id" gorm:"not null;index"`
	OrderDate              time.Time      `json:"order_date" gorm:"not null"`
	Status                 string         `json:"status" gorm:"default:'pending'"` // pending, confirmed, shipped, delivered, cancelled, restored
	Subtotal               float64        `json:"subtotal" gorm:"not null"`
	VATAmount              float64        `json:"vat_amount"`
	DiscountAmount         float64        `json:"discount_amount"`
	DeliveryFee            float64        `json:"delivery_fee"`
	PointsUsed             int            `json:"points_used"`
	PointsEarned           int            `json:"points_earned"`
	TotalAmount            float64        `json:"total_amount" gorm:"not null"`
	PaymentStatus          bool           `json:"payment_status" gorm:"default:false"`
	NeedsManualRestoration bool           `json:"needs_manual_restoration" gorm:"default:false"`
	CouponCode             string         `json:"coupon_code"`
	Items                  []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
	OrderRestored  OrderStatus = "restored"
)

// OrderTerminal reports whether no further order transition is permitted.
func OrderTerminal(status OrderStatus) bool {
	switch status {
	case OrderDelivered, OrderCancelled, OrderRestored:
		return true
	}
	return false
}
