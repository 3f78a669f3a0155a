package models

import (
	"time"

	"gorm.io/gorm"
)

// Delivery tracks the physical handoff of exactly one Order. RiderID stays
// nil until a rider wins the accept race.
type Delivery struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderID       uint           `json:"order_id" gorm:"uniqueIndex;not null"`
	CustomerID    uint           `json:"customer_id" gorm:"not null;index"`
	RiderID       *uint          `json:"rider_id" gorm:"index"`
	Zone          Zone           `json:"zone" gorm:"not null;index"`
	Status        string         `json:"status" gorm:"default:'pending'"` // pending, assigned, out_for_delivery, arrived, delivered, failed, cancelled
	EstimatedTime *time.Time     `json:"estimated_time"`
	Address       string         `json:"address"` // customer address snapshot at placement
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "pending"
	DeliveryAssigned       DeliveryStatus = "assigned"
	DeliveryOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryArrived        DeliveryStatus = "arrived"
	DeliveryDelivered      DeliveryStatus = "delivered"
	DeliveryFailed         DeliveryStatus = "failed"
	DeliveryCancelled      DeliveryStatus = "cancelled"
)

// DeliveryTerminal reports whether no further delivery transition is permitted.
func DeliveryTerminal(status DeliveryStatus) bool {
	switch status {
	case DeliveryDelivered, DeliveryFailed, DeliveryCancelled:
		return true
	}
	return false
}
