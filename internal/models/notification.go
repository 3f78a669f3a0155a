package models

import "time"

type Notification struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	Message    string    `json:"message" gorm:"not null"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	OrderID    *uint     `json:"order_id"`
	DeliveryID *uint     `json:"delivery_id"`
	CreatedAt  time.Time `json:"created_at"`
}
