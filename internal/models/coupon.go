package models

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Code            string         `json:"code" gorm:"unique;not null"`
	DiscountPercent float64        `json:"discount_percent" gorm:"not null"`
	RequiredPoint   int            `json:"required_point"` // minimum loyalty balance to redeem
	ValidFrom       time.Time      `json:"valid_from"`
	ValidTo         time.Time      `json:"valid_to"`
	Active          bool           `json:"active" gorm:"default:true"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ValidAt reports whether the coupon window covers the given instant.
// The window is inclusive on both ends.
func (c *Coupon) ValidAt(now time.Time) bool {
	return c.Active && !now.Before(c.ValidFrom) && !now.After(c.ValidTo)
}
