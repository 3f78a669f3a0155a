package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"not null"`
	Category         string         `json:"category"`
	Price            float64        `json:"price" gorm:"not null"`
	Stock            int            `json:"stock" gorm:"not null;default:0"`
	DiscountPercent  float64        `json:"discount_percent"`
	DiscountStarted  *time.Time     `json:"discount_started"`
	DiscountFinished *time.Time     `json:"discount_finished"`
	VATPercent       float64        `json:"vat_percent"`
	RewardPoints     int            `json:"reward_points"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// DiscountActiveAt reports whether the product discount window covers the
// given instant. The window is half-open: [started, finished).
func (p *Product) DiscountActiveAt(now time.Time) bool {
	if p.DiscountPercent <= 0 || p.DiscountStarted == nil || p.DiscountFinished == nil {
		return false
	}
	return !now.Before(*p.DiscountStarted) && now.Before(*p.DiscountFinished)
}

// UnitPriceAt returns the effective unit price with any active discount applied.
func (p *Product) UnitPriceAt(now time.Time) float64 {
	if p.DiscountActiveAt(now) {
		return p.Price * (1 - p.DiscountPercent/100)
	}
	return p.Price
}
