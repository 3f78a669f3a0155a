package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Zone         Zone           `json:"zone" gorm:"not null"`
	PointsEarned int            `json:"points_earned" gorm:"default:0"` // monotonically non-decreasing
	PointsUsed   int            `json:"points_used" gorm:"default:0"`   // monotonically non-decreasing
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// AvailablePoints is the derived loyalty balance; it is never stored.
func (c *Customer) AvailablePoints() int {
	return c.PointsEarned - c.PointsUsed
}
