package models

import (
	"time"

	"gorm.io/gorm"
)

type Rider struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Phone       string         `json:"phone"`
	VehicleInfo string         `json:"vehicle_info"`
	Available   bool           `json:"available" gorm:"default:true"`
	Zone        Zone           `json:"zone" gorm:"not null;index"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
