package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the minimal principal record this service keeps; credential
// issuance and verification live in the identity service upstream.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"unique;not null"`
	Email     string         `json:"email" gorm:"unique;not null"`
	Role      string         `json:"role" gorm:"default:'customer'"` // customer, rider, admin
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleRider    UserRole = "rider"
	RoleAdmin    UserRole = "admin"
)
