package migrations

import (
	"errors"
	"log"
	"time"

	"freshcart/internal/models"
	"freshcart/internal/repository"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations and creates default data
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Rider{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.Delivery{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData creates the default admin user and a starter coupon.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		log.Println("Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin = models.User{
		Username: "admin",
		Email:    "admin@freshcart.local",
		Role:     string(models.RoleAdmin),
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created successfully")
	}

	couponRepo := repository.NewCouponRepository(db)
	welcome := &models.Coupon{
		Code:            "WELCOME10",
		DiscountPercent: 10,
		RequiredPoint:   0,
		ValidFrom:       time.Now(),
		ValidTo:         time.Now().AddDate(1, 0, 0),
		Active:          true,
	}
	if err := couponRepo.Create(welcome); err != nil {
		log.Printf("Warning: Failed to create welcome coupon: %v", err)
	}

	log.Println("Default data created successfully!")
	return nil
}
