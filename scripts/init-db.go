//go:build ignore

// Standalone seeder for local development: drops and recreates the schema,
// then loads a demo catalog, riders for every zone, and sample coupons.
//
//	go run scripts/init-db.go
package main

import (
	"log"
	"time"

	"freshcart/internal/config"
	"freshcart/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	allModels := []interface{}{
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
	}

	log.Println("Dropping existing tables...")
	if err := db.Migrator().DropTable(allModels...); err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seed(db)
	log.Println("Database initialized successfully!")
}

func seed(db *gorm.DB) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	weekAhead := now.AddDate(0, 0, 7)

	products := []models.Product{
		{Name: "Basmati Rice 5kg", Category: "Staples", Price: 650, Stock: 120, VATPercent: 5, RewardPoints: 6},
		{Name: "Fresh Milk 1L", Category: "Dairy", Price: 95, Stock: 200, VATPercent: 5, RewardPoints: 1},
		{Name: "Eggs (dozen)", Category: "Dairy", Price: 140, Stock: 150, VATPercent: 0, RewardPoints: 1},
		{Name: "Hilsa Fish 1kg", Category: "Fish", Price: 1400, Stock: 30, VATPercent: 5, RewardPoints: 14,
			DiscountPercent: 15, DiscountStarted: &weekAgo, DiscountFinished: &weekAhead},
		{Name: "Soybean Oil 5L", Category: "Staples", Price: 850, Stock: 80, VATPercent: 5, RewardPoints: 8},
		{Name: "Tomatoes 1kg", Category: "Vegetables", Price: 60, Stock: 300, VATPercent: 0, RewardPoints: 0},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Printf("Warning: Failed to seed product %q: %v", products[i].Name, err)
		}
	}

	for i, zone := range models.AllZones() {
		rider := models.Rider{
			Name:        "Demo Rider " + string(rune('A'+i)),
			Phone:       "01700000000",
			VehicleInfo: "Motorbike",
			Available:   true,
			Zone:        zone,
		}
		if err := db.Create(&rider).Error; err != nil {
			log.Printf("Warning: Failed to seed rider for zone %s: %v", zone, err)
		}
	}

	coupons := []models.Coupon{
		{Code: "SAVE10", DiscountPercent: 10, RequiredPoint: 50,
			ValidFrom: weekAgo, ValidTo: now.AddDate(0, 3, 0), Active: true},
		{Code: "EXPIRED20", DiscountPercent: 20, RequiredPoint: 0,
			ValidFrom: now.AddDate(0, -2, 0), ValidTo: now.AddDate(0, -1, 0), Active: true},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			log.Printf("Warning: Failed to seed coupon %q: %v", coupons[i].Code, err)
		}
	}

	customer := models.Customer{
		Name:         "Demo Customer",
		Phone:        "01800000000",
		Address:      "House 12, Road 5, Dhanmondi",
		Zone:         models.ZoneDhanmondi,
		PointsEarned: 80,
	}
	if err := db.Create(&customer).Error; err != nil {
		log.Printf("Warning: Failed to seed demo customer: %v", err)
	}
}
