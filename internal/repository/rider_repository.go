package repository

import (
	"freshcart/internal/models"

	"gorm.io/gorm"
)

type RiderRepository interface {
	GetByID(id uint) (*models.Rider, error)
	GetByZone(zone models.Zone) ([]models.Rider, error)
	Create(rider *models.Rider) error
	Update(rider *models.Rider) error
	UpdateZone(id uint, zone models.Zone) error
	UpdateLocation(id uint, lat, lng float64) error
}

type riderRepository struct {
	db *gorm.DB
}

func NewRiderRepository(db *gorm.DB) RiderRepository {
	return &riderRepository{db: db}
}

func (r *riderRepository) GetByID(id uint) (*models.Rider, error) {
	var rider models.Rider
	err := r.db.First(&rider, id).Error
	if err != nil {
		return nil, err
	}
	return &rider, nil
}

func (r *riderRepository) GetByZone(zone models.Zone) ([]models.Rider, error) {
	var riders []models.Rider
	err := r.db.Where("zone = ?", string(zone)).Find(&riders).Error
	return riders, err
}

func (r *riderRepository) Create(rider *models.Rider) error {
	return r.db.Create(rider).Error
}

func (r *riderRepository) Update(rider *models.Rider) error {
	return r.db.Save(rider).Error
}

func (r *riderRepository) UpdateZone(id uint, zone models.Zone) error {
	return r.db.Model(&models.Rider{}).
		Where("id = ?", id).
		Update("zone", string(zone)).Error
}

func (r *riderRepository) UpdateLocation(id uint, lat, lng float64) error {
	return r.db.Model(&models.Rider{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"latitude": lat, "longitude": lng}).Error
}
