package repository

import (
	"time"

	"freshcart/internal/models"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(delivery *models.Delivery) error
	GetByID(id uint) (*models.Delivery, error)
	GetByOrderID(orderID uint) (*models.Delivery, error)
	GetByRiderID(riderID uint) ([]models.Delivery, error)
	// ListPendingByZone returns unclaimed deliveries a rider in the zone may
	// accept. Read-only.
	ListPendingByZone(zone models.Zone) ([]models.Delivery, error)
	// Claim is the accept race point: it assigns the rider only while the
	// delivery is still pending. Zero rows affected means another rider won.
	Claim(deliveryID, riderID uint) (int64, error)
	// UpdateStatusIf moves the delivery from one of the given statuses; zero
	// rows affected means the precondition no longer held.
	UpdateStatusIf(id uint, from []models.DeliveryStatus, to models.DeliveryStatus) (int64, error)
	SetEstimatedTime(id uint, estimatedTime time.Time) error
	WithTx(tx *gorm.DB) DeliveryRepository
}

type deliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) WithTx(tx *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: tx}
}

func (r *deliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Create(delivery).Error
}

func (r *deliveryRepository) GetByID(id uint) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.First(&delivery, id).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) GetByOrderID(orderID uint) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.Where("order_id = ?", orderID).First(&delivery).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) GetByRiderID(riderID uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.Where("rider_id = ?", riderID).Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) ListPendingByZone(zone models.Zone) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.Where("status = ? AND zone = ? AND rider_id IS NULL",
		string(models.DeliveryPending), string(zone)).
		Order("created_at ASC").Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) Claim(deliveryID, riderID uint) (int64, error) {
	result := r.db.Model(&models.Delivery{}).
		Where("id = ? AND status = ?", deliveryID, string(models.DeliveryPending)).
		Updates(map[string]interface{}{
			"rider_id": riderID,
			"status":   string(models.DeliveryAssigned),
		})
	return result.RowsAffected, result.Error
}

func (r *deliveryRepository) UpdateStatusIf(id uint, from []models.DeliveryStatus, to models.DeliveryStatus) (int64, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}
	result := r.db.Model(&models.Delivery{}).
		Where("id = ? AND status IN ?", id, statuses).
		Update("status", string(to))
	return result.RowsAffected, result.Error
}

func (r *deliveryRepository) SetEstimatedTime(id uint, estimatedTime time.Time) error {
	return r.db.Model(&models.Delivery{}).
		Where("id = ?", id).
		Update("estimated_time", estimatedTime).Error
}
