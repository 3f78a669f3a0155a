package repository

import (
	"freshcart/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	GetByStatus(status models.OrderStatus) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	Update(order *models.Order) error
	// UpdateStatusIf moves the order from one of the given statuses; zero rows
	// affected means the precondition no longer held.
	UpdateStatusIf(id uint, from []models.OrderStatus, to models.OrderStatus) (int64, error)
	// MarkPaid sets payment_status alongside the delivered status.
	MarkPaid(id uint) error
	// FlagManualRestoration marks the order as holding un-restored stock.
	FlagManualRestoration(id uint) error
	// ConsumeManualRestoration clears the flag and settles the order as
	// restored; zero rows affected means the flag was already consumed.
	ConsumeManualRestoration(id uint) (int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("customer_id = ?", customerID).
		Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", string(status)).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) UpdateStatusIf(id uint, from []models.OrderStatus, to models.OrderStatus) (int64, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND status IN ?", id, statuses).
		Update("status", string(to))
	return result.RowsAffected, result.Error
}

func (r *orderRepository) MarkPaid(id uint) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("payment_status", true).Error
}

func (r *orderRepository) FlagManualRestoration(id uint) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("needs_manual_restoration", true).Error
}

func (r *orderRepository) ConsumeManualRestoration(id uint) (int64, error) {
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND needs_manual_restoration = ?", id, true).
		Updates(map[string]interface{}{
			"needs_manual_restoration": false,
			"status":                   string(models.OrderRestored),
		})
	return result.RowsAffected, result.Error
}
