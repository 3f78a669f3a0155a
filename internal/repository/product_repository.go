package repository

import (
	"freshcart/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the only component that mutates stock counters. Both
// mutations are single-row conditional updates so the non-negative invariant
// holds under concurrent placements and restorations without app-level locks.
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	GetByIDs(ids []uint) ([]models.Product, error)
	GetAll() ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	DecrementStock(id uint, quantity int) (int64, error)
	RestoreStock(id uint, quantity int) error
	WithTx(tx *gorm.DB) ProductRepository
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepository{db: tx}
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// DecrementStock subtracts quantity only while enough stock remains. A zero
// rows-affected result means the decrement would have gone negative; the
// caller aborts its transaction.
func (r *productRepository) DecrementStock(id uint, quantity int) (int64, error) {
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	return result.RowsAffected, result.Error
}

func (r *productRepository) RestoreStock(id uint, quantity int) error {
	return r.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity)).Error
}
