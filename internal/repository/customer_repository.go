package repository

import (
	"freshcart/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	// AddPointsUsed debits the ledger only while the available balance covers
	// it; zero rows affected means a concurrent placement spent the points
	// first. AddPointsEarned is an unconditional credit.
	AddPointsUsed(id uint, points int) (int64, error)
	AddPointsEarned(id uint, points int) error
	WithTx(tx *gorm.DB) CustomerRepository
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) WithTx(tx *gorm.DB) CustomerRepository {
	return &customerRepository{db: tx}
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) AddPointsUsed(id uint, points int) (int64, error) {
	result := r.db.Model(&models.Customer{}).
		Where("id = ? AND points_earned - points_used >= ?", id, points).
		UpdateColumn("points_used", gorm.Expr("points_used + ?", points))
	return result.RowsAffected, result.Error
}

func (r *customerRepository) AddPointsEarned(id uint, points int) error {
	return r.db.Model(&models.Customer{}).
		Where("id = ?", id).
		UpdateColumn("points_earned", gorm.Expr("points_earned + ?", points)).Error
}
