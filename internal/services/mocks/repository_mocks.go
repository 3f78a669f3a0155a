package mocks

import (
	"time"

	"freshcart/internal/models"
	"freshcart/internal/repository"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ProductRepository is a testify mock of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) GetByIDs(ids []uint) ([]models.Product, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) DecrementStock(id uint, quantity int) (int64, error) {
	args := m.Called(id, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepository) RestoreStock(id uint, quantity int) error {
	return m.Called(id, quantity).Error(0)
}

func (m *ProductRepository) WithTx(tx *gorm.DB) repository.ProductRepository {
	return m
}

// CartRepository is a testify mock of repository.CartRepository.
type CartRepository struct {
	mock.Mock
}

var _ repository.CartRepository = (*CartRepository)(nil)

func NewCartRepository(t testingT) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartRepository) GetByID(id uint) (*models.Cart, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartRepository) GetByCustomerID(customerID uint) (*models.Cart, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartRepository) Create(cart *models.Cart) error {
	return m.Called(cart).Error(0)
}

func (m *CartRepository) AddItem(item *models.CartItem) error {
	return m.Called(item).Error(0)
}

func (m *CartRepository) GetItem(cartID, productID uint) (*models.CartItem, error) {
	args := m.Called(cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *CartRepository) UpdateItem(item *models.CartItem) error {
	return m.Called(item).Error(0)
}

func (m *CartRepository) RemoveItem(cartID, productID uint) error {
	return m.Called(cartID, productID).Error(0)
}

func (m *CartRepository) Clear(cartID uint) error {
	return m.Called(cartID).Error(0)
}

func (m *CartRepository) WithTx(tx *gorm.DB) repository.CartRepository {
	return m
}

// CouponRepository is a testify mock of repository.CouponRepository.
type CouponRepository struct {
	mock.Mock
}

var _ repository.CouponRepository = (*CouponRepository)(nil)

func NewCouponRepository(t testingT) *CouponRepository {
	m := &CouponRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CouponRepository) GetByCode(code string) (*models.Coupon, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (m *CouponRepository) Create(coupon *models.Coupon) error {
	return m.Called(coupon).Error(0)
}

// CustomerRepository is a testify mock of repository.CustomerRepository.
type CustomerRepository struct {
	mock.Mock
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(t testingT) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *CustomerRepository) Create(customer *models.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *CustomerRepository) Update(customer *models.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *CustomerRepository) AddPointsUsed(id uint, points int) (int64, error) {
	args := m.Called(id, points)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CustomerRepository) AddPointsEarned(id uint, points int) error {
	return m.Called(id, points).Error(0)
}

func (m *CustomerRepository) WithTx(tx *gorm.DB) repository.CustomerRepository {
	return m
}

// OrderRepository is a testify mock of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) Create(order *models.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *OrderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *OrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *OrderRepository) Update(order *models.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) UpdateStatusIf(id uint, from []models.OrderStatus, to models.OrderStatus) (int64, error) {
	args := m.Called(id, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) MarkPaid(id uint) error {
	return m.Called(id).Error(0)
}

func (m *OrderRepository) FlagManualRestoration(id uint) error {
	return m.Called(id).Error(0)
}

func (m *OrderRepository) ConsumeManualRestoration(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) WithTx(tx *gorm.DB) repository.OrderRepository {
	return m
}

// DeliveryRepository is a testify mock of repository.DeliveryRepository.
type DeliveryRepository struct {
	mock.Mock
}

var _ repository.DeliveryRepository = (*DeliveryRepository)(nil)

func NewDeliveryRepository(t testingT) *DeliveryRepository {
	m := &DeliveryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DeliveryRepository) Create(delivery *models.Delivery) error {
	return m.Called(delivery).Error(0)
}

func (m *DeliveryRepository) GetByID(id uint) (*models.Delivery, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Delivery), args.Error(1)
}

func (m *DeliveryRepository) GetByOrderID(orderID uint) (*models.Delivery, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Delivery), args.Error(1)
}

func (m *DeliveryRepository) GetByRiderID(riderID uint) ([]models.Delivery, error) {
	args := m.Called(riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Delivery), args.Error(1)
}

func (m *DeliveryRepository) ListPendingByZone(zone models.Zone) ([]models.Delivery, error) {
	args := m.Called(zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Delivery), args.Error(1)
}

func (m *DeliveryRepository) Claim(deliveryID, riderID uint) (int64, error) {
	args := m.Called(deliveryID, riderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DeliveryRepository) UpdateStatusIf(id uint, from []models.DeliveryStatus, to models.DeliveryStatus) (int64, error) {
	args := m.Called(id, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DeliveryRepository) SetEstimatedTime(id uint, estimatedTime time.Time) error {
	return m.Called(id, estimatedTime).Error(0)
}

func (m *DeliveryRepository) WithTx(tx *gorm.DB) repository.DeliveryRepository {
	return m
}

// RiderRepository is a testify mock of repository.RiderRepository.
type RiderRepository struct {
	mock.Mock
}

var _ repository.RiderRepository = (*RiderRepository)(nil)

func NewRiderRepository(t testingT) *RiderRepository {
	m := &RiderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RiderRepository) GetByID(id uint) (*models.Rider, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rider), args.Error(1)
}

func (m *RiderRepository) GetByZone(zone models.Zone) ([]models.Rider, error) {
	args := m.Called(zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rider), args.Error(1)
}

func (m *RiderRepository) Create(rider *models.Rider) error {
	return m.Called(rider).Error(0)
}

func (m *RiderRepository) Update(rider *models.Rider) error {
	return m.Called(rider).Error(0)
}

func (m *RiderRepository) UpdateZone(id uint, zone models.Zone) error {
	return m.Called(id, zone).Error(0)
}

func (m *RiderRepository) UpdateLocation(id uint, lat, lng float64) error {
	return m.Called(id, lat, lng).Error(0)
}

// NotificationRepository is a testify mock of repository.NotificationRepository.
type NotificationRepository struct {
	mock.Mock
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(t testingT) *NotificationRepository {
	m := &NotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotificationRepository) Create(notification *models.Notification) error {
	return m.Called(notification).Error(0)
}

func (m *NotificationRepository) GetByID(id uint) (*models.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *NotificationRepository) GetByCustomerID(customerID uint) ([]models.Notification, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *NotificationRepository) MarkRead(id uint) error {
	return m.Called(id).Error(0)
}

func (m *NotificationRepository) MarkAllRead(customerID uint) error {
	return m.Called(customerID).Error(0)
}
