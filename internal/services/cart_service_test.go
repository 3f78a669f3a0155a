package services_test

import (
	"testing"

	"freshcart/internal/models"
	"freshcart/internal/services"
	"freshcart/internal/services/mocks"
	"freshcart/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func cartSetup(t *testing.T) (*mocks.CartRepository, *mocks.ProductRepository, services.CartService) {
	cartRepo := mocks.NewCartRepository(t)
	productRepo := mocks.NewProductRepository(t)
	svc := services.NewCartService(cartRepo, productRepo)
	return cartRepo, productRepo, svc
}

func TestGetCart_CreatesOnFirstUse(t *testing.T) {
	cartRepo, _, svc := cartSetup(t)

	cartRepo.On("GetByCustomerID", uint(9)).Return(nil, gorm.ErrRecordNotFound)
	cartRepo.On("Create", mock.AnythingOfType("*models.Cart")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Cart).ID = 1
	}).Return(nil)

	cart, err := svc.GetCart(9)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), cart.ID)
	assert.Equal(t, uint(9), cart.CustomerID)
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	cartRepo, productRepo, svc := cartSetup(t)

	productRepo.On("GetByID", uint(3)).Return(&models.Product{ID: 3, Name: "Fresh Milk 1L"}, nil)
	cartRepo.On("GetByCustomerID", uint(9)).Return(&models.Cart{ID: 1, CustomerID: 9}, nil)
	cartRepo.On("GetItem", uint(1), uint(3)).Return(&models.CartItem{
		CartID: 1, ProductID: 3, Quantity: 2,
	}, nil)
	cartRepo.On("UpdateItem", mock.MatchedBy(func(item *models.CartItem) bool {
		return item.Quantity == 5
	})).Return(nil)

	err := svc.AddItem(9, 3, 3)

	assert.NoError(t, err)
	cartRepo.AssertNotCalled(t, "AddItem", mock.Anything)
}

func TestAddItem_NewLine(t *testing.T) {
	cartRepo, productRepo, svc := cartSetup(t)

	productRepo.On("GetByID", uint(3)).Return(&models.Product{ID: 3}, nil)
	cartRepo.On("GetByCustomerID", uint(9)).Return(&models.Cart{ID: 1, CustomerID: 9}, nil)
	cartRepo.On("GetItem", uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)
	cartRepo.On("AddItem", mock.MatchedBy(func(item *models.CartItem) bool {
		return item.CartID == 1 && item.ProductID == 3 && item.Quantity == 2
	})).Return(nil)

	err := svc.AddItem(9, 3, 2)

	assert.NoError(t, err)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	_, productRepo, svc := cartSetup(t)

	productRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.AddItem(9, 99, 1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddItem_ZeroQuantity(t *testing.T) {
	_, productRepo, svc := cartSetup(t)

	err := svc.AddItem(9, 3, 0)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	productRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestUpdateItemQuantity_MissingLine(t *testing.T) {
	cartRepo, _, svc := cartSetup(t)

	cartRepo.On("GetByCustomerID", uint(9)).Return(&models.Cart{ID: 1, CustomerID: 9}, nil)
	cartRepo.On("GetItem", uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.UpdateItemQuantity(9, 3, 2)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
