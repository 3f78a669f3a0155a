package services

import (
	"errors"

	"freshcart/internal/models"
	"freshcart/internal/repository"
	"freshcart/pkg/apperrors"

	"gorm.io/gorm"
)

type CartService interface {
	GetCart(customerID uint) (*models.Cart, error)
	AddItem(customerID, productID uint, quantity int) error
	UpdateItemQuantity(customerID, productID uint, quantity int) error
	RemoveItem(customerID, productID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the customer's cart, creating an empty one on first use.
func (s *cartService) GetCart(customerID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByCustomerID(customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &models.Cart{CustomerID: customerID}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) AddItem(customerID, productID uint, quantity int) error {
	if quantity < 1 {
		return apperrors.Validation("quantity must be at least 1")
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return asNotFound(err, "product %d", productID)
	}

	cart, err := s.GetCart(customerID)
	if err != nil {
		return err
	}

	existing, err := s.cartRepo.GetItem(cart.ID, productID)
	if err == nil {
		existing.Quantity += quantity
		return s.cartRepo.UpdateItem(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.cartRepo.AddItem(&models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (s *cartService) UpdateItemQuantity(customerID, productID uint, quantity int) error {
	if quantity < 1 {
		return apperrors.Validation("quantity must be at least 1")
	}

	cart, err := s.GetCart(customerID)
	if err != nil {
		return err
	}

	item, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return asNotFound(err, "product %d in cart", productID)
	}
	item.Quantity = quantity
	return s.cartRepo.UpdateItem(item)
}

func (s *cartService) RemoveItem(customerID, productID uint) error {
	cart, err := s.GetCart(customerID)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveItem(cart.ID, productID)
}
