package service

import (
	models "github.com/Dawood573189/simple-online-shop/model"
)

type ServiceInterface interface {
	ListProducts() []models.Product
	AddToCart(cart *models.Cart, productID int64, qty int) error
	RemoveFromCart(cart *models.Cart, productID int64, qty int) error
	ViewCart(cart *models.Cart) []LineDetail
	CalculateTotal(cart *models.Cart) int64
	Checkout(cart *models.Cart) int64
}
