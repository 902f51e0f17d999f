package shop

import (
	"context"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/pkg/api"
)

// CartAPI - часть REST клиента для корзины
type CartAPI interface {
	Cart(ctx context.Context, userID string) (*api.Cart, error)
	AddCartItem(ctx context.Context, cartID int64, req api.CartItemRequest) (*api.Cart, error)
	UpdateCartItem(ctx context.Context, cartID, itemID int64, quantity int) (*api.Cart, error)
	RemoveCartItem(ctx context.Context, cartID, itemID int64) (*api.Cart, error)
	ClearCart(ctx context.Context, cartID int64) (*api.Cart, error)
}

// Cart - репозиторий корзины. Каждая операция возвращает корзину целиком.
type Cart struct {
	remote   CartAPI
	sessions SessionReader
}

// NewCart создает репозиторий корзины
func NewCart(remote CartAPI, sessions SessionReader) *Cart {
	return &Cart{remote: remote, sessions: sessions}
}

// Get возвращает корзину пользователя
func (c *Cart) Get(ctx context.Context, userID string) resource.Resource[api.Cart] {
	cart, err := c.remote.Cart(ctx, userID)
	return wrap("Cart", cart, err)
}

// ForCurrentUser возвращает корзину пользователя из сессии
func (c *Cart) ForCurrentUser(ctx context.Context) resource.Resource[api.Cart] {
	userID, err := currentUserID(ctx, c.sessions)
	if err != nil {
		return fail[api.Cart](err)
	}
	return c.Get(ctx, userID)
}

func (c *Cart) AddItem(ctx context.Context, cartID, productID int64, quantity int) resource.Resource[api.Cart] {
	cart, err := c.remote.AddCartItem(ctx, cartID, api.CartItemRequest{ProductID: productID, Quantity: quantity})
	return wrap("Cart", cart, err)
}

func (c *Cart) UpdateItem(ctx context.Context, cartID, itemID int64, quantity int) resource.Resource[api.Cart] {
	cart, err := c.remote.UpdateCartItem(ctx, cartID, itemID, quantity)
	return wrap("Cart", cart, err)
}

func (c *Cart) RemoveItem(ctx context.Context, cartID, itemID int64) resource.Resource[api.Cart] {
	cart, err := c.remote.RemoveCartItem(ctx, cartID, itemID)
	return wrap("Cart", cart, err)
}

func (c *Cart) Clear(ctx context.Context, cartID int64) resource.Resource[api.Cart] {
	cart, err := c.remote.ClearCart(ctx, cartID)
	return wrap("Cart", cart, err)
}
