package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/gophershop/pkg/api"
)

// Cart возвращает корзину пользователя
func (c *Client) Cart(ctx context.Context, userID string) (*api.Cart, error) {
	var resp api.Cart
	path := "/api/carts/" + url.PathEscape(userID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get cart request failed: %w", err)
	}
	return &resp, nil
}

// AddCartItem добавляет товар в корзину
func (c *Client) AddCartItem(ctx context.Context, cartID int64, req api.CartItemRequest) (*api.Cart, error) {
	var resp api.Cart
	path := fmt.Sprintf("/api/carts/%d/items", cartID)
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("add cart item request failed: %w", err)
	}
	return &resp, nil
}

// UpdateCartItem изменяет количество товара в корзине
func (c *Client) UpdateCartItem(ctx context.Context, cartID, itemID int64, quantity int) (*api.Cart, error) {
	var resp api.Cart
	path := fmt.Sprintf("/api/carts/%d/items/%d", cartID, itemID)
	if err := c.doRequest(ctx, http.MethodPut, path, api.QuantityRequest{Quantity: quantity}, &resp); err != nil {
		return nil, fmt.Errorf("update cart item request failed: %w", err)
	}
	return &resp, nil
}

// RemoveCartItem удаляет позицию из корзины
func (c *Client) RemoveCartItem(ctx context.Context, cartID, itemID int64) (*api.Cart, error) {
	var resp api.Cart
	path := fmt.Sprintf("/api/carts/%d/items/%d", cartID, itemID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("remove cart item request failed: %w", err)
	}
	return &resp, nil
}

// ClearCart очищает корзину
func (c *Client) ClearCart(ctx context.Context, cartID int64) (*api.Cart, error) {
	var resp api.Cart
	path := fmt.Sprintf("/api/carts/%d/clear", cartID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("clear cart request failed: %w", err)
	}
	return &resp, nil
}
