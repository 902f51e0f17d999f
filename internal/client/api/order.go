package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/gophershop/pkg/api"
)

// Orders возвращает заказы пользователя
func (c *Client) Orders(ctx context.Context, userID string) ([]api.Order, error) {
	var resp []api.Order
	path := "/api/orders/user/" + url.PathEscape(userID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get orders request failed: %w", err)
	}
	return resp, nil
}

// CreateOrder оформляет заказ
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error) {
	var resp api.Order
	if err := c.doRequest(ctx, http.MethodPost, "/api/orders", req, &resp); err != nil {
		return nil, fmt.Errorf("create order request failed: %w", err)
	}
	return &resp, nil
}

// Order возвращает заказ по ID
func (c *Client) Order(ctx context.Context, id int64) (*api.Order, error) {
	var resp api.Order
	path := fmt.Sprintf("/api/orders/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get order request failed: %w", err)
	}
	return &resp, nil
}

// CompleteOrder переводит заказ в COMPLETED
func (c *Client) CompleteOrder(ctx context.Context, id int64) (*api.Order, error) {
	var resp api.Order
	path := fmt.Sprintf("/api/orders/%d/complete", id)
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("complete order request failed: %w", err)
	}
	return &resp, nil
}

// CancelOrder переводит заказ в CANCELLED
func (c *Client) CancelOrder(ctx context.Context, id int64) (*api.Order, error) {
	var resp api.Order
	path := fmt.Sprintf("/api/orders/%d/cancel", id)
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel order request failed: %w", err)
	}
	return &resp, nil
}
