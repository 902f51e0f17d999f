package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/gophershop/pkg/api"
)

// Categories возвращает список категорий
func (c *Client) Categories(ctx context.Context) ([]api.Category, error) {
	var resp []api.Category
	if err := c.doRequest(ctx, http.MethodGet, "/api/categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("get categories request failed: %w", err)
	}
	return resp, nil
}

// Category возвращает категорию по ID
func (c *Client) Category(ctx context.Context, id int64) (*api.Category, error) {
	var resp api.Category
	path := fmt.Sprintf("/api/categories/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get category request failed: %w", err)
	}
	return &resp, nil
}

// Products возвращает список товаров; categoryID > 0 фильтрует по категории
func (c *Client) Products(ctx context.Context, categoryID int64) ([]api.Product, error) {
	path := "/api/products"
	if categoryID > 0 {
		path += "?" + url.Values{"categoryId": {strconv.FormatInt(categoryID, 10)}}.Encode()
	}

	var resp []api.Product
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get products request failed: %w", err)
	}
	return resp, nil
}

// Product возвращает полную карточку товара
func (c *Client) Product(ctx context.Context, id int64) (*api.ProductDetail, error) {
	var resp api.ProductDetail
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get product request failed: %w", err)
	}
	return &resp, nil
}

// Search ищет товары и категории
func (c *Client) Search(ctx context.Context, query string) (*api.SearchResult, error) {
	var resp api.SearchResult
	path := "/api/search?" + url.Values{"query": {query}}.Encode()
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &resp, nil
}

// Reviews возвращает отзывы о товаре
func (c *Client) Reviews(ctx context.Context, productID int64) ([]api.Review, error) {
	var resp []api.Review
	path := fmt.Sprintf("/api/reviews/product/%d", productID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get reviews request failed: %w", err)
	}
	return resp, nil
}
