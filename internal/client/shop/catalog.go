package shop

import (
	"context"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/pkg/api"
)

// CatalogAPI - часть REST клиента для каталога
type CatalogAPI interface {
	Categories(ctx context.Context) ([]api.Category, error)
	Category(ctx context.Context, id int64) (*api.Category, error)
	Products(ctx context.Context, categoryID int64) ([]api.Product, error)
	Product(ctx context.Context, id int64) (*api.ProductDetail, error)
	Search(ctx context.Context, query string) (*api.SearchResult, error)
	Reviews(ctx context.Context, productID int64) ([]api.Review, error)
}

// Catalog - репозиторий категорий, товаров, поиска и отзывов
type Catalog struct {
	remote CatalogAPI
}

// NewCatalog создает репозиторий каталога
func NewCatalog(remote CatalogAPI) *Catalog {
	return &Catalog{remote: remote}
}

func (c *Catalog) Categories(ctx context.Context) resource.Resource[[]api.Category] {
	list, err := c.remote.Categories(ctx)
	return wrapList("Categories", list, err)
}

func (c *Catalog) Category(ctx context.Context, id int64) resource.Resource[api.Category] {
	category, err := c.remote.Category(ctx, id)
	return wrap("Category", category, err)
}

// Products возвращает товары; categoryID 0 - все категории
func (c *Catalog) Products(ctx context.Context, categoryID int64) resource.Resource[[]api.Product] {
	list, err := c.remote.Products(ctx, categoryID)
	return wrapList("Products", list, err)
}

func (c *Catalog) Product(ctx context.Context, id int64) resource.Resource[api.ProductDetail] {
	product, err := c.remote.Product(ctx, id)
	return wrap("Product", product, err)
}

// Search ищет товары и категории по подстроке
func (c *Catalog) Search(ctx context.Context, query string) resource.Resource[api.SearchResult] {
	result, err := c.remote.Search(ctx, query)
	return wrap("Search result", result, err)
}

func (c *Catalog) Reviews(ctx context.Context, productID int64) resource.Resource[[]api.Review] {
	list, err := c.remote.Reviews(ctx, productID)
	return wrapList("Reviews", list, err)
}
