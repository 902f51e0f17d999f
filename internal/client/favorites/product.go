package favorites

import "github.com/iudanet/gophershop/pkg/api"

// Product is the one shape a favorite is created from,
// whether the user tapped a list card or a detail view
type Product struct {
	Name     string
	ImageURL string
	ID       int64
	Price    float64
}

// FromProduct нормализует карточку из списка товаров
func FromProduct(p api.Product) Product {
	return Product{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: p.ImageURL,
		Price:    p.Price,
	}
}

// FromDetail нормализует полную карточку товара; картинкой становится первое изображение
func FromDetail(d api.ProductDetail) Product {
	p := Product{
		ID:    d.ID,
		Name:  d.Name,
		Price: d.Price,
	}
	if len(d.Images) > 0 {
		p.ImageURL = d.Images[0]
	}
	return p
}
