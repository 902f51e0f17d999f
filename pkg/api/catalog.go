package api

import "time"

// Category представляет категорию товаров
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Product представляет товар в списке (карточка)
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"imageUrl"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"categoryId,omitempty"`
}

// ProductDetail представляет полную карточку товара
type ProductDetail struct {
	Category    *Category `json:"category,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	ID          int64     `json:"id"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
}

// SearchResult представляет результат поиска
type SearchResult struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}

// Review представляет отзыв о товаре
type Review struct {
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName"`
	Comment   string    `json:"comment"`
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Rating    int       `json:"rating"`
}
