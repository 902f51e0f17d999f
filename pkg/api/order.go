package api

import "time"

// OrderStatus статус заказа на стороне сервера
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order представляет заказ
type Order struct {
	CreatedAt  time.Time   `json:"createdAt"`
	Address    *Address    `json:"address,omitempty"`
	UserID     string      `json:"userId"`
	Status     OrderStatus `json:"status"`
	Items      []OrderItem `json:"items"`
	ID         int64       `json:"id"`
	TotalPrice float64     `json:"totalPrice"`
}

// OrderItem представляет позицию заказа
type OrderItem struct {
	ProductName string  `json:"productName"`
	ProductID   int64   `json:"productId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CreateOrderRequest представляет запрос на оформление заказа из корзины
type CreateOrderRequest struct {
	UserID    string `json:"userId"`
	CartID    int64  `json:"cartId"`
	AddressID int64  `json:"addressId,omitempty"`
}
