package api

// Cart представляет корзину пользователя
type Cart struct {
	UserID     string     `json:"userId"`
	Items      []CartItem `json:"items"`
	ID         int64      `json:"id"`
	TotalPrice float64    `json:"totalPrice"`
}

// CartItem представляет позицию в корзине
type CartItem struct {
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CartItemRequest представляет запрос на добавление товара в корзину
type CartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// QuantityRequest представляет запрос на изменение количества
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}
