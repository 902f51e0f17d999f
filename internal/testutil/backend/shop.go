package backend

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/gophershop/pkg/api"
)

type catalog struct {
	reviews    map[int64][]api.Review
	categories []api.Category
	products   []api.ProductDetail
}

func seedCatalog() catalog {
	shoes := api.Category{ID: 1, Name: "Shoes", Description: "Footwear"}
	hats := api.Category{ID: 2, Name: "Hats", Description: "Headwear"}

	return catalog{
		categories: []api.Category{shoes, hats},
		products: []api.ProductDetail{
			{ID: 7, Name: "Boot", Description: "Leather boot", Price: 10.0, Stock: 5, Category: &shoes, Images: []string{"boot-1.png", "boot-2.png"}},
			{ID: 8, Name: "Sneaker", Description: "Running sneaker", Price: 59.9, Stock: 12, Category: &shoes, Images: []string{"sneaker.png"}},
			{ID: 9, Name: "Cap", Description: "Baseball cap", Price: 15.5, Stock: 0, Category: &hats},
		},
		reviews: map[int64][]api.Review{
			7: {
				{ID: 1, ProductID: 7, UserName: "alice", Rating: 5, Comment: "Great boot", CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
				{ID: 2, ProductID: 7, UserName: "bob", Rating: 3, Comment: "Runs small", CreatedAt: time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)},
			},
		},
	}
}

func toCard(p api.ProductDetail) api.Product {
	card := api.Product{ID: p.ID, Name: p.Name, Price: p.Price}
	if len(p.Images) > 0 {
		card.ImageURL = p.Images[0]
	}
	if p.Category != nil {
		card.CategoryID = p.Category.ID
	}
	return card
}

func (c catalog) product(id int64) (api.ProductDetail, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return api.ProductDetail{}, false
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil
}

// listCategories обрабатывает GET /api/categories
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, s.catalog.categories)
}

// getCategory обрабатывает GET /api/categories/{id}
func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		sendError(w, "invalid category id", http.StatusBadRequest)
		return
	}
	for _, c := range s.catalog.categories {
		if c.ID == id {
			sendJSON(w, http.StatusOK, c)
			return
		}
	}
	sendError(w, "category not found", http.StatusNotFound)
}

// listProducts обрабатывает GET /api/products[?categoryId=]
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			sendError(w, "invalid categoryId", http.StatusBadRequest)
			return
		}
		categoryID = id
	}

	cards := []api.Product{}
	for _, p := range s.catalog.products {
		card := toCard(p)
		if categoryID == 0 || card.CategoryID == categoryID {
			cards = append(cards, card)
		}
	}
	sendJSON(w, http.StatusOK, cards)
}

// getProduct обрабатывает GET /api/products/{id}
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		sendError(w, "invalid product id", http.StatusBadRequest)
		return
	}
	p, found := s.catalog.product(id)
	if !found {
		sendError(w, "product not found", http.StatusNotFound)
		return
	}
	sendJSON(w, http.StatusOK, p)
}

// search обрабатывает GET /api/search?query=
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))

	result := api.SearchResult{Products: []api.Product{}, Categories: []api.Category{}}
	if query != "" {
		for _, p := range s.catalog.products {
			if strings.Contains(strings.ToLower(p.Name), query) {
				result.Products = append(result.Products, toCard(p))
			}
		}
		for _, c := range s.catalog.categories {
			if strings.Contains(strings.ToLower(c.Name), query) {
				result.Categories = append(result.Categories, c)
			}
		}
	}
	sendJSON(w, http.StatusOK, result)
}

// listReviews обрабатывает GET /api/reviews/product/{id}
func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		sendError(w, "invalid product id", http.StatusBadRequest)
		return
	}
	reviews := s.catalog.reviews[id]
	if reviews == nil {
		reviews = []api.Review{}
	}
	sendJSON(w, http.StatusOK, reviews)
}

// cartFor возвращает корзину пользователя, создавая пустую при первом обращении.
// Вызывается под s.mu.
func (s *Server) cartFor(userID string) *api.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &api.Cart{ID: s.newID(), UserID: userID, Items: []api.CartItem{}}
		s.carts[userID] = cart
	}
	return cart
}

// cartByID ищет корзину по ID, доступную владельцу токена. Вызывается под s.mu.
func (s *Server) cartByID(r *http.Request) (*api.Cart, int) {
	id, ok := pathID(r, "cartId")
	if !ok {
		return nil, http.StatusBadRequest
	}
	for _, cart := range s.carts {
		if cart.ID == id {
			if cart.UserID != claimsFrom(r).Subject {
				return nil, http.StatusForbidden
			}
			return cart, http.StatusOK
		}
	}
	return nil, http.StatusNotFound
}

func recalc(cart *api.Cart) {
	total := 0.0
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
	}
	cart.TotalPrice = total
}

// getCart обрабатывает GET /api/carts/{userId}
func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID != claimsFrom(r).Subject {
		sendError(w, "access denied", http.StatusForbidden)
		return
	}

	s.mu.Lock()
	cart := *s.cartFor(userID)
	s.mu.Unlock()

	sendJSON(w, http.StatusOK, cart)
}

// addCartItem обрабатывает POST /api/carts/{cartId}/items
func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req api.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		sendError(w, "quantity must be positive", http.StatusBadRequest)
		return
	}

	p, found := s.catalog.product(req.ProductID)
	if !found {
		sendError(w, "product not found", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, status := s.cartByID(r)
	if cart == nil {
		sendError(w, http.StatusText(status), status)
		return
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			cart.Items[i].Quantity += req.Quantity
			merged = true
		}
	}
	if !merged {
		card := toCard(p)
		cart.Items = append(cart.Items, api.CartItem{
			ID:          s.newID(),
			ProductID:   p.ID,
			ProductName: p.Name,
			ImageURL:    card.ImageURL,
			Quantity:    req.Quantity,
			Price:       p.Price,
		})
	}
	recalc(cart)

	sendJSON(w, http.StatusOK, cart)
}

// updateCartItem обрабатывает PUT /api/carts/{cartId}/items/{itemId}
func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req api.QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		sendError(w, "quantity must be positive", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, status := s.cartByID(r)
	if cart == nil {
		sendError(w, http.StatusText(status), status)
		return
	}

	itemID, _ := pathID(r, "itemId")
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = req.Quantity
			recalc(cart)
			sendJSON(w, http.StatusOK, cart)
			return
		}
	}
	sendError(w, "item not found", http.StatusNotFound)
}

// removeCartItem обрабатывает DELETE /api/carts/{cartId}/items/{itemId}
func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, status := s.cartByID(r)
	if cart == nil {
		sendError(w, http.StatusText(status), status)
		return
	}

	itemID, _ := pathID(r, "itemId")
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recalc(cart)
			sendJSON(w, http.StatusOK, cart)
			return
		}
	}
	sendError(w, "item not found", http.StatusNotFound)
}

// clearCart обрабатывает DELETE /api/carts/{cartId}/clear
func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, status := s.cartByID(r)
	if cart == nil {
		sendError(w, http.StatusText(status), status)
		return
	}

	cart.Items = []api.CartItem{}
	recalc(cart)
	sendJSON(w, http.StatusOK, cart)
}

// listOrders обрабатывает GET /api/orders/user/{userId}
func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID != claimsFrom(r).Subject {
		sendError(w, "access denied", http.StatusForbidden)
		return
	}

	s.mu.Lock()
	orders := []api.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	s.mu.Unlock()

	sendJSON(w, http.StatusOK, orders)
}

// createOrder обрабатывает POST /api/orders: переносит корзину в заказ
func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req api.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID != claimsFrom(r).Subject {
		sendError(w, "access denied", http.StatusForbidden)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[req.UserID]
	if !ok || cart.ID != req.CartID {
		sendError(w, "cart not found", http.StatusNotFound)
		return
	}
	if len(cart.Items) == 0 {
		sendError(w, "cart is empty", http.StatusBadRequest)
		return
	}

	order := &api.Order{
		ID:         s.newID(),
		UserID:     req.UserID,
		Status:     api.OrderStatusPending,
		TotalPrice: cart.TotalPrice,
		CreatedAt:  time.Now().UTC(),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, api.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	s.orders[order.ID] = order

	cart.Items = []api.CartItem{}
	recalc(cart)

	sendJSON(w, http.StatusCreated, order)
}

// getOrder обрабатывает GET /api/orders/{id}
func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		sendError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	order, found := s.orders[id]
	var snapshot api.Order
	if found {
		snapshot = *order
	}
	s.mu.Unlock()

	if !found || snapshot.UserID != claimsFrom(r).Subject {
		sendError(w, "order not found", http.StatusNotFound)
		return
	}
	sendJSON(w, http.StatusOK, snapshot)
}

// setOrderStatus обрабатывает PATCH /api/orders/{id}/complete|cancel.
// Менять можно только заказ в статусе PENDING.
func (s *Server) setOrderStatus(status api.OrderStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			sendError(w, "invalid order id", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		order, found := s.orders[id]
		if !found || order.UserID != claimsFrom(r).Subject {
			sendError(w, "order not found", http.StatusNotFound)
			return
		}
		if order.Status != api.OrderStatusPending {
			sendError(w, "order is already "+string(order.Status), http.StatusConflict)
			return
		}

		order.Status = status
		sendJSON(w, http.StatusOK, order)
	}
}

// getUser обрабатывает GET /api/users/{id}
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id != claimsFrom(r).Subject {
		sendError(w, "access denied", http.StatusForbidden)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.profile.ID == id {
			sendJSON(w, http.StatusOK, u.profile)
			return
		}
	}
	sendError(w, "user not found", http.StatusNotFound)
}
