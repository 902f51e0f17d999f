// Package backend is an in-memory fake of the shop REST backend for tests.
// It issues real HS256 JWTs, enforces bearer auth on protected routes and
// counts hits per route pattern.
package backend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"sync"
	"testing"
	"time"

	"github.com/iudanet/gophershop/pkg/api"
)

// ResetCode - код сброса пароля, который "отправляется" любому пользователю
const ResetCode = "123456"

type override struct {
	body   string
	status int
	panic  bool
}

// Server is a running fake backend
type Server struct {
	*httptest.Server

	overrides map[string]override
	hits      map[string]int
	users     map[string]*user // by email
	refresh   map[string]string
	carts     map[string]*api.Cart // by user id
	orders    map[int64]*api.Order

	catalog catalog
	jwt     JWTConfig
	mu      sync.Mutex
	nextID  int64
}

type user struct {
	profile      api.User
	passwordHash []byte
}

// New starts a fake backend seeded with a small catalog.
// The server is closed on test cleanup.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		overrides: make(map[string]override),
		hits:      make(map[string]int),
		users:     make(map[string]*user),
		refresh:   make(map[string]string),
		carts:     make(map[string]*api.Cart),
		orders:    make(map[int64]*api.Order),
		catalog:   seedCatalog(),
		jwt: JWTConfig{
			Secret:          []byte("test-secret-key-for-fake-backend"),
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 30 * 24 * time.Hour,
		},
		nextID: 100,
	}

	s.Server = httptest.NewServer(recovery(t, s.routes()))
	t.Cleanup(s.Close)

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Публичные маршруты
	s.handle(mux, "POST /api/auth/login", s.login)
	s.handle(mux, "POST /api/auth/register", s.register)
	s.handle(mux, "POST /api/auth/refresh-token", s.refreshToken)
	s.handle(mux, "POST /api/auth/validate", s.validate)
	s.handle(mux, "POST /api/passwords/forgot", s.forgotPassword)
	s.handle(mux, "POST /api/passwords/validate-code", s.validateCode)
	s.handle(mux, "POST /api/passwords/reset", s.resetPassword)
	s.handle(mux, "GET /api/categories", s.listCategories)
	s.handle(mux, "GET /api/categories/{id}", s.getCategory)
	s.handle(mux, "GET /api/products", s.listProducts)
	s.handle(mux, "GET /api/products/{id}", s.getProduct)
	s.handle(mux, "GET /api/search", s.search)
	s.handle(mux, "GET /api/reviews/product/{id}", s.listReviews)

	// Защищенные маршруты
	s.handle(mux, "GET /api/carts/{userId}", s.requireAuth(s.getCart))
	s.handle(mux, "POST /api/carts/{cartId}/items", s.requireAuth(s.addCartItem))
	s.handle(mux, "PUT /api/carts/{cartId}/items/{itemId}", s.requireAuth(s.updateCartItem))
	s.handle(mux, "DELETE /api/carts/{cartId}/items/{itemId}", s.requireAuth(s.removeCartItem))
	s.handle(mux, "DELETE /api/carts/{cartId}/clear", s.requireAuth(s.clearCart))
	s.handle(mux, "GET /api/orders/user/{userId}", s.requireAuth(s.listOrders))
	s.handle(mux, "POST /api/orders", s.requireAuth(s.createOrder))
	s.handle(mux, "GET /api/orders/{id}", s.requireAuth(s.getOrder))
	s.handle(mux, "PATCH /api/orders/{id}/complete", s.requireAuth(s.setOrderStatus(api.OrderStatusCompleted)))
	s.handle(mux, "PATCH /api/orders/{id}/cancel", s.requireAuth(s.setOrderStatus(api.OrderStatusCancelled)))
	s.handle(mux, "GET /api/users/{id}", s.requireAuth(s.getUser))

	return mux
}

// handle регистрирует маршрут со счетчиком обращений и подменой ответа
func (s *Server) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[pattern]++
		o, overridden := s.overrides[pattern]
		s.mu.Unlock()

		if overridden && o.panic {
			panic("backend: crash requested for " + pattern)
		}
		if overridden {
			w.WriteHeader(o.status)
			_, _ = w.Write([]byte(o.body))
			return
		}

		h(w, r)
	})
}

// Hits returns how many requests reached the route pattern,
// e.g. "POST /api/auth/login"
func (s *Server) Hits(pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[pattern]
}

// TotalHits returns the number of requests across all routes
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

// Respond makes the route answer with a fixed status and raw body
// until Reset is called
func (s *Server) Respond(pattern string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[pattern] = override{status: status, body: body}
}

// Crash makes the route handler panic until Reset is called
func (s *Server) Crash(pattern string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[pattern] = override{panic: true}
}

// Reset removes all response overrides
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[string]override)
}

func (s *Server) newID() int64 {
	s.nextID++
	return s.nextID
}

// recovery перехватывает панику обработчика и отвечает 500 Internal Server Error
func recovery(t testing.TB, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				t.Logf("backend: panic recovered: %v %s %s\n%s", err, r.Method, r.URL.Path, debug.Stack())

				// Детали паники клиенту не раскрываются
				sendError(w, "internal error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// sendJSON отправляет JSON ответ
func sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// sendText отправляет text/plain ответ
func sendText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

// sendError отправляет ошибку в формате ErrorResponse
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
