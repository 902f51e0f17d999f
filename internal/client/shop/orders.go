package shop

import (
	"context"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/pkg/api"
)

// OrdersAPI - часть REST клиента для заказов
type OrdersAPI interface {
	Orders(ctx context.Context, userID string) ([]api.Order, error)
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error)
	Order(ctx context.Context, id int64) (*api.Order, error)
	CompleteOrder(ctx context.Context, id int64) (*api.Order, error)
	CancelOrder(ctx context.Context, id int64) (*api.Order, error)
}

// Orders - репозиторий заказов. Жизненный цикл заказа ведет сервер.
type Orders struct {
	remote   OrdersAPI
	sessions SessionReader
}

// NewOrders создает репозиторий заказов
func NewOrders(remote OrdersAPI, sessions SessionReader) *Orders {
	return &Orders{remote: remote, sessions: sessions}
}

// List возвращает заказы пользователя
func (o *Orders) List(ctx context.Context, userID string) resource.Resource[[]api.Order] {
	list, err := o.remote.Orders(ctx, userID)
	return wrapList("Orders", list, err)
}

// ListForCurrentUser возвращает заказы пользователя из сессии
func (o *Orders) ListForCurrentUser(ctx context.Context) resource.Resource[[]api.Order] {
	userID, err := currentUserID(ctx, o.sessions)
	if err != nil {
		return fail[[]api.Order](err)
	}
	return o.List(ctx, userID)
}

// Create оформляет заказ из корзины текущего пользователя
func (o *Orders) Create(ctx context.Context, cartID, addressID int64) resource.Resource[api.Order] {
	userID, err := currentUserID(ctx, o.sessions)
	if err != nil {
		return fail[api.Order](err)
	}

	order, err := o.remote.CreateOrder(ctx, api.CreateOrderRequest{
		UserID:    userID,
		CartID:    cartID,
		AddressID: addressID,
	})
	return wrap("Order", order, err)
}

func (o *Orders) Get(ctx context.Context, id int64) resource.Resource[api.Order] {
	order, err := o.remote.Order(ctx, id)
	return wrap("Order", order, err)
}

func (o *Orders) Complete(ctx context.Context, id int64) resource.Resource[api.Order] {
	order, err := o.remote.CompleteOrder(ctx, id)
	return wrap("Order", order, err)
}

func (o *Orders) Cancel(ctx context.Context, id int64) resource.Resource[api.Order] {
	order, err := o.remote.CancelOrder(ctx, id)
	return wrap("Order", order, err)
}
