// Package shop holds the remote repositories of the storefront: catalog,
// cart, orders and account. Every call returns a Resource that is either
// Success or Error.
package shop

import (
	"context"
	"errors"

	"github.com/iudanet/gophershop/internal/client/api"
	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/internal/client/storage"
)

// MsgNotSignedIn - короткое замыкание для операций текущего пользователя
const MsgNotSignedIn = "No user signed in"

// SessionReader выдает текущую сессию; реализуется session.Store
type SessionReader interface {
	Current(ctx context.Context) (storage.Session, error)
}

// wrap превращает результат вызова API в Resource.
// Пустой или нечитаемый успешный ответ становится Error("<entity> not found").
func wrap[T any](entity string, v *T, err error) resource.Resource[T] {
	if err != nil {
		if errors.Is(err, api.ErrEmptyBody) || errors.Is(err, api.ErrMalformedBody) {
			return resource.Fail[T](resource.KindEmptyBody, entity+" not found")
		}
		return api.ToResource[T](err)
	}
	if v == nil {
		return resource.Fail[T](resource.KindEmptyBody, entity+" not found")
	}
	return resource.Success(v)
}

// wrapList то же для списков
func wrapList[T any](entity string, list []T, err error) resource.Resource[[]T] {
	if err != nil {
		return wrap[[]T](entity, nil, err)
	}
	return resource.Success(&list)
}

// currentUserID читает userId из сессии. Ошибка - *resource.Error.
func currentUserID(ctx context.Context, sessions SessionReader) (string, error) {
	current, err := sessions.Current(ctx)
	if err != nil {
		return "", &resource.Error{Kind: resource.KindStorage, Message: err.Error()}
	}
	if current.UserID == "" {
		return "", &resource.Error{Kind: resource.KindPrecondition, Message: MsgNotSignedIn}
	}
	return current.UserID, nil
}

func fail[T any](err error) resource.Resource[T] {
	return resource.Fail[T](resource.KindOf(err), err.Error())
}
