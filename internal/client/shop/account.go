package shop

import (
	"context"
	"errors"

	"github.com/iudanet/gophershop/internal/client/api"
	"github.com/iudanet/gophershop/internal/client/resource"
	pkgapi "github.com/iudanet/gophershop/pkg/api"
)

// AccountAPI - часть REST клиента для профиля и сброса пароля
type AccountAPI interface {
	User(ctx context.Context, userID string) (*pkgapi.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ValidateResetCode(ctx context.Context, req pkgapi.ValidateCodeRequest) (bool, error)
	ResetPassword(ctx context.Context, req pkgapi.ResetPasswordRequest) (string, error)
}

// Account - репозиторий профиля пользователя и сброса пароля
type Account struct {
	remote   AccountAPI
	sessions SessionReader
}

// NewAccount создает репозиторий профиля
func NewAccount(remote AccountAPI, sessions SessionReader) *Account {
	return &Account{remote: remote, sessions: sessions}
}

// GetUser возвращает профиль пользователя
func (a *Account) GetUser(ctx context.Context, userID string) resource.Resource[pkgapi.User] {
	user, err := a.remote.User(ctx, userID)
	return wrap("User", user, err)
}

// CurrentUser возвращает профиль пользователя из сессии
func (a *Account) CurrentUser(ctx context.Context) resource.Resource[pkgapi.User] {
	userID, err := currentUserID(ctx, a.sessions)
	if err != nil {
		return fail[pkgapi.User](err)
	}
	return a.GetUser(ctx, userID)
}

// UpdateUser is not supported yet and makes no network call
func (a *Account) UpdateUser(ctx context.Context, user pkgapi.User) resource.Resource[pkgapi.User] {
	return resource.Fail[pkgapi.User](resource.KindNotSupported, "Updating the user profile is not yet supported")
}

// AddAddress is not supported yet and makes no network call
func (a *Account) AddAddress(ctx context.Context, userID string, address pkgapi.Address) resource.Resource[pkgapi.Address] {
	return resource.Fail[pkgapi.Address](resource.KindNotSupported, "Adding an address is not yet supported")
}

// UpdateAddress is not supported yet and makes no network call
func (a *Account) UpdateAddress(ctx context.Context, userID string, address pkgapi.Address) resource.Resource[pkgapi.Address] {
	return resource.Fail[pkgapi.Address](resource.KindNotSupported, "Updating an address is not yet supported")
}

// ForgotPassword запрашивает код сброса. Успех - текст ответа сервера.
func (a *Account) ForgotPassword(ctx context.Context, email string) resource.Resource[string] {
	msg, err := a.remote.ForgotPassword(ctx, email)
	return plain("Failed to send reset code", msg, err)
}

// ValidateResetCode проверяет код сброса
func (a *Account) ValidateResetCode(ctx context.Context, email, code string) resource.Resource[bool] {
	valid, err := a.remote.ValidateResetCode(ctx, pkgapi.ValidateCodeRequest{Email: email, Code: code})
	return plain("Failed to validate reset code", valid, err)
}

// ResetPassword устанавливает новый пароль по коду
func (a *Account) ResetPassword(ctx context.Context, email, code, newPassword string) resource.Resource[string] {
	msg, err := a.remote.ResetPassword(ctx, pkgapi.ResetPasswordRequest{
		Email:       email,
		Code:        code,
		NewPassword: newPassword,
	})
	return plain("Failed to reset password", msg, err)
}

// plain оборачивает скалярный ответ; пустое тело дает fallback сообщение
func plain[T any](fallback string, v T, err error) resource.Resource[T] {
	if err != nil {
		if errors.Is(err, api.ErrEmptyBody) || errors.Is(err, api.ErrMalformedBody) {
			return resource.Fail[T](resource.KindEmptyBody, fallback)
		}
		return api.ToResource[T](err)
	}
	return resource.Success(&v)
}
