package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/gophershop/pkg/api"
)

// User возвращает профиль пользователя
func (c *Client) User(ctx context.Context, userID string) (*api.User, error) {
	var resp api.User
	path := "/api/users/" + url.PathEscape(userID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// ForgotPassword запрашивает отправку кода сброса пароля на email
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp string
	req := api.ForgotPasswordRequest{Email: email}
	if err := c.doRequest(withoutAuth(ctx), http.MethodPost, "/api/passwords/forgot", req, &resp); err != nil {
		return "", fmt.Errorf("forgot password request failed: %w", err)
	}
	return resp, nil
}

// ValidateResetCode проверяет код сброса пароля
func (c *Client) ValidateResetCode(ctx context.Context, req api.ValidateCodeRequest) (bool, error) {
	var valid bool
	if err := c.doRequest(withoutAuth(ctx), http.MethodPost, "/api/passwords/validate-code", req, &valid); err != nil {
		return false, fmt.Errorf("validate reset code request failed: %w", err)
	}
	return valid, nil
}

// ResetPassword устанавливает новый пароль
func (c *Client) ResetPassword(ctx context.Context, req api.ResetPasswordRequest) (string, error) {
	var resp string
	if err := c.doRequest(withoutAuth(ctx), http.MethodPost, "/api/passwords/reset", req, &resp); err != nil {
		return "", fmt.Errorf("reset password request failed: %w", err)
	}
	return resp, nil
}
