package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/gophershop/pkg/api"
)

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(withoutAuth(ctx), http.MethodPost, "/api/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(withoutAuth(ctx), http.MethodPost, "/api/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// RefreshToken обменивает refresh token на новую пару токенов
func (c *Client) RefreshToken(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(withoutAuth(ctx), http.MethodPost, "/api/auth/refresh-token", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh token request failed: %w", err)
	}
	return &resp, nil
}

// ValidateToken проверяет access token на сервере.
// Тело запроса - сам токен JSON строкой, ответ - boolean.
func (c *Client) ValidateToken(ctx context.Context, accessToken string) (bool, error) {
	var valid bool
	err := c.doRequest(withoutAuth(ctx), http.MethodPost, "/api/auth/validate", accessToken, &valid)
	if err != nil {
		return false, fmt.Errorf("validate token request failed: %w", err)
	}
	return valid, nil
}
