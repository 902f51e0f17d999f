package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/gophershop/internal/client/storage"
)

// Claims - поля access token, которые клиент умеет читать.
// Подпись не проверяется: токен проверяет сервер.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt int64 // epoch millis, 0 если нет
}

// ParseClaims decodes the payload of a JWT access token without verifying it.
// Opaque (non-JWT) tokens yield ok == false.
func ParseClaims(token string) (Claims, bool) {
	if token == "" {
		return Claims{}, false
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return Claims{}, false
	}

	var c Claims
	if sub, err := mapClaims.GetSubject(); err == nil && sub != "" {
		c.UserID = sub
	} else if id, ok := mapClaims["user_id"].(string); ok {
		c.UserID = id
	}
	if email, ok := mapClaims["email"].(string); ok {
		c.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		c.Role = role
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.UnixMilli()
	}

	return c, true
}

// fill заполняет только пустые поля сессии
func (c Claims) fill(s *storage.Session) {
	if s.UserID == "" {
		s.UserID = c.UserID
	}
	if s.Email == "" {
		s.Email = c.Email
	}
	if s.Role == "" {
		s.Role = c.Role
	}
	if s.TokenExpiration == 0 {
		s.TokenExpiration = c.ExpiresAt
	}
}
