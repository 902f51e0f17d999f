// Package auth выполняет login, регистрацию, обновление и проверку токенов
// и держит сессию устройства в синхронизации с ответами сервера.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	clientapi "github.com/iudanet/gophershop/internal/client/api"
	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/internal/client/storage"
	"github.com/iudanet/gophershop/pkg/api"
)

// Сообщения коротких замыканий без сетевого вызова
const (
	MsgNoRefreshToken = "No refresh token available"
	MsgNoAccessToken  = "No access token available"
)

// Service предоставляет функции авторизации.
// Every operation returns Success or Error, never a bare error.
type Service struct {
	remote   Remote
	sessions SessionStore
	logger   zerolog.Logger
}

// NewService создает новый сервис авторизации
func NewService(remote Remote, sessions SessionStore, logger zerolog.Logger) *Service {
	return &Service{
		remote:   remote,
		sessions: sessions,
		logger:   logger,
	}
}

// Login выполняет вход и сохраняет сессию до возврата результата
func (s *Service) Login(ctx context.Context, email, password string) resource.Resource[api.AuthResponse] {
	resp, err := s.remote.Login(ctx, api.LoginRequest{Email: email, Password: password})
	return s.establish(ctx, "login", resp, err)
}

// Register регистрирует пользователя и сохраняет сессию до возврата результата
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) resource.Resource[api.AuthResponse] {
	resp, err := s.remote.Register(ctx, req)
	return s.establish(ctx, "register", resp, err)
}

// RefreshToken обменивает сохраненный refresh token на новую пару токенов.
// Без refresh token сразу возвращает ошибку, не обращаясь к сети.
func (s *Service) RefreshToken(ctx context.Context) resource.Resource[api.AuthResponse] {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		return resource.FromError[api.AuthResponse](resource.KindStorage, err)
	}
	if current.RefreshToken == "" {
		return resource.Fail[api.AuthResponse](resource.KindPrecondition, MsgNoRefreshToken)
	}

	resp, err := s.remote.RefreshToken(ctx, api.RefreshTokenRequest{RefreshToken: current.RefreshToken})
	if err == nil && resp != nil {
		// Сервер может не вернуть новый refresh token - продолжаем использовать текущий
		if resp.RefreshToken == "" {
			resp.RefreshToken = current.RefreshToken
			if resp.RefreshExpirationTime == 0 {
				resp.RefreshExpirationTime = current.RefreshExpiration
			}
		}
		if resp.UserID == "" && resp.Email == "" {
			resp.UserID, resp.Email, resp.Role = current.UserID, current.Email, current.Role
		}
	}

	return s.establish(ctx, "refresh", resp, err)
}

// ValidateToken проверяет сохраненный access token на сервере.
// Без access token сразу возвращает ошибку, не обращаясь к сети.
func (s *Service) ValidateToken(ctx context.Context) resource.Resource[bool] {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		return resource.FromError[bool](resource.KindStorage, err)
	}
	if current.AccessToken == "" {
		return resource.Fail[bool](resource.KindPrecondition, MsgNoAccessToken)
	}

	valid, err := s.remote.ValidateToken(ctx, current.AccessToken)
	if err != nil {
		if isEmptyBody(err) {
			return resource.Success[bool](nil)
		}
		s.logger.Warn().Err(err).Msg("token validation failed")
		return clientapi.ToResource[bool](err)
	}

	return resource.Success(&valid)
}

// Logout очищает локальную сессию. Сервер не уведомляется.
func (s *Service) Logout(ctx context.Context) resource.Resource[struct{}] {
	if err := s.sessions.Clear(ctx); err != nil {
		return resource.FromError[struct{}](resource.KindStorage, err)
	}

	s.logger.Info().Msg("logged out")
	return resource.Success(&struct{}{})
}

// establish превращает ответ login/register/refresh в Resource.
// Успешный ответ сначала записывается в сессию, и только потом возвращается.
func (s *Service) establish(ctx context.Context, op string, resp *api.AuthResponse, err error) resource.Resource[api.AuthResponse] {
	if err != nil {
		if isEmptyBody(err) {
			// 2xx без пригодного тела: Success(nil), сессия не меняется
			s.logger.Warn().Str("op", op).Msg("auth response has no body")
			return resource.Success[api.AuthResponse](nil)
		}
		s.logger.Warn().Err(err).Str("op", op).Msg("auth request failed")
		return clientapi.ToResource[api.AuthResponse](err)
	}
	if resp == nil {
		return resource.Success[api.AuthResponse](nil)
	}

	session := sessionFromResponse(resp)
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("op", op).Msg("failed to persist session")
		return resource.FailWith(resource.KindStorage, fmt.Sprintf("failed to save session: %v", err), resp)
	}

	s.logger.Info().Str("op", op).Str("user_id", session.UserID).Msg("session established")
	return resource.Success(resp)
}

// Status reports the device state. An expired access token keeps the
// device Authenticated-but-Expired until refresh or logout.
func (s *Service) Status(ctx context.Context) (Status, error) {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		return StatusUnknown, fmt.Errorf("failed to read session: %w", err)
	}
	if current.AccessToken == "" {
		return StatusUnauthenticated, nil
	}

	valid, err := s.sessions.IsTokenValid(ctx)
	if err != nil {
		return StatusUnknown, fmt.Errorf("failed to check token: %w", err)
	}
	if !valid {
		return StatusExpired, nil
	}

	return StatusAuthenticated, nil
}

func isEmptyBody(err error) bool {
	return errors.Is(err, clientapi.ErrEmptyBody) || errors.Is(err, clientapi.ErrMalformedBody)
}

// sessionFromResponse собирает запись сессии из ответа сервера,
// дополняя отсутствующие поля claims из access token
func sessionFromResponse(resp *api.AuthResponse) storage.Session {
	session := storage.Session{
		AccessToken:       resp.AccessToken,
		RefreshToken:      resp.RefreshToken,
		UserID:            resp.UserID,
		Email:             resp.Email,
		Role:              resp.Role,
		TokenExpiration:   resp.ExpirationTime,
		RefreshExpiration: resp.RefreshExpirationTime,
	}

	if claims, ok := ParseClaims(resp.AccessToken); ok {
		claims.fill(&session)
	}

	return session
}
