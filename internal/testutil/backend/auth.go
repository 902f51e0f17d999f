package backend

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/gophershop/pkg/api"
)

// AddUser регистрирует пользователя напрямую, минуя HTTP. Возвращает его ID.
func (s *Server) AddUser(email, password, firstName, lastName string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addUserLocked(email, hash, firstName, lastName).ID
}

func (s *Server) addUserLocked(email string, hash []byte, firstName, lastName string) api.User {
	profile := api.User{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      "USER",
	}
	s.users[strings.ToLower(email)] = &user{profile: profile, passwordHash: hash}
	return profile
}

// SetAccessTokenTTL меняет срок жизни выдаваемых access token
func (s *Server) SetAccessTokenTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jwt.AccessTokenTTL = ttl
}

// login обрабатывает POST /api/auth/login
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	u, ok := s.users[strings.ToLower(req.Email)]
	s.mu.Unlock()

	// Не раскрываем, существует ли пользователь
	if !ok || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
		sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	s.sendTokens(w, http.StatusOK, u.profile)
}

// register обрабатывает POST /api/auth/register
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		sendError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		sendError(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	_, exists := s.users[strings.ToLower(req.Email)]
	var profile api.User
	if !exists {
		profile = s.addUserLocked(req.Email, hash, req.FirstName, req.LastName)
	}
	s.mu.Unlock()

	if exists {
		sendError(w, "user already exists", http.StatusConflict)
		return
	}

	s.sendTokens(w, http.StatusCreated, profile)
}

// refreshToken обрабатывает POST /api/auth/refresh-token.
// Refresh token одноразовый: после обмена старый удаляется.
func (s *Server) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req api.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	email, ok := s.refresh[req.RefreshToken]
	delete(s.refresh, req.RefreshToken)
	var profile api.User
	if ok {
		profile = s.users[email].profile
	}
	s.mu.Unlock()

	if !ok {
		sendError(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	s.sendTokens(w, http.StatusOK, profile)
}

// validate обрабатывает POST /api/auth/validate: тело - токен JSON строкой
func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var token string
	if err := json.NewDecoder(r.Body).Decode(&token); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	cfg := s.jwt
	s.mu.Unlock()

	_, err := validateAccessToken(cfg, token)
	sendJSON(w, http.StatusOK, err == nil)
}

func (s *Server) sendTokens(w http.ResponseWriter, status int, profile api.User) {
	s.mu.Lock()
	cfg := s.jwt
	s.mu.Unlock()

	accessToken, accessExp, err := generateAccessToken(cfg, profile.ID, profile.Email, profile.Role)
	if err != nil {
		sendError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, refreshExp, err := generateRefreshToken(cfg)
	if err != nil {
		sendError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.refresh[refreshToken] = strings.ToLower(profile.Email)
	s.mu.Unlock()

	sendJSON(w, status, api.AuthResponse{
		UserID:                profile.ID,
		Email:                 profile.Email,
		Role:                  profile.Role,
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		ExpirationTime:        accessExp.UnixMilli(),
		RefreshExpirationTime: refreshExp.UnixMilli(),
	})
}

// forgotPassword обрабатывает POST /api/passwords/forgot
func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sendText(w, http.StatusOK, "Password reset code sent to "+req.Email)
}

// validateCode обрабатывает POST /api/passwords/validate-code
func (s *Server) validateCode(w http.ResponseWriter, r *http.Request) {
	var req api.ValidateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sendJSON(w, http.StatusOK, req.Code == ResetCode)
}

// resetPassword обрабатывает POST /api/passwords/reset
func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Code != ResetCode {
		sendError(w, "invalid reset code", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.MinCost)
	if err != nil {
		sendError(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	u, ok := s.users[strings.ToLower(req.Email)]
	if ok {
		u.passwordHash = hash
	}
	s.mu.Unlock()

	if !ok {
		sendError(w, "user not found", http.StatusNotFound)
		return
	}

	sendText(w, http.StatusOK, "Password has been reset")
}
