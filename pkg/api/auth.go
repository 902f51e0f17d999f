package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только по TLS)
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RefreshTokenRequest представляет запрос на обновление access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse представляет ответ с токенами и данными пользователя.
// Одинаковый для login, register и refresh-token.
type AuthResponse struct {
	UserID                string `json:"userId"`
	Email                 string `json:"email"`
	Role                  string `json:"role"`
	AccessToken           string `json:"accessToken"`
	RefreshToken          string `json:"refreshToken"`
	ExpirationTime        int64  `json:"expirationTime"`        // epoch millis
	RefreshExpirationTime int64  `json:"refreshExpirationTime"` // epoch millis
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
