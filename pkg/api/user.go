package api

// User представляет профиль пользователя
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Addresses []Address `json:"addresses,omitempty"`
}

// Address представляет адрес доставки
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	ID         int64  `json:"id"`
}

// ForgotPasswordRequest запрашивает отправку кода сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ValidateCodeRequest проверяет код сброса пароля
type ValidateCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest устанавливает новый пароль по коду
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}
