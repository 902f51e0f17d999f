// Package validation проверяет ввод пользователя в CLI до отправки на сервер.
// Workflow и репозитории сами ничего не валидируют.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLen минимальная длина пароля при регистрации и сбросе
	MinPasswordLen = 8
	// MaxNameLen максимальная длина имени и фамилии
	MaxNameLen = 64
)

// ResetCodePattern - код сброса пароля из 6 цифр
var ResetCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidateEmail проверяет, что email имеет вид local@domain
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	// mail.ParseAddress допускает домен без точки
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
// Минимум 8 символов
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateName проверяет имя или фамилию
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}

// ValidateResetCode проверяет формат кода сброса пароля
func ValidateResetCode(code string) error {
	if !ResetCodePattern.MatchString(code) {
		return fmt.Errorf("reset code must be exactly 6 digits")
	}
	return nil
}
