package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const (
	minPasswordLen    = 8
	maxPasswordLen    = 72 // bcrypt input limit
	maxEmailLen       = 254
	maxDisplayNameLen = 100
	maxTokenLen       = 512
)

// RegisterInput holds parameters for email + password sign-up.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	errs := validateEmail(nil, i.Email)
	errs = validatePassword(errs, "password", i.Password)

	if i.DisplayName == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	} else if utf8.RuneCountInString(i.DisplayName) > maxDisplayNameLen {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for email + password sign-in.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input. Password strength is not checked here.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	if err := validateToken("refresh_token", i.RefreshToken); err != nil {
		return &domain.ValidationError{Errors: []domain.FieldError{*err}}
	}
	return nil
}

// PasswordResetRequestInput holds the e-mail a reset link is sent to.
type PasswordResetRequestInput struct {
	Email string
}

func (i PasswordResetRequestInput) Validate() error {
	if errs := validateEmail(nil, i.Email); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds a reset token and the new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError
	if err := validateToken("token", i.Token); err != nil {
		errs = append(errs, *err)
	}
	errs = validatePassword(errs, "new_password", i.NewPassword)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func validatePassword(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(password) < minPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(password) > maxPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func validateToken(field, token string) *domain.FieldError {
	switch {
	case token == "":
		return &domain.FieldError{Field: field, Message: "required"}
	case len(token) > maxTokenLen:
		return &domain.FieldError{Field: field, Message: "too long"}
	}
	return nil
}
