package account

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

const minPasswordLength = 6

// RegisterRequest mirrors the registration JSON body. Height is declared as
// any so a non-numeric value reaches the validator and produces an error that
// names the field, instead of failing JSON decoding with a generic message.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Height    any    `json:"height"`
}

// LoginRequest mirrors the login JSON body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateRegistration checks a registration payload and stops at the first
// violated field. It has no side effects.
func ValidateRegistration(req RegisterRequest) (RegistrationInput, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return RegistrationInput{}, required("firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return RegistrationInput{}, required("lastName")
	}
	if err := validateEmail(req.Email); err != nil {
		return RegistrationInput{}, err
	}
	if req.Password == "" {
		return RegistrationInput{}, required("password")
	}
	if len(req.Password) < minPasswordLength {
		return RegistrationInput{}, &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters long", minPasswordLength),
		}
	}
	height, err := validateHeight(req.Height)
	if err != nil {
		return RegistrationInput{}, err
	}

	return RegistrationInput{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Password:  req.Password,
		Height:    height,
	}, nil
}

// ValidateLogin checks a login payload with the same first-error semantics.
func ValidateLogin(req LoginRequest) (LoginInput, error) {
	if err := validateEmail(req.Email); err != nil {
		return LoginInput{}, err
	}
	if req.Password == "" {
		return LoginInput{}, required("password")
	}
	return LoginInput{Email: req.Email, Password: req.Password}, nil
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return required("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Message: "email must be a valid email address"}
	}
	return nil
}

// validateHeight accepts JSON numbers and numeric strings (the API has always
// coerced the latter) and rejects everything else.
func validateHeight(v any) (float64, error) {
	switch h := v.(type) {
	case nil:
		return 0, required("height")
	case float64:
		return h, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return 0, &ValidationError{Field: "height", Message: "height must be a number"}
		}
		return f, nil
	default:
		return 0, &ValidationError{Field: "height", Message: "height must be a number"}
	}
}
