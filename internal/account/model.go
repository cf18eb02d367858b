package account

import "time"

// Account is a registered user row. PasswordHash stays inside the service
// boundary; handlers serialize only the public fields.
type Account struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Height       float64
	IsVerified   bool
	CreatedAt    time.Time
}

// RegistrationInput is a registration payload that passed validation.
type RegistrationInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Height    float64
}

// LoginInput is a login payload that passed validation.
type LoginInput struct {
	Email    string
	Password string
}
