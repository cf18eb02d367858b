package account

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/stridetrack/stridetrack/internal/token"
)

// bcryptCost keeps each hash around tens of milliseconds; bcrypt salts every
// hash individually.
const bcryptCost = 10

// dummyHash is compared against when the email is unknown so both login
// failure paths pay for one bcrypt verification.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("stridetrack.timing.pad"), bcryptCost)

// Service owns the credential flow: uniqueness, hashing, persistence, and
// token issuance.
type Service struct {
	repo   Repository
	tokens *token.Issuer
	logger *slog.Logger
}

// NewService creates a new account service.
func NewService(repo Repository, tokens *token.Issuer, logger *slog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// Register creates an account for a fresh email. The stored row always holds
// a bcrypt hash, never the plaintext password. A taken email surfaces as
// ErrDuplicateEmail whether the pre-check or the unique index catches it.
func (s *Service) Register(ctx context.Context, input RegistrationInput) (Account, error) {
	_, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return Account{}, ErrDuplicateEmail
	case !errors.Is(err, ErrNotFound):
		return Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return Account{}, err
	}

	acct, err := s.repo.Create(ctx, input, string(hash))
	if err != nil {
		return Account{}, err
	}

	s.logger.Info("account registered",
		slog.Int64("account_id", acct.ID),
		slog.String("email", acct.Email),
	)
	return acct, nil
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	acct, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Burn a comparison anyway so the miss is not observably faster.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info("login succeeded", slog.Int64("account_id", acct.ID))
	return signed, nil
}
