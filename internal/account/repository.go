package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists accounts.
type Repository interface {
	Create(ctx context.Context, input RegistrationInput, passwordHash string) (Account, error)
	FindByEmail(ctx context.Context, email string) (Account, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// uniqueViolation is the Postgres code for a broken unique constraint. Two
// concurrent registrations can both pass the FindByEmail pre-check; the
// unique index on users.email guarantees at most one insert lands.
const uniqueViolation = "23505"

// Create inserts a new account row. The caller supplies the password hash;
// plaintext passwords never reach this layer.
func (r *PostgresRepository) Create(ctx context.Context, input RegistrationInput, passwordHash string) (Account, error) {
	acct := Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Height:       input.Height,
	}

	row := r.db.QueryRow(ctx, `INSERT INTO users (first_name, last_name, email, password_hash, height, is_verified)
        VALUES ($1, $2, $3, $4, $5, FALSE)
        RETURNING id, is_verified, created_at`,
		input.FirstName, input.LastName, input.Email, passwordHash, input.Height)

	if err := row.Scan(&acct.ID, &acct.IsVerified, &acct.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Account{}, ErrDuplicateEmail
		}
		return Account{}, fmt.Errorf("insert account: %w", err)
	}

	acct.CreatedAt = acct.CreatedAt.UTC()
	return acct, nil
}

// FindByEmail fetches an account by its login key.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, email, password_hash, height, is_verified, created_at
        FROM users WHERE email = $1`, email)

	var acct Account
	if err := row.Scan(&acct.ID, &acct.FirstName, &acct.LastName, &acct.Email,
		&acct.PasswordHash, &acct.Height, &acct.IsVerified, &acct.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("find account by email: %w", err)
	}

	acct.CreatedAt = acct.CreatedAt.UTC()
	return acct, nil
}
