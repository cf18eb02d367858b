package account

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes registration and login endpoints. It owns all mapping from
// service outcomes to HTTP status codes; error bodies never carry hashes or
// raw store errors.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs an account HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type accountResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Height     float64   `json:"height"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "request body must be valid JSON"})
	}

	input, err := ValidateRegistration(req)
	if err != nil {
		return h.fail(c, err, "registration")
	}

	if _, err := h.service.Register(c.UserContext(), input); err != nil {
		return h.fail(c, err, "registration")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "User registered successfully!"})
}

// CreateAccount handles POST /api/users/register and echoes the created
// row's public fields. It shares Register's hashing path; an earlier revision
// of this endpoint persisted the raw password, which was a defect.
func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "request body must be valid JSON"})
	}

	input, err := ValidateRegistration(req)
	if err != nil {
		return h.fail(c, err, "registration")
	}

	acct, err := h.service.Register(c.UserContext(), input)
	if err != nil {
		return h.fail(c, err, "registration")
	}

	return c.Status(http.StatusCreated).JSON(accountResponse{
		ID:         acct.ID,
		FirstName:  acct.FirstName,
		LastName:   acct.LastName,
		Email:      acct.Email,
		Height:     acct.Height,
		IsVerified: acct.IsVerified,
		CreatedAt:  acct.CreatedAt,
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "request body must be valid JSON"})
	}

	input, err := ValidateLogin(req)
	if err != nil {
		return h.fail(c, err, "login")
	}

	signed, err := h.service.Login(c.UserContext(), input)
	if err != nil {
		return h.fail(c, err, "login")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Login successful!",
		"token":   signed,
	})
}

func (h *Handler) fail(c *fiber.Ctx, err error, op string) error {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
	case errors.Is(err, ErrDuplicateEmail):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Email is already registered."})
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password."})
	default:
		h.logger.Error(op+" failed", slog.Any("error", err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred during " + op + "."})
	}
}
