package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/stridetrack/stridetrack/internal/account"
	"github.com/stridetrack/stridetrack/internal/config"
	"github.com/stridetrack/stridetrack/internal/middleware"
	"github.com/stridetrack/stridetrack/internal/token"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. A nil DB falls
// back to the in-memory repository; a nil Cache disables idempotency replay.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterRootRoute(app, d.Cfg)
	RegisterHealthRoutes(app, d)

	var repo account.Repository
	if d.DB != nil {
		repo = account.NewPostgresRepository(d.DB)
	} else {
		repo = account.NewMemoryRepository()
	}

	issuer := token.NewIssuer([]byte(d.Cfg.JWTSecret), d.Cfg.TokenTTL)
	svc := account.NewService(repo, issuer, d.Logger)
	handler := account.NewHandler(svc, d.Logger)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	users := api.Group("/users")
	users.Post("/register", handler.CreateAccount)

	return nil
}
