package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/task-forge/task_forge/internal/auth"
	"github.com/task-forge/task_forge/internal/config"
	"github.com/task-forge/task_forge/internal/identity"
	"github.com/task-forge/task_forge/internal/middleware"
	"github.com/task-forge/task_forge/internal/notification"
	"github.com/task-forge/task_forge/internal/task"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Outside development the repositories must be real; the in-memory
	// fallbacks exist for tests and local hacking only.
	if d.Cfg.AppEnv == config.EnvProduction && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	RegisterHomeRoute(app)
	RegisterHealthRoutes(app, d)

	issuer, err := auth.NewIssuer(d.Cfg)
	if err != nil {
		return err
	}

	var userRepo identity.Repository
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
	}
	identitySvc := identity.NewService(userRepo)
	authSvc := auth.NewService(issuer)
	notifier := notification.NewLoggerNotifier(d.Logger)
	authHandler := auth.NewHandler(identitySvc, authSvc, notifier)

	var taskRepo task.Repository
	if d.DB != nil {
		taskRepo = task.NewPostgresRepository(d.DB)
	} else {
		taskRepo = task.NewMemoryRepository()
	}
	taskSvc := task.NewService(taskRepo)
	taskHandler := task.NewHandler(taskSvc)

	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(app, authHandler, rateLimiter)

	jwtmw := middleware.JWTAuth(issuer)
	protected := app.Group("", jwtmw)
	protected.Get("/me", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		email, _ := c.Locals("email").(string)
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authenticated user")
		}
		return c.JSON(fiber.Map{"user_id": uid, "email": email})
	})
	RegisterTaskRoutes(protected, taskHandler)

	return nil
}
