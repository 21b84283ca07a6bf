package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/task-forge/task_forge/internal/task"
)

// RegisterTaskRoutes wires task endpoints. The caller is expected to pass a
// router already guarded by the JWT middleware.
func RegisterTaskRoutes(r fiber.Router, h *task.Handler) {
	group := r.Group("/tasks")
	group.Post("/", h.Create)
	group.Get("/", h.List)
}
