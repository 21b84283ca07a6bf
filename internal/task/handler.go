package task

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes task HTTP endpoints. All routes sit behind the JWT guard,
// which stores the authenticated user id in locals.
type Handler struct {
	service *Service
}

// NewHandler builds a task HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Create stores a new task owned by the authenticated user.
func (h *Handler) Create(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing authenticated user")
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.Create(c.UserContext(), CreateInput{Title: req.Title, Description: req.Description, UserID: uid})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(render(t))
}

// List returns the authenticated user's tasks.
func (h *Handler) List(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing authenticated user")
	}

	tasks, err := h.service.ListByUser(c.UserContext(), uid)
	if err != nil {
		return err
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, render(t))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"tasks": out})
}

func render(t Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
	}
}
