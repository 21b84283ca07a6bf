package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/task-forge/task_forge/internal/identity"
	"github.com/task-forge/task_forge/internal/notification"
	"github.com/task-forge/task_forge/internal/schema"
)

// Handler exposes the register/login/refresh endpoints.
type Handler struct {
	ids      *identity.Service
	svc      *Service
	notifier notification.Notifier
}

// NewHandler constructs the auth HTTP handler. notifier may be nil.
func NewHandler(ids *identity.Service, svc *Service, notifier notification.Notifier) *Handler {
	return &Handler{ids: ids, svc: svc, notifier: notifier}
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register validates the request shape, creates the user and returns the
// persisted record. The password is never echoed back.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req schema.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if errs := schema.Check(req); errs != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user, err := h.ids.Register(c.UserContext(), identity.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if h.notifier != nil {
		h.notifier.UserRegistered(c.UserContext(), user.ID, user.Email)
	}

	return c.Status(http.StatusCreated).JSON(registerResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

// Login authenticates the credentials and returns an access/refresh token
// pair. An unknown email and a wrong password produce the same 401 body, so
// the response never reveals whether an account exists.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req schema.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if errs := schema.Check(req); errs != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user, ok, err := h.ids.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	pair, err := h.svc.Login(user)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh issues a new access token from a valid refresh token.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.RefreshToken == "" {
		return fiber.NewError(http.StatusBadRequest, "refresh_token is required")
	}

	access, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"access_token": access})
}
