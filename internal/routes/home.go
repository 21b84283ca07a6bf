package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterHomeRoute adds the landing endpoint.
func RegisterHomeRoute(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"message": "Welcome to Todo Management Application!",
		})
	})
}
