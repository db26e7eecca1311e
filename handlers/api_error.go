package handlers

import "github.com/gofiber/fiber/v2"

// apiError is the JSON error body shared by every endpoint.
func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
