package utils

import "github.com/gofiber/fiber/v2"

// JSONSuccess writes the {success, data} envelope used by the entity routes.
func JSONSuccess(c *fiber.Ctx, status int, payload interface{}) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": payload})
}

// JSONError writes the {success, message} envelope.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}
