package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIntentIDParam(c *fiber.Ctx) (int64, error) {
	raw := strings.TrimSpace(c.Params("id"))
	return strconv.ParseInt(raw, 10, 64)
}
