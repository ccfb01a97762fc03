package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(handler.store.Profile())
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile := handler.store.Profile()
	if name := strings.TrimSpace(input.Name); name != "" {
		profile.Name = name
	}
	if method := strings.TrimSpace(input.PaymentMethod); method != "" {
		profile.PaymentMethod = method
	}

	if err := handler.store.SaveProfile(profile); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return c.JSON(profile)
}
