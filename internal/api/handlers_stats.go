package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	return c.JSON(handler.store.AggregateStats())
}
