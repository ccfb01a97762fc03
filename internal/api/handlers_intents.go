package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmallard/brood/internal/services"
)

func (handler *Handler) ListIntents(c *fiber.Ctx) error {
	return c.JSON(handler.store.ListIntents())
}

func (handler *Handler) CreateIntent(c *fiber.Ctx) error {
	input := intentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	built, validationError := buildNewIntentInput(input)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	intent, err := handler.store.AddIntent(built, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrPersistenceFailed) {
			return apiError(c, fiber.StatusInternalServerError, "failed to save intent")
		}
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	// Reminder scheduling is best effort; the intent exists either way.
	if err := handler.notifications.ScheduleNudges(c.Context(), &intent); err != nil {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"intent":  intent,
			"warning": "reminder scheduling failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"intent": intent})
}

func (handler *Handler) GetIntent(c *fiber.Ctx) error {
	intentID, err := parseIntentIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid intent id")
	}

	intent, found := handler.store.GetIntent(intentID)
	if !found {
		return apiError(c, fiber.StatusNotFound, "intent not found")
	}
	return c.JSON(intent)
}

func (handler *Handler) UpdateIntent(c *fiber.Ctx) error {
	intentID, err := parseIntentIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid intent id")
	}

	input := intentUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	intent, err := handler.store.UpdateIntent(intentID, buildIntentUpdate(input))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIntentNotFound):
			return apiError(c, fiber.StatusNotFound, "intent not found")
		case errors.Is(err, services.ErrIntentLocked):
			return apiError(c, fiber.StatusConflict, "roadmap and stake are locked while incubating")
		case errors.Is(err, services.ErrPersistenceFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to save intent")
		default:
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(intent)
}

func (handler *Handler) DeleteIntent(c *fiber.Ctx) error {
	intentID, err := parseIntentIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid intent id")
	}

	if err := handler.store.DeleteIntent(intentID); err != nil {
		if errors.Is(err, services.ErrIntentNotFound) {
			return apiError(c, fiber.StatusNotFound, "intent not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete intent")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) HatchIntent(c *fiber.Ctx) error {
	intentID, err := parseIntentIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid intent id")
	}

	intent, err := handler.store.HatchIntent(intentID, time.Now().In(handler.location))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIntentNotFound):
			return apiError(c, fiber.StatusNotFound, "intent not found")
		case errors.Is(err, services.ErrNotReadyToHatch):
			return apiError(c, fiber.StatusConflict, "intent not ready to hatch")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to hatch intent")
		}
	}
	return c.JSON(intent)
}

func (handler *Handler) PreviewNudge(c *fiber.Ctx) error {
	intentID, err := parseIntentIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid intent id")
	}

	intent, found := handler.store.GetIntent(intentID)
	if !found {
		return apiError(c, fiber.StatusNotFound, "intent not found")
	}
	return c.JSON(handler.notifications.BuildNudge(&intent))
}
