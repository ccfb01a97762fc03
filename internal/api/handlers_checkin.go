package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmallard/brood/internal/services"
)

func (handler *Handler) SubmitCheckIn(c *fiber.Ctx) error {
	intentID, err := parseIntentIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid intent id")
	}

	input := checkInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.checkIns.SubmitCheckIn(c.Context(), intentID, buildSubmission(input), time.Now().In(handler.location))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIntentNotFound):
			return apiError(c, fiber.StatusNotFound, "intent not found")
		case errors.Is(err, services.ErrAlreadyCheckedIn):
			return apiError(c, fiber.StatusConflict, "already checked in today")
		case errors.Is(err, services.ErrInvalidSubmission), errors.Is(err, services.ErrUnknownRoadmap):
			return apiError(c, fiber.StatusBadRequest, "invalid submission")
		case errors.Is(err, services.ErrPersistenceFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to save check-in")
		default:
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	payload := fiber.Map{
		"intent":  result.Intent,
		"verdict": result.Verdict,
	}
	if result.Reward != nil {
		payload["reward"] = result.Reward
	}
	if result.Penalty != nil {
		payload["penalty"] = result.Penalty
	}
	if result.CollaboratorWarning != "" {
		payload["warning"] = result.CollaboratorWarning
	}
	return c.JSON(payload)
}

func (handler *Handler) CheckInEligibility(c *fiber.Ctx) error {
	intentID, err := parseIntentIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid intent id")
	}

	eligible, err := handler.checkIns.CanCheckInToday(intentID, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrIntentNotFound) {
			return apiError(c, fiber.StatusNotFound, "intent not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate eligibility")
	}
	return c.JSON(fiber.Map{"eligible": eligible})
}
