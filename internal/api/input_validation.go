package api

import (
	"strconv"
	"strings"

	"github.com/jmallard/brood/internal/models"
	"github.com/jmallard/brood/internal/services"
)

const maxIntentDurationDays = 365

func buildNewIntentInput(input intentInput) (services.NewIntentInput, string) {
	if input.DurationDays <= 0 || input.DurationDays > maxIntentDurationDays {
		return services.NewIntentInput{}, "invalid duration"
	}

	cadence := models.Cadence(strings.ToUpper(strings.TrimSpace(input.Cadence)))
	if input.Cadence == "" {
		cadence = models.CadenceDaily
	}

	built := services.NewIntentInput{
		Word:         input.Word,
		Roadmap:      models.Roadmap(strings.ToUpper(strings.TrimSpace(input.Roadmap))),
		Stake:        models.Stake(strings.ToUpper(strings.TrimSpace(input.Stake))),
		DurationDays: input.DurationDays,
		Persona:      models.Persona(strings.ToUpper(strings.TrimSpace(input.Persona))),
		Cadence:      cadence,
		TeammateID:   input.TeammateID,
	}
	if err := services.ValidateNewIntent(built); err != nil {
		return services.NewIntentInput{}, err.Error()
	}
	if !models.ValidCadence(built.Cadence) {
		return services.NewIntentInput{}, "invalid cadence"
	}
	return built, ""
}

func buildIntentUpdate(input intentUpdateInput) services.IntentUpdate {
	update := services.IntentUpdate{
		Word:       input.Word,
		TeammateID: input.TeammateID,
	}
	if input.Roadmap != nil {
		roadmap := models.Roadmap(strings.ToUpper(strings.TrimSpace(*input.Roadmap)))
		update.Roadmap = &roadmap
	}
	if input.Stake != nil {
		stake := models.Stake(strings.ToUpper(strings.TrimSpace(*input.Stake)))
		update.Stake = &stake
	}
	if input.Persona != nil {
		persona := models.Persona(strings.ToUpper(strings.TrimSpace(*input.Persona)))
		update.Persona = &persona
	}
	if input.Cadence != nil {
		cadence := models.Cadence(strings.ToUpper(strings.TrimSpace(*input.Cadence)))
		update.Cadence = &cadence
	}
	return update
}

func buildSubmission(input checkInInput) services.CheckInSubmission {
	return services.CheckInSubmission{
		Response: strings.ToUpper(strings.TrimSpace(input.Response)),
		Proof:    coerceProofValue(input.Proof),
	}
}

// coerceProofValue accepts the shapes a JSON body can carry a numeric proof
// in. Anything unparseable is treated as absent, which the submission
// validation then rejects for LAB.
func coerceProofValue(raw any) *float64 {
	switch value := raw.(type) {
	case float64:
		return &value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}
