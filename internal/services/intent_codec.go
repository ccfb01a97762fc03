package services

import (
	"encoding/json"
	"fmt"

	"github.com/jmallard/brood/internal/models"
)

// The snapshot records are structured text: a JSON array for the intent
// collection and a JSON object for the profile, each independently
// loadable. Round-tripping a snapshot reproduces the collection
// field-for-field.

func EncodeIntents(intents []models.Intent) (string, error) {
	if intents == nil {
		intents = []models.Intent{}
	}
	encoded, err := json.Marshal(intents)
	if err != nil {
		return "", fmt.Errorf("encode intents: %w", err)
	}
	return string(encoded), nil
}

func DecodeIntents(blob string) ([]models.Intent, error) {
	intents := make([]models.Intent, 0)
	if err := json.Unmarshal([]byte(blob), &intents); err != nil {
		return nil, fmt.Errorf("decode intents: %w", err)
	}
	return intents, nil
}

func EncodeProfile(profile models.UserProfile) (string, error) {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return string(encoded), nil
}

func DecodeProfile(blob string) (models.UserProfile, error) {
	profile := models.UserProfile{}
	if err := json.Unmarshal([]byte(blob), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}
