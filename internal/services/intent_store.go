package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/jmallard/brood/internal/models"
)

const (
	RecordKeyIntents = "intents"
	RecordKeyProfile = "profile"
)

var (
	ErrEmptyWord      = errors.New("intent word must not be empty")
	ErrInvalidRoadmap = errors.New("invalid roadmap")
	ErrInvalidStake   = errors.New("invalid stake")
	ErrInvalidPersona = errors.New("invalid persona")
	ErrInvalidCadence = errors.New("invalid cadence")
	ErrIntentLocked   = errors.New("roadmap and stake are locked while incubating")
)

// RecordPersistence is the opaque durable store the snapshot records live
// in. Absence is not an error.
type RecordPersistence interface {
	Load(key string) (string, bool, error)
	Save(key string, value string) error
}

type NewIntentInput struct {
	Word         string
	Roadmap      models.Roadmap
	Stake        models.Stake
	DurationDays int
	Persona      models.Persona
	Cadence      models.Cadence
	TeammateID   string
}

type IntentUpdate struct {
	Word       *string
	Roadmap    *models.Roadmap
	Stake      *models.Stake
	Persona    *models.Persona
	Cadence    *models.Cadence
	TeammateID *string
}

type AggregateStats struct {
	TotalIntents  int     `json:"total_intents"`
	TotalCheckIns int     `json:"total_check_ins"`
	SuccessRate   float64 `json:"success_rate"`
	LongestStreak int     `json:"longest_streak"`
	Credits       int     `json:"credits"`
}

// IntentStore owns the in-memory intent collection and profile and is their
// sole writer. Every mutation serializes a fresh snapshot and saves it
// before the in-memory state is replaced, so memory never diverges from
// durable state: a failed save leaves both untouched.
type IntentStore struct {
	mu      sync.RWMutex
	records RecordPersistence
	intents []models.Intent
	profile models.UserProfile
}

func NewIntentStore(records RecordPersistence) (*IntentStore, error) {
	store := &IntentStore{
		records: records,
		intents: []models.Intent{},
		profile: models.DefaultUserProfile(),
	}

	intentsBlob, found, err := records.Load(RecordKeyIntents)
	if err != nil {
		return nil, fmt.Errorf("%w: load intents: %v", ErrPersistenceFailed, err)
	}
	if found {
		intents, err := DecodeIntents(intentsBlob)
		if err != nil {
			return nil, err
		}
		store.intents = intents
	}

	profileBlob, found, err := records.Load(RecordKeyProfile)
	if err != nil {
		return nil, fmt.Errorf("%w: load profile: %v", ErrPersistenceFailed, err)
	}
	if found {
		profile, err := DecodeProfile(profileBlob)
		if err != nil {
			return nil, err
		}
		store.profile = profile
	}

	return store, nil
}

func ValidateNewIntent(input NewIntentInput) error {
	if strings.TrimSpace(input.Word) == "" {
		return ErrEmptyWord
	}
	if !models.ValidRoadmap(input.Roadmap) {
		return ErrInvalidRoadmap
	}
	if !models.ValidStake(input.Stake) {
		return ErrInvalidStake
	}
	if !models.ValidPersona(input.Persona) {
		return ErrInvalidPersona
	}
	return nil
}

func (store *IntentStore) AddIntent(input NewIntentInput, now time.Time) (models.Intent, error) {
	if err := ValidateNewIntent(input); err != nil {
		return models.Intent{}, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	cadence := input.Cadence
	if !models.ValidCadence(cadence) {
		cadence = models.CadenceDaily
	}

	intent := models.Intent{
		ID:         NewIntentID(now, store.idTakenLocked),
		Word:       strings.TrimSpace(input.Word),
		Roadmap:    input.Roadmap,
		Stake:      input.Stake,
		HatchDate:  HatchDateFor(now, input.DurationDays),
		Status:     models.StatusIncubating,
		Streak:     0,
		Persona:    input.Persona,
		Cadence:    cadence,
		TeammateID: strings.TrimSpace(input.TeammateID),
		History:    []models.CheckInRecord{},
		CreatedAt:  now,
	}

	next := append(store.copyIntentsLocked(), intent)
	if err := store.persistIntentsLocked(next); err != nil {
		return models.Intent{}, err
	}
	return intent, nil
}

func (store *IntentStore) GetIntent(intentID int64) (models.Intent, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for index := range store.intents {
		if store.intents[index].ID == intentID {
			return cloneIntent(store.intents[index]), true
		}
	}
	return models.Intent{}, false
}

func (store *IntentStore) ListIntents() []models.Intent {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.copyIntentsLocked()
}

// RecordCheckIn commits an evaluated verdict: appends the history entry,
// moves the streak and counters, and, when a reward outcome accompanies the
// verdict, persists the new credit balance. The intent record is written
// even when consequence delivery failed upstream.
func (store *IntentStore) RecordCheckIn(intentID int64, verdict Verdict, reward *RewardOutcome, at time.Time) (models.Intent, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.copyIntentsLocked()
	position := indexOfIntent(next, intentID)
	if position < 0 {
		return models.Intent{}, ErrIntentNotFound
	}

	entry := models.CheckInRecord{
		Timestamp: at,
		Success:   verdict.Success,
		Streak:    verdict.NewStreak,
		Data:      verdict.DataPoint,
		Message:   verdict.Message,
	}

	intent := &next[position]
	intent.Streak = verdict.NewStreak
	intent.History = append(intent.History, entry)
	checkInAt := at
	intent.LastCheckIn = &checkInAt
	intent.TotalCheckIns++
	if verdict.Success {
		intent.SuccessfulCheckIns++
	}

	if err := store.persistIntentsLocked(next); err != nil {
		return models.Intent{}, err
	}

	if reward != nil {
		newProfile := store.profile
		newProfile.Credits = reward.NewCredits
		if err := store.persistProfileLocked(newProfile); err != nil {
			return models.Intent{}, err
		}
	}

	return cloneIntent(next[position]), nil
}

func (store *IntentStore) UpdateIntent(intentID int64, update IntentUpdate) (models.Intent, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.copyIntentsLocked()
	position := indexOfIntent(next, intentID)
	if position < 0 {
		return models.Intent{}, ErrIntentNotFound
	}

	intent := &next[position]
	if update.Roadmap != nil || update.Stake != nil {
		if !RoadmapAndStakeMutable(intent) {
			return models.Intent{}, ErrIntentLocked
		}
	}
	if update.Word != nil {
		word := strings.TrimSpace(*update.Word)
		if word == "" {
			return models.Intent{}, ErrEmptyWord
		}
		intent.Word = word
	}
	if update.Roadmap != nil {
		if !models.ValidRoadmap(*update.Roadmap) {
			return models.Intent{}, ErrInvalidRoadmap
		}
		intent.Roadmap = *update.Roadmap
	}
	if update.Stake != nil {
		if !models.ValidStake(*update.Stake) {
			return models.Intent{}, ErrInvalidStake
		}
		intent.Stake = *update.Stake
	}
	if update.Persona != nil {
		if !models.ValidPersona(*update.Persona) {
			return models.Intent{}, ErrInvalidPersona
		}
		intent.Persona = *update.Persona
	}
	if update.Cadence != nil {
		if !models.ValidCadence(*update.Cadence) {
			return models.Intent{}, ErrInvalidCadence
		}
		intent.Cadence = *update.Cadence
	}
	if update.TeammateID != nil {
		intent.TeammateID = strings.TrimSpace(*update.TeammateID)
	}

	if err := store.persistIntentsLocked(next); err != nil {
		return models.Intent{}, err
	}
	return cloneIntent(next[position]), nil
}

func (store *IntentStore) DeleteIntent(intentID int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.copyIntentsLocked()
	position := indexOfIntent(next, intentID)
	if position < 0 {
		return ErrIntentNotFound
	}

	next = append(next[:position], next[position+1:]...)
	return store.persistIntentsLocked(next)
}

// HatchIntent performs the explicit, idempotent maturation transition.
func (store *IntentStore) HatchIntent(intentID int64, now time.Time) (models.Intent, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.copyIntentsLocked()
	position := indexOfIntent(next, intentID)
	if position < 0 {
		return models.Intent{}, ErrIntentNotFound
	}

	changed, err := ApplyHatch(&next[position], now)
	if err != nil {
		return models.Intent{}, err
	}
	if changed {
		if err := store.persistIntentsLocked(next); err != nil {
			return models.Intent{}, err
		}
	}
	return cloneIntent(next[position]), nil
}

func (store *IntentStore) Profile() models.UserProfile {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.profile
}

func (store *IntentStore) SaveProfile(profile models.UserProfile) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.persistProfileLocked(profile)
}

func (store *IntentStore) AggregateStats() AggregateStats {
	store.mu.RLock()
	defer store.mu.RUnlock()

	stats := AggregateStats{
		TotalIntents: len(store.intents),
		Credits:      store.profile.Credits,
	}

	successful := 0
	for index := range store.intents {
		stats.TotalCheckIns += store.intents[index].TotalCheckIns
		successful += store.intents[index].SuccessfulCheckIns
		if store.intents[index].Streak > stats.LongestStreak {
			stats.LongestStreak = store.intents[index].Streak
		}
	}

	if stats.TotalCheckIns > 0 {
		rate := float64(successful) / float64(stats.TotalCheckIns) * 100
		stats.SuccessRate = math.Round(rate*10) / 10
	}
	return stats
}

func (store *IntentStore) persistIntentsLocked(next []models.Intent) error {
	blob, err := EncodeIntents(next)
	if err != nil {
		return err
	}
	if err := store.records.Save(RecordKeyIntents, blob); err != nil {
		return fmt.Errorf("%w: save intents: %v", ErrPersistenceFailed, err)
	}
	store.intents = next
	return nil
}

func (store *IntentStore) persistProfileLocked(next models.UserProfile) error {
	blob, err := EncodeProfile(next)
	if err != nil {
		return err
	}
	if err := store.records.Save(RecordKeyProfile, blob); err != nil {
		return fmt.Errorf("%w: save profile: %v", ErrPersistenceFailed, err)
	}
	store.profile = next
	return nil
}

func (store *IntentStore) idTakenLocked(candidate int64) bool {
	return indexOfIntent(store.intents, candidate) >= 0
}

func (store *IntentStore) copyIntentsLocked() []models.Intent {
	copied := make([]models.Intent, len(store.intents))
	for index := range store.intents {
		copied[index] = cloneIntent(store.intents[index])
	}
	return copied
}

func indexOfIntent(intents []models.Intent, intentID int64) int {
	for index := range intents {
		if intents[index].ID == intentID {
			return index
		}
	}
	return -1
}

func cloneIntent(intent models.Intent) models.Intent {
	cloned := intent
	cloned.History = make([]models.CheckInRecord, len(intent.History))
	copy(cloned.History, intent.History)
	if intent.LastCheckIn != nil {
		checkInAt := *intent.LastCheckIn
		cloned.LastCheckIn = &checkInAt
	}
	return cloned
}
