package services

import (
	"errors"
	"time"

	"github.com/jmallard/brood/internal/models"
)

var ErrNotReadyToHatch = errors.New("intent not ready to hatch")

// NewIntentID assigns creation-time millisecond ids, nudging forward past
// any id already taken so ids stay unique within the store.
func NewIntentID(now time.Time, taken func(int64) bool) int64 {
	id := now.UnixMilli()
	for taken(id) {
		id++
	}
	return id
}

func HatchDateFor(now time.Time, durationDays int) time.Time {
	return now.Add(time.Duration(durationDays) * 24 * time.Hour)
}

// ReadyToHatch reports whether the incubation period has elapsed. Hatching
// itself stays an explicit user action; nothing hatches automatically.
func ReadyToHatch(intent *models.Intent, now time.Time) bool {
	return !now.Before(intent.HatchDate)
}

// ApplyHatch performs the INCUBATING → HATCHED transition in place.
// Re-hatching an already hatched intent is a no-op.
func ApplyHatch(intent *models.Intent, now time.Time) (bool, error) {
	if intent.Hatched() {
		return false, nil
	}
	if !ReadyToHatch(intent, now) {
		return false, ErrNotReadyToHatch
	}
	intent.Status = models.StatusHatched
	return true, nil
}

// RoadmapAndStakeMutable reports whether the update operation may change the
// intent's roadmap or stake. Both are locked for the whole incubation.
func RoadmapAndStakeMutable(intent *models.Intent) bool {
	return intent.Hatched()
}
