package services

import (
	"time"

	"github.com/jmallard/brood/internal/models"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func SameCalendarDay(first time.Time, second time.Time, location *time.Location) bool {
	return DateAtLocation(first, location).Equal(DateAtLocation(second, location))
}

// CanCheckInToday gates check-ins to one per calendar day per intent. The
// comparison is by local calendar date, not elapsed hours: a check-in at
// 23:59 unlocks again at midnight.
func CanCheckInToday(intent *models.Intent, now time.Time, location *time.Location) bool {
	if intent.LastCheckIn == nil {
		return true
	}
	return !SameCalendarDay(*intent.LastCheckIn, now, location)
}
