package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jmallard/brood/internal/models"
)

// NudgeTrigger describes when a recurring reminder should fire. Weekday is
// set for weekly cadences only.
type NudgeTrigger struct {
	Hour    int           `json:"hour"`
	Minute  int           `json:"minute"`
	Weekday *time.Weekday `json:"weekday,omitempty"`
	Repeats bool          `json:"repeats"`
}

type Nudge struct {
	IntentID int64        `json:"intent_id"`
	Title    string       `json:"title"`
	Body     string       `json:"body"`
	Trigger  NudgeTrigger `json:"trigger"`
}

// SchedulerPort hands a nudge to whatever actually delivers reminders.
// Delivery is not part of core correctness.
type SchedulerPort interface {
	Schedule(ctx context.Context, nudge Nudge) error
}

type NotificationService struct {
	scheduler SchedulerPort
}

func NewNotificationService(scheduler SchedulerPort) *NotificationService {
	return &NotificationService{scheduler: scheduler}
}

// BuildNudge renders the persona voice and cadence trigger for an intent.
func (service *NotificationService) BuildNudge(intent *models.Intent) Nudge {
	return Nudge{
		IntentID: intent.ID,
		Title:    fmt.Sprintf("%s Checkpoint", strings.ToUpper(intent.Word)),
		Body:     PersonaMessage(intent.Word, intent.Persona),
		Trigger:  TriggerForCadence(intent.Cadence),
	}
}

func (service *NotificationService) ScheduleNudges(ctx context.Context, intent *models.Intent) error {
	return service.scheduler.Schedule(ctx, service.BuildNudge(intent))
}

func PersonaMessage(word string, persona models.Persona) string {
	switch persona {
	case models.PersonaDrillSergeant:
		return fmt.Sprintf("Get up. It's time to prove you're disciplined about %s.", word)
	case models.PersonaFriend:
		return fmt.Sprintf("Hey! Just checking in on your %s goal. You got this!", word)
	default:
		return fmt.Sprintf("The obstacle is the way. How will you practice %s today?", word)
	}
}

func TriggerForCadence(cadence models.Cadence) NudgeTrigger {
	if cadence == models.CadenceWeekly {
		monday := time.Monday
		return NudgeTrigger{Hour: 9, Minute: 0, Weekday: &monday, Repeats: true}
	}
	return NudgeTrigger{Hour: 8, Minute: 0, Repeats: true}
}

// LoggingScheduler is the default scheduler collaborator: it only logs what
// it would have scheduled.
type LoggingScheduler struct{}

func NewLoggingScheduler() *LoggingScheduler {
	return &LoggingScheduler{}
}

func (scheduler *LoggingScheduler) Schedule(ctx context.Context, nudge Nudge) error {
	log.Printf("scheduling nudge for intent %d: %q at %02d:%02d (repeats=%v)",
		nudge.IntentID, nudge.Body, nudge.Trigger.Hour, nudge.Trigger.Minute, nudge.Trigger.Repeats)
	return nil
}
