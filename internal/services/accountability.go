package services

import (
	"errors"
	"math"
	"strings"

	"github.com/jmallard/brood/internal/models"
)

var (
	ErrInvalidSubmission  = errors.New("invalid submission")
	ErrUnknownRoadmap     = errors.New("unrecognized roadmap")
	ErrIntentNotFound     = errors.New("intent not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrPersistenceFailed  = errors.New("persistence failed")
	ErrCollaboratorFailed = errors.New("collaborator failed")
)

const (
	ResponseYes     = "YES"
	ResponseNo      = "NO"
	ResponsePresent = "PRESENT"
)

const (
	messageAscentSuccess   = "Strength verified. Streak continues."
	messageAscentBreach    = "Breach detected. Resetting to Day 0."
	messageLabSuccess      = "Data point correlated."
	messageLabInsufficient = "Insufficient Data Input."
	messageFlowMoment      = "Moment captured."
	messageUnknownRoadmap  = "Error: Unknown Roadmap"
)

// CheckInSubmission is one day's answer. Response carries the ASCENT binary
// choice or the FLOW presence acknowledgment; Proof carries the LAB numeric
// data point.
type CheckInSubmission struct {
	Response string
	Proof    *float64
}

// Verdict is the accountability engine's pure decision about a submission.
// The engine never touches the store; committing a verdict is the caller's
// job.
type Verdict struct {
	Success         bool     `json:"success"`
	NewStreak       int      `json:"new_streak"`
	TriggersPenalty bool     `json:"triggers_penalty,omitempty"`
	DataPoint       *float64 `json:"data_point,omitempty"`
	Message         string   `json:"message"`
}

// RoadmapRule evaluates a submission against one roadmap's rule-set. Each
// roadmap has exactly one implementation, so the rule-sets stay
// independently testable.
type RoadmapRule interface {
	Evaluate(intent *models.Intent, submission CheckInSubmission) Verdict
}

func RuleForRoadmap(roadmap models.Roadmap) (RoadmapRule, bool) {
	switch roadmap {
	case models.RoadmapAscent:
		return ascentRule{}, true
	case models.RoadmapLab:
		return labRule{}, true
	case models.RoadmapFlow:
		return flowRule{}, true
	default:
		return nil, false
	}
}

// EvaluateCheckIn dispatches to the intent's roadmap rule. The unknown
// branch is unreachable through the closed enum but kept as a failure
// verdict rather than a panic.
func EvaluateCheckIn(intent *models.Intent, submission CheckInSubmission) Verdict {
	rule, ok := RuleForRoadmap(intent.Roadmap)
	if !ok {
		return Verdict{Success: false, NewStreak: intent.Streak, Message: messageUnknownRoadmap}
	}
	return rule.Evaluate(intent, submission)
}

// ValidateSubmission mirrors the pre-submit checks the check-in surface
// performs: a rejected submission never reaches the engine and never
// produces a history entry.
func ValidateSubmission(roadmap models.Roadmap, submission CheckInSubmission) error {
	switch roadmap {
	case models.RoadmapAscent:
		response := strings.TrimSpace(submission.Response)
		if response != ResponseYes && response != ResponseNo {
			return ErrInvalidSubmission
		}
		return nil
	case models.RoadmapLab:
		if submission.Proof == nil || math.IsNaN(*submission.Proof) || math.IsInf(*submission.Proof, 0) {
			return ErrInvalidSubmission
		}
		return nil
	case models.RoadmapFlow:
		if strings.TrimSpace(submission.Response) == "" {
			return ErrInvalidSubmission
		}
		return nil
	default:
		return ErrUnknownRoadmap
	}
}

// ascentRule is binary with no partial credit: YES extends the streak, NO
// resets it to zero and triggers the stake penalty.
type ascentRule struct{}

func (ascentRule) Evaluate(intent *models.Intent, submission CheckInSubmission) Verdict {
	if strings.TrimSpace(submission.Response) == ResponseYes {
		return Verdict{
			Success:   true,
			NewStreak: intent.Streak + 1,
			Message:   messageAscentSuccess,
		}
	}
	return Verdict{
		Success:         false,
		NewStreak:       0,
		TriggersPenalty: true,
		Message:         messageAscentBreach,
	}
}

// labRule is data-driven: a numeric proof counts, anything else is
// insufficient data, not a breach. Streak is untouched on failure.
type labRule struct{}

func (labRule) Evaluate(intent *models.Intent, submission CheckInSubmission) Verdict {
	if submission.Proof != nil && !math.IsNaN(*submission.Proof) && !math.IsInf(*submission.Proof, 0) {
		return Verdict{
			Success:   true,
			NewStreak: intent.Streak + 1,
			DataPoint: submission.Proof,
			Message:   messageLabSuccess,
		}
	}
	return Verdict{
		Success:   false,
		NewStreak: intent.Streak,
		Message:   messageLabInsufficient,
	}
}

// flowRule is presence-based: every acknowledged moment succeeds and the
// streak never moves.
type flowRule struct{}

func (flowRule) Evaluate(intent *models.Intent, submission CheckInSubmission) Verdict {
	return Verdict{
		Success:   true,
		NewStreak: intent.Streak,
		Message:   messageFlowMoment,
	}
}
