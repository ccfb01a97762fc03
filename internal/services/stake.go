package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jmallard/brood/internal/models"
)

const (
	// PenaltyAmount is the fixed charge applied on a FINANCIAL breach.
	PenaltyAmount = 5.00

	// InternalLockDuration is how long the INTERNAL lock directive asks the
	// enforcing collaborator to hold the app shut.
	InternalLockDuration = 24 * time.Hour

	messageAppLocked = "App locked for reflection."
)

type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
}

type SocialResult struct {
	Sent        bool   `json:"sent"`
	ReferenceID string `json:"reference_id,omitempty"`
}

// LockDirective asks an external collaborator to lock the app. The stake
// engine only signals intent and duration; enforcement happens elsewhere.
type LockDirective struct {
	LockApp  bool          `json:"lock_app"`
	Duration time.Duration `json:"duration"`
	Message  string        `json:"message"`
}

// PaymentPort charges the profile's opaque payment token. The engine never
// retries a failed charge.
type PaymentPort interface {
	Charge(ctx context.Context, paymentMethod string, amount float64) (PaymentResult, error)
}

// SocialPort notifies the intent's teammate of a breach, fire-and-forget.
type SocialPort interface {
	Notify(ctx context.Context, teammateID string, word string) (SocialResult, error)
}

type PenaltyOutcome struct {
	Stake       models.Stake   `json:"stake"`
	Transaction *PaymentResult `json:"transaction,omitempty"`
	Alert       *SocialResult  `json:"alert,omitempty"`
	Lock        *LockDirective `json:"lock,omitempty"`
}

type RewardOutcome struct {
	CreditsAwarded int    `json:"credits_awarded"`
	NewCredits     int    `json:"new_credits"`
	Message        string `json:"message"`
}

type StakeEngine struct {
	payments PaymentPort
	social   SocialPort
}

func NewStakeEngine(payments PaymentPort, social SocialPort) *StakeEngine {
	return &StakeEngine{
		payments: payments,
		social:   social,
	}
}

// ApplyPenalty dispatches the consequence for a penalty-triggering verdict.
// A collaborator failure is returned alongside the partial outcome; the
// caller reports it as a warning and still commits the breach record.
func (engine *StakeEngine) ApplyPenalty(ctx context.Context, intent *models.Intent, profile *models.UserProfile) (PenaltyOutcome, error) {
	outcome := PenaltyOutcome{Stake: intent.Stake}

	switch intent.Stake {
	case models.StakeFinancial:
		transaction, err := engine.payments.Charge(ctx, profile.PaymentMethod, PenaltyAmount)
		if err != nil {
			return outcome, fmt.Errorf("%w: charge penalty: %v", ErrCollaboratorFailed, err)
		}
		outcome.Transaction = &transaction
		return outcome, nil

	case models.StakeSocial:
		alert, err := engine.social.Notify(ctx, intent.TeammateID, intent.Word)
		if err != nil {
			return outcome, fmt.Errorf("%w: social alert: %v", ErrCollaboratorFailed, err)
		}
		outcome.Alert = &alert
		return outcome, nil

	default:
		outcome.Lock = &LockDirective{
			LockApp:  true,
			Duration: InternalLockDuration,
			Message:  messageAppLocked,
		}
		return outcome, nil
	}
}

// ApplyReward computes the credit accrual for a successful check-in. ASCENT
// pays double: higher-friction roadmaps earn more. The returned balance is
// not committed here; the caller persists it through the store.
func (engine *StakeEngine) ApplyReward(intent *models.Intent, profile *models.UserProfile) RewardOutcome {
	creditValue := CreditValueForRoadmap(intent.Roadmap)
	newBalance := profile.Credits + creditValue
	return RewardOutcome{
		CreditsAwarded: creditValue,
		NewCredits:     newBalance,
		Message:        fmt.Sprintf("+%d Integrity Credits Earned", creditValue),
	}
}

func CreditValueForRoadmap(roadmap models.Roadmap) int {
	if roadmap == models.RoadmapAscent {
		return 2
	}
	return 1
}
