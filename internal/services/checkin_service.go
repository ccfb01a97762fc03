package services

import (
	"context"
	"time"

	"github.com/jmallard/brood/internal/models"
)

// CheckInResult is everything one submitted check-in produced: the recorded
// intent state, the verdict, the consequence, and any non-fatal collaborator
// warning. The warning never reverts the recorded verdict.
type CheckInResult struct {
	Intent              models.Intent
	Verdict             Verdict
	Reward              *RewardOutcome
	Penalty             *PenaltyOutcome
	CollaboratorWarning string
}

// CheckInService runs the daily ritual end to end: eligibility gate,
// submission validation, accountability evaluation, consequence dispatch,
// store commit.
type CheckInService struct {
	store    *IntentStore
	stakes   *StakeEngine
	location *time.Location
}

func NewCheckInService(store *IntentStore, stakes *StakeEngine, location *time.Location) *CheckInService {
	return &CheckInService{
		store:    store,
		stakes:   stakes,
		location: location,
	}
}

func (service *CheckInService) CanCheckInToday(intentID int64, now time.Time) (bool, error) {
	intent, found := service.store.GetIntent(intentID)
	if !found {
		return false, ErrIntentNotFound
	}
	return CanCheckInToday(&intent, now, service.location), nil
}

func (service *CheckInService) SubmitCheckIn(ctx context.Context, intentID int64, submission CheckInSubmission, now time.Time) (CheckInResult, error) {
	intent, found := service.store.GetIntent(intentID)
	if !found {
		return CheckInResult{}, ErrIntentNotFound
	}

	if !CanCheckInToday(&intent, now, service.location) {
		return CheckInResult{}, ErrAlreadyCheckedIn
	}

	// Validation happens before anything is committed: a malformed
	// submission produces no history entry and no counter movement.
	if err := ValidateSubmission(intent.Roadmap, submission); err != nil {
		return CheckInResult{}, err
	}

	verdict := EvaluateCheckIn(&intent, submission)
	profile := service.store.Profile()

	result := CheckInResult{Verdict: verdict}
	var reward *RewardOutcome

	if verdict.Success {
		rewardOutcome := service.stakes.ApplyReward(&intent, &profile)
		reward = &rewardOutcome
		result.Reward = reward
	} else if verdict.TriggersPenalty {
		penaltyOutcome, err := service.stakes.ApplyPenalty(ctx, &intent, &profile)
		result.Penalty = &penaltyOutcome
		if err != nil {
			// The consequence delivery failed; the breach still counts.
			result.CollaboratorWarning = err.Error()
		}
	}

	recorded, err := service.store.RecordCheckIn(intentID, verdict, reward, now)
	if err != nil {
		return CheckInResult{}, err
	}
	result.Intent = recorded
	return result, nil
}
