package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmallard/brood/internal/models"
)

func newCheckInServiceForTest(t *testing.T, payments PaymentPort, social SocialPort) (*CheckInService, *IntentStore) {
	t.Helper()

	store, _ := newStoreForTest(t)
	engine := NewStakeEngine(payments, social)
	return NewCheckInService(store, engine, time.UTC), store
}

func TestSubmitCheckInAscentScenario(t *testing.T) {
	social := &stubSocialPort{result: SocialResult{Sent: true}}
	service, store := newCheckInServiceForTest(t, &stubPaymentPort{}, social)

	dayZero := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	intent := addIntentForTest(t, store, defaultIntentInput(), dayZero)

	if intent.Status != models.StatusIncubating || intent.Streak != 0 {
		t.Fatalf("expected fresh INCUBATING intent, got %+v", intent)
	}

	// Day 1: YES.
	dayOne := dayZero.AddDate(0, 0, 1)
	result, err := service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Response: ResponseYes}, dayOne)
	if err != nil {
		t.Fatalf("day 1 check-in: %v", err)
	}
	if result.Intent.Streak != 1 || result.Intent.TotalCheckIns != 1 || result.Intent.SuccessfulCheckIns != 1 {
		t.Fatalf("expected 1/1/1 after YES, got %d/%d/%d", result.Intent.Streak, result.Intent.TotalCheckIns, result.Intent.SuccessfulCheckIns)
	}
	if result.Reward == nil || result.Reward.CreditsAwarded != 2 {
		t.Fatalf("expected +2 credits for ASCENT, got %+v", result.Reward)
	}
	if store.Profile().Credits != 2 {
		t.Fatalf("expected committed credits 2, got %d", store.Profile().Credits)
	}

	// Same day again: rejected by the gate before evaluation.
	if _, err := service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Response: ResponseYes}, dayOne.Add(time.Hour)); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
	}

	// Day 2: NO → breach, penalty to the social collaborator.
	dayTwo := dayZero.AddDate(0, 0, 2)
	result, err = service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Response: ResponseNo}, dayTwo)
	if err != nil {
		t.Fatalf("day 2 check-in: %v", err)
	}
	if result.Intent.Streak != 0 || result.Intent.TotalCheckIns != 2 || result.Intent.SuccessfulCheckIns != 1 {
		t.Fatalf("expected 0/2/1 after NO, got %d/%d/%d", result.Intent.Streak, result.Intent.TotalCheckIns, result.Intent.SuccessfulCheckIns)
	}
	if !social.notified {
		t.Fatal("expected breach dispatched to social collaborator")
	}
	if result.Penalty == nil || result.Penalty.Alert == nil || !result.Penalty.Alert.Sent {
		t.Fatalf("expected social penalty outcome, got %+v", result.Penalty)
	}
	if store.Profile().Credits != 2 {
		t.Fatalf("expected credits untouched by breach, got %d", store.Profile().Credits)
	}
}

func TestSubmitCheckInLabRejectsNonNumericProofPreCommit(t *testing.T) {
	service, store := newCheckInServiceForTest(t, &stubPaymentPort{}, &stubSocialPort{})

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	input := defaultIntentInput()
	input.Roadmap = models.RoadmapLab
	intent := addIntentForTest(t, store, input, now)

	// "abc" parses to no proof value at the transport layer; the service
	// receives a submission without a numeric proof and rejects it before
	// any commit.
	_, err := service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Response: "abc"}, now.AddDate(0, 0, 1))
	if !errors.Is(err, ErrInvalidSubmission) {
		t.Fatalf("expected ErrInvalidSubmission, got %v", err)
	}

	current, _ := store.GetIntent(intent.ID)
	if current.TotalCheckIns != 0 || current.Streak != 0 || len(current.History) != 0 {
		t.Fatalf("rejected submission must not move state, got %+v", current)
	}
	if current.LastCheckIn != nil {
		t.Fatal("rejected submission must not consume the daily slot")
	}
}

func TestSubmitCheckInLabSuccessAwardsOneCredit(t *testing.T) {
	service, store := newCheckInServiceForTest(t, &stubPaymentPort{}, &stubSocialPort{})

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	input := defaultIntentInput()
	input.Roadmap = models.RoadmapLab
	intent := addIntentForTest(t, store, input, now)

	result, err := service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Proof: floatPtr(50)}, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("lab check-in: %v", err)
	}
	if result.Reward == nil || result.Reward.CreditsAwarded != 1 {
		t.Fatalf("expected +1 credit for LAB, got %+v", result.Reward)
	}
	if len(result.Intent.History) != 1 || result.Intent.History[0].Data == nil || *result.Intent.History[0].Data != 50 {
		t.Fatalf("expected data point recorded in history, got %+v", result.Intent.History)
	}
}

func TestSubmitCheckInFlowKeepsStreakInvariant(t *testing.T) {
	service, store := newCheckInServiceForTest(t, &stubPaymentPort{}, &stubSocialPort{})

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	input := defaultIntentInput()
	input.Roadmap = models.RoadmapFlow
	intent := addIntentForTest(t, store, input, now)

	for day := 1; day <= 4; day++ {
		result, err := service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Response: ResponsePresent}, now.AddDate(0, 0, day))
		if err != nil {
			t.Fatalf("day %d flow check-in: %v", day, err)
		}
		if result.Intent.Streak != 0 {
			t.Fatalf("expected streak invariant at 0, got %d", result.Intent.Streak)
		}
		if result.Intent.TotalCheckIns != day {
			t.Fatalf("expected %d moments, got %d", day, result.Intent.TotalCheckIns)
		}
		if result.Reward == nil || result.Reward.CreditsAwarded != 1 {
			t.Fatalf("expected +1 credit per moment, got %+v", result.Reward)
		}
	}
}

func TestSubmitCheckInCollaboratorFailureStillCommitsBreach(t *testing.T) {
	payments := &stubPaymentPort{err: errors.New("gateway unreachable")}
	service, store := newCheckInServiceForTest(t, payments, &stubSocialPort{})

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	input := defaultIntentInput()
	input.Stake = models.StakeFinancial
	intent := addIntentForTest(t, store, input, now)

	result, err := service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Response: ResponseNo}, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("expected commit despite collaborator failure, got %v", err)
	}
	if result.CollaboratorWarning == "" {
		t.Fatal("expected a collaborator warning")
	}
	if result.Intent.TotalCheckIns != 1 || result.Intent.Streak != 0 {
		t.Fatalf("expected breach recorded, got %+v", result.Intent)
	}
}

func TestSubmitCheckInUnknownIntent(t *testing.T) {
	service, _ := newCheckInServiceForTest(t, &stubPaymentPort{}, &stubSocialPort{})

	_, err := service.SubmitCheckIn(context.Background(), 404, CheckInSubmission{Response: ResponseYes}, time.Now())
	if !errors.Is(err, ErrIntentNotFound) {
		t.Fatalf("expected ErrIntentNotFound, got %v", err)
	}
}

func TestCanCheckInTodayService(t *testing.T) {
	service, store := newCheckInServiceForTest(t, &stubPaymentPort{}, &stubSocialPort{})

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	intent := addIntentForTest(t, store, defaultIntentInput(), now)

	allowed, err := service.CanCheckInToday(intent.ID, now)
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if !allowed {
		t.Fatal("expected fresh intent to be eligible")
	}

	if _, err := service.SubmitCheckIn(context.Background(), intent.ID, CheckInSubmission{Response: ResponseYes}, now); err != nil {
		t.Fatalf("check-in: %v", err)
	}

	allowed, err = service.CanCheckInToday(intent.ID, now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if allowed {
		t.Fatal("expected same-day eligibility to be denied")
	}

	allowed, err = service.CanCheckInToday(intent.ID, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if !allowed {
		t.Fatal("expected next-day eligibility")
	}
}
