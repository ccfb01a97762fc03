package models

type SubscriptionStatus string

const (
	SubscriptionActive          SubscriptionStatus = "ACTIVE"
	SubscriptionFreeMonthEarned SubscriptionStatus = "FREE_MONTH_EARNED"
	SubscriptionLocked          SubscriptionStatus = "LOCKED"
)

// UserProfile is the single per-installation profile. Credits only ever grow
// through successful check-ins; no spend operation exists. The subscription
// states beyond ACTIVE are recorded but have no transition logic yet.
type UserProfile struct {
	Name               string             `json:"name"`
	Credits            int                `json:"credits"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	PaymentMethod      string             `json:"payment_method"`
}

func DefaultUserProfile() UserProfile {
	return UserProfile{
		Name:               "User",
		Credits:            0,
		SubscriptionStatus: SubscriptionActive,
		PaymentMethod:      "visa_1234",
	}
}
