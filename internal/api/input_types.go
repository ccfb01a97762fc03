package api

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type intentInput struct {
	Word         string `json:"word"`
	Roadmap      string `json:"roadmap"`
	Stake        string `json:"stake"`
	DurationDays int    `json:"duration_days"`
	Persona      string `json:"persona"`
	Cadence      string `json:"cadence"`
	TeammateID   string `json:"teammate_id"`
}

type intentUpdateInput struct {
	Word       *string `json:"word"`
	Roadmap    *string `json:"roadmap"`
	Stake      *string `json:"stake"`
	Persona    *string `json:"persona"`
	Cadence    *string `json:"cadence"`
	TeammateID *string `json:"teammate_id"`
}

// checkInInput carries one submission. Proof stays loosely typed so the
// handler can coerce both JSON numbers and numeric strings the way the
// check-in form would; whatever fails coercion is simply no proof.
type checkInInput struct {
	Response string `json:"response"`
	Proof    any    `json:"proof"`
}

type profileInput struct {
	Name          string `json:"name"`
	PaymentMethod string `json:"payment_method"`
}
