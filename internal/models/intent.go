package models

import "time"

type Roadmap string

const (
	RoadmapAscent Roadmap = "ASCENT"
	RoadmapLab    Roadmap = "LAB"
	RoadmapFlow   Roadmap = "FLOW"
)

func ValidRoadmap(value Roadmap) bool {
	switch value {
	case RoadmapAscent, RoadmapLab, RoadmapFlow:
		return true
	default:
		return false
	}
}

type Stake string

const (
	StakeInternal  Stake = "INTERNAL"
	StakeSocial    Stake = "SOCIAL"
	StakeFinancial Stake = "FINANCIAL"
)

func ValidStake(value Stake) bool {
	switch value {
	case StakeInternal, StakeSocial, StakeFinancial:
		return true
	default:
		return false
	}
}

type Persona string

const (
	PersonaDrillSergeant Persona = "DRILL_SERGEANT"
	PersonaStoic         Persona = "STOIC"
	PersonaFriend        Persona = "FRIEND"
)

func ValidPersona(value Persona) bool {
	switch value {
	case PersonaDrillSergeant, PersonaStoic, PersonaFriend:
		return true
	default:
		return false
	}
}

type IntentStatus string

const (
	StatusIncubating IntentStatus = "INCUBATING"
	StatusHatched    IntentStatus = "HATCHED"
	StatusTabled     IntentStatus = "TABLED"
)

type Cadence string

const (
	CadenceDaily  Cadence = "DAILY"
	CadenceWeekly Cadence = "WEEKLY"
)

func ValidCadence(value Cadence) bool {
	return value == CadenceDaily || value == CadenceWeekly
}

// CheckInRecord is one entry of an intent's append-only history.
type CheckInRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Streak    int       `json:"streak"`
	Data      *float64  `json:"data,omitempty"`
	Message   string    `json:"message"`
}

// Intent is a user-declared commitment tracked through the daily
// accountability ritual. Intents live inside the store's snapshot record,
// not in their own table, so the struct carries JSON tags only.
type Intent struct {
	ID                 int64           `json:"id"`
	Word               string          `json:"word"`
	Roadmap            Roadmap         `json:"roadmap"`
	Stake              Stake           `json:"stake"`
	HatchDate          time.Time       `json:"hatch_date"`
	Status             IntentStatus    `json:"status"`
	Streak             int             `json:"streak"`
	Persona            Persona         `json:"ai_persona"`
	Cadence            Cadence         `json:"cadence"`
	TeammateID         string          `json:"teammate_id,omitempty"`
	History            []CheckInRecord `json:"history"`
	LastCheckIn        *time.Time      `json:"last_check_in,omitempty"`
	TotalCheckIns      int             `json:"total_check_ins"`
	SuccessfulCheckIns int             `json:"successful_check_ins"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (intent *Intent) Hatched() bool {
	return intent.Status == StatusHatched
}
