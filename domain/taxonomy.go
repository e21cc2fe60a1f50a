// Package domain contains the core concepts of the complaint platform:
// the railway-service taxonomy, complaints, and chat artifacts.
// Values are immutable once produced by the engine.
package domain

// Category is a complaint subject-matter tag driving department routing.
// The chat flow and the submission flow keep slightly different sets; both
// are listed here and the rule tables decide which ones are live per flow.
type Category string

const (
	CategoryCleanliness   Category = "cleanliness"
	CategoryMaintenance   Category = "maintenance"
	CategorySafety        Category = "safety"
	CategoryStaffBehavior Category = "staff_behavior"
	CategoryFoodCatering  Category = "food_catering"
	CategoryTicketing     Category = "ticketing"
	CategoryDamage        Category = "damage"
	CategoryElectrical    Category = "electrical"
	CategoryGeneral       Category = "general"
	CategoryOther         Category = "other"
)

// Urgency is an ordered severity tier. Emergency is the ceiling and
// short-circuits every other urgency computation.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyEmergency
)

func (u Urgency) String() string {
	switch u {
	case UrgencyEmergency:
		return "emergency"
	case UrgencyHigh:
		return "high"
	case UrgencyMedium:
		return "medium"
	default:
		return "low"
	}
}

// ParseUrgency maps a stored label back to its tier. Unknown labels fall to low.
func ParseUrgency(s string) Urgency {
	switch s {
	case "emergency":
		return UrgencyEmergency
	case "high":
		return UrgencyHigh
	case "medium":
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func (u Urgency) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Urgency) UnmarshalText(b []byte) error {
	*u = ParseUrgency(string(b))
	return nil
}

// Intent is the conversational purpose of a single chat turn.
// Intents are mutually exclusive and resolved by a fixed precedence cascade.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentComplaint Intent = "complaint"
	IntentStatus    Intent = "status"
	IntentEmergency Intent = "emergency"
	IntentThanks    Intent = "thanks"
	IntentGeneral   Intent = "general"
)

// Sentiment is a lexicon-based polarity label.
type Sentiment string

const (
	SentimentNegative Sentiment = "negative"
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
)

// EntityKind identifies a structured token extracted from free text.
type EntityKind string

const (
	EntityTrainNumber EntityKind = "train_number"
	EntityCoachNumber EntityKind = "coach_number"
	EntitySeatNumber  EntityKind = "seat_number"
	EntityPNRNumber   EntityKind = "pnr_number"
)

// Entities maps an entity kind to the first value found in the text.
// Absent keys mean "not found"; at most one value per kind.
type Entities map[EntityKind]string
