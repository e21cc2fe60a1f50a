// Package rules holds the static, versioned rule table the engine evaluates
// against: category keyword sets, urgency tiers, intent patterns, entity
// patterns, sentiment lexicons, and response templates.
//
// The tables are plain declarations built once at init and never mutated, so
// any number of concurrent callers may read them without synchronization.
// Iteration order is significant everywhere: slices, not maps, carry the
// declared precedence.
package rules

import "rail-madad/domain"

// Version identifies the rule-table revision. Bump whenever any keyword set,
// template, or precedence changes, so stored classifications can be traced
// back to the table that produced them.
const Version = "2024.1"

// CategoryRule describes one chat-flow complaint category: how to recognise
// it and how to guide the traveller once it is recognised.
type CategoryRule struct {
	Name       domain.Category
	Keywords   []string
	Resolution string // free-form expected resolution window
	Contacts   []string
	Department string
	Actions    []string
}

// ChatCategories is the chat-flow rule table. Declaration order is the
// tie-break order of the classifier: on equal confidence the earlier
// category wins.
var ChatCategories = []CategoryRule{
	{
		Name:       domain.CategoryCleanliness,
		Keywords:   []string{"dirty", "clean", "filthy", "garbage", "trash", "toilet", "bathroom", "washroom", "unclean", "messy"},
		Resolution: "2-6 hours",
		Contacts:   []string{"Coach Attendant", "TTE", "Housekeeping Staff", "139"},
		Department: "Housekeeping",
		Actions:    []string{"Take photos", "Inform coach attendant", "Contact TTE"},
	},
	{
		Name:       domain.CategoryMaintenance,
		Keywords:   []string{"broken", "not working", "ac", "fan", "light", "bulb", "charging", "socket", "plug", "damage", "repair", "fix"},
		Resolution: "4-12 hours",
		Contacts:   []string{"TTE", "Maintenance Staff", "138", "Station Master"},
		Department: "Maintenance",
		Actions:    []string{"Report to TTE immediately", "Provide seat number", "Request temporary solution"},
	},
	{
		Name:       domain.CategorySafety,
		Keywords:   []string{"theft", "stolen", "harassment", "fight", "accident", "medical", "emergency", "fire", "smoke", "danger", "unsafe", "security"},
		Resolution: "IMMEDIATE",
		Contacts:   []string{"RPF 182", "139", "Coach Attendant", "TTE", "108"},
		Department: "Security",
		Actions:    []string{"Call RPF 182 immediately", "Alert authorities", "Stay safe"},
	},
	{
		Name:       domain.CategoryStaffBehavior,
		Keywords:   []string{"rude", "unhelpful", "staff", "behavior", "attitude", "impolite", "arrogant", "ignoring"},
		Resolution: "24 hours",
		Contacts:   []string{"TTE", "Station Master", "138", "Senior Supervisor 1072"},
		Department: "Service Quality",
		Actions:    []string{"Note staff details", "Report to higher authority", "Record incident time"},
	},
	{
		Name:       domain.CategoryFoodCatering,
		Keywords:   []string{"food", "water", "catering", "quality", "price", "overpriced", "hygiene", "pantry", "meal", "tea", "coffee"},
		Resolution: "Immediate to 2 hours",
		Contacts:   []string{"Pantry Manager", "TTE", "138"},
		Department: "Catering",
		Actions:    []string{"Contact pantry manager", "Check rates", "Request replacement"},
	},
	{
		Name:       domain.CategoryTicketing,
		Keywords:   []string{"ticket", "pnr", "reservation", "refund", "chart", "waitlist", "confirmed", "booking"},
		Resolution: "24-72 hours",
		Contacts:   []string{"139", "Reservation Counter", "TTE"},
		Department: "Commercial",
		Actions:    []string{"Contact 139", "Visit reservation counter", "Check online status"},
	},
}

// ChatCategory returns the chat rule for a category, or nil when the
// category has no chat rule (general, or a submission-only category).
func ChatCategory(name domain.Category) *CategoryRule {
	for i := range ChatCategories {
		if ChatCategories[i].Name == name {
			return &ChatCategories[i]
		}
	}
	return nil
}

// GeneralConfidence is the fixed floor returned by the chat classifier when
// no category keyword matches at all.
const GeneralConfidence = 0.3

// Urgency keyword tiers, scanned in descending severity. Only the emergency
// and high tiers decide on their own; medium and low fall out of the
// category mapping below. The full table is kept because it is the product
// team's reference list and the viewer surfaces it.
var UrgencyKeywords = map[domain.Urgency][]string{
	domain.UrgencyEmergency: {"emergency", "help", "urgent", "theft", "harassment", "accident", "medical", "fire", "fight", "danger"},
	domain.UrgencyHigh:      {"broken", "not working", "ac", "fan", "light", "toilet", "damage", "security"},
	domain.UrgencyMedium:    {"dirty", "clean", "rude", "staff", "food", "quality", "price", "behavior"},
	domain.UrgencyLow:       {"information", "query", "general", "hello", "hi", "thanks"},
}

// CategoryUrgency is the category-based fallback applied when no emergency
// or high keyword fired.
var CategoryUrgency = map[domain.Category]domain.Urgency{
	domain.CategorySafety:        domain.UrgencyEmergency,
	domain.CategoryMaintenance:   domain.UrgencyHigh,
	domain.CategoryFoodCatering:  domain.UrgencyHigh,
	domain.CategoryCleanliness:   domain.UrgencyMedium,
	domain.CategoryStaffBehavior: domain.UrgencyMedium,
}

// IntentPattern pairs an intent with its word-boundary alternation.
// IntentCascade order is a strict precedence contract: evaluation returns on
// the first match so an emergency is never masked by a coincidental greeting
// or complaint keyword in the same message.
type IntentPattern struct {
	Intent  domain.Intent
	Pattern string
}

var IntentCascade = []IntentPattern{
	{domain.IntentEmergency, `\b(emergency|urgent|theft|harassment|accident|medical|fire|danger|help)\b`},
	{domain.IntentComplaint, `\b(complaint|problem|issue|broken|dirty|not working|help with)\b`},
	{domain.IntentStatus, `\b(status|update|progress|complaint id|track|check)\b`},
	{domain.IntentGreeting, `\b(hello|hi|hey|namaste|good morning|good afternoon|good evening)\b`},
	{domain.IntentThanks, `\b(thanks|thank you|appreciate|grateful)\b`},
}

// Entity extraction patterns. The seat pattern is intentionally permissive
// and can collide with train/PNR digit spans elsewhere in the message; the
// extractor does not exclude overlapping spans. Flagged for product
// clarification, kept as-is until then.
const (
	TrainNumberPattern = `\b\d{5}\b`
	CoachNumberPattern = `\b[ABCDES][1-9]\b` // applied to the upper-cased text
	SeatNumberPattern  = `\b\d{1,3}\b`       // first match only, accepted when 1 <= n <= 100
	PNRNumberPattern   = `\b\d{10}\b`
	ComplaintIDPattern = `\b\d{5,}\b` // bare id sniffed out of status questions
)

// Sentiment lexicons. Hits are counted once per lexicon word, by
// case-insensitive substring containment; the strict majority wins and a tie
// (including zero-zero) is neutral.
var (
	NegativeWords = []string{"bad", "poor", "terrible", "awful", "horrible", "broken", "dirty", "not working"}
	PositiveWords = []string{"good", "great", "excellent", "clean", "working", "nice", "thank"}
)
