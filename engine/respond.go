package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

var titleCaser = cases.Title(language.English)

// synthesize renders the reply for an analyzed chat turn. It branches
// strictly on intent, except that a resolved emergency urgency overrides
// whatever the intent said: a message classified as a complaint about a fire
// still gets the emergency answer.
func (e *Engine) synthesize(a domain.ChatAnalysis) domain.ChatReply {
	if a.Intent == domain.IntentEmergency || a.Urgency == domain.UrgencyEmergency {
		return e.emergencyReply(a)
	}
	switch a.Intent {
	case domain.IntentComplaint:
		return e.complaintReply(a)
	case domain.IntentStatus:
		return e.statusReply(a)
	case domain.IntentGreeting:
		return greetingReply()
	case domain.IntentThanks:
		return thanksReply()
	default:
		return generalReply(a)
	}
}

func (e *Engine) emergencyReply(a domain.ChatAnalysis) domain.ChatReply {
	contacts := rules.DefaultEmergencyContacts
	actions := rules.DefaultEmergencyActions
	if rule := e.ruleFor(a.Category); rule != nil {
		contacts = rule.Contacts
		actions = rule.Actions
	}

	body := strings.NewReplacer(
		"{actions}", bulleted(actions),
		"{contacts}", strings.Join(contacts, ", "),
	).Replace(rules.EmergencyTemplate)

	return domain.ChatReply{
		Response:         body,
		ResponseType:     domain.ReplyTypeEmergency,
		SuggestedActions: rules.EmergencyActions,
		UrgencyLevel:     domain.UrgencyEmergency.String(),
		Confidence:       a.Confidence,
	}
}

func (e *Engine) complaintReply(a domain.ChatAnalysis) domain.ChatReply {
	rule := e.ruleFor(a.Category)
	if rule == nil {
		// Unknown or general category: guide with the cleanliness rule,
		// the broadest of the complaint playbooks.
		rule = e.ruleFor(domain.CategoryCleanliness)
	}

	label := titleCaser.String(strings.ReplaceAll(string(a.Category), "_", " "))
	issue := truncateRunes(a.Message, 100) + entityContext(a.Entities)

	body := strings.NewReplacer(
		"{category}", label,
		"{issue}", issue,
		"{resolution}", rule.Resolution,
		"{steps}", bulleted(rule.Actions),
		"{contacts}", strings.Join(rule.Contacts, ", "),
	).Replace(rules.ComplaintTemplate)

	return domain.ChatReply{
		Response:         body,
		ResponseType:     domain.ReplyTypeComplaint,
		SuggestedActions: rules.ComplaintActions,
		UrgencyLevel:     a.Urgency.String(),
		Confidence:       a.Confidence,
	}
}

func (e *Engine) statusReply(a domain.ChatAnalysis) domain.ChatReply {
	body := rules.StatusTemplate
	if id := e.patterns.complaintID.FindString(a.Message); id != "" {
		body += "\n\nDetected Complaint ID: " + id + "\nStatus would be available via above methods."
	}

	return domain.ChatReply{
		Response:         body,
		ResponseType:     domain.ReplyTypeStatus,
		SuggestedActions: rules.StatusActions,
		UrgencyLevel:     domain.UrgencyLow.String(),
		Confidence:       rules.StatusConfidence,
	}
}

func greetingReply() domain.ChatReply {
	return domain.ChatReply{
		Response:         rules.GreetingTemplate,
		ResponseType:     domain.ReplyTypeGreeting,
		SuggestedActions: rules.GreetingActions,
		UrgencyLevel:     domain.UrgencyLow.String(),
		Confidence:       rules.GreetingConfidence,
	}
}

func thanksReply() domain.ChatReply {
	return domain.ChatReply{
		Response:         rules.ThanksTemplate,
		ResponseType:     domain.ReplyTypeGeneral,
		SuggestedActions: rules.ThanksActions,
		UrgencyLevel:     domain.UrgencyLow.String(),
		Confidence:       rules.ThanksConfidence,
	}
}

// generalReply sniffs the message for schedule, fare, and station topics in
// that priority order and answers with the matching canned response, or asks
// for more detail when nothing matches.
func generalReply(a domain.ChatAnalysis) domain.ChatReply {
	lowered := strings.ToLower(a.Message)

	topic := rules.GeneralFallback
	for _, candidate := range rules.GeneralTopics {
		if containsAny(lowered, candidate.Keywords) {
			topic = candidate
			break
		}
	}

	return domain.ChatReply{
		Response:         topic.Response,
		ResponseType:     domain.ReplyTypeGeneral,
		SuggestedActions: topic.Actions,
		UrgencyLevel:     domain.UrgencyLow.String(),
		Confidence:       rules.GeneralBranchConf,
	}
}

// FallbackReply is the hard-coded helpline answer used when analysis or
// synthesis fails. Never empty, urgency high, confidence 0.7.
func FallbackReply() domain.ChatReply {
	return domain.ChatReply{
		Response:         rules.FallbackTemplate,
		ResponseType:     domain.ReplyTypeEmergency,
		SuggestedActions: rules.FallbackActions,
		UrgencyLevel:     domain.UrgencyHigh.String(),
		Confidence:       rules.FallbackConfidence,
	}
}

// entityContext renders extracted entities as " (Train: X, Coach: Y, Seat: Z)"
// in that fixed order, skipping absent kinds. PNR is deliberately left out of
// the complaint summary line.
func entityContext(entities domain.Entities) string {
	var parts []string
	if v, ok := entities[domain.EntityTrainNumber]; ok {
		parts = append(parts, "Train: "+v)
	}
	if v, ok := entities[domain.EntityCoachNumber]; ok {
		parts = append(parts, "Coach: "+v)
	}
	if v, ok := entities[domain.EntitySeatNumber]; ok {
		parts = append(parts, "Seat: "+v)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
