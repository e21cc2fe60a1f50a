package engine

import (
	"strings"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

// resolveChatUrgency derives the chat-flow urgency tier. First hit wins:
//
//  1. any emergency-tier keyword -> emergency
//  2. any high-tier keyword -> high
//  3. category fallback (safety -> emergency, maintenance/food -> high,
//     cleanliness/staff -> medium)
//  4. low
//
// The keyword scan is independent of the classifier's confidence: a single
// emergency word forces the ceiling regardless of how weakly the category
// matched.
func (e *Engine) resolveChatUrgency(lowered string, category domain.Category) domain.Urgency {
	for _, keyword := range rules.UrgencyKeywords[domain.UrgencyEmergency] {
		if strings.Contains(lowered, keyword) {
			return domain.UrgencyEmergency
		}
	}
	for _, keyword := range rules.UrgencyKeywords[domain.UrgencyHigh] {
		if strings.Contains(lowered, keyword) {
			return domain.UrgencyHigh
		}
	}
	if tier, ok := rules.CategoryUrgency[category]; ok {
		return tier
	}
	return domain.UrgencyLow
}
