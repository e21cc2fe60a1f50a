package engine

import (
	"strings"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

// The submission flow runs its own, simpler policies over its own rule
// table. They are kept separate from the chat policies on purpose: the two
// taxonomies overlap but do not agree (damage/electrical vs maintenance),
// and merging them would change observed routing.

// classifySubmission scans the submission categories in declared order and
// returns the first one with any keyword contained in the text. No scoring,
// no confidence; no hit at all routes to the catch-all category.
func (e *Engine) classifySubmission(lowered string) domain.Category {
	for _, rule := range rules.SubmissionCategories {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Name
			}
		}
	}
	return domain.CategoryOther
}

// resolveSubmissionUrgency is the two-rule submission policy: an urgency
// keyword forces high, otherwise negative sentiment means medium, otherwise
// low. Unlike the chat policy it can never return emergency.
func (e *Engine) resolveSubmissionUrgency(lowered string, sentiment domain.Sentiment) domain.Urgency {
	for _, keyword := range rules.SubmissionUrgencyKeywords {
		if strings.Contains(lowered, keyword) {
			return domain.UrgencyHigh
		}
	}
	if sentiment == domain.SentimentNegative {
		return domain.UrgencyMedium
	}
	return domain.UrgencyLow
}

// departmentFor routes a submission category to its department.
func departmentFor(category domain.Category) string {
	if department, ok := rules.DepartmentMap[category]; ok {
		return department
	}
	return rules.FallbackDepartment
}
