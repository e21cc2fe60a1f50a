package engine

import (
	"regexp"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

// intentMatcher is one step of the precedence cascade.
type intentMatcher struct {
	intent domain.Intent
	re     *regexp.Regexp
}

func compileIntentCascade() []intentMatcher {
	cascade := make([]intentMatcher, 0, len(rules.IntentCascade))
	for _, p := range rules.IntentCascade {
		cascade = append(cascade, intentMatcher{intent: p.Intent, re: regexp.MustCompile(p.Pattern)})
	}
	return cascade
}

// detectIntent classifies a lower-cased chat turn into exactly one intent.
// The cascade is evaluated in declared order and returns on the first match,
// so an emergency keyword always beats a greeting or complaint keyword in
// the same message. No match means general.
func (e *Engine) detectIntent(lowered string) domain.Intent {
	for _, m := range e.intents {
		if m.re.MatchString(lowered) {
			return m.intent
		}
	}
	return domain.IntentGeneral
}
