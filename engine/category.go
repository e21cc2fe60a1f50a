package engine

import (
	"strings"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

// categoryScore keeps the per-category scan result. The raw score carries
// the whole-word bonus and is surfaced in debug logs; ranking itself uses
// the normalized confidence.
type categoryScore struct {
	category   domain.Category
	score      int
	matched    int
	confidence float64
}

// classifyChat scores lower-cased text against every chat category and
// returns the best category with its confidence in [0,1].
//
// Scoring: each keyword contained in the text adds 1, plus 1 more when it
// occurs as a space-delimited whole word. The text is padded with a leading
// and trailing space first so a keyword at the very start or end of the
// message still counts as a whole word. Confidence is
// min(1, matched/total*2) over distinct matched keywords.
//
// The strictly highest confidence wins; on a tie the category declared
// earlier in the rule table keeps the slot. When nothing scores above zero
// the classifier falls back to the general category with a fixed floor
// confidence.
func (e *Engine) classifyChat(lowered string) (domain.Category, float64) {
	padded := " " + lowered + " "

	best := categoryScore{category: domain.CategoryGeneral, confidence: 0}
	for _, rule := range e.chatRules {
		cs := categoryScore{category: rule.Name}
		for _, keyword := range rule.Keywords {
			if !strings.Contains(lowered, keyword) {
				continue
			}
			cs.matched++
			if strings.Contains(padded, " "+keyword+" ") {
				cs.score += 2
			} else {
				cs.score++
			}
		}
		if len(rule.Keywords) > 0 {
			cs.confidence = min(1.0, float64(cs.matched)/float64(len(rule.Keywords))*2)
		}
		if cs.confidence > best.confidence {
			best = cs
		}
	}

	if best.confidence == 0 {
		return domain.CategoryGeneral, rules.GeneralConfidence
	}

	e.log.Debug("category scored",
		"category", best.category,
		"score", best.score,
		"matched", best.matched,
		"confidence", best.confidence)
	return best.category, best.confidence
}
