// Package engine is the deterministic, rule-based classification and
// response core of the platform. Given the same text and the same rule
// table it always produces the same result: no hidden state, no randomness,
// no I/O. An Engine is safe for concurrent use; every call is an
// independent synchronous scan over its input.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

type Engine struct {
	log       *slog.Logger
	chatRules []rules.CategoryRule
	intents   []intentMatcher
	patterns  entityPatterns
	sentiment *sentimentScorer
}

// New compiles the rule table into an Engine. Compilation happens once at
// process start; the resulting engine only reads immutable state afterwards.
func New(log *slog.Logger) (*Engine, error) {
	sentiment, err := newSentimentScorer(rules.NegativeWords, rules.PositiveWords)
	if err != nil {
		return nil, fmt.Errorf("building sentiment matchers: %w", err)
	}
	return &Engine{
		log:       log,
		chatRules: rules.ChatCategories,
		intents:   compileIntentCascade(),
		patterns:  compileEntityPatterns(),
		sentiment: sentiment,
	}, nil
}

// ClassifyComplaint runs the submission-flow pipeline over already-decoded
// text (typically OCR output concatenated with the typed description) and
// returns category, urgency, responsible department, and sentiment.
// Empty or unmatched text degrades to the catch-all category with low
// urgency rather than failing.
func (e *Engine) ClassifyComplaint(text string) domain.ClassificationResult {
	lowered := strings.ToLower(strings.TrimSpace(text))

	sentiment := e.ScoreSentiment(lowered)
	category := e.classifySubmission(lowered)
	urgency := e.resolveSubmissionUrgency(lowered, sentiment)

	return domain.ClassificationResult{
		Category:   category,
		Urgency:    urgency,
		Department: departmentFor(category),
		Sentiment:  sentiment,
	}
}

// Analyze runs the chat-flow pipeline: entity extraction, intent detection,
// category scoring, and urgency resolution. Entity extraction works on the
// original text (coach letters are case-significant); everything else sees
// the lower-cased trimmed message.
func (e *Engine) Analyze(message string) domain.ChatAnalysis {
	lowered := strings.ToLower(strings.TrimSpace(message))

	entities := e.ExtractEntities(message)
	intent := e.detectIntent(lowered)
	category, confidence := e.classifyChat(lowered)
	urgency := e.resolveChatUrgency(lowered, category)

	return domain.ChatAnalysis{
		Intent:     intent,
		Category:   category,
		Urgency:    urgency,
		Entities:   entities,
		Confidence: confidence,
		Message:    message,
	}
}

// AnalyzeAndReply analyzes a chat turn and renders the structured reply.
// Any panic during analysis or synthesis is recovered into the helpline
// fallback reply: the conversational caller never sees a failure.
func (e *Engine) AnalyzeAndReply(message string) (reply domain.ChatReply) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("chat analysis failed, returning fallback reply", "cause", r)
			reply = FallbackReply()
		}
	}()
	return e.synthesize(e.Analyze(message))
}

// Reply renders a reply for an existing analysis, with the same panic
// recovery guarantee as AnalyzeAndReply. Exposed separately so the analysis
// and synthesis halves stay independently testable.
func (e *Engine) Reply(a domain.ChatAnalysis) (reply domain.ChatReply) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("reply synthesis failed, returning fallback reply", "cause", r)
			reply = FallbackReply()
		}
	}()
	return e.synthesize(a)
}

// ruleFor returns the chat rule for a category, or nil when the category has
// none (general, or a submission-only category).
func (e *Engine) ruleFor(category domain.Category) *rules.CategoryRule {
	for i := range e.chatRules {
		if e.chatRules[i].Name == category {
			return &e.chatRules[i]
		}
	}
	return nil
}
