package engine

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"

	"rail-madad/domain"
)

// sentimentScorer counts lexicon hits with an Aho-Corasick automaton per
// polarity. The automata scan the whole message once instead of running one
// substring search per lexicon word; each lexicon word still counts at most
// once, matching plain containment semantics.
type sentimentScorer struct {
	negative *goahocorasick.Machine
	positive *goahocorasick.Machine
}

func newSentimentScorer(negativeWords, positiveWords []string) (*sentimentScorer, error) {
	negative, err := buildMatcher(negativeWords)
	if err != nil {
		return nil, err
	}
	positive, err := buildMatcher(positiveWords)
	if err != nil {
		return nil, err
	}
	return &sentimentScorer{negative: negative, positive: positive}, nil
}

func buildMatcher(words []string) (*goahocorasick.Machine, error) {
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = []rune(strings.ToLower(word))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// distinctHits returns how many distinct lexicon words occur in the text.
func distinctHits(m *goahocorasick.Machine, lowered []rune) int {
	terms := m.MultiPatternSearch(lowered, false)
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		seen[string(term.Word)] = struct{}{}
	}
	return len(seen)
}

// ScoreSentiment classifies polarity by strict lexicon majority:
// more negative hits than positive ones means negative, the reverse means
// positive, and a tie (including no hits at all) is neutral. There is no
// partial-credit weighting.
func (e *Engine) ScoreSentiment(text string) domain.Sentiment {
	lowered := []rune(strings.ToLower(text))
	negatives := distinctHits(e.sentiment.negative, lowered)
	positives := distinctHits(e.sentiment.positive, lowered)

	switch {
	case negatives > positives:
		return domain.SentimentNegative
	case positives > negatives:
		return domain.SentimentPositive
	default:
		return domain.SentimentNeutral
	}
}
