package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

func TestClassifyChat(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name       string
		text       string
		category   domain.Category
		confidence float64
	}{
		{
			name:       "Single whole-word keyword",
			text:       "dirty",
			category:   domain.CategoryCleanliness,
			confidence: 0.2, // 1 of 10 keywords, doubled
		},
		{
			name:       "More keywords raise confidence",
			text:       "the toilet is dirty, garbage everywhere, very filthy",
			category:   domain.CategoryCleanliness,
			confidence: 0.8, // 4 of 10 keywords, doubled
		},
		{
			name:       "Confidence caps at 1",
			text:       "dirty filthy garbage trash toilet bathroom washroom unclean messy",
			category:   domain.CategoryCleanliness,
			confidence: 1.0,
		},
		{
			name:       "Substring keywords count too",
			text:       "the pantryman ignored us", // pantry matches as substring only
			category:   domain.CategoryFoodCatering,
			confidence: 2.0 / 11.0,
		},
		{
			name:       "No keyword overlap falls back to general floor",
			text:       "namaste, have a pleasant journey",
			category:   domain.CategoryGeneral,
			confidence: rules.GeneralConfidence,
		},
		{
			name:       "Empty text falls back to general floor",
			text:       "",
			category:   domain.CategoryGeneral,
			confidence: rules.GeneralConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			category, confidence := eng.classifyChat(tt.text)
			req.Equal(tt.category, category)
			req.InDelta(tt.confidence, confidence, 1e-9)
		})
	}
}

// On equal confidence the category declared earlier in the rule table wins;
// the ranking is stable, never re-sorted.
func TestClassifyChat_TieBreaksOnTableOrder(t *testing.T) {
	req := require.New(t)
	eng := newTestEngine(t)

	// "stolen" is 1 of 12 safety keywords, "rude" 1 of 8 staff keywords:
	// different ratios, staff wins. For a genuine tie use categories with
	// proportional hit counts instead.
	category, _ := eng.classifyChat("the attendant was rude and my bag was stolen")
	req.Equal(domain.CategoryStaffBehavior, category)

	// cleanliness (10 keywords) and maintenance (12 keywords): 5 cleanliness
	// hits vs 6 maintenance hits both normalize to 1.0, and cleanliness is
	// declared first.
	tie := "dirty filthy garbage trash toilet broken bulb charging socket plug damage"
	category, confidence := eng.classifyChat(tie)
	req.Equal(domain.CategoryCleanliness, category)
	req.InDelta(1.0, confidence, 1e-9)
}

// A category with no keyword hits must never outrank one with hits.
func TestClassifyChat_NonMatchingCategoriesScoreZero(t *testing.T) {
	req := require.New(t)
	eng := newTestEngine(t)

	category, confidence := eng.classifyChat("dirty")
	req.Equal(domain.CategoryCleanliness, category)
	req.Greater(confidence, 0.0)
}
