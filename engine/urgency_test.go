package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rail-madad/domain"
)

func TestResolveChatUrgency(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name     string
		text     string
		category domain.Category
		expected domain.Urgency
	}{
		{"Emergency keyword is the ceiling", "theft in my compartment", domain.CategoryTicketing, domain.UrgencyEmergency},
		{"Emergency keyword beats low category", "urgent refund needed", domain.CategoryTicketing, domain.UrgencyEmergency},
		{"High keyword", "the fan stopped", domain.CategoryGeneral, domain.UrgencyHigh},
		{"Substring scan catches embedded keywords", "my coach smells", domain.CategoryGeneral, domain.UrgencyHigh}, // "ac" inside "coach"
		{"Safety category forces emergency", "something feels off", domain.CategorySafety, domain.UrgencyEmergency},
		{"Maintenance category forces high", "it rattles", domain.CategoryMaintenance, domain.UrgencyHigh},
		{"Food category forces high", "the tea was cold", domain.CategoryFoodCatering, domain.UrgencyHigh},
		{"Cleanliness category is medium", "so dirty here", domain.CategoryCleanliness, domain.UrgencyMedium},
		{"Staff category is medium", "rude attendant", domain.CategoryStaffBehavior, domain.UrgencyMedium},
		{"Default is low", "just a question", domain.CategoryGeneral, domain.UrgencyLow},
		{"Ticketing has no fallback tier", "refund question", domain.CategoryTicketing, domain.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, eng.resolveChatUrgency(tt.text, tt.category))
		})
	}
}

func TestResolveSubmissionUrgency(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name      string
		text      string
		sentiment domain.Sentiment
		expected  domain.Urgency
	}{
		{"Urgency keyword forces high", "please fix asap", domain.SentimentNeutral, domain.UrgencyHigh},
		{"Emergency word maps to high, not emergency", "emergency repair needed", domain.SentimentNegative, domain.UrgencyHigh},
		{"Negative sentiment means medium", "the seat cover is torn", domain.SentimentNegative, domain.UrgencyMedium},
		{"Neutral sentiment means low", "the seat cover is torn", domain.SentimentNeutral, domain.UrgencyLow},
		{"Positive sentiment means low", "great service overall", domain.SentimentPositive, domain.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, eng.resolveSubmissionUrgency(tt.text, tt.sentiment))
		})
	}
}
