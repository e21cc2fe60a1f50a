package engine

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"rail-madad/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(logs.GetLoggerFromLevel(slog.LevelError))
	require.NoError(t, err)
	return eng
}

func TestEngine_Determinism(t *testing.T) {
	req := require.New(t)
	eng := newTestEngine(t)

	inputs := []string{
		"The toilet in coach B2 of train 12345 is dirty and broken",
		"hello, this is an emergency, theft on board",
		"what is the status of 123456",
		"thanks a lot for the quick response",
		"",
	}

	for _, input := range inputs {
		first := eng.AnalyzeAndReply(input)
		firstClassification := eng.ClassifyComplaint(input)
		for i := 0; i < 5; i++ {
			req.Equal(first, eng.AnalyzeAndReply(input), "chat reply drifted for %q", input)
			req.Equal(firstClassification, eng.ClassifyComplaint(input), "classification drifted for %q", input)
		}
	}
}

func TestEngine_ClassifyComplaint(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name       string
		text       string
		category   domain.Category
		urgency    domain.Urgency
		department string
		sentiment  domain.Sentiment
	}{
		{
			name:       "Dirty coach routes to housekeeping",
			text:       "The washroom is dirty and the smell is terrible",
			category:   domain.CategoryCleanliness,
			urgency:    domain.UrgencyMedium, // negative sentiment, no urgency keyword
			department: "Housekeeping",
			sentiment:  domain.SentimentNegative,
		},
		{
			name:       "Urgency keyword forces high",
			text:       "The window is cracked, please fix it urgent",
			category:   domain.CategoryDamage,
			urgency:    domain.UrgencyHigh,
			department: "Maintenance",
			sentiment:  domain.SentimentNeutral,
		},
		{
			name:       "Safety hazard",
			text:       "There is an open hazard near the door, very unsafe",
			category:   domain.CategorySafety,
			urgency:    domain.UrgencyLow, // no urgency keyword, neutral sentiment
			department: "Safety Department",
			sentiment:  domain.SentimentNeutral,
		},
		{
			name:       "No keyword overlap falls back to other",
			text:       "I would like details about luggage allowance",
			category:   domain.CategoryOther,
			urgency:    domain.UrgencyLow,
			department: "General Administration",
			sentiment:  domain.SentimentNeutral,
		},
		{
			name:       "Submission path never reaches emergency",
			text:       "emergency in my wagon",
			category:   domain.CategorySafety,
			urgency:    domain.UrgencyHigh,
			department: "Safety Department",
			sentiment:  domain.SentimentNeutral,
		},
		{
			name:       "Empty text degrades gracefully",
			text:       "   ",
			category:   domain.CategoryOther,
			urgency:    domain.UrgencyLow,
			department: "General Administration",
			sentiment:  domain.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := eng.ClassifyComplaint(tt.text)
			req.Equal(tt.category, result.Category)
			req.Equal(tt.urgency, result.Urgency)
			req.Equal(tt.department, result.Department)
			req.Equal(tt.sentiment, result.Sentiment)
		})
	}
}

func TestEngine_Analyze_ComposesAllComponents(t *testing.T) {
	req := require.New(t)
	eng := newTestEngine(t)

	analysis := eng.Analyze("Complaint: the AC is broken in train 12345 coach B2 seat 45")

	req.Equal(domain.IntentComplaint, analysis.Intent)
	req.Equal(domain.CategoryMaintenance, analysis.Category)
	req.Equal(domain.UrgencyHigh, analysis.Urgency)
	req.Equal("12345", analysis.Entities[domain.EntityTrainNumber])
	req.Equal("B2", analysis.Entities[domain.EntityCoachNumber])
	req.Equal("45", analysis.Entities[domain.EntitySeatNumber])
	req.Greater(analysis.Confidence, 0.0)
}
