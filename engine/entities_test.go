package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rail-madad/domain"
)

func TestExtractEntities(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name     string
		text     string
		expected domain.Entities
	}{
		{
			name: "All four kinds",
			text: "Train 12345 Coach B2 Seat 45 PNR 1234567890",
			expected: domain.Entities{
				domain.EntityTrainNumber: "12345",
				domain.EntityCoachNumber: "B2",
				domain.EntitySeatNumber:  "45",
				domain.EntityPNRNumber:   "1234567890",
			},
		},
		{
			name: "Lower-case coach letter still matches",
			text: "coach s4, seat 12",
			expected: domain.Entities{
				domain.EntityCoachNumber: "S4",
				domain.EntitySeatNumber:  "12",
			},
		},
		{
			name: "First standalone digit run out of seat range drops the seat",
			text: "seat 500 in coach B2",
			expected: domain.Entities{
				domain.EntityCoachNumber: "B2",
			},
		},
		{
			name: "Digits embedded in longer runs never read as seats",
			text: "PNR 1234567890",
			expected: domain.Entities{
				domain.EntityPNRNumber: "1234567890",
			},
		},
		{
			name:     "No entities at all",
			text:     "the food was cold",
			expected: domain.Entities{},
		},
		{
			name:     "Empty text yields empty mapping",
			text:     "",
			expected: domain.Entities{},
		},
		{
			name: "First match wins per kind",
			text: "train 11111 or maybe train 22222, seat 10 or seat 20",
			expected: domain.Entities{
				domain.EntityTrainNumber: "11111",
				domain.EntitySeatNumber:  "10",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, eng.ExtractEntities(tt.text))
		})
	}
}
