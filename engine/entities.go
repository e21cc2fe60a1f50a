package engine

import (
	"regexp"
	"strconv"
	"strings"

	"rail-madad/domain"
	"rail-madad/engine/rules"
)

// entityPatterns holds the compiled extraction regexps. Compiled once per
// engine, shared by all calls.
type entityPatterns struct {
	train       *regexp.Regexp
	coach       *regexp.Regexp
	seat        *regexp.Regexp
	pnr         *regexp.Regexp
	complaintID *regexp.Regexp
}

func compileEntityPatterns() entityPatterns {
	return entityPatterns{
		train:       regexp.MustCompile(rules.TrainNumberPattern),
		coach:       regexp.MustCompile(rules.CoachNumberPattern),
		seat:        regexp.MustCompile(rules.SeatNumberPattern),
		pnr:         regexp.MustCompile(rules.PNRNumberPattern),
		complaintID: regexp.MustCompile(rules.ComplaintIDPattern),
	}
}

// ExtractEntities pulls structured tokens out of raw text. Each kind is
// independent and only the first match per kind is kept; a kind with no
// match is simply absent from the result. Malformed or empty text yields an
// empty mapping, never an error.
//
// The seat pattern deliberately accepts any standalone 1-3 digit run whose
// value is 1-100, so it can fire on a number that also reads as part of a
// train or PNR span elsewhere in the message. That permissiveness matches
// the observed behavior of the production rules and stays until the product
// team rules on it.
func (e *Engine) ExtractEntities(message string) domain.Entities {
	entities := domain.Entities{}

	if m := e.patterns.train.FindString(message); m != "" {
		entities[domain.EntityTrainNumber] = m
	}

	if m := e.patterns.coach.FindString(strings.ToUpper(message)); m != "" {
		entities[domain.EntityCoachNumber] = m
	}

	// Only the first standalone digit run is considered; an out-of-range
	// first hit means no seat at all rather than a scan for the next run.
	if m := e.patterns.seat.FindString(message); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n >= 1 && n <= 100 {
			entities[domain.EntitySeatNumber] = m
		}
	}

	if m := e.patterns.pnr.FindString(message); m != "" {
		entities[domain.EntityPNRNumber] = m
	}

	return entities
}
