package flight

import (
	"strings"
	"time"

	"flightclaims/internal/pkg/errs"
)

// Confidence records how a movement was matched to a query. Inferred matches
// still produce decisions but are flagged for downstream manual review.
type Confidence string

const (
	ConfidenceExact    Confidence = "exact"
	ConfidenceInferred Confidence = "inferred"
)

func normalizeNumber(number string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(number), " ", ""))
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Match selects the single authoritative movement for the query.
//
// Candidates scheduled on a different local day than the query are discarded
// first: the query date is the scheduled local date, and a fetch window near
// local midnight can carry the adjacent day's leg of the same daily flight
// number. The record's own reported offset decides which day it belongs to.
//
// Precedence among same-day candidates:
//  1. Exact flight number AND destination code.
//  2. Destination code alone, when exactly one candidate carries it
//     (provider renumbering across code-share partners) — inferred.
//  3. Destination display name, when the candidate has no code — inferred.
//
// destinationName is the display name of the queried destination ("" when the
// caller has none), used only for rule 3. Ambiguity — several plausible
// candidates, or several duplicates of an exact match — returns ErrNoMatch:
// a wrong flight is worse than no data, so the matcher never guesses.
func Match(q Query, destinationName string, candidates []MovementRecord) (MovementRecord, Confidence, error) {
	var sameDay []MovementRecord
	for _, c := range candidates {
		if sameLocalDay(c.Scheduled().Local(), q.Date()) {
			sameDay = append(sameDay, c)
		}
	}
	candidates = sameDay

	var exact []MovementRecord
	for _, c := range candidates {
		if c.Number() == q.Number() && c.AirportCode() == q.Destination() {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact[0], ConfidenceExact, nil
	}
	if len(exact) > 1 {
		// Duplicates should have been collapsed upstream; several distinct
		// scheduled times under one number is multi-leg ambiguity.
		return MovementRecord{}, "", errs.ErrNoMatch
	}

	var byCode []MovementRecord
	for _, c := range candidates {
		if c.AirportCode() != "" && c.AirportCode() == q.Destination() {
			byCode = append(byCode, c)
		}
	}
	if len(byCode) == 1 {
		return byCode[0], ConfidenceInferred, nil
	}
	if len(byCode) > 1 {
		return MovementRecord{}, "", errs.ErrNoMatch
	}

	if destinationName != "" {
		var byName []MovementRecord
		for _, c := range candidates {
			if c.AirportCode() == "" && nameMatches(c.AirportName(), destinationName) {
				byName = append(byName, c)
			}
		}
		if len(byName) == 1 {
			return byName[0], ConfidenceInferred, nil
		}
	}

	return MovementRecord{}, "", errs.ErrNoMatch
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func nameMatches(candidate, wanted string) bool {
	c := strings.ToLower(strings.TrimSpace(candidate))
	w := strings.ToLower(strings.TrimSpace(wanted))
	if c == "" || w == "" {
		return false
	}
	return c == w || strings.Contains(c, w) || strings.Contains(w, c)
}
