package eligibility

import (
	"fmt"
	"time"

	"flightclaims/internal/domain/distance"
	"flightclaims/internal/domain/flight"
	"flightclaims/internal/pkg/errs"
)

// Reason codes an ineligible (or eligible) decision carries back to the
// claimant. An unresolved claim is never left ambiguous.
type Reason string

const (
	ReasonCompensable               Reason = "COMPENSABLE"
	ReasonNoDisruption              Reason = "NO_DISRUPTION"
	ReasonDelayBelowThreshold       Reason = "DELAY_BELOW_THRESHOLD"
	ReasonExtraordinaryCircumstance Reason = "EXTRAORDINARY_CIRCUMSTANCE"
	ReasonInsufficientData          Reason = "INSUFFICIENT_DATA"
)

func (r Reason) String() string {
	return string(r)
}

// Entitlement is the outcome of rule evaluation: either a tier amount or an
// explicit reason why nothing is owed.
type Entitlement struct {
	Eligible      bool
	AmountCents   int64
	Currency      string
	Reason        Reason
	LowConfidence bool
}

// Table maps distance tiers to compensation amounts. Loaded once at process
// start and immutable for the process lifetime; no lock is required to read
// it concurrently.
type Table struct {
	currency       string
	amounts        map[distance.Tier]int64
	delayThreshold time.Duration
}

// NewTable validates totality up front: every tier must map to exactly one
// positive amount. A missing mapping is a configuration error detected at
// process start, not at evaluation time.
func NewTable(currency string, amountCents map[distance.Tier]int64, delayThreshold time.Duration) (*Table, error) {
	if currency == "" {
		return nil, errs.New("compensation currency is required")
	}
	if delayThreshold <= 0 {
		return nil, errs.New("delay threshold must be positive")
	}
	amounts := make(map[distance.Tier]int64, len(amountCents))
	for _, tier := range distance.Tiers() {
		amount, ok := amountCents[tier]
		if !ok {
			return nil, errs.New(fmt.Sprintf("compensation table missing tier %q", tier))
		}
		if amount <= 0 {
			return nil, errs.New(fmt.Sprintf("compensation amount for tier %q must be positive", tier))
		}
		amounts[tier] = amount
	}
	return &Table{
		currency:       currency,
		amounts:        amounts,
		delayThreshold: delayThreshold,
	}, nil
}

func (t *Table) Currency() string              { return t.currency }
func (t *Table) DelayThreshold() time.Duration { return t.delayThreshold }

// Amount is total over tiers once NewTable has accepted the config.
func (t *Table) Amount(tier distance.Tier) int64 {
	return t.amounts[tier]
}

// Evaluate maps an assessment and distance tier to an entitlement.
// Pure function, no I/O.
//
//   - on-time: not eligible, NoDisruption.
//   - cancelled/diverted/denied boarding: tier amount regardless of delay.
//   - delayed: tier amount iff delay ≥ threshold, because regulatory regimes
//     equate a ≥3h delay with cancellation-level compensation.
//   - extraordinary circumstance: denies eligibility regardless of the above.
//
// Inferred-confidence assessments still yield a decision; they only set
// LowConfidence for downstream manual review.
func (t *Table) Evaluate(a flight.Assessment, tier distance.Tier) Entitlement {
	e := Entitlement{
		Currency:      t.currency,
		LowConfidence: a.Confidence == flight.ConfidenceInferred,
	}

	if a.Extraordinary {
		e.Reason = ReasonExtraordinaryCircumstance
		return e
	}

	switch a.Kind {
	case flight.KindOnTime:
		e.Reason = ReasonNoDisruption

	case flight.KindDelayed:
		if a.Delay >= t.delayThreshold {
			e.Eligible = true
			e.AmountCents = t.amounts[tier]
			e.Reason = ReasonCompensable
		} else {
			e.Reason = ReasonDelayBelowThreshold
		}

	case flight.KindCancelled, flight.KindDiverted, flight.KindDeniedBoarding:
		e.Eligible = true
		e.AmountCents = t.amounts[tier]
		e.Reason = ReasonCompensable

	default:
		e.Reason = ReasonInsufficientData
	}

	return e
}
