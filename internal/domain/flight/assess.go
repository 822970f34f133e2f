package flight

import (
	"time"

	"flightclaims/internal/pkg/errs"
)

type DisruptionKind string

const (
	KindOnTime         DisruptionKind = "on_time"
	KindDelayed        DisruptionKind = "delayed"
	KindCancelled      DisruptionKind = "cancelled"
	KindDiverted       DisruptionKind = "diverted"
	KindDeniedBoarding DisruptionKind = "denied_boarding"
)

func (k DisruptionKind) String() string {
	return string(k)
}

// AssessmentHint carries claimant-asserted facts the provider cannot report:
// the operating cause (extraordinary circumstance) and denied boarding.
type AssessmentHint struct {
	Extraordinary  bool
	DeniedBoarding bool
}

// Assessment classifies one matched movement against its query.
type Assessment struct {
	Kind          DisruptionKind
	Delay         time.Duration // signed; zero/negative for on-time or early
	Confidence    Confidence
	Extraordinary bool
}

// Assess derives the disruption assessment for a matched record.
//
// A cancelled or diverted status needs no actual time. Otherwise a missing
// actual time means the delay is unknown — that is ErrDelayUnknown, never a
// zero delay. Denied boarding is claimant-asserted and always inferred:
// the movement data cannot corroborate it.
func Assess(record MovementRecord, confidence Confidence, hint AssessmentHint) (Assessment, error) {
	a := Assessment{
		Confidence:    confidence,
		Extraordinary: hint.Extraordinary,
	}

	switch record.Status() {
	case StatusCancelled:
		a.Kind = KindCancelled
		return a, nil
	case StatusDiverted:
		a.Kind = KindDiverted
		return a, nil
	}

	if hint.DeniedBoarding {
		a.Kind = KindDeniedBoarding
		a.Confidence = ConfidenceInferred
		return a, nil
	}

	delay, known := record.Delay()
	if !known {
		return Assessment{}, errs.ErrDelayUnknown
	}

	a.Delay = delay
	if delay > 0 {
		a.Kind = KindDelayed
	} else {
		a.Kind = KindOnTime
	}
	return a, nil
}
