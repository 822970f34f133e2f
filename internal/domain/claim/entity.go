package claim

import (
	"errors"
	"time"

	"flightclaims/internal/domain/distance"
	"flightclaims/internal/domain/eligibility"
	"flightclaims/internal/domain/flight"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid claim status transition")
	ErrAlreadyDecided    = errors.New("claim is already decided")
	ErrNotDecided        = errors.New("claim has no decision yet")
)

// Decision is the immutable outcome of one claim evaluation. Created once
// per (flight query, claimant) pair; re-submission returns it unchanged.
type Decision struct {
	Eligible      bool
	AmountCents   int64
	Currency      string
	Reason        eligibility.Reason
	Kind          flight.DisruptionKind
	Delay         time.Duration
	DistanceKm    float64
	Tier          distance.Tier
	LowConfidence bool
	DecidedAt     time.Time
}

// Claim is the aggregate owning the decision lifecycle for one
// (flight query, claimant) pair.
type Claim struct {
	id        uuid.UUID
	claimant  Email
	query     flight.Query
	status    Status
	decision  *Decision
	createdAt time.Time
}

func NewClaim(claimant Email, query flight.Query, now time.Time) *Claim {
	return &Claim{
		id:        uuid.New(),
		claimant:  claimant,
		query:     query,
		status:    StatusRequested,
		createdAt: now,
	}
}

// ReconstructClaim rebuilds a persisted claim; only decided claims are
// stored, so decision is required.
func ReconstructClaim(id uuid.UUID, claimant Email, query flight.Query, decision Decision, createdAt time.Time) *Claim {
	d := decision
	return &Claim{
		id:        id,
		claimant:  claimant,
		query:     query,
		status:    StatusDecided,
		decision:  &d,
		createdAt: createdAt,
	}
}

func (c *Claim) ID() uuid.UUID        { return c.id }
func (c *Claim) Claimant() Email      { return c.claimant }
func (c *Claim) Query() flight.Query  { return c.query }
func (c *Claim) Status() Status       { return c.status }
func (c *Claim) CreatedAt() time.Time { return c.createdAt }

func (c *Claim) Decision() (Decision, error) {
	if c.decision == nil {
		return Decision{}, ErrNotDecided
	}
	return *c.decision, nil
}

func (c *Claim) IsDecided() bool {
	return c.status == StatusDecided
}

func (c *Claim) BeginFetch() error {
	return c.transition(StatusFetching)
}

func (c *Claim) BeginMatch() error {
	return c.transition(StatusMatching)
}

func (c *Claim) BeginEvaluate() error {
	return c.transition(StatusEvaluating)
}

// Decide finalizes the claim. Decided is terminal: a second call fails and
// the stored decision never changes.
func (c *Claim) Decide(d Decision) error {
	if c.status == StatusDecided {
		return ErrAlreadyDecided
	}
	if err := c.transition(StatusDecided); err != nil {
		return err
	}
	c.decision = &d
	return nil
}

// DecideInsufficientData short-circuits from any non-terminal state:
// a disruption that cannot be verified is not compensable.
func (c *Claim) DecideInsufficientData(currency string, now time.Time) error {
	return c.Decide(Decision{
		Eligible:  false,
		Currency:  currency,
		Reason:    eligibility.ReasonInsufficientData,
		DecidedAt: now,
	})
}

func (c *Claim) transition(target Status) error {
	if !c.status.next(target) {
		return ErrInvalidTransition
	}
	c.status = target
	return nil
}
