package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"flightclaims/internal/domain/claim"
	"flightclaims/internal/domain/distance"
	"flightclaims/internal/domain/eligibility"
	"flightclaims/internal/domain/flight"
	"flightclaims/internal/infra"
	"flightclaims/internal/infra/db"
	"flightclaims/internal/pkg/clock"
	"flightclaims/internal/pkg/errs"
	"flightclaims/internal/usecase/queries"
	"flightclaims/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

const (
	notificationKind  = "claim_decided"
	notificationTopic = "claims"
)

type SubmitClaim struct {
	ClaimantEmail string
	FlightNumber  string
	Origin        string
	Destination   string
	Date          time.Time

	// Claimant-asserted facts the provider cannot report.
	ExtraordinaryHint bool
	DeniedBoarding    bool
}

type SubmitClaimResult struct {
	Claim      *queries.ClaimView
	IsReplayed bool
}

type ClaimCommands interface {
	Submit(ctx context.Context, req SubmitClaim) (*SubmitClaimResult, error)
}

type claimCommandsImpl struct {
	claimRepo        ClaimRepository
	notificationRepo NotificationRepository
	claimQueries     queries.ClaimQueries
	fetcher          MovementFetcher
	airports         AirportDirectory
	rules            *eligibility.Table
	uow              shared.UnitOfWork
	clock            clock.Clock

	// Concurrent submissions of the same (flight, date, claimant) share one
	// evaluation instead of racing the provider.
	group singleflight.Group
}

func NewClaimCommands(
	claimRepo ClaimRepository,
	notificationRepo NotificationRepository,
	claimQueries queries.ClaimQueries,
	fetcher MovementFetcher,
	airports AirportDirectory,
	rules *eligibility.Table,
	uow shared.UnitOfWork,
	clock clock.Clock,
) ClaimCommands {
	return &claimCommandsImpl{
		claimRepo:        claimRepo,
		notificationRepo: notificationRepo,
		claimQueries:     claimQueries,
		fetcher:          fetcher,
		airports:         airports,
		rules:            rules,
		uow:              uow,
		clock:            clock,
	}
}

// Submit runs the claim state machine for one (flight query, claimant) pair:
// Requested → Fetching → Matching → Evaluating → Decided. Fetch or match
// failure short-circuits to Decided/Ineligible with InsufficientData rather
// than leaving the claim pending — an unverifiable disruption is not
// compensable by policy. Re-submission of an already decided pair returns
// the stored decision unchanged and skips the pipeline.
func (u *claimCommandsImpl) Submit(ctx context.Context, req SubmitClaim) (*SubmitClaimResult, error) {
	email, err := claim.NewEmail(req.ClaimantEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	query, err := flight.NewQuery(req.FlightNumber, req.Origin, req.Destination, req.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	if existing, err := u.findExisting(ctx, query, email); err != nil {
		return nil, err
	} else if existing != nil {
		return &SubmitClaimResult{Claim: existing, IsReplayed: true}, nil
	}

	// Only the caller whose function actually ran made the decision; everyone
	// else joined mid-flight and gets the shared result as a replay. The
	// shared flag from Do can't distinguish the originator when the result
	// was shared at all.
	key := query.Number() + "|" + query.DateString() + "|" + email.String()
	var originator bool
	v, err, _ := u.group.Do(key, func() (any, error) {
		originator = true
		return u.evaluate(ctx, email, query, req)
	})
	if err != nil {
		return nil, err
	}

	result := v.(*SubmitClaimResult)
	if !originator {
		return &SubmitClaimResult{Claim: result.Claim, IsReplayed: true}, nil
	}
	return result, nil
}

func (u *claimCommandsImpl) findExisting(ctx context.Context, query flight.Query, email claim.Email) (*queries.ClaimView, error) {
	view, err := u.claimQueries.GetByKey(ctx, query.Number(), query.DateString(), email.String())
	if err != nil {
		if errors.Is(err, errs.ErrClaimNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *claimCommandsImpl) evaluate(ctx context.Context, email claim.Email, query flight.Query, req SubmitClaim) (*SubmitClaimResult, error) {
	c := claim.NewClaim(email, query, u.clock.Now())

	if err := c.BeginFetch(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	offset, ok := u.airports.UTCOffsetSeconds(query.Origin())
	if !ok {
		// The scheduled local day can't be anchored to UTC fetch bounds.
		slog.Info("origin airport unknown, deciding insufficient data",
			"flight", query.Number(), "origin", query.Origin())
		return u.decideInsufficient(ctx, c)
	}

	from, to := query.WindowAt(offset)
	records, err := u.fetcher.Fetch(ctx, query.Origin(), flight.DirectionDeparture, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRateLimitExceeded):
			// The caller retries after a delay; no decision is burned.
			return nil, err
		case errors.Is(err, errs.ErrProviderRequest):
			return nil, err
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			slog.Warn("movement fetch failed, deciding insufficient data",
				"flight", query.Number(), "date", query.DateString(), "error", err)
			return u.decideInsufficient(ctx, c)
		}
	}

	if err := c.BeginMatch(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	destinationName, _ := u.airports.Name(query.Destination())
	record, confidence, err := flight.Match(query, destinationName, records)
	if err != nil {
		slog.Info("no authoritative movement for claim",
			"flight", query.Number(), "date", query.DateString(), "candidates", len(records))
		return u.decideInsufficient(ctx, c)
	}

	if err := c.BeginEvaluate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	assessment, err := flight.Assess(record, confidence, flight.AssessmentHint{
		Extraordinary:  req.ExtraordinaryHint,
		DeniedBoarding: req.DeniedBoarding,
	})
	if err != nil {
		return u.decideInsufficient(ctx, c)
	}

	km, err := u.airports.Distance(query.Origin(), query.Destination())
	if err != nil {
		return u.decideInsufficient(ctx, c)
	}
	tier := distance.TierFor(km)

	entitlement := u.rules.Evaluate(assessment, tier)

	decision := claim.Decision{
		Eligible:      entitlement.Eligible,
		AmountCents:   entitlement.AmountCents,
		Currency:      entitlement.Currency,
		Reason:        entitlement.Reason,
		Kind:          assessment.Kind,
		Delay:         assessment.Delay,
		DistanceKm:    km,
		Tier:          tier,
		LowConfidence: entitlement.LowConfidence,
		DecidedAt:     u.clock.Now(),
	}
	if err := c.Decide(decision); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	return u.persistDecision(ctx, c)
}

func (u *claimCommandsImpl) decideInsufficient(ctx context.Context, c *claim.Claim) (*SubmitClaimResult, error) {
	if err := c.DecideInsufficientData(u.rules.Currency(), u.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	return u.persistDecision(ctx, c)
}

func (u *claimCommandsImpl) persistDecision(ctx context.Context, c *claim.Claim) (*SubmitClaimResult, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := u.claimRepo.Create(ctx, tx, c); err != nil {
			return err
		}
		return u.createNotificationJob(ctx, tx, c)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the insert race; the stored decision wins.
			query := c.Query()
			view, qerr := u.claimQueries.GetByKey(ctx, query.Number(), query.DateString(), c.Claimant().String())
			if qerr != nil {
				return nil, errs.Mark(qerr, errs.ErrDatabaseOperationFailed)
			}
			return &SubmitClaimResult{Claim: view, IsReplayed: true}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := u.claimQueries.GetByID(ctx, c.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &SubmitClaimResult{Claim: view}, nil
}

func (u *claimCommandsImpl) createNotificationJob(ctx context.Context, tx db.DBTX, c *claim.Claim) error {
	decision, err := c.Decision()
	if err != nil {
		return err
	}

	query := c.Query()
	payload, err := json.Marshal(map[string]any{
		"claim_id":      c.ID(),
		"claimant":      c.Claimant().String(),
		"flight_number": query.Number(),
		"flight_date":   query.DateString(),
		"eligible":      decision.Eligible,
		"amount_cents":  decision.AmountCents,
		"currency":      decision.Currency,
		"reason":        decision.Reason.String(),
	})
	if err != nil {
		return err
	}

	return u.notificationRepo.CreateJob(ctx, tx, notificationKind, notificationTopic, payload, u.clock.Now())
}
