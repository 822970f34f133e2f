package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Claim errors
	ErrClaimNotFound  = errors.New("claim not found")
	ErrClaimDecided   = errors.New("claim already decided")
	ErrDuplicateClaim = errors.New("duplicate claim")

	// Provider errors
	ErrProviderRequest     = errors.New("provider rejected request")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrRateLimitExceeded   = errors.New("provider rate limit exceeded")

	// Data-quality errors
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrUnknownAirport     = errors.New("unknown airport")
	ErrNoMatch            = errors.New("no matching flight movement")
	ErrDelayUnknown       = errors.New("actual time not yet reported")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
