package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidFlightDate = errors.New("flight_date must be formatted as YYYY-MM-DD")

type SubmitClaimRequest struct {
	ClaimantEmail string `json:"claimant_email" binding:"required"`
	FlightNumber  string `json:"flight_number" binding:"required"`
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	FlightDate    string `json:"flight_date" binding:"required"`

	// Claimant-asserted circumstances the movement data cannot report.
	ExtraordinaryCircumstance bool `json:"extraordinary_circumstance"`
	DeniedBoarding            bool `json:"denied_boarding"`
}

func (r SubmitClaimRequest) ParseDate() (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(r.FlightDate))
	if err != nil {
		return time.Time{}, ErrInvalidFlightDate
	}
	return date, nil
}
