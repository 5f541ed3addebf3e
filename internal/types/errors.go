package types

import "errors"

// Client-visible errors. Everything else that goes wrong during
// generation is either absorbed by the fallback path or surfaced as a
// generic server error.
var (
	ErrMissingFields    = errors.New("missing required fields: destination, startDate, endDate")
	ErrInvalidDateRange = errors.New("invalid date range")
)
