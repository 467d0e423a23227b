package domain

import "errors"

var (
	// ErrCaloriesNotFound is returned when a nutrition source has no usable
	// calorie value for a product name.
	ErrCaloriesNotFound = errors.New("no calorie data found")

	// ErrLookupFailed is returned when a nutrition source request fails at
	// the transport level (network error, timeout, non-2xx status).
	ErrLookupFailed = errors.New("nutrition lookup request failed")

	// ErrMalformedResponse is returned when a nutrition source responds with
	// a body that does not match the expected shape.
	ErrMalformedResponse = errors.New("malformed nutrition response")

	// ErrSourceDisabled is returned by a source that has no credential
	// configured and therefore cannot be queried.
	ErrSourceDisabled = errors.New("nutrition source disabled")
)
