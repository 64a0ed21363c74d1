package services

import (
	"errors"
	"fmt"
)

// ErrEmptyInput reports that normalization produced no usable addresses.
// It halts the pipeline before any remote call is made.
var ErrEmptyInput = errors.New("no usable addresses in input")

// ErrGeocodingFailed reports a transport or service failure while
// resolving one address. Unlike a not-found skip it aborts the batch:
// an errored lookup usually means a bad credential or an outage, not
// bad data.
type ErrGeocodingFailed struct {
	Address string
	Cause   error
}

func (e *ErrGeocodingFailed) Error() string {
	return fmt.Sprintf("geocoding failed for %q: %v", e.Address, e.Cause)
}

func (e *ErrGeocodingFailed) Unwrap() error { return e.Cause }

// ErrInsufficientLocations reports that fewer than two addresses
// resolved, leaving nothing to sequence.
type ErrInsufficientLocations struct {
	Resolved int
}

func (e *ErrInsufficientLocations) Error() string {
	return fmt.Sprintf("need at least 2 resolved locations to build a route, got %d", e.Resolved)
}

// ErrOptimizationFailed reports a solver failure. A partial answer is
// useless without a consistent stop order, so the run aborts.
type ErrOptimizationFailed struct {
	Cause error
}

func (e *ErrOptimizationFailed) Error() string {
	return fmt.Sprintf("route optimization failed: %v", e.Cause)
}

func (e *ErrOptimizationFailed) Unwrap() error { return e.Cause }

// ErrDirectionsFailed reports that geometry retrieval for the optimized
// order failed.
type ErrDirectionsFailed struct {
	Cause error
}

func (e *ErrDirectionsFailed) Error() string {
	return fmt.Sprintf("route geometry retrieval failed: %v", e.Cause)
}

func (e *ErrDirectionsFailed) Unwrap() error { return e.Cause }
