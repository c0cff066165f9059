// File: validate.go
// Role: ValidationError and value normalization shared by Node and Edge.
// Policy:
//   - Validation never mutates; it returns a *ValidationError or nil.
//   - Values are normalized to one canonical Go type per attribute
//     (bool, float64, string) so that equality checks are exact.

package core

import (
	"fmt"
	"math"
)

// ValidationError is the typed failure of Set. It is also the payload of
// the notify.EventError event published by the rejecting entity.
type ValidationError struct {
	// Reason is a human-readable explanation for the view layer.
	Reason string

	// Key is the attribute the caller tried to set.
	Key Attr

	// Value is the rejected value, as passed by the caller.
	Value any

	// Err is the sentinel classifying the failure (ErrNegativeCost, ...).
	Err error
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", e.Err, e.Key, e.Value, e.Reason)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(key Attr, value any, sentinel error, reason string) *ValidationError {
	return &ValidationError{Reason: reason, Key: key, Value: value, Err: sentinel}
}

// asBool normalizes a flag value.
func asBool(key Attr, value any) (bool, *ValidationError) {
	b, ok := value.(bool)
	if !ok {
		return false, invalid(key, value, ErrWrongType, fmt.Sprintf("want bool, got %T", value))
	}

	return b, nil
}

// asCost normalizes any Go number to float64 and rejects NaN/Inf.
func asCost(key Attr, value any) (float64, *ValidationError) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case int16:
		f = float64(v)
	case int8:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint8:
		f = float64(v)
	default:
		return 0, invalid(key, value, ErrWrongType, fmt.Sprintf("want number, got %T", value))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid(key, value, ErrBadCost, "Cost must be a finite number.")
	}

	return f, nil
}
