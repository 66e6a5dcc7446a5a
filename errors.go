package templatesvc

import (
	"fmt"
	"time"
)

// ConfigValidationError reports a configuration value that can't be used.
// It is always returned before anything is bound.
type ConfigValidationError struct {
	Field  string
	Reason string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// BindError is returned by Start when the listen address can't be bound.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// IllegalStateError means a lifecycle operation was called in a state
// that doesn't allow it. It indicates a programming error.
type IllegalStateError struct {
	Op    string
	State State
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("illegal lifecycle state: %s called in state %s", e.Op, e.State)
}

// DrainTimeoutError is returned by Stop when in-flight calls did not finish
// within the grace period and were abandoned.
type DrainTimeoutError struct {
	Timeout time.Duration
}

func (e *DrainTimeoutError) Error() string {
	return fmt.Sprintf("drain did not finish within %s, in-flight calls abandoned", e.Timeout)
}
