// Package errors defines the failure taxonomy of the cart store.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Argument errors 📏
	ErrRange      = errors.New("❌ value out of range")
	ErrUnknownKey = errors.New("❌ unknown cart key")

	// Data errors 💾
	ErrIntegrity = errors.New("❌ cart data integrity failure")

	// Lock errors 🔒
	ErrLockTimeout = errors.New("❌ timed out waiting for cart lock")
)

// RangeError reports an argument outside its declared domain. It is raised
// before the cart file is touched.
type RangeError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", ErrRange, e.Field, e.Value, e.Reason)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// IntegrityError reports a key in the Main section that is missing or holds
// data outside its schema. ResetToDefaults recovers from it.
type IntegrityError struct {
	Key    string
	Value  string
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%v: key %s %s", ErrIntegrity, e.Key, e.Reason)
	}
	return fmt.Sprintf("%v: key %s %s (%q)", ErrIntegrity, e.Key, e.Reason, e.Value)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// IsRange reports whether err is, or wraps, a RangeError.
func IsRange(err error) bool {
	return errors.Is(err, ErrRange)
}

// IsIntegrity reports whether err is, or wraps, an IntegrityError.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}
