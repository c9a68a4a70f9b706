package pancake

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNotRecord indicates a record serializer was built for a type
	// that is not a struct.
	ErrNotRecord = errors.New("not a record type")

	// ErrNotMapping indicates FromMap was given a value that is not a
	// string-keyed mapping.
	ErrNotMapping = errors.New("not a mapping")

	// ErrUnsupportedType indicates the encoder hook met a value with none
	// of the recognized capabilities.
	ErrUnsupportedType = errors.New("unsupported type")
)

// ContractError represents a caller contract violation.
// It wraps a sentinel error with the offending Go type.
type ContractError struct {
	Err  error  // Underlying sentinel error (ErrNotRecord, ErrNotMapping)
	Type string // Offending type
}

func (e *ContractError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s (got %s)", e.Err.Error(), e.Type)
	}
	return e.Err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// EncodeError represents a rendering failure for a value the encoder hook
// cannot convert.
type EncodeError struct {
	Err  error  // Underlying sentinel error (ErrUnsupportedType)
	Type string // Type that could not be encoded
	Key  string // Key under which the value was found, if any
}

func (e *EncodeError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s (key %q)", e.Err.Error(), e.Type, e.Key)
	}
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Type)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// newContractError creates a ContractError for contract violations.
func newContractError(sentinel error, typ string) error {
	return &ContractError{
		Err:  sentinel,
		Type: typ,
	}
}

// newEncodeError creates an EncodeError for unconvertible values.
func newEncodeError(typ, key string) error {
	return &EncodeError{
		Err:  ErrUnsupportedType,
		Type: typ,
		Key:  key,
	}
}
