// Package errors provides error handling for wbmodel.
//
// It re-exports github.com/cockroachdb/errors and defines the error taxonomy
// shared by the data model packages:
//
//   - ErrTypeMismatch: a value of the wrong kind was handed to a typed collection
//   - ErrInvalidArgument: a value failed a domain constraint
//   - ErrInvalidKey: a lookup key is malformed
//   - ErrNotFound: a well-formed key has no entry
//
// Wrap the sentinels (or use the *f constructors below) so callers can match
// with errors.Is regardless of the message.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Model error taxonomy.
var (
	// ErrTypeMismatch indicates an element of the wrong type was given to a typed collection
	ErrTypeMismatch = New("type mismatch")

	// ErrInvalidArgument indicates a value violates a domain constraint
	ErrInvalidArgument = New("invalid argument")

	// ErrInvalidKey indicates a lookup or removal key is malformed
	ErrInvalidKey = New("invalid key")

	// ErrNotFound indicates the key was well-formed but no entry exists
	ErrNotFound = New("not found")
)

// TypeMismatchf creates a type-mismatch error with a formatted message
func TypeMismatchf(format string, args ...interface{}) error {
	return crdb.WrapWithDepthf(1, ErrTypeMismatch, format, args...)
}

// InvalidArgumentf creates an invalid-argument error with a formatted message
func InvalidArgumentf(format string, args ...interface{}) error {
	return crdb.WrapWithDepthf(1, ErrInvalidArgument, format, args...)
}

// InvalidKeyf creates an invalid-key error with a formatted message
func InvalidKeyf(format string, args ...interface{}) error {
	return crdb.WrapWithDepthf(1, ErrInvalidKey, format, args...)
}

// NotFoundf creates a not-found error with a formatted message
func NotFoundf(format string, args ...interface{}) error {
	return crdb.WrapWithDepthf(1, ErrNotFound, format, args...)
}

// IsTypeMismatch checks if an error is or wraps ErrTypeMismatch
func IsTypeMismatch(err error) bool {
	return err != nil && Is(err, ErrTypeMismatch)
}

// IsInvalidArgument checks if an error is or wraps ErrInvalidArgument
func IsInvalidArgument(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}

// IsInvalidKey checks if an error is or wraps ErrInvalidKey
func IsInvalidKey(err error) bool {
	return err != nil && Is(err, ErrInvalidKey)
}

// IsNotFound checks if an error is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}
