// Package apperrors defines the error kinds surfaced across the sign,
// magia, bigint, accumulator, and barrett layers. Each kind carries the
// diagnostic fields a caller needs to explain the failure without
// re-deriving it, and every kind supports errors.As for structured
// inspection.
package apperrors

import (
	"fmt"
)

// DivisionByZeroError reports an attempt to divide or reduce by zero.
type DivisionByZeroError struct {
	// Operation names the call that attempted the division (e.g. "Div",
	// "Mod", "Barrett.Remainder").
	Operation string
}

func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Operation)
}

// NewDivisionByZeroError constructs a DivisionByZeroError for operation.
func NewDivisionByZeroError(operation string) error {
	return DivisionByZeroError{Operation: operation}
}

// OutOfRangeError reports that a value could not be represented in a
// requested target type, e.g. converting a SignedInt to int64 when it
// does not fit.
type OutOfRangeError struct {
	// Value is a decimal rendering of the offending value.
	Value string
	// Target names the type the value could not be converted to.
	Target string
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("value %s is out of range for %s", e.Value, e.Target)
}

// NewOutOfRangeError constructs an OutOfRangeError.
func NewOutOfRangeError(value, target string) error {
	return OutOfRangeError{Value: value, Target: target}
}

// OverflowError reports that an operation's result cannot be represented
// within an internally imposed bound (for example a bit-length ceiling
// on a requested shift or random value).
type OverflowError struct {
	// Operation names the call that overflowed.
	Operation string
	// Limit is the bound that was exceeded, expressed in bits unless
	// Operation's documentation says otherwise.
	Limit int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("%s: result exceeds limit of %d", e.Operation, e.Limit)
}

// NewOverflowError constructs an OverflowError.
func NewOverflowError(operation string, limit int) error {
	return OverflowError{Operation: operation, Limit: limit}
}

// ParseError reports a syntax failure in a text-format constructor such
// as decimal or hexadecimal parsing.
type ParseError struct {
	// Input is the string that failed to parse.
	Input string
	// Offset is the byte offset of the offending character, or -1 if the
	// failure isn't localized to one position (e.g. an empty input).
	Offset int
	// Reason is a short human-readable explanation.
	Reason string
}

func (e ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("parse error in %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("parse error in %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}

// NewParseError constructs a ParseError.
func NewParseError(input string, offset int, reason string) error {
	return ParseError{Input: input, Offset: offset, Reason: reason}
}

// InvalidArgumentError reports a precondition violation on a function
// argument that isn't better described by one of the other kinds (a
// negative bit count, a nil receiver used before initialization, and
// similar cases).
type InvalidArgumentError struct {
	// Argument names the offending parameter.
	Argument string
	// Reason is a short human-readable explanation.
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

// NewInvalidArgumentError constructs an InvalidArgumentError.
func NewInvalidArgumentError(argument, reason string) error {
	return InvalidArgumentError{Argument: argument, Reason: reason}
}

// BarrettPreconditionError reports a violation of a Barrett reducer's
// operating envelope: a modulus that isn't greater than one, or an
// input that isn't within [0, modulus^2).
type BarrettPreconditionError struct {
	// Reason is a short human-readable explanation of which precondition
	// failed.
	Reason string
}

func (e BarrettPreconditionError) Error() string {
	return fmt.Sprintf("barrett precondition violated: %s", e.Reason)
}

// NewBarrettPreconditionError constructs a BarrettPreconditionError.
func NewBarrettPreconditionError(reason string) error {
	return BarrettPreconditionError{Reason: reason}
}

// WrapError wraps err with additional context using fmt.Errorf and %w,
// preserving errors.Is/errors.As traversal through the chain.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
