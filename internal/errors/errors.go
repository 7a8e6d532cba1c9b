// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrUnparsable is returned when a digit string is not a valid numeral in its radix.
var ErrUnparsable = errors.New("unparsable integer")

// ErrUnsupportedWidth is returned when a negative value needs a two's complement
// width above the configured maximum.
var ErrUnsupportedWidth = errors.New("unsupported bit width")

// ErrInvalidArgs is returned by the CLI when at least one argument failed to convert.
var ErrInvalidArgs = errors.New("one or more arguments could not be converted")
