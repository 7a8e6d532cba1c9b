// Package intfmt parses integer literals written in binary, octal, decimal or
// hexadecimal and renders them in all four bases.
package intfmt

import (
	"math/big"
	"strings"

	interrors "github.com/flashingpumpkin/intconv/internal/errors"
)

// Base is a radix together with the adjective used to describe it in errors.
type Base struct {
	Radix     int
	Adjective string
}

var (
	Binary      = Base{Radix: 2, Adjective: "a binary"}
	Octal       = Base{Radix: 8, Adjective: "an octal"}
	Decimal     = Base{Radix: 10, Adjective: "a decimal"}
	Hexadecimal = Base{Radix: 16, Adjective: "a hexadecimal"}
)

// prefixes maps a lower-cased leading character to the base it selects.
var prefixes = map[byte]Base{
	'b': Binary,
	'o': Octal,
	'd': Decimal,
	'x': Hexadecimal,
	'h': Hexadecimal,
}

// LookupPrefix returns the base selected by the prefix character c.
// The match is case-insensitive.
func LookupPrefix(c byte) (Base, bool) {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	b, ok := prefixes[c]
	return b, ok
}

// ParseError reports a digit string that is not a valid numeral in its base.
type ParseError struct {
	// Digits is the exact substring that failed to parse, prefix removed.
	Digits string
	Base   Base
}

func (e *ParseError) Error() string {
	return `"` + e.Digits + `" cannot be parsed as ` + e.Base.Adjective + " integer"
}

// Is reports whether target is interrors.ErrUnparsable.
func (e *ParseError) Is(target error) bool {
	return target == interrors.ErrUnparsable
}

// Split strips leading zeros from raw and separates an optional base prefix
// from the digit string. Without a prefix the base is Decimal.
func Split(raw string) (digits string, base Base) {
	s := strings.TrimLeft(raw, "0")
	if s == "" {
		s = "0"
	}
	if b, ok := LookupPrefix(s[0]); ok {
		return s[1:], b
	}
	return s, Decimal
}

// Parse converts raw into an integer. Leading zeros are ignored, so "0x400"
// and "x400" are the same value. The returned error is a *ParseError.
func Parse(raw string) (*big.Int, Base, error) {
	digits, base := Split(raw)
	v, ok := parseDigits(digits, base.Radix)
	if !ok {
		return nil, base, &ParseError{Digits: digits, Base: base}
	}
	return v, base, nil
}

// parseDigits accepts an optional sign followed by one or more digits that
// are valid in radix.
func parseDigits(s string, radix int) (*big.Int, bool) {
	body := s
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		body = body[1:]
	}
	if body == "" {
		return nil, false
	}
	for i := 0; i < len(body); i++ {
		if digitValue(body[i]) >= radix {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, radix)
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}
