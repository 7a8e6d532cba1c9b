package intfmt

import (
	"errors"
	"math/big"
	"testing"

	interrors "github.com/flashingpumpkin/intconv/internal/errors"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		raw        string
		wantDigits string
		wantBase   Base
	}{
		{"", "0", Decimal},
		{"0", "0", Decimal},
		{"000", "0", Decimal},
		{"42", "42", Decimal},
		{"00042", "42", Decimal},
		{"x400", "400", Hexadecimal},
		{"0x400", "400", Hexadecimal},
		{"X400", "400", Hexadecimal},
		{"h1f", "1f", Hexadecimal},
		{"b101", "101", Binary},
		{"0B101", "101", Binary},
		{"o17", "17", Octal},
		{"d99", "99", Decimal},
		{"xx1", "x1", Hexadecimal},
		{"x", "", Hexadecimal},
		{"x0010", "0010", Hexadecimal},
		{"-5", "-5", Decimal},
		{"foo", "foo", Decimal},
		{"boo", "oo", Binary},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			digits, base := Split(tt.raw)
			if digits != tt.wantDigits {
				t.Errorf("Split(%q) digits = %q, want %q", tt.raw, digits, tt.wantDigits)
			}
			if base != tt.wantBase {
				t.Errorf("Split(%q) base = %+v, want %+v", tt.raw, base, tt.wantBase)
			}
		})
	}
}

func TestLookupPrefix(t *testing.T) {
	for _, c := range []byte("bodxhBODXH") {
		if _, ok := LookupPrefix(c); !ok {
			t.Errorf("LookupPrefix(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("aceyz019-_ ") {
		if _, ok := LookupPrefix(c); ok {
			t.Errorf("LookupPrefix(%q) = true, want false", c)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		raw     string
		digits  string
		base    Base
		message string
	}{
		{"foo", "foo", Decimal, `"foo" cannot be parsed as a decimal integer`},
		{"boo", "oo", Binary, `"oo" cannot be parsed as a binary integer`},
		{"b102", "102", Binary, `"102" cannot be parsed as a binary integer`},
		{"o8", "8", Octal, `"8" cannot be parsed as an octal integer`},
		{"xfg", "fg", Hexadecimal, `"fg" cannot be parsed as a hexadecimal integer`},
		{"x", "", Hexadecimal, `"" cannot be parsed as a hexadecimal integer`},
		{"-", "-", Decimal, `"-" cannot be parsed as a decimal integer`},
		{"1_000", "1_000", Decimal, `"1_000" cannot be parsed as a decimal integer`},
		{"-x10", "-x10", Decimal, `"-x10" cannot be parsed as a decimal integer`},
		{"12 3", "12 3", Decimal, `"12 3" cannot be parsed as a decimal integer`},
		{"--1", "--1", Decimal, `"--1" cannot be parsed as a decimal integer`},
		{`a"b`, `a"b`, Decimal, `"a"b" cannot be parsed as a decimal integer`},
		{"x\xff", "\xff", Hexadecimal, "\"\xff\" cannot be parsed as a hexadecimal integer"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, base, err := Parse(tt.raw)
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want error", tt.raw)
			}
			if !errors.Is(err, interrors.ErrUnparsable) {
				t.Errorf("Parse(%q) error = %v, want ErrUnparsable", tt.raw, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.raw, err)
			}
			if perr.Digits != tt.digits {
				t.Errorf("ParseError.Digits = %q, want %q", perr.Digits, tt.digits)
			}
			if perr.Base != tt.base || base != tt.base {
				t.Errorf("Parse(%q) base = %+v, want %+v", tt.raw, perr.Base, tt.base)
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestParse_Signs(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"-1", -1},
		{"+1", 1},
		{"-0", 0},
		{"b-101", -5},
		{"x-FF", -255},
		{"o+17", 15},
	}

	for _, tt := range tests {
		v, _, err := Parse(tt.raw)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.raw, err)
			continue
		}
		if v.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("Parse(%q) = %s, want %d", tt.raw, v, tt.want)
		}
	}
}

func TestParse_LeadingZerosInsignificant(t *testing.T) {
	pairs := [][2]string{
		{"00042", "42"},
		{"0x400", "x400"},
		{"0000b1", "b1"},
		{"0o777", "o777"},
		{"0d10", "d10"},
	}
	for _, p := range pairs {
		a, _, err := Parse(p[0])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", p[0], err)
		}
		b, _, err := Parse(p[1])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", p[1], err)
		}
		if a.Cmp(b) != 0 {
			t.Errorf("Parse(%q) = %s, Parse(%q) = %s, want equal", p[0], a, p[1], b)
		}
	}
}

func TestParse_AllRadixesAgree(t *testing.T) {
	values := []string{"0", "1", "255", "1024", "65535", "36893488147419103233"}
	prefixes := map[string]int{"b": 2, "o": 8, "d": 10, "x": 16, "h": 16, "": 10}

	for _, s := range values {
		want, _ := new(big.Int).SetString(s, 10)
		for prefix, radix := range prefixes {
			raw := prefix + want.Text(radix)
			got, _, err := Parse(raw)
			if err != nil {
				t.Errorf("Parse(%q) error = %v", raw, err)
				continue
			}
			if got.Cmp(want) != 0 {
				t.Errorf("Parse(%q) = %s, want %s", raw, got, want)
			}
		}
	}
}

func TestParse_DecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "7", "1000", "18446744073709551615", "340282366920938463463374607431768211457"} {
		v, _, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s, err)
		}
		if v.String() != s {
			t.Errorf("Parse(%q).String() = %q", s, v.String())
		}
	}
}
