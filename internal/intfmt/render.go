package intfmt

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/flashingpumpkin/intconv/internal/util"
)

// Options control rendering.
type Options struct {
	// MaxBits caps the two's complement width of negative values.
	// Zero means no cap.
	MaxBits int
}

// Rendered holds a value written in each base. BitWidth is set only when the
// source value was negative and the fields hold its two's complement.
type Rendered struct {
	Hex      string
	Dec      string
	Oct      string
	Bin      string
	BitWidth int
}

// Field is one labelled line of a rendered block.
type Field struct {
	Label string
	Value string
}

// Fields returns the four labelled values in display order, annotated with
// the encoding width when there is one.
func (r Rendered) Fields() []Field {
	fields := []Field{
		{"hex", r.Hex},
		{"dec", r.Dec},
		{"oct", r.Oct},
		{"bin", r.Bin},
	}
	if tag := r.Tag(); tag != "" {
		for i := range fields {
			fields[i].Value = tag + " " + fields[i].Value
		}
	}
	return fields
}

// Tag returns the "[<width>b]" annotation for two's complement values, or ""
// when BitWidth is unset.
func (r Rendered) Tag() string {
	if r.BitWidth <= 0 {
		return ""
	}
	return "[" + strconv.Itoa(r.BitWidth) + "b]"
}

// String renders the block as four "label: value" lines.
func (r Rendered) String() string {
	var sb strings.Builder
	for i, f := range r.Fields() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.Label)
		sb.WriteString(": ")
		sb.WriteString(f.Value)
	}
	return sb.String()
}

// Render writes v in hexadecimal, decimal, octal and grouped binary.
// Negative values are shown as their two's complement at the width chosen by
// BitWidth.
func Render(v *big.Int, opts Options) (Rendered, error) {
	width, err := BitWidth(v, opts.MaxBits)
	if err != nil {
		return Rendered{}, err
	}
	u := v
	if width > 0 {
		u = TwosComplement(v, width)
	}
	r := Rendered{
		Hex:      strings.ToUpper(u.Text(16)),
		Dec:      util.GroupDigits(u.Text(10), 3, ","),
		Oct:      u.Text(8),
		Bin:      FormatBinary(u),
		BitWidth: width,
	}
	return r, nil
}

// FormatBinary writes a non-negative v in binary, padded to whole bytes. Each
// byte is split into two nibbles joined by an underscore and bytes are
// separated by a space, most significant first. Zero is "0000_0000".
func FormatBinary(v *big.Int) string {
	digits := ""
	if v.Sign() != 0 {
		digits = v.Text(2)
	}
	return groupBinary(util.PadLeft(digits, 8, '0'))
}

// groupBinary expects len(bits) to be a multiple of 8.
func groupBinary(bits string) string {
	var sb strings.Builder
	sb.Grow(len(bits) / 8 * 10)
	for i := 0; i < len(bits); i += 8 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(bits[i : i+4])
		sb.WriteByte('_')
		sb.WriteString(bits[i+4 : i+8])
	}
	return sb.String()
}

// Convert parses raw and renders the result.
func Convert(raw string, opts Options) (Rendered, error) {
	v, _, err := Parse(raw)
	if err != nil {
		return Rendered{}, err
	}
	return Render(v, opts)
}
