package intfmt

import (
	"fmt"
	"math/big"

	interrors "github.com/flashingpumpkin/intconv/internal/errors"
)

// StandardWidths are the two's complement widths tried before growing in
// whole bytes.
var StandardWidths = []int{8, 16, 32, 64}

// WidthError reports a negative value whose two's complement needs more bits
// than the configured limit.
type WidthError struct {
	Need  int
	Limit int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("%v: %d bits needed, limit is %d", interrors.ErrUnsupportedWidth, e.Need, e.Limit)
}

// Is reports whether target is interrors.ErrUnsupportedWidth.
func (e *WidthError) Is(target error) bool {
	return target == interrors.ErrUnsupportedWidth
}

// BitWidth returns the two's complement width used to display v. It is zero
// for non-negative values. Negative values get the smallest standard width
// that holds them; beyond 64 bits the width grows in multiples of 8. A
// positive limit caps the width, and values that need more return a
// *WidthError.
func BitWidth(v *big.Int, limit int) (int, error) {
	if v.Sign() >= 0 {
		return 0, nil
	}
	need := requiredBits(v)

	width := 0
	for _, w := range StandardWidths {
		if w >= need {
			width = w
			break
		}
	}
	if width == 0 {
		width = (need + 7) / 8 * 8
	}
	if limit > 0 && width > limit {
		return 0, &WidthError{Need: width, Limit: limit}
	}
	return width, nil
}

// requiredBits is ceil(log2(-v) + 1) for negative v, computed exactly as the
// bit length of -v-1 plus the sign bit.
func requiredBits(v *big.Int) int {
	m := new(big.Int).Neg(v)
	m.Sub(m, big.NewInt(1))
	return m.BitLen() + 1
}

// TwosComplement returns 2^width + v.
func TwosComplement(v *big.Int, width int) *big.Int {
	tc := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return tc.Add(tc, v)
}
