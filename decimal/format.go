package decimal

import (
	"strconv"

	"github.com/fixnum/fixnum/unscaled"
)

// String renders d at its nominal digit count. The guard digits are rounded
// half away from zero and the fractional part is zero filled to exactly
// Digits characters. Zero renders without a sign.
func (d Decimal) String() string {
	return d.Text(d.prec.Digits)
}

// Text renders d at the given digit count without changing d. Removing
// digits rounds half away from zero; adding digits zero fills.
func (d Decimal) Text(digits uint32) string {
	m := unscaled.Rescale(d.magnitude(), d.prec.frac(), digits)

	return unscaled.Format(m, digits)
}

// Float64 renders d at its nominal digit count and parses the literal as a
// float. The conversion is lossy for values a binary float cannot represent
// exactly; it exists for interop, not for computation.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)

	return f
}
