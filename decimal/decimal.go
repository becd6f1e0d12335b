package decimal

import (
	"math"
	"math/big"
	"strconv"

	"github.com/calebcase/oops"

	"github.com/fixnum/fixnum/unscaled"
)

var Error = oops.Namespace("decimal")

var (
	ErrParse          = Error.New("malformed decimal literal")
	ErrDivisionByZero = Error.New("division by zero")
)

// Precision represents a configured number format. Digits is the number of
// fractional digits a value retains. Padding is the number of guard digits
// carried beyond that so rounding has something to inspect.
type Precision struct {
	Digits  uint32
	Padding uint32
}

// DefaultPrecision is the number format used by the plain constructors.
var DefaultPrecision = Precision{Digits: 16, Padding: 3}

// frac is the fractional digit count of the stored magnitude.
func (p Precision) frac() uint32 {
	return p.Digits + p.Padding
}

// Decimal is a fixed point base 10 decimal number.
//
// The magnitude is the value scaled to Digits+Padding fractional digits. A
// Decimal is immutable: every operation constructs a fresh value and no
// operand is ever modified, so independent values may be used concurrently
// without locking.
//
// The zero value is 0 with zero digits and zero padding.
type Decimal struct {
	mag  *big.Int
	prec Precision
}

// magnitude tolerates the zero value.
func (d Decimal) magnitude() *big.Int {
	if d.mag == nil {
		return new(big.Int)
	}

	return d.mag
}

// rescale converts d to another number format, rounding half away from zero
// when fractional digits are removed.
func (d Decimal) rescale(prec Precision) Decimal {
	if prec == d.prec {
		return d
	}

	return Decimal{
		mag:  unscaled.Rescale(d.magnitude(), d.prec.frac(), prec.frac()),
		prec: prec,
	}
}

// Parse returns the Decimal for a decimal literal at the default precision.
func Parse(lit string) (Decimal, error) {
	return ParseExact(lit, DefaultPrecision)
}

// ParseExact returns the Decimal for a decimal literal at the given
// precision. Fractional digits beyond Digits+Padding are dropped without
// rounding.
func ParseExact(lit string, prec Precision) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	m, perr := unscaled.Parse(lit, prec.frac())
	if perr != nil {
		return Decimal{}, oops.Trace(ErrParse)
	}

	return Decimal{mag: m, prec: prec}, nil
}

// MustParse is like Parse but panics on a malformed literal. It simplifies
// initialization of package level variables and tests.
func MustParse(lit string) Decimal {
	d, err := Parse(lit)
	if err != nil {
		panic(err)
	}

	return d
}

// FromInt64 returns the Decimal for an integer at the default precision.
func FromInt64(i int64) Decimal {
	prec := DefaultPrecision

	return Decimal{
		mag:  new(big.Int).Mul(big.NewInt(i), unscaled.Exp10(prec.frac())),
		prec: prec,
	}
}

// FromFloat64 returns the Decimal for a float at the default precision.
//
// The float is first rendered as a decimal literal and then parsed. Floats
// that have no exact binary representation (0.1, 0.2, ...) therefore carry
// their representation error into the result. This precision loss is
// inherent to interoperating with binary floats; parse a literal instead
// when exactness matters.
func FromFloat64(f float64) (Decimal, error) {
	return FromFloat64Exact(f, DefaultPrecision)
}

// FromFloat64Exact is FromFloat64 at the given precision. NaN and infinities
// have no decimal form and fail with ErrParse.
func FromFloat64Exact(f float64, prec Precision) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, oops.Trace(ErrParse)
	}

	return ParseExact(strconv.FormatFloat(f, 'f', -1, 64), prec)
}

// Precision returns the number format of d.
func (d Decimal) Precision() Precision {
	return d.prec
}

// Unscaled returns a copy of the magnitude, which holds the value scaled to
// Digits+Padding fractional digits.
func (d Decimal) Unscaled() *big.Int {
	return new(big.Int).Set(d.magnitude())
}

// WithPrecision returns d with the given number of fractional digits,
// keeping the padding. Removing digits rounds half away from zero and is
// lossy: converting back does not restore the dropped digits. Requesting the
// current digit count returns d unchanged.
func (d Decimal) WithPrecision(digits uint32) Decimal {
	if digits == d.prec.Digits {
		return d
	}

	return d.rescale(Precision{Digits: digits, Padding: d.prec.Padding})
}
