package decimal

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/fixnum/fixnum/unscaled"
)

// Every binary operation converts the right operand to the left operand's
// precision before combining, so the result always adopts the precision of
// the receiver. See the package documentation.

// Add returns d + o at the precision of d.
func (d Decimal) Add(o Decimal) Decimal {
	o = o.rescale(d.prec)

	return Decimal{
		mag:  new(big.Int).Add(d.magnitude(), o.magnitude()),
		prec: d.prec,
	}
}

// Sub returns d - o at the precision of d.
func (d Decimal) Sub(o Decimal) Decimal {
	o = o.rescale(d.prec)

	return Decimal{
		mag:  new(big.Int).Sub(d.magnitude(), o.magnitude()),
		prec: d.prec,
	}
}

// Mul returns d * o at the precision of d. The product of the magnitudes is
// scaled back down to the representation, rounding half away from zero at
// the guard boundary.
func (d Decimal) Mul(o Decimal) Decimal {
	o = o.rescale(d.prec)

	m := new(big.Int).Mul(d.magnitude(), o.magnitude())

	return Decimal{
		mag:  unscaled.Rescale(m, 2*d.prec.frac(), d.prec.frac()),
		prec: d.prec,
	}
}

// Div returns d / o at the precision of d, rounding half away from zero. A
// zero valued divisor fails with ErrDivisionByZero.
func (d Decimal) Div(o Decimal) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	o = o.rescale(d.prec)

	if o.magnitude().Sign() == 0 {
		return Decimal{}, oops.Trace(ErrDivisionByZero)
	}

	num := new(big.Int).Mul(d.magnitude(), unscaled.Exp10(d.prec.frac()))

	return Decimal{
		mag:  unscaled.QuoRound(num, o.magnitude()),
		prec: d.prec,
	}, nil
}

// Mod returns the remainder of d / o at the precision of d. The remainder
// is truncated: its sign follows d, matching integer division. A zero
// valued divisor fails with ErrDivisionByZero.
func (d Decimal) Mod(o Decimal) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	o = o.rescale(d.prec)

	if o.magnitude().Sign() == 0 {
		return Decimal{}, oops.Trace(ErrDivisionByZero)
	}

	return Decimal{
		mag:  new(big.Int).Rem(d.magnitude(), o.magnitude()),
		prec: d.prec,
	}, nil
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{
		mag:  new(big.Int).Neg(d.magnitude()),
		prec: d.prec,
	}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	return Decimal{
		mag:  new(big.Int).Abs(d.magnitude()),
		prec: d.prec,
	}
}

// Sign returns -1, 0, or +1 depending on whether d is negative, zero, or
// positive.
func (d Decimal) Sign() int {
	return d.magnitude().Sign()
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d.magnitude().Sign() == 0
}

// Cmp compares d and o at the precision of d and returns -1, 0, or +1.
func (d Decimal) Cmp(o Decimal) int {
	o = o.rescale(d.prec)

	return d.magnitude().Cmp(o.magnitude())
}
