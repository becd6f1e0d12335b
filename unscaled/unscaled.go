package unscaled

import (
	"math/big"
	"strings"

	"github.com/calebcase/oops"
)

var Error = oops.Namespace("unscaled")

var one = big.NewInt(1)

var exp10cache [64]big.Int = func() [64]big.Int {
	e10 := [64]big.Int{}
	e10i := big.NewInt(1)
	for i := range e10 {
		e10[i].Set(e10i)
		e10i = new(big.Int).Mul(e10i, big.NewInt(10))
	}
	return e10
}()

// Exp10 returns 10^n. The result is shared for small n and must not be
// modified by the caller.
func Exp10(n uint32) *big.Int {
	if int(n) < len(exp10cache) {
		return &exp10cache[n]
	}

	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Parse assembles a decimal literal into a magnitude holding frac fractional
// digits. The literal is an optional minus sign, one or more digits, and an
// optional dot followed by one or more digits. Fractional digits beyond frac
// are dropped; missing ones are zero filled.
func Parse(lit string, frac uint32) (_ *big.Int, err error) {
	defer Error.WrapP(&err)

	s := lit
	neg := false

	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	ip := s
	fp := ""

	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		ip = s[:dot]
		fp = s[dot+1:]

		if fp == "" {
			return nil, Error.New("malformed decimal literal: %q", lit)
		}
	}

	if ip == "" {
		return nil, Error.New("malformed decimal literal: %q", lit)
	}

	for _, part := range []string{ip, fp} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return nil, Error.New("malformed decimal literal: %q", lit)
			}
		}
	}

	if uint32(len(fp)) > frac {
		fp = fp[:frac]
	}

	digits := ip + fp + strings.Repeat("0", int(frac)-len(fp))

	m, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, Error.New("malformed decimal literal: %q", lit)
	}

	if neg {
		m.Neg(m)
	}

	return m, nil
}

// QuoRound divides num by den rounding the quotient half away from zero. The
// division is performed on the absolute values and the sign is reapplied
// afterward, so rounding is symmetric for positive and negative values.
func QuoRound(num, den *big.Int) *big.Int {
	absDen := new(big.Int).Abs(den)

	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(new(big.Int).Abs(num), absDen, r)

	r.Lsh(r, 1)
	if r.Cmp(absDen) >= 0 {
		q.Add(q, one)
	}

	if (num.Sign() < 0) != (den.Sign() < 0) {
		q.Neg(q)
	}

	return q
}

// Rescale converts a magnitude holding from fractional digits into one
// holding to fractional digits. Adding digits is exact. Removing digits
// rounds half away from zero.
func Rescale(m *big.Int, from, to uint32) *big.Int {
	switch {
	case to == from:
		return new(big.Int).Set(m)
	case to > from:
		return new(big.Int).Mul(m, Exp10(to-from))
	default:
		return QuoRound(m, Exp10(from-to))
	}
}

// Format renders a magnitude holding frac fractional digits as a decimal
// literal, inserting the dot and zero filling the fractional part. A zero
// magnitude never renders a sign.
func Format(m *big.Int, frac uint32) string {
	s := new(big.Int).Abs(m).String()

	if pad := int(frac) + 1 - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}

	var b strings.Builder

	if m.Sign() < 0 {
		b.WriteByte('-')
	}

	b.WriteString(s[:len(s)-int(frac)])

	if frac > 0 {
		b.WriteByte('.')
		b.WriteString(s[len(s)-int(frac):])
	}

	return b.String()
}
