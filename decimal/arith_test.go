package decimal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		want string
	}

	tcs := []TC{
		{
			name: "exact fractions",
			a:    "0.1",
			b:    "0.2",
			want: "0.3000000000000000",
		},
		{
			name: "negative",
			a:    "1.5",
			b:    "-2.25",
			want: "-0.7500000000000000",
		},
		{
			name: "zero",
			a:    "0",
			b:    "0",
			want: "0.0000000000000000",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got := MustParse(tc.a).Add(MustParse(tc.b))
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestAddIsExact(t *testing.T) {
	// The classic binary float artifact does not occur.
	got := MustParse("0.1").Add(MustParse("0.2"))
	require.Equal(t, 0.3, got.Float64())
	require.Equal(t, 0, got.Cmp(MustParse("0.3")))
}

func TestSub(t *testing.T) {
	require.Equal(t, "0.0500000000000000",
		MustParse("0.15").Sub(MustParse("0.1")).String())

	// Subtracting equal negatives yields unsigned zero.
	require.Equal(t, "0.0000000000000000",
		MustParse("-5").Sub(MustParse("-5")).String())
}

func TestPrecisionAdoption(t *testing.T) {
	coarse, err := ParseExact("0.123456789", Precision{Digits: 2, Padding: 3})
	require.NoError(t, err)

	fine, err := ParseExact("0.123456789", Precision{Digits: 9, Padding: 3})
	require.NoError(t, err)

	// The result adopts the receiver's precision: the right operand is
	// converted down to the receiver's format before combining.
	sum := coarse.Add(fine)
	require.Equal(t, Precision{Digits: 2, Padding: 3}, sum.Precision())
	require.Equal(t, "0.25", sum.String())

	// Swapping the operands keeps the fine format instead.
	sum = fine.Add(coarse)
	require.Equal(t, Precision{Digits: 9, Padding: 3}, sum.Precision())
	require.Equal(t, "0.246906789", sum.String())
}

func TestMul(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		want string
	}

	tcs := []TC{
		{
			name: "exact",
			a:    "1.5",
			b:    "2",
			want: "3.0000000000000000",
		},
		{
			name: "signs",
			a:    "-1.5",
			b:    "2",
			want: "-3.0000000000000000",
		},
		{
			name: "fractions",
			a:    "0.1",
			b:    "0.1",
			want: "0.0100000000000000",
		},
		{
			name: "zero",
			a:    "123.456",
			b:    "0",
			want: "0.0000000000000000",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got := MustParse(tc.a).Mul(MustParse(tc.b))
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestMulRoundsAtGuardBoundary(t *testing.T) {
	prec := Precision{Digits: 1, Padding: 0}

	a, err := ParseExact("2.5", prec)
	require.NoError(t, err)

	// 2.5 * 2.5 = 6.25, which rounds half away from zero to 6.3 at one
	// digit with no guard.
	require.Equal(t, "6.3", a.Mul(a).String())
	require.Equal(t, "-6.3", a.Neg().Mul(a).String())
}

func TestDiv(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		want string
	}

	tcs := []TC{
		{
			name: "exact quotient",
			a:    "6",
			b:    "2",
			want: "3.0000000000000000",
		},
		{
			name: "repeating third",
			a:    "1",
			b:    "3",
			want: "0.3333333333333333",
		},
		{
			name: "repeating two thirds rounds up",
			a:    "2",
			b:    "3",
			want: "0.6666666666666667",
		},
		{
			name: "signs",
			a:    "-6",
			b:    "2",
			want: "-3.0000000000000000",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got, err := MustParse(tc.a).Div(MustParse(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestDivExactQuotientHasNoResidue(t *testing.T) {
	got, err := MustParse("6").Div(MustParse("2"))
	require.NoError(t, err)
	require.Equal(t, float64(3), got.Float64())
}

func TestMod(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		want string
	}

	tcs := []TC{
		{
			name: "plain",
			a:    "7.5",
			b:    "2",
			want: "1.5000000000000000",
		},
		{
			name: "sign follows dividend",
			a:    "-7.5",
			b:    "2",
			want: "-1.5000000000000000",
		},
		{
			name: "negative divisor",
			a:    "7.5",
			b:    "-2",
			want: "1.5000000000000000",
		},
		{
			name: "exact multiple",
			a:    "9",
			b:    "3",
			want: "0.0000000000000000",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got, err := MustParse(tc.a).Mod(MustParse(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	zeros := []string{"0", "0.00", "-0.0"}

	for i, z := range zeros {
		t.Run(fmt.Sprintf("[%d]%q", i, z), func(t *testing.T) {
			_, err := MustParse("123.45").Div(MustParse(z))
			require.ErrorIs(t, err, ErrDivisionByZero)

			_, err = MustParse("123.45").Mod(MustParse(z))
			require.ErrorIs(t, err, ErrDivisionByZero)

			_, err = MustParse("0").Div(MustParse(z))
			require.ErrorIs(t, err, ErrDivisionByZero)
		})
	}
}

func TestNegAbsSign(t *testing.T) {
	d := MustParse("-1.5")

	require.Equal(t, -1, d.Sign())
	require.Equal(t, "1.5000000000000000", d.Neg().String())
	require.Equal(t, "1.5000000000000000", d.Abs().String())
	require.Equal(t, 1, d.Neg().Sign())
	require.Equal(t, 0, MustParse("0").Sign())
	require.False(t, d.IsZero())
	require.True(t, MustParse("0.0").IsZero())
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, MustParse("1.5").Cmp(MustParse("1.50")))
	require.Equal(t, -1, MustParse("1.4").Cmp(MustParse("1.5")))
	require.Equal(t, 1, MustParse("1.5").Cmp(MustParse("-1.5")))

	// Comparison happens at the receiver's precision.
	coarse, err := ParseExact("1.0", Precision{Digits: 1, Padding: 0})
	require.NoError(t, err)
	require.Equal(t, 0, coarse.Cmp(MustParse("1.04")))
}
