// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = magnitude * 10 ^ -(digits + padding)
//
// Where number is the fixed point number, magnitude is an unscaled
// arbitrary precision integer, digits is the number of fractional digits
// the number retains, and padding is a count of guard digits carried
// beyond that. For example, with digits=2 and padding=0:
//
//  1.23 = 123 * 10^-2
//
// The default format is 16 digits with 3 guard digits. Because the
// magnitude is arbitrary precision, neither a large integer part nor a
// high digit count can overflow.
//
// Guard Digits
//
// The guard digits exist solely so rounding has something to inspect.
// Every operation that removes fractional digits (arithmetic
// normalization, WithPrecision, rendering) rounds half away from zero:
// the absolute magnitude is divided at the boundary, the quotient is
// bumped when the discarded remainder is at least half a unit, and the
// sign is reapplied. Rounding is therefore symmetric in sign; -0.5
// rounds to -1 at zero digits, not to 0.
//
// Precision Adoption
//
// Binary operations convert the right operand to the left operand's
// format before combining, and the result always adopts the left
// operand's format:
//
//  a := decimal.MustParse("0.10")       // 16 digits
//  b, _ := decimal.ParseExact("0.2", decimal.Precision{Digits: 2})
//
//  a.Add(b) // 16 digits
//  b.Add(a) // 2 digits
//
// This is deliberate and asymmetric: the receiver decides the resolution
// of the result, so a.Add(b) and b.Add(a) denote the same value at
// different resolutions.
//
// Floats
//
// FromFloat64 and Float64 bridge to native floats by rendering a decimal
// literal and parsing it on the other side. Floats with no exact binary
// representation carry their representation error across the bridge:
//
//  decimal.MustParse("0.1")             // exactly 0.1
//  decimal.FromFloat64(0.1)             // whatever 0.1 rounds to in binary
//
// This is an inherent property of binary floats, not something the
// package can correct. Parse literals when exactness matters.
//
// Encoding
//
// The binary form is laid out first by the magnitude rounded to the
// nominal digit count (big-endian, with a trailing sign bit), then the
// digit count as a big-endian uint32. The text form is the String
// rendering.
package decimal
