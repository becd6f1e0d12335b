package decimal

import (
	"encoding/binary"

	"github.com/fixnum/fixnum/unscaled"
)

// The binary form is the magnitude rounded to the nominal digit count,
// encoded with a trailing sign bit, followed by the digit count as a
// big-endian uint32. Guard digits are not part of the wire form; decoding
// restores them from the default precision.

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	m := unscaled.Rescale(d.magnitude(), d.prec.frac(), d.prec.Digits)

	mb := unscaled.Marshal(m)

	data = make([]byte, len(mb)+4)
	copy(data, mb)
	binary.BigEndian.PutUint32(data[len(mb):], d.prec.Digits)

	return data, nil
}

// maxWireDigits bounds the digit count accepted from the wire. Larger
// counts would wrap the fractional digit arithmetic or demand absurd
// pow-10 allocations before any value is produced.
const maxWireDigits = 1 << 16

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Encodings whose
// digit count exceeds maxWireDigits (65536) are rejected.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 5 {
		return Error.New("short decimal encoding: %d bytes", len(data))
	}

	digits := binary.BigEndian.Uint32(data[len(data)-4:])
	if digits > maxWireDigits {
		return Error.New("invalid digit count: %d", digits)
	}
	m := unscaled.Unmarshal(data[:len(data)-4])

	prec := Precision{Digits: digits, Padding: DefaultPrecision.Padding}

	*d = Decimal{
		mag:  unscaled.Rescale(m, digits, prec.frac()),
		prec: prec,
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler using the String rendering.
func (d Decimal) MarshalText() (data []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler at the default
// precision.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}
