package unscaled

import (
	"math/big"
)

// Marshal returns the binary form of a signed magnitude: the absolute value
// shifted left one bit with the sign in the trailing bit, big-endian.
func Marshal(m *big.Int) []byte {
	i := new(big.Int).Abs(m)

	i.Lsh(i, 1)
	if m.Sign() < 0 {
		i.SetBit(i, 0, 1)
	}

	data := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// Unmarshal decodes a magnitude produced by Marshal.
func Unmarshal(data []byte) *big.Int {
	i := new(big.Int).SetBytes(data)

	neg := i.Bit(0) == 1
	i.Rsh(i, 1)

	if neg {
		i.Neg(i)
	}

	return i
}
