package service

import "math/big"

// The work function runs over the multiplicative group modulo the Mersenne
// prime M = 2^1279 - 1. The modulus is a protocol constant: changing it (or
// the round structure in pow_sloth.go) breaks compatibility with every
// already-issued challenge.
const modulusBits = 1279

var (
	one = big.NewInt(1)

	// modulus = 2^1279 - 1; doubles as the low-bit mask in squareMod.
	modulus = new(big.Int).Sub(new(big.Int).Lsh(one, modulusBits), one)
)

// squareMod sets x to x² mod M in place without dividing: 2^1279 ≡ 1 (mod M),
// so the bits above 1279 fold back onto the low bits. For x in [0, M) the
// result stays in [0, M). scratch must not alias x.
func squareMod(x, scratch *big.Int) {
	x.Mul(x, x)
	scratch.Rsh(x, modulusBits)
	x.And(x, modulus)
	x.Add(x, scratch)
	if x.Bit(modulusBits) == 1 {
		x.SetBit(x, modulusBits, 0)
		x.Add(x, one)
	}
}
