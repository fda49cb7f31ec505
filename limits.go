package decimalcql

import "math/big"

// scaleSize is the width of the wire scale field in bytes.
const scaleSize = 4

// MaxScale is the largest power-of-ten divisor exponent the codec
// accepts. Together with the 96-bit magnitude limit it pins the
// codec's domain to the portable fixed-point decimal range, so encoded
// values remain readable by peers bound to that representation.
const MaxScale = 28

// maxMagnitude is the largest unscaled magnitude, 2^96 - 1.
var maxMagnitude = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))

var ten = big.NewInt(10)

// pow10 returns 10^n for n >= 0.
func pow10(n int64) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(n), nil)
}
