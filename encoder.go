package decimalcql

import (
	"encoding/binary"
	"math/big"

	"github.com/erik404/decimal-cql/integer"
)

// Encode serializes d into the CQL decimal wire format: a 4-byte
// big-endian two's-complement scale followed by the minimal big-endian
// two's-complement unscaled integer. No outer length prefix is added;
// the field's total length belongs to the surrounding protocol.
//
// Host values with a positive exponent (a negative scale) are folded
// into the unscaled integer first, so the emitted scale is always
// non-negative. The fold is an exact multiplication by a power of ten.
func Encode(d Decimal) (data []byte, err error) {
	defer Error.WrapP(&err)

	v := d.Decimal()

	unscaled := v.Coefficient()
	scale := -int64(v.Exponent())

	if scale < 0 {
		unscaled.Mul(unscaled, pow10(-scale))
		scale = 0
	}

	if scale > MaxScale {
		return nil, ErrScaleOutOfRange.New("scale %d exceeds maximum %d", scale, MaxScale)
	}

	if new(big.Int).Abs(unscaled).Cmp(maxMagnitude) > 0 {
		return nil, ErrMagnitudeOverflow.New("unscaled magnitude exceeds 96 bits: %s", unscaled)
	}

	blk := &integer.Block{}
	blk.SetBig(unscaled)

	tail, err := blk.MarshalBinary()
	if err != nil {
		return nil, err
	}

	data = make([]byte, scaleSize, scaleSize+len(tail))
	binary.BigEndian.PutUint32(data, uint32(scale))

	return append(data, tail...), nil
}
