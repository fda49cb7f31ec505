package decimalcql

import (
	"encoding/binary"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/erik404/decimal-cql/integer"
)

// Decode parses a CQL decimal field payload. It is the exact inverse
// of Encode for every value Encode accepts: decoding never rounds or
// truncates, so any payload outside the representable range is a hard
// failure.
//
// The unscaled integer need not be minimally encoded; redundant sign
// bytes are accepted.
func Decode(data []byte) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	if len(data) < scaleSize+1 {
		return Decimal{}, ErrTruncatedInput.New("payload is %d bytes, need at least %d", len(data), scaleSize+1)
	}

	scale := int32(binary.BigEndian.Uint32(data[:scaleSize]))

	if scale < 0 {
		return Decimal{}, ErrNegativeScale.New("scale %d", scale)
	}

	if scale > MaxScale {
		return Decimal{}, ErrScaleOutOfRange.New("scale %d exceeds maximum %d", scale, MaxScale)
	}

	blk := &integer.Block{}
	err = blk.UnmarshalBinary(data[scaleSize:])
	if err != nil {
		return Decimal{}, err
	}

	unscaled := blk.Big()

	if new(big.Int).SetBytes(blk.Value).Cmp(maxMagnitude) > 0 {
		return Decimal{}, ErrMagnitudeOverflow.New("unscaled magnitude exceeds 96 bits: %s", unscaled)
	}

	return From(decimal.NewFromBigInt(unscaled, -scale)), nil
}
