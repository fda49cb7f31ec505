// Package integer provides the minimal big-endian two's-complement
// encoding for signed integers of arbitrary size.
//
// Minimal means the fewest bytes that still carry the sign
// unambiguously: a positive value whose top bit would be set gains one
// 0x00 byte, a negative value is emitted in the smallest width k with
// -2^(8k-1) <= value. Zero is a single 0x00 byte.
package integer

import "math/big"

var one = big.NewInt(1)

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// SetBig sets the block from i.
func (b *Block) SetBig(i *big.Int) {
	b.Value = i.Bytes()
	b.Negative = i.Sign() < 0

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}
}

// Big returns the block as a big.Int.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)

	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	if i.Sign() == 0 {
		return []byte{0}, nil
	}

	if !b.Negative {
		data = i.Bytes()

		// A set top bit would read back as negative.
		if data[0]&0x80 != 0 {
			data = append([]byte{0}, data...)
		}

		return data, nil
	}

	// Smallest k with magnitude <= 2^(8k-1), i.e. magnitude-1 fits
	// in 8k-1 bits.
	k := new(big.Int).Sub(i, one).BitLen()/8 + 1

	c := new(big.Int).Lsh(one, uint(8*k))
	c.Sub(c, i)

	data = make([]byte, k)
	c.FillBytes(data)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Input need
// not be minimal; redundant sign bytes are accepted.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty input")
	}

	i := new(big.Int).SetBytes(data)

	negative := data[0]&0x80 != 0
	if negative {
		c := new(big.Int).Lsh(one, uint(8*len(data)))
		i.Sub(c, i)
	}

	value := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(value) == 0 {
		value = []byte{0}
		negative = false
	}

	b.Value = value
	b.Negative = negative

	return nil
}
