// Package decimalcql converts between decimal.Decimal values and the
// binary representation of the CQL decimal column type.
//
// The equation for a decimal number is:
//
//	number = unscaled * 10 ^ -scale
//
// Where number is a fixed point number, unscaled is a signed integer,
// and scale is a non-negative base 10 exponent. For example:
//
//	3.14 = 314 * 10^-2
//
// Wire Format
//
// A field payload is the scale followed by the unscaled integer:
//
//	| Field    | Size     | Encoding                                            |
//	|----------|----------|-----------------------------------------------------|
//	| scale    | 4 bytes  | big-endian two's-complement                         |
//	| unscaled | >=1 byte | big-endian two's-complement, minimal length         |
//
// The unscaled integer has no length prefix; it spans all bytes after
// the scale, with the field's total length owned by the surrounding
// protocol. Encode always emits the minimal two's-complement form (see
// the integer subpackage); Decode also accepts redundant sign bytes.
//
// For example, 3.14 encodes as:
//
//	0x00 0x00 0x00 0x02   scale 2
//	0x01 0x3A             unscaled 314
//
// Domain
//
// The codec accepts scales 0 through MaxScale and unscaled magnitudes
// up to 2^96-1, the portable fixed-point decimal range. Inputs outside
// that range fail with ErrNegativeScale, ErrScaleOutOfRange, or
// ErrMagnitudeOverflow; payloads shorter than 5 bytes fail with
// ErrTruncatedInput. Failures are never substituted with a default or
// rounded value.
//
// Both Encode and Decode are pure functions over their inputs and are
// safe for any number of concurrent calls.
//
// Decimal also implements gocql.Marshaler and gocql.Unmarshaler, so it
// can be bound directly to decimal columns through the gocql driver:
//
//	var price decimalcql.Decimal
//	err := session.Query(`SELECT price FROM quotes WHERE id = ?`, id).Scan(&price)
//	sum := price.Decimal().Add(fee)
package decimalcql
