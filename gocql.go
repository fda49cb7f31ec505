package decimalcql

import "github.com/gocql/gocql"

// MarshalCQL implements gocql.Marshaler.
func (d Decimal) MarshalCQL(info gocql.TypeInfo) ([]byte, error) {
	if info.Type() != gocql.TypeDecimal {
		return nil, Error.New("cannot marshal into column type %s", info.Type())
	}

	return Encode(d)
}

// UnmarshalCQL implements gocql.Unmarshaler. A null column (no bytes)
// is an error: the value carries no null state.
func (d *Decimal) UnmarshalCQL(info gocql.TypeInfo, data []byte) error {
	if info.Type() != gocql.TypeDecimal {
		return Error.New("cannot unmarshal from column type %s", info.Type())
	}

	v, err := Decode(data)
	if err != nil {
		return err
	}

	*d = v

	return nil
}
