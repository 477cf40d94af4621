// Package codec encodes entry-point argument and result records. The wire
// form is the protobuf encoding of fixed one-to-three field messages:
// bounded bytes fields for addresses, varint fields for quantities. Records
// are built and parsed with protowire directly since the schemas never
// change shape.
package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/koinledger/koin/types"
)

func appendBytesField(buf []byte, num protowire.Number, value []byte) []byte {
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	return protowire.AppendBytes(buf, value)
}

func appendVarintField(buf []byte, num protowire.Number, value uint64) []byte {
	buf = protowire.AppendTag(buf, num, protowire.VarintType)
	return protowire.AppendVarint(buf, value)
}

// field is one decoded protobuf field; exactly one of bytes/varint is set
// depending on the wire type.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	bytes  []byte
	varint uint64
}

// scan walks a record and hands every field to visit. Unknown fields are
// skipped, matching protobuf semantics.
func scan(data []byte, visit func(f field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("malformed record tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("malformed bytes field %d: %w", num, protowire.ParseError(n))
			}
			f.bytes = v
			data = data[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("malformed varint field %d: %w", num, protowire.ParseError(n))
			}
			f.varint = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("malformed field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		if err := visit(f); err != nil {
			return err
		}
	}
	return nil
}

func addressField(f field, name string) (types.Address, error) {
	addr := types.Address(append([]byte(nil), f.bytes...))
	if err := addr.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s address: %w", name, err)
	}
	return addr, nil
}
