package wire

import (
	"fmt"

	"github.com/anirudhraja/protocore/buffer"
)

// Value is a single value as it appears on the wire: exactly one of a varint,
// a fixed64, a fixed32 or a length-delimited payload. Groups, which are only
// ever read, carry their raw body as bytes.
//
// Value does not know what the field means. Reading a varint as sint32 or an
// enum is the caller's business.
type Value struct {
	typ   WireType
	num   uint64
	bytes buffer.Slice
}

// VarintValue returns a varint payload.
func VarintValue(v uint64) Value { return Value{typ: WireVarint, num: v} }

// Fixed64Value returns a fixed64 payload.
func Fixed64Value(v uint64) Value { return Value{typ: WireFixed64, num: v} }

// Fixed32Value returns a fixed32 payload.
func Fixed32Value(v uint32) Value { return Value{typ: WireFixed32, num: uint64(v)} }

// BytesValue returns a length-delimited payload.
func BytesValue(b buffer.Slice) Value { return Value{typ: WireBytes, bytes: b} }

// GroupValue returns a group whose body (everything between the start and
// end tags) is b.
func GroupValue(b buffer.Slice) Value { return Value{typ: WireStartGroup, bytes: b} }

// Type returns the wire type of the payload.
func (v Value) Type() WireType { return v.typ }

// Varint returns the varint payload, or 0 for other shapes.
func (v Value) Varint() uint64 {
	if v.typ != WireVarint {
		return 0
	}
	return v.num
}

// Fixed64 returns the fixed64 payload, or 0 for other shapes.
func (v Value) Fixed64() uint64 {
	if v.typ != WireFixed64 {
		return 0
	}
	return v.num
}

// Fixed32 returns the fixed32 payload, or 0 for other shapes.
func (v Value) Fixed32() uint32 {
	if v.typ != WireFixed32 {
		return 0
	}
	return uint32(v.num)
}

// Bytes returns the length-delimited payload or group body.
func (v Value) Bytes() buffer.Slice {
	if v.typ != WireBytes && v.typ != WireStartGroup {
		return buffer.Slice{}
	}
	return v.bytes
}

// Equal compares shape and payload.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case WireBytes, WireStartGroup:
		return v.bytes.Equal(o.bytes)
	default:
		return v.num == o.num
	}
}

func (v Value) String() string {
	switch v.typ {
	case WireVarint:
		return fmt.Sprintf("varint(%d)", v.num)
	case WireFixed64:
		return fmt.Sprintf("fixed64(%#016x)", v.num)
	case WireFixed32:
		return fmt.Sprintf("fixed32(%#08x)", uint32(v.num))
	case WireBytes:
		return fmt.Sprintf("bytes(%d)", v.bytes.Len())
	case WireStartGroup:
		return fmt.Sprintf("group(%d)", v.bytes.Len())
	default:
		return v.typ.String()
	}
}

// size returns the encoded size of the payload without its tag. Groups
// include their end tag, which needs the field number.
func (v Value) size(num FieldNumber) int {
	switch v.typ {
	case WireVarint:
		return SizeVarint(v.num)
	case WireFixed64:
		return 8
	case WireFixed32:
		return 4
	case WireBytes:
		return SizeBytes(v.bytes.Len())
	case WireStartGroup:
		return v.bytes.Len() + SizeTag(num)
	}
	return 0
}

// appendTo appends tag and payload.
func (v Value) appendTo(b []byte, num FieldNumber) []byte {
	b = AppendVarint(b, uint64(MakeTag(num, v.typ)))
	switch v.typ {
	case WireVarint:
		b = AppendVarint(b, v.num)
	case WireFixed64:
		b = appendFixed64(b, v.num)
	case WireFixed32:
		b = appendFixed32(b, uint32(v.num))
	case WireBytes:
		b = AppendVarint(b, uint64(v.bytes.Len()))
		b = append(b, v.bytes.Bytes()...)
	case WireStartGroup:
		b = append(b, v.bytes.Bytes()...)
		b = AppendVarint(b, uint64(MakeTag(num, WireEndGroup)))
	}
	return b
}

// ConsumeValue reads one payload of type wt from the decoder. Groups are read
// up to and including the matching end tag for num.
func (d *Decoder) ConsumeValue(num FieldNumber, wt WireType) (Value, error) {
	switch wt {
	case WireVarint:
		v, err := d.DecodeVarint()
		return VarintValue(v), err
	case WireFixed64:
		v, err := d.DecodeFixed64()
		return Fixed64Value(v), err
	case WireFixed32:
		v, err := d.DecodeFixed32()
		return Fixed32Value(v), err
	case WireBytes:
		b, err := d.DecodeBytes()
		return BytesValue(b), err
	case WireStartGroup:
		start := d.pos
		bodyEnd, err := d.skipGroup(num)
		if err != nil {
			return Value{}, err
		}
		body, err := d.backing.Slice(start, bodyEnd-start)
		return GroupValue(body), err
	default:
		return Value{}, malformed("field %d: invalid wire type %v", num, wt)
	}
}
