package wire

import "fmt"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int8

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated groups, read only
	WireEndGroup   WireType = 4 // deprecated groups, read only
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// Valid reports whether t is one of the six wire types defined by protobuf.
// Values 6 and 7 fit in the tag's low three bits but are never legal.
func (t WireType) Valid() bool {
	return t >= WireVarint && t <= WireFixed32
}

func (t WireType) String() string {
	switch t {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", int8(t))
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

const (
	MinFieldNumber FieldNumber = 1
	MaxFieldNumber FieldNumber = 1<<29 - 1

	FirstReservedNumber FieldNumber = 19000
	LastReservedNumber  FieldNumber = 19999
)

// IsValid reports whether n can appear on the wire.
func (n FieldNumber) IsValid() bool {
	return n >= MinFieldNumber && n <= MaxFieldNumber
}

// IsReserved reports whether n lies in the range reserved for the protobuf
// implementation. Schema tooling rejects these; the codec does not.
func (n FieldNumber) IsReserved() bool {
	return n >= FirstReservedNumber && n <= LastReservedNumber
}

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType&7))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// SizeTag returns the encoded size of the tag for fieldNumber.
func SizeTag(fieldNumber FieldNumber) int {
	return SizeVarint(uint64(fieldNumber) << 3)
}
