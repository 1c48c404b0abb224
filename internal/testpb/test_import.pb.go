// Source: protocore/test/test_import.proto

package testpb

import (
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

type ImportedEnum int32

const (
	ImportedEnum_IMPORTED_ENUM_UNSPECIFIED ImportedEnum = 0
	ImportedEnum_IMPORTED_ENUM_ONE         ImportedEnum = 1
	ImportedEnum_IMPORTED_ENUM_TWO         ImportedEnum = 2
)

type ImportedMessage struct {
	Value int32
	Label string

	unknownFields wire.UnknownFields
}

func (m *ImportedMessage) FullName() string { return "protocore.test.imported.ImportedMessage" }

func (m *ImportedMessage) SizeWire(s *wire.Sizer) int {
	n := wire.SizeImplicit(s, 1, wire.Int32Codec, m.Value)
	n += wire.SizeImplicit(s, 2, wire.StringCodec, m.Label)
	return n + m.unknownFields.Size()
}

func (m *ImportedMessage) MarshalWire(e *wire.Encoder) {
	wire.WriteImplicit(e, 1, wire.Int32Codec, m.Value)
	wire.WriteImplicit(e, 2, wire.StringCodec, m.Label)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *ImportedMessage) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadInto(d, wt, wire.Int32Codec, &m.Value)
	case 2:
		return true, wire.ReadInto(d, wt, wire.StringCodec, &m.Label)
	}
	return false, nil
}

func (m *ImportedMessage) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *ImportedMessage) Reset() { *m = ImportedMessage{} }

func (m *ImportedMessage) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "value"
	case 2:
		return "label"
	}
	return ""
}

func (*ImportedMessage) Descriptor() *schema.MessageDescriptor {
	return File_protocore_test_test_import_proto.Message("protocore.test.imported.ImportedMessage")
}

var File_protocore_test_test_import_proto = &schema.LazyFile{
	Raw: rawDescImport,
}

const rawDescImport = "" +
	"\x0a protocore/test/test_import.proto\x12\x17protocore.test.impo" +
	"rted\x22=\x0a\x0fImportedMessage\x12\x14\x0a\x05value\x18\x01 \x01" +
	"(\x05R\x05value\x12\x14\x0a\x05label\x18\x02 \x01(\x09R\x05label" +
	"*[\x0a\x0cImportedEnum\x12\x1d\x0a\x19IMPORTED_ENUM_UNSPECIFIED\x10" +
	"\x00\x12\x15\x0a\x11IMPORTED_ENUM_ONE\x10\x01\x12\x15\x0a\x11IMP" +
	"ORTED_ENUM_TWO\x10\x02b\x06proto3"
