// Source: google/protobuf/any.proto

package anypb

import (
	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

// Any holds an arbitrary serialized message together with a URL naming its
// type.
type Any struct {
	TypeURL string
	Value   buffer.Slice

	unknownFields wire.UnknownFields
}

func (m *Any) FullName() string { return "google.protobuf.Any" }

func (m *Any) SizeWire(s *wire.Sizer) int {
	n := wire.SizeImplicit(s, 1, wire.StringCodec, m.TypeURL)
	n += wire.SizeImplicit(s, 2, wire.BytesCodec, m.Value)
	return n + m.unknownFields.Size()
}

func (m *Any) MarshalWire(e *wire.Encoder) {
	wire.WriteImplicit(e, 1, wire.StringCodec, m.TypeURL)
	wire.WriteImplicit(e, 2, wire.BytesCodec, m.Value)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *Any) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadInto(d, wt, wire.StringCodec, &m.TypeURL)
	case 2:
		return true, wire.ReadInto(d, wt, wire.BytesCodec, &m.Value)
	}
	return false, nil
}

func (m *Any) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *Any) Reset() { *m = Any{} }

func (m *Any) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "type_url"
	case 2:
		return "value"
	}
	return ""
}

// Descriptor returns the schema of google.protobuf.Any.
func (*Any) Descriptor() *schema.MessageDescriptor {
	return File_google_protobuf_any_proto.Message("google.protobuf.Any")
}

var File_google_protobuf_any_proto = &schema.LazyFile{
	Raw: rawDesc,
}

const rawDesc = "" +
	"\x0a\x19google/protobuf/any.proto\x12\x0fgoogle.protobuf\x226\x0a" +
	"\x03Any\x12\x19\x0a\x08type_url\x18\x01 \x01(\x09R\x07typeUrl\x12" +
	"\x14\x0a\x05value\x18\x02 \x01(\x0cR\x05valueBv\x0a\x13com.googl" +
	"e.protobufB\x08AnyProtoP\x01Z,google.golang.org/protobuf/types/k" +
	"nown/anypb\xa2\x02\x03GPB\xaa\x02\x1eGoogle.Protobuf.WellKnownTy" +
	"pesb\x06proto3"
