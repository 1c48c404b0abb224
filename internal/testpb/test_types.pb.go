// Source: protocore/test/test_types.proto

package testpb

import (
	"github.com/google/uuid"

	"github.com/anirudhraja/protocore/anypb"
	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/convert"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

type Color int32

const (
	Color_COLOR_UNSPECIFIED Color = 0
	Color_COLOR_RED         Color = 1
	Color_COLOR_GREEN       Color = 2
	Color_COLOR_BLUE        Color = 3
)

// Converters binds the fields of this file that carry domain types.
var Converters = convert.NewTable(map[string]convert.Binding{
	"protocore.test.TestAllTypes.id": convert.Bind(convert.KindBytes, convert.UUID),
})

var (
	colorCodec  = wire.EnumCodec[Color]()
	nestedCodec = wire.MessageCodec[TestAllTypes_Nested]()
	idCodec     = convert.Codec(wire.BytesCodec, convert.UUID)
)

type TestAllTypes struct {
	FInt32    int32
	FInt64    int64
	FUint32   uint32
	FUint64   uint64
	FSint32   int32
	FSint64   int64
	FFixed32  uint32
	FFixed64  uint64
	FSfixed32 int32
	FSfixed64 int64
	FFloat    float32
	FDouble   float64
	FBool     bool
	FString   string
	FBytes    buffer.Slice
	FColor    Color
	FNested   *TestAllTypes_Nested
	FImported *ImportedMessage
	OInt32    *int32
	OString   *string

	RInt32         []int32
	RSint64        []int64
	RFixed32       []uint32
	RDouble        []float64
	RBool          []bool
	RColor         []Color
	RInt64Unpacked []int64
	RString        []string
	RBytes         []buffer.Slice
	RNested        []*TestAllTypes_Nested

	MStringInt32  map[string]int32
	MInt64String  map[int64]string
	MStringNested map[string]*TestAllTypes_Nested
	MUint32Bytes  map[uint32]buffer.Slice

	// Types that are valid to be assigned to Choice:
	//
	//	*TestAllTypes_CUint32
	//	*TestAllTypes_CString
	//	*TestAllTypes_CNested
	Choice isTestAllTypes_Choice

	Id      uuid.UUID
	Payload *anypb.Any

	unknownFields wire.UnknownFields
}

type isTestAllTypes_Choice interface {
	isTestAllTypes_Choice()
}

type TestAllTypes_CUint32 struct {
	CUint32 uint32
}

type TestAllTypes_CString struct {
	CString string
}

type TestAllTypes_CNested struct {
	CNested *TestAllTypes_Nested
}

func (*TestAllTypes_CUint32) isTestAllTypes_Choice() {}
func (*TestAllTypes_CString) isTestAllTypes_Choice() {}
func (*TestAllTypes_CNested) isTestAllTypes_Choice() {}

func (m *TestAllTypes) GetOInt32() int32 {
	if m != nil && m.OInt32 != nil {
		return *m.OInt32
	}
	return 0
}

func (m *TestAllTypes) GetOString() string {
	if m != nil && m.OString != nil {
		return *m.OString
	}
	return ""
}

func (m *TestAllTypes) GetCUint32() uint32 {
	if c, ok := m.Choice.(*TestAllTypes_CUint32); ok {
		return c.CUint32
	}
	return 0
}

func (m *TestAllTypes) GetCString() string {
	if c, ok := m.Choice.(*TestAllTypes_CString); ok {
		return c.CString
	}
	return ""
}

func (m *TestAllTypes) GetCNested() *TestAllTypes_Nested {
	if c, ok := m.Choice.(*TestAllTypes_CNested); ok {
		return c.CNested
	}
	return nil
}

func (m *TestAllTypes) FullName() string { return "protocore.test.TestAllTypes" }

func (m *TestAllTypes) SizeWire(s *wire.Sizer) int {
	n := wire.SizeImplicit(s, 1, wire.Int32Codec, m.FInt32)
	n += wire.SizeImplicit(s, 2, wire.Int64Codec, m.FInt64)
	n += wire.SizeImplicit(s, 3, wire.Uint32Codec, m.FUint32)
	n += wire.SizeImplicit(s, 4, wire.Uint64Codec, m.FUint64)
	n += wire.SizeImplicit(s, 5, wire.Sint32Codec, m.FSint32)
	n += wire.SizeImplicit(s, 6, wire.Sint64Codec, m.FSint64)
	n += wire.SizeImplicit(s, 7, wire.Fixed32Codec, m.FFixed32)
	n += wire.SizeImplicit(s, 8, wire.Fixed64Codec, m.FFixed64)
	n += wire.SizeImplicit(s, 9, wire.Sfixed32Codec, m.FSfixed32)
	n += wire.SizeImplicit(s, 10, wire.Sfixed64Codec, m.FSfixed64)
	n += wire.SizeImplicit(s, 11, wire.FloatCodec, m.FFloat)
	n += wire.SizeImplicit(s, 12, wire.DoubleCodec, m.FDouble)
	n += wire.SizeImplicit(s, 13, wire.BoolCodec, m.FBool)
	n += wire.SizeImplicit(s, 14, wire.StringCodec, m.FString)
	n += wire.SizeImplicit(s, 15, wire.BytesCodec, m.FBytes)
	n += wire.SizeImplicit(s, 16, colorCodec, m.FColor)
	n += wire.SizeMessageField(s, 17, m.FNested)
	n += wire.SizeMessageField(s, 18, m.FImported)
	n += wire.SizeOptional(s, 19, wire.Int32Codec, m.OInt32)
	n += wire.SizeOptional(s, 20, wire.StringCodec, m.OString)

	n += wire.SizePacked(s, 31, wire.Int32Codec, m.RInt32)
	n += wire.SizePacked(s, 32, wire.Sint64Codec, m.RSint64)
	n += wire.SizePacked(s, 33, wire.Fixed32Codec, m.RFixed32)
	n += wire.SizePacked(s, 34, wire.DoubleCodec, m.RDouble)
	n += wire.SizePacked(s, 35, wire.BoolCodec, m.RBool)
	n += wire.SizePacked(s, 36, colorCodec, m.RColor)
	n += wire.SizeRepeated(s, 37, wire.Int64Codec, m.RInt64Unpacked)
	n += wire.SizeRepeated(s, 38, wire.StringCodec, m.RString)
	n += wire.SizeRepeated(s, 39, wire.BytesCodec, m.RBytes)
	n += wire.SizeMessages(s, 40, m.RNested)

	n += wire.SizeMap(s, 51, wire.StringCodec, wire.Int32Codec, m.MStringInt32)
	n += wire.SizeMap(s, 52, wire.Int64Codec, wire.StringCodec, m.MInt64String)
	n += wire.SizeMap(s, 53, wire.StringCodec, nestedCodec, m.MStringNested)
	n += wire.SizeMap(s, 54, wire.Uint32Codec, wire.BytesCodec, m.MUint32Bytes)

	switch c := m.Choice.(type) {
	case *TestAllTypes_CUint32:
		n += wire.SizeField(s, 61, wire.Uint32Codec, c.CUint32)
	case *TestAllTypes_CString:
		n += wire.SizeField(s, 62, wire.StringCodec, c.CString)
	case *TestAllTypes_CNested:
		n += wire.SizeField(s, 63, nestedCodec, c.CNested)
	}

	n += wire.SizeImplicit(s, 70, idCodec, m.Id)
	n += wire.SizeMessageField(s, 71, m.Payload)
	return n + m.unknownFields.Size()
}

func (m *TestAllTypes) MarshalWire(e *wire.Encoder) {
	wire.WriteImplicit(e, 1, wire.Int32Codec, m.FInt32)
	wire.WriteImplicit(e, 2, wire.Int64Codec, m.FInt64)
	wire.WriteImplicit(e, 3, wire.Uint32Codec, m.FUint32)
	wire.WriteImplicit(e, 4, wire.Uint64Codec, m.FUint64)
	wire.WriteImplicit(e, 5, wire.Sint32Codec, m.FSint32)
	wire.WriteImplicit(e, 6, wire.Sint64Codec, m.FSint64)
	wire.WriteImplicit(e, 7, wire.Fixed32Codec, m.FFixed32)
	wire.WriteImplicit(e, 8, wire.Fixed64Codec, m.FFixed64)
	wire.WriteImplicit(e, 9, wire.Sfixed32Codec, m.FSfixed32)
	wire.WriteImplicit(e, 10, wire.Sfixed64Codec, m.FSfixed64)
	wire.WriteImplicit(e, 11, wire.FloatCodec, m.FFloat)
	wire.WriteImplicit(e, 12, wire.DoubleCodec, m.FDouble)
	wire.WriteImplicit(e, 13, wire.BoolCodec, m.FBool)
	wire.WriteImplicit(e, 14, wire.StringCodec, m.FString)
	wire.WriteImplicit(e, 15, wire.BytesCodec, m.FBytes)
	wire.WriteImplicit(e, 16, colorCodec, m.FColor)
	wire.WriteMessageField(e, 17, m.FNested)
	wire.WriteMessageField(e, 18, m.FImported)
	wire.WriteOptional(e, 19, wire.Int32Codec, m.OInt32)
	wire.WriteOptional(e, 20, wire.StringCodec, m.OString)

	wire.WritePacked(e, 31, wire.Int32Codec, m.RInt32)
	wire.WritePacked(e, 32, wire.Sint64Codec, m.RSint64)
	wire.WritePacked(e, 33, wire.Fixed32Codec, m.RFixed32)
	wire.WritePacked(e, 34, wire.DoubleCodec, m.RDouble)
	wire.WritePacked(e, 35, wire.BoolCodec, m.RBool)
	wire.WritePacked(e, 36, colorCodec, m.RColor)
	wire.WriteRepeated(e, 37, wire.Int64Codec, m.RInt64Unpacked)
	wire.WriteRepeated(e, 38, wire.StringCodec, m.RString)
	wire.WriteRepeated(e, 39, wire.BytesCodec, m.RBytes)
	wire.WriteMessages(e, 40, m.RNested)

	wire.WriteMap(e, 51, wire.StringCodec, wire.Int32Codec, m.MStringInt32)
	wire.WriteMap(e, 52, wire.Int64Codec, wire.StringCodec, m.MInt64String)
	wire.WriteMap(e, 53, wire.StringCodec, nestedCodec, m.MStringNested)
	wire.WriteMap(e, 54, wire.Uint32Codec, wire.BytesCodec, m.MUint32Bytes)

	switch c := m.Choice.(type) {
	case *TestAllTypes_CUint32:
		wire.WriteField(e, 61, wire.Uint32Codec, c.CUint32)
	case *TestAllTypes_CString:
		wire.WriteField(e, 62, wire.StringCodec, c.CString)
	case *TestAllTypes_CNested:
		wire.WriteField(e, 63, nestedCodec, c.CNested)
	}

	wire.WriteImplicit(e, 70, idCodec, m.Id)
	wire.WriteMessageField(e, 71, m.Payload)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *TestAllTypes) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadInto(d, wt, wire.Int32Codec, &m.FInt32)
	case 2:
		return true, wire.ReadInto(d, wt, wire.Int64Codec, &m.FInt64)
	case 3:
		return true, wire.ReadInto(d, wt, wire.Uint32Codec, &m.FUint32)
	case 4:
		return true, wire.ReadInto(d, wt, wire.Uint64Codec, &m.FUint64)
	case 5:
		return true, wire.ReadInto(d, wt, wire.Sint32Codec, &m.FSint32)
	case 6:
		return true, wire.ReadInto(d, wt, wire.Sint64Codec, &m.FSint64)
	case 7:
		return true, wire.ReadInto(d, wt, wire.Fixed32Codec, &m.FFixed32)
	case 8:
		return true, wire.ReadInto(d, wt, wire.Fixed64Codec, &m.FFixed64)
	case 9:
		return true, wire.ReadInto(d, wt, wire.Sfixed32Codec, &m.FSfixed32)
	case 10:
		return true, wire.ReadInto(d, wt, wire.Sfixed64Codec, &m.FSfixed64)
	case 11:
		return true, wire.ReadInto(d, wt, wire.FloatCodec, &m.FFloat)
	case 12:
		return true, wire.ReadInto(d, wt, wire.DoubleCodec, &m.FDouble)
	case 13:
		return true, wire.ReadInto(d, wt, wire.BoolCodec, &m.FBool)
	case 14:
		return true, wire.ReadInto(d, wt, wire.StringCodec, &m.FString)
	case 15:
		return true, wire.ReadInto(d, wt, wire.BytesCodec, &m.FBytes)
	case 16:
		return true, wire.ReadInto(d, wt, colorCodec, &m.FColor)
	case 17:
		return true, wire.ReadMessageField(d, wt, &m.FNested)
	case 18:
		return true, wire.ReadMessageField(d, wt, &m.FImported)
	case 19:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &m.OInt32)
	case 20:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &m.OString)
	case 31:
		return true, wire.ReadRepeated(d, wt, wire.Int32Codec, &m.RInt32)
	case 32:
		return true, wire.ReadRepeated(d, wt, wire.Sint64Codec, &m.RSint64)
	case 33:
		return true, wire.ReadRepeated(d, wt, wire.Fixed32Codec, &m.RFixed32)
	case 34:
		return true, wire.ReadRepeated(d, wt, wire.DoubleCodec, &m.RDouble)
	case 35:
		return true, wire.ReadRepeated(d, wt, wire.BoolCodec, &m.RBool)
	case 36:
		return true, wire.ReadRepeated(d, wt, colorCodec, &m.RColor)
	case 37:
		return true, wire.ReadRepeated(d, wt, wire.Int64Codec, &m.RInt64Unpacked)
	case 38:
		return true, wire.ReadRepeated(d, wt, wire.StringCodec, &m.RString)
	case 39:
		return true, wire.ReadRepeated(d, wt, wire.BytesCodec, &m.RBytes)
	case 40:
		return true, wire.ReadMessages(d, wt, &m.RNested)
	case 51:
		return true, wire.ReadMapEntry(d, wt, wire.StringCodec, wire.Int32Codec, &m.MStringInt32)
	case 52:
		return true, wire.ReadMapEntry(d, wt, wire.Int64Codec, wire.StringCodec, &m.MInt64String)
	case 53:
		return true, wire.ReadMapEntry(d, wt, wire.StringCodec, nestedCodec, &m.MStringNested)
	case 54:
		return true, wire.ReadMapEntry(d, wt, wire.Uint32Codec, wire.BytesCodec, &m.MUint32Bytes)
	case 61:
		v, err := wire.ReadField(d, wt, wire.Uint32Codec)
		if err != nil {
			return true, err
		}
		m.Choice = &TestAllTypes_CUint32{CUint32: v}
		return true, nil
	case 62:
		v, err := wire.ReadField(d, wt, wire.StringCodec)
		if err != nil {
			return true, err
		}
		m.Choice = &TestAllTypes_CString{CString: v}
		return true, nil
	case 63:
		c, ok := m.Choice.(*TestAllTypes_CNested)
		if !ok {
			c = &TestAllTypes_CNested{}
		}
		if err := wire.ReadMessageField(d, wt, &c.CNested); err != nil {
			return true, err
		}
		m.Choice = c
		return true, nil
	case 70:
		return true, wire.ReadInto(d, wt, idCodec, &m.Id)
	case 71:
		return true, wire.ReadMessageField(d, wt, &m.Payload)
	}
	return false, nil
}

func (m *TestAllTypes) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *TestAllTypes) Reset() { *m = TestAllTypes{} }

func (m *TestAllTypes) WireFieldName(num wire.FieldNumber) string {
	if fd := m.Descriptor().FieldByNumber(num); fd != nil {
		return fd.Name()
	}
	return ""
}

func (*TestAllTypes) Descriptor() *schema.MessageDescriptor {
	return File_protocore_test_test_types_proto.Message("protocore.test.TestAllTypes")
}

type TestAllTypes_Nested struct {
	A    int32
	Note string

	unknownFields wire.UnknownFields
}

func (m *TestAllTypes_Nested) FullName() string { return "protocore.test.TestAllTypes.Nested" }

func (m *TestAllTypes_Nested) SizeWire(s *wire.Sizer) int {
	n := wire.SizeImplicit(s, 1, wire.Int32Codec, m.A)
	n += wire.SizeImplicit(s, 2, wire.StringCodec, m.Note)
	return n + m.unknownFields.Size()
}

func (m *TestAllTypes_Nested) MarshalWire(e *wire.Encoder) {
	wire.WriteImplicit(e, 1, wire.Int32Codec, m.A)
	wire.WriteImplicit(e, 2, wire.StringCodec, m.Note)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *TestAllTypes_Nested) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadInto(d, wt, wire.Int32Codec, &m.A)
	case 2:
		return true, wire.ReadInto(d, wt, wire.StringCodec, &m.Note)
	}
	return false, nil
}

func (m *TestAllTypes_Nested) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *TestAllTypes_Nested) Reset() { *m = TestAllTypes_Nested{} }

func (*TestAllTypes_Nested) Descriptor() *schema.MessageDescriptor {
	return File_protocore_test_test_types_proto.Message("protocore.test.TestAllTypes.Nested")
}

type VersionOne struct {
	Id   int32
	Name string

	unknownFields wire.UnknownFields
}

func (m *VersionOne) FullName() string { return "protocore.test.VersionOne" }

func (m *VersionOne) SizeWire(s *wire.Sizer) int {
	n := wire.SizeImplicit(s, 1, wire.Int32Codec, m.Id)
	n += wire.SizeImplicit(s, 2, wire.StringCodec, m.Name)
	return n + m.unknownFields.Size()
}

func (m *VersionOne) MarshalWire(e *wire.Encoder) {
	wire.WriteImplicit(e, 1, wire.Int32Codec, m.Id)
	wire.WriteImplicit(e, 2, wire.StringCodec, m.Name)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *VersionOne) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadInto(d, wt, wire.Int32Codec, &m.Id)
	case 2:
		return true, wire.ReadInto(d, wt, wire.StringCodec, &m.Name)
	}
	return false, nil
}

func (m *VersionOne) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *VersionOne) Reset() { *m = VersionOne{} }

func (*VersionOne) Descriptor() *schema.MessageDescriptor {
	return File_protocore_test_test_types_proto.Message("protocore.test.VersionOne")
}

type VersionTwo struct {
	Id       int32
	Name     string
	Tags     []string
	Revision int64

	unknownFields wire.UnknownFields
}

func (m *VersionTwo) FullName() string { return "protocore.test.VersionTwo" }

func (m *VersionTwo) SizeWire(s *wire.Sizer) int {
	n := wire.SizeImplicit(s, 1, wire.Int32Codec, m.Id)
	n += wire.SizeImplicit(s, 2, wire.StringCodec, m.Name)
	n += wire.SizeRepeated(s, 3, wire.StringCodec, m.Tags)
	n += wire.SizeImplicit(s, 4, wire.Int64Codec, m.Revision)
	return n + m.unknownFields.Size()
}

func (m *VersionTwo) MarshalWire(e *wire.Encoder) {
	wire.WriteImplicit(e, 1, wire.Int32Codec, m.Id)
	wire.WriteImplicit(e, 2, wire.StringCodec, m.Name)
	wire.WriteRepeated(e, 3, wire.StringCodec, m.Tags)
	wire.WriteImplicit(e, 4, wire.Int64Codec, m.Revision)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *VersionTwo) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadInto(d, wt, wire.Int32Codec, &m.Id)
	case 2:
		return true, wire.ReadInto(d, wt, wire.StringCodec, &m.Name)
	case 3:
		return true, wire.ReadRepeated(d, wt, wire.StringCodec, &m.Tags)
	case 4:
		return true, wire.ReadInto(d, wt, wire.Int64Codec, &m.Revision)
	}
	return false, nil
}

func (m *VersionTwo) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *VersionTwo) Reset() { *m = VersionTwo{} }

func (*VersionTwo) Descriptor() *schema.MessageDescriptor {
	return File_protocore_test_test_types_proto.Message("protocore.test.VersionTwo")
}

var File_protocore_test_test_types_proto = &schema.LazyFile{
	Raw: rawDescTypes,
	Deps: []*schema.LazyFile{
		File_protocore_test_test_import_proto,
		anypb.File_google_protobuf_any_proto,
	},
}

const rawDescTypes = "" +
	"\x0a\x1fprotocore/test/test_types.proto\x12\x0eprotocore.test\x1a" +
	" protocore/test/test_import.proto\x1a\x19google/protobuf/any.pro" +
	"to\x22\x85\x0f\x0a\x0cTestAllTypes\x12\x17\x0a\x07f_int32\x18\x01" +
	" \x01(\x05R\x06fInt32\x12\x17\x0a\x07f_int64\x18\x02 \x01(\x03R\x06" +
	"fInt64\x12\x19\x0a\x08f_uint32\x18\x03 \x01(\x0dR\x07fUint32\x12" +
	"\x19\x0a\x08f_uint64\x18\x04 \x01(\x04R\x07fUint64\x12\x19\x0a\x08" +
	"f_sint32\x18\x05 \x01(\x11R\x07fSint32\x12\x19\x0a\x08f_sint64\x18" +
	"\x06 \x01(\x12R\x07fSint64\x12\x1b\x0a\x09f_fixed32\x18\x07 \x01" +
	"(\x07R\x08fFixed32\x12\x1b\x0a\x09f_fixed64\x18\x08 \x01(\x06R\x08" +
	"fFixed64\x12\x1d\x0a\x0af_sfixed32\x18\x09 \x01(\x0fR\x09fSfixed" +
	"32\x12\x1d\x0a\x0af_sfixed64\x18\x0a \x01(\x10R\x09fSfixed64\x12" +
	"\x17\x0a\x07f_float\x18\x0b \x01(\x02R\x06fFloat\x12\x19\x0a\x08" +
	"f_double\x18\x0c \x01(\x01R\x07fDouble\x12\x15\x0a\x06f_bool\x18" +
	"\x0d \x01(\x08R\x05fBool\x12\x19\x0a\x08f_string\x18\x0e \x01(\x09" +
	"R\x07fString\x12\x17\x0a\x07f_bytes\x18\x0f \x01(\x0cR\x06fBytes" +
	"\x12.\x0a\x07f_color\x18\x10 \x01(\x0e2\x15.protocore.test.Color" +
	"R\x06fColor\x12>\x0a\x08f_nested\x18\x11 \x01(\x0b2#.protocore.t" +
	"est.TestAllTypes.NestedR\x07fNested\x12G\x0a\x0af_imported\x18\x12" +
	" \x01(\x0b2(.protocore.test.imported.ImportedMessageR\x09fImport" +
	"ed\x12\x1c\x0a\x07o_int32\x18\x13 \x01(\x05H\x01R\x06oInt32\x88\x01" +
	"\x01\x12\x1e\x0a\x08o_string\x18\x14 \x01(\x09H\x02R\x07oString\x88" +
	"\x01\x01\x12\x17\x0a\x07r_int32\x18\x1f \x03(\x05R\x06rInt32\x12" +
	"\x19\x0a\x08r_sint64\x18  \x03(\x12R\x07rSint64\x12\x1b\x0a\x09r" +
	"_fixed32\x18! \x03(\x07R\x08rFixed32\x12\x19\x0a\x08r_double\x18" +
	"\x22 \x03(\x01R\x07rDouble\x12\x15\x0a\x06r_bool\x18# \x03(\x08R" +
	"\x05rBool\x12.\x0a\x07r_color\x18$ \x03(\x0e2\x15.protocore.test" +
	".ColorR\x06rColor\x12,\x0a\x10r_int64_unpacked\x18% \x03(\x03B\x02" +
	"\x10\x00R\x0erInt64Unpacked\x12\x19\x0a\x08r_string\x18& \x03(\x09" +
	"R\x07rString\x12\x17\x0a\x07r_bytes\x18' \x03(\x0cR\x06rBytes\x12" +
	">\x0a\x08r_nested\x18( \x03(\x0b2#.protocore.test.TestAllTypes.N" +
	"estedR\x07rNested\x12T\x0a\x0em_string_int32\x183 \x03(\x0b2..pr" +
	"otocore.test.TestAllTypes.MStringInt32EntryR\x0cmStringInt32\x12" +
	"T\x0a\x0em_int64_string\x184 \x03(\x0b2..protocore.test.TestAllT" +
	"ypes.MInt64StringEntryR\x0cmInt64String\x12W\x0a\x0fm_string_nes" +
	"ted\x185 \x03(\x0b2/.protocore.test.TestAllTypes.MStringNestedEn" +
	"tryR\x0dmStringNested\x12T\x0a\x0em_uint32_bytes\x186 \x03(\x0b2" +
	"..protocore.test.TestAllTypes.MUint32BytesEntryR\x0cmUint32Bytes" +
	"\x12\x1b\x0a\x08c_uint32\x18= \x01(\x0dH\x00R\x07cUint32\x12\x1b" +
	"\x0a\x08c_string\x18> \x01(\x09H\x00R\x07cString\x12@\x0a\x08c_n" +
	"ested\x18? \x01(\x0b2#.protocore.test.TestAllTypes.NestedH\x00R\x07" +
	"cNested\x12\x0e\x0a\x02id\x18F \x01(\x0cR\x02id\x12.\x0a\x07payl" +
	"oad\x18G \x01(\x0b2\x14.google.protobuf.AnyR\x07payload\x1a*\x0a" +
	"\x06Nested\x12\x0c\x0a\x01a\x18\x01 \x01(\x05R\x01a\x12\x12\x0a\x04" +
	"note\x18\x02 \x01(\x09R\x04note\x1a?\x0a\x11MStringInt32Entry\x12" +
	"\x10\x0a\x03key\x18\x01 \x01(\x09R\x03key\x12\x14\x0a\x05value\x18" +
	"\x02 \x01(\x05R\x05value:\x028\x01\x1a?\x0a\x11MInt64StringEntry" +
	"\x12\x10\x0a\x03key\x18\x01 \x01(\x03R\x03key\x12\x14\x0a\x05val" +
	"ue\x18\x02 \x01(\x09R\x05value:\x028\x01\x1ae\x0a\x12MStringNest" +
	"edEntry\x12\x10\x0a\x03key\x18\x01 \x01(\x09R\x03key\x129\x0a\x05" +
	"value\x18\x02 \x01(\x0b2#.protocore.test.TestAllTypes.NestedR\x05" +
	"value:\x028\x01\x1a?\x0a\x11MUint32BytesEntry\x12\x10\x0a\x03key" +
	"\x18\x01 \x01(\x0dR\x03key\x12\x14\x0a\x05value\x18\x02 \x01(\x0c" +
	"R\x05value:\x028\x01B\x08\x0a\x06choiceB\x0a\x0a\x08_o_int32B\x0b" +
	"\x0a\x09_o_stringJ\x04\x08Z\x10d\x220\x0a\x0aVersionOne\x12\x0e\x0a" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\x0a\x04name\x18\x02 \x01" +
	"(\x09R\x04name\x22`\x0a\x0aVersionTwo\x12\x0e\x0a\x02id\x18\x01 " +
	"\x01(\x05R\x02id\x12\x12\x0a\x04name\x18\x02 \x01(\x09R\x04name\x12" +
	"\x12\x0a\x04tags\x18\x03 \x03(\x09R\x04tags\x12\x1a\x0a\x08revis" +
	"ion\x18\x04 \x01(\x03R\x08revision*N\x0a\x05Color\x12\x15\x0a\x11" +
	"COLOR_UNSPECIFIED\x10\x00\x12\x0d\x0a\x09COLOR_RED\x10\x01\x12\x0f" +
	"\x0a\x0bCOLOR_GREEN\x10\x02\x12\x0e\x0a\x0aCOLOR_BLUE\x10\x03b\x06" +
	"proto3"
