// Package descriptorpb holds the message types of google/protobuf/descriptor.proto
// that the runtime reads. They are ordinary wire.Message implementations, so
// the descriptors embedded in generated code are decoded by the same engine
// they describe.
//
// The types are maintained by hand in the shape generated code takes. Fields
// are declared in field-number order so that re-encoding a decoded descriptor
// reproduces the input. Options the runtime does not interpret are kept as
// unknown fields.
package descriptorpb

import (
	"fmt"

	"github.com/anirudhraja/protocore/wire"
)

// FieldDescriptorProto_Type is the declared kind of a field.
type FieldDescriptorProto_Type int32

const (
	FieldDescriptorProto_TYPE_DOUBLE   FieldDescriptorProto_Type = 1
	FieldDescriptorProto_TYPE_FLOAT    FieldDescriptorProto_Type = 2
	FieldDescriptorProto_TYPE_INT64    FieldDescriptorProto_Type = 3
	FieldDescriptorProto_TYPE_UINT64   FieldDescriptorProto_Type = 4
	FieldDescriptorProto_TYPE_INT32    FieldDescriptorProto_Type = 5
	FieldDescriptorProto_TYPE_FIXED64  FieldDescriptorProto_Type = 6
	FieldDescriptorProto_TYPE_FIXED32  FieldDescriptorProto_Type = 7
	FieldDescriptorProto_TYPE_BOOL     FieldDescriptorProto_Type = 8
	FieldDescriptorProto_TYPE_STRING   FieldDescriptorProto_Type = 9
	FieldDescriptorProto_TYPE_GROUP    FieldDescriptorProto_Type = 10
	FieldDescriptorProto_TYPE_MESSAGE  FieldDescriptorProto_Type = 11
	FieldDescriptorProto_TYPE_BYTES    FieldDescriptorProto_Type = 12
	FieldDescriptorProto_TYPE_UINT32   FieldDescriptorProto_Type = 13
	FieldDescriptorProto_TYPE_ENUM     FieldDescriptorProto_Type = 14
	FieldDescriptorProto_TYPE_SFIXED32 FieldDescriptorProto_Type = 15
	FieldDescriptorProto_TYPE_SFIXED64 FieldDescriptorProto_Type = 16
	FieldDescriptorProto_TYPE_SINT32   FieldDescriptorProto_Type = 17
	FieldDescriptorProto_TYPE_SINT64   FieldDescriptorProto_Type = 18
)

var fieldTypeNames = map[FieldDescriptorProto_Type]string{
	1: "TYPE_DOUBLE", 2: "TYPE_FLOAT", 3: "TYPE_INT64", 4: "TYPE_UINT64",
	5: "TYPE_INT32", 6: "TYPE_FIXED64", 7: "TYPE_FIXED32", 8: "TYPE_BOOL",
	9: "TYPE_STRING", 10: "TYPE_GROUP", 11: "TYPE_MESSAGE", 12: "TYPE_BYTES",
	13: "TYPE_UINT32", 14: "TYPE_ENUM", 15: "TYPE_SFIXED32", 16: "TYPE_SFIXED64",
	17: "TYPE_SINT32", 18: "TYPE_SINT64",
}

func (t FieldDescriptorProto_Type) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE_%d", int32(t))
}

// Enum returns a pointer to t, for building descriptors.
func (t FieldDescriptorProto_Type) Enum() *FieldDescriptorProto_Type { return &t }

// FieldDescriptorProto_Label is a field's cardinality.
type FieldDescriptorProto_Label int32

const (
	FieldDescriptorProto_LABEL_OPTIONAL FieldDescriptorProto_Label = 1
	FieldDescriptorProto_LABEL_REQUIRED FieldDescriptorProto_Label = 2
	FieldDescriptorProto_LABEL_REPEATED FieldDescriptorProto_Label = 3
)

func (l FieldDescriptorProto_Label) String() string {
	switch l {
	case FieldDescriptorProto_LABEL_OPTIONAL:
		return "LABEL_OPTIONAL"
	case FieldDescriptorProto_LABEL_REQUIRED:
		return "LABEL_REQUIRED"
	case FieldDescriptorProto_LABEL_REPEATED:
		return "LABEL_REPEATED"
	}
	return fmt.Sprintf("LABEL_%d", int32(l))
}

// Enum returns a pointer to l, for building descriptors.
func (l FieldDescriptorProto_Label) Enum() *FieldDescriptorProto_Label { return &l }

var (
	typeCodec  = wire.EnumCodec[FieldDescriptorProto_Type]()
	labelCodec = wire.EnumCodec[FieldDescriptorProto_Label]()
)

// Options and source info the runtime does not interpret. Their contents
// survive decode and re-encode as unknown fields.
type (
	FileOptions           struct{ unknownFields wire.UnknownFields }
	ExtensionRangeOptions struct{ unknownFields wire.UnknownFields }
	OneofOptions          struct{ unknownFields wire.UnknownFields }
	EnumOptions           struct{ unknownFields wire.UnknownFields }
	EnumValueOptions      struct{ unknownFields wire.UnknownFields }
	ServiceOptions        struct{ unknownFields wire.UnknownFields }
	MethodOptions         struct{ unknownFields wire.UnknownFields }
	SourceCodeInfo        struct{ unknownFields wire.UnknownFields }
)

// FileDescriptorSet is the output of protoc --descriptor_set_out: a list of files.
type FileDescriptorSet struct {
	File []*FileDescriptorProto

	unknownFields wire.UnknownFields
}

func (x *FileDescriptorSet) FullName() string { return "google.protobuf.FileDescriptorSet" }

func (x *FileDescriptorSet) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeMessages(s, 1, x.File)
	return n + x.unknownFields.Size()
}

func (x *FileDescriptorSet) MarshalWire(e *wire.Encoder) {
	wire.WriteMessages(e, 1, x.File)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *FileDescriptorSet) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadMessages(d, wt, &x.File)
	}
	return false, nil
}

func (x *FileDescriptorSet) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *FileDescriptorSet) Reset() { *x = FileDescriptorSet{} }

func (x *FileDescriptorSet) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "file"
	}
	return ""
}

func (x *FileDescriptorSet) GetFile() []*FileDescriptorProto {
	if x != nil {
		return x.File
	}
	return nil
}

// FileDescriptorProto describes a complete .proto file.
type FileDescriptorProto struct {
	Name             *string
	Package          *string
	Dependency       []string
	MessageType      []*DescriptorProto
	EnumType         []*EnumDescriptorProto
	Service          []*ServiceDescriptorProto
	Extension        []*FieldDescriptorProto
	Options          *FileOptions
	SourceCodeInfo   *SourceCodeInfo
	PublicDependency []int32
	WeakDependency   []int32
	Syntax           *string
	Edition          *int32

	unknownFields wire.UnknownFields
}

func (x *FileDescriptorProto) FullName() string { return "google.protobuf.FileDescriptorProto" }

func (x *FileDescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeOptional(s, 2, wire.StringCodec, x.Package)
	n += wire.SizeRepeated(s, 3, wire.StringCodec, x.Dependency)
	n += wire.SizeMessages(s, 4, x.MessageType)
	n += wire.SizeMessages(s, 5, x.EnumType)
	n += wire.SizeMessages(s, 6, x.Service)
	n += wire.SizeMessages(s, 7, x.Extension)
	n += wire.SizeMessageField(s, 8, x.Options)
	n += wire.SizeMessageField(s, 9, x.SourceCodeInfo)
	n += wire.SizeRepeated(s, 10, wire.Int32Codec, x.PublicDependency)
	n += wire.SizeRepeated(s, 11, wire.Int32Codec, x.WeakDependency)
	n += wire.SizeOptional(s, 12, wire.StringCodec, x.Syntax)
	n += wire.SizeOptional(s, 14, wire.Int32Codec, x.Edition)
	return n + x.unknownFields.Size()
}

func (x *FileDescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteOptional(e, 2, wire.StringCodec, x.Package)
	wire.WriteRepeated(e, 3, wire.StringCodec, x.Dependency)
	wire.WriteMessages(e, 4, x.MessageType)
	wire.WriteMessages(e, 5, x.EnumType)
	wire.WriteMessages(e, 6, x.Service)
	wire.WriteMessages(e, 7, x.Extension)
	wire.WriteMessageField(e, 8, x.Options)
	wire.WriteMessageField(e, 9, x.SourceCodeInfo)
	wire.WriteRepeated(e, 10, wire.Int32Codec, x.PublicDependency)
	wire.WriteRepeated(e, 11, wire.Int32Codec, x.WeakDependency)
	wire.WriteOptional(e, 12, wire.StringCodec, x.Syntax)
	wire.WriteOptional(e, 14, wire.Int32Codec, x.Edition)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *FileDescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Package)
	case 3:
		return true, wire.ReadRepeated(d, wt, wire.StringCodec, &x.Dependency)
	case 4:
		return true, wire.ReadMessages(d, wt, &x.MessageType)
	case 5:
		return true, wire.ReadMessages(d, wt, &x.EnumType)
	case 6:
		return true, wire.ReadMessages(d, wt, &x.Service)
	case 7:
		return true, wire.ReadMessages(d, wt, &x.Extension)
	case 8:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	case 9:
		return true, wire.ReadMessageField(d, wt, &x.SourceCodeInfo)
	case 10:
		return true, wire.ReadRepeated(d, wt, wire.Int32Codec, &x.PublicDependency)
	case 11:
		return true, wire.ReadRepeated(d, wt, wire.Int32Codec, &x.WeakDependency)
	case 12:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Syntax)
	case 14:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.Edition)
	}
	return false, nil
}

func (x *FileDescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *FileDescriptorProto) Reset() { *x = FileDescriptorProto{} }

func (x *FileDescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "package"
	case 3:
		return "dependency"
	case 4:
		return "message_type"
	case 5:
		return "enum_type"
	case 6:
		return "service"
	case 7:
		return "extension"
	case 8:
		return "options"
	case 9:
		return "source_code_info"
	case 10:
		return "public_dependency"
	case 11:
		return "weak_dependency"
	case 12:
		return "syntax"
	case 14:
		return "edition"
	}
	return ""
}

func (x *FileDescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *FileDescriptorProto) GetPackage() string {
	if x != nil && x.Package != nil {
		return *x.Package
	}
	return ""
}

func (x *FileDescriptorProto) GetDependency() []string {
	if x != nil {
		return x.Dependency
	}
	return nil
}

func (x *FileDescriptorProto) GetMessageType() []*DescriptorProto {
	if x != nil {
		return x.MessageType
	}
	return nil
}

func (x *FileDescriptorProto) GetEnumType() []*EnumDescriptorProto {
	if x != nil {
		return x.EnumType
	}
	return nil
}

func (x *FileDescriptorProto) GetService() []*ServiceDescriptorProto {
	if x != nil {
		return x.Service
	}
	return nil
}

func (x *FileDescriptorProto) GetExtension() []*FieldDescriptorProto {
	if x != nil {
		return x.Extension
	}
	return nil
}

func (x *FileDescriptorProto) GetOptions() *FileOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *FileDescriptorProto) GetSourceCodeInfo() *SourceCodeInfo {
	if x != nil {
		return x.SourceCodeInfo
	}
	return nil
}

func (x *FileDescriptorProto) GetPublicDependency() []int32 {
	if x != nil {
		return x.PublicDependency
	}
	return nil
}

func (x *FileDescriptorProto) GetWeakDependency() []int32 {
	if x != nil {
		return x.WeakDependency
	}
	return nil
}

func (x *FileDescriptorProto) GetSyntax() string {
	if x != nil && x.Syntax != nil {
		return *x.Syntax
	}
	return ""
}

func (x *FileDescriptorProto) GetEdition() int32 {
	if x != nil && x.Edition != nil {
		return *x.Edition
	}
	return 0
}

// DescriptorProto describes a message type.
type DescriptorProto struct {
	Name           *string
	Field          []*FieldDescriptorProto
	NestedType     []*DescriptorProto
	EnumType       []*EnumDescriptorProto
	ExtensionRange []*DescriptorProto_ExtensionRange
	Extension      []*FieldDescriptorProto
	Options        *MessageOptions
	OneofDecl      []*OneofDescriptorProto
	ReservedRange  []*DescriptorProto_ReservedRange
	ReservedName   []string

	unknownFields wire.UnknownFields
}

func (x *DescriptorProto) FullName() string { return "google.protobuf.DescriptorProto" }

func (x *DescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeMessages(s, 2, x.Field)
	n += wire.SizeMessages(s, 3, x.NestedType)
	n += wire.SizeMessages(s, 4, x.EnumType)
	n += wire.SizeMessages(s, 5, x.ExtensionRange)
	n += wire.SizeMessages(s, 6, x.Extension)
	n += wire.SizeMessageField(s, 7, x.Options)
	n += wire.SizeMessages(s, 8, x.OneofDecl)
	n += wire.SizeMessages(s, 9, x.ReservedRange)
	n += wire.SizeRepeated(s, 10, wire.StringCodec, x.ReservedName)
	return n + x.unknownFields.Size()
}

func (x *DescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteMessages(e, 2, x.Field)
	wire.WriteMessages(e, 3, x.NestedType)
	wire.WriteMessages(e, 4, x.EnumType)
	wire.WriteMessages(e, 5, x.ExtensionRange)
	wire.WriteMessages(e, 6, x.Extension)
	wire.WriteMessageField(e, 7, x.Options)
	wire.WriteMessages(e, 8, x.OneofDecl)
	wire.WriteMessages(e, 9, x.ReservedRange)
	wire.WriteRepeated(e, 10, wire.StringCodec, x.ReservedName)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *DescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadMessages(d, wt, &x.Field)
	case 3:
		return true, wire.ReadMessages(d, wt, &x.NestedType)
	case 4:
		return true, wire.ReadMessages(d, wt, &x.EnumType)
	case 5:
		return true, wire.ReadMessages(d, wt, &x.ExtensionRange)
	case 6:
		return true, wire.ReadMessages(d, wt, &x.Extension)
	case 7:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	case 8:
		return true, wire.ReadMessages(d, wt, &x.OneofDecl)
	case 9:
		return true, wire.ReadMessages(d, wt, &x.ReservedRange)
	case 10:
		return true, wire.ReadRepeated(d, wt, wire.StringCodec, &x.ReservedName)
	}
	return false, nil
}

func (x *DescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *DescriptorProto) Reset() { *x = DescriptorProto{} }

func (x *DescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "field"
	case 3:
		return "nested_type"
	case 4:
		return "enum_type"
	case 5:
		return "extension_range"
	case 6:
		return "extension"
	case 7:
		return "options"
	case 8:
		return "oneof_decl"
	case 9:
		return "reserved_range"
	case 10:
		return "reserved_name"
	}
	return ""
}

func (x *DescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *DescriptorProto) GetField() []*FieldDescriptorProto {
	if x != nil {
		return x.Field
	}
	return nil
}

func (x *DescriptorProto) GetNestedType() []*DescriptorProto {
	if x != nil {
		return x.NestedType
	}
	return nil
}

func (x *DescriptorProto) GetEnumType() []*EnumDescriptorProto {
	if x != nil {
		return x.EnumType
	}
	return nil
}

func (x *DescriptorProto) GetExtensionRange() []*DescriptorProto_ExtensionRange {
	if x != nil {
		return x.ExtensionRange
	}
	return nil
}

func (x *DescriptorProto) GetExtension() []*FieldDescriptorProto {
	if x != nil {
		return x.Extension
	}
	return nil
}

func (x *DescriptorProto) GetOptions() *MessageOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *DescriptorProto) GetOneofDecl() []*OneofDescriptorProto {
	if x != nil {
		return x.OneofDecl
	}
	return nil
}

func (x *DescriptorProto) GetReservedRange() []*DescriptorProto_ReservedRange {
	if x != nil {
		return x.ReservedRange
	}
	return nil
}

func (x *DescriptorProto) GetReservedName() []string {
	if x != nil {
		return x.ReservedName
	}
	return nil
}

// DescriptorProto_ExtensionRange is a range of extension field numbers.
type DescriptorProto_ExtensionRange struct {
	Start   *int32
	End     *int32
	Options *ExtensionRangeOptions

	unknownFields wire.UnknownFields
}

func (x *DescriptorProto_ExtensionRange) FullName() string { return "google.protobuf.DescriptorProto.ExtensionRange" }

func (x *DescriptorProto_ExtensionRange) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.Int32Codec, x.Start)
	n += wire.SizeOptional(s, 2, wire.Int32Codec, x.End)
	n += wire.SizeMessageField(s, 3, x.Options)
	return n + x.unknownFields.Size()
}

func (x *DescriptorProto_ExtensionRange) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.Int32Codec, x.Start)
	wire.WriteOptional(e, 2, wire.Int32Codec, x.End)
	wire.WriteMessageField(e, 3, x.Options)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *DescriptorProto_ExtensionRange) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.Start)
	case 2:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.End)
	case 3:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	}
	return false, nil
}

func (x *DescriptorProto_ExtensionRange) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *DescriptorProto_ExtensionRange) Reset() { *x = DescriptorProto_ExtensionRange{} }

func (x *DescriptorProto_ExtensionRange) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "start"
	case 2:
		return "end"
	case 3:
		return "options"
	}
	return ""
}

func (x *DescriptorProto_ExtensionRange) GetStart() int32 {
	if x != nil && x.Start != nil {
		return *x.Start
	}
	return 0
}

func (x *DescriptorProto_ExtensionRange) GetEnd() int32 {
	if x != nil && x.End != nil {
		return *x.End
	}
	return 0
}

func (x *DescriptorProto_ExtensionRange) GetOptions() *ExtensionRangeOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

// DescriptorProto_ReservedRange is a range of reserved field numbers. Start is inclusive, End exclusive.
type DescriptorProto_ReservedRange struct {
	Start *int32
	End   *int32

	unknownFields wire.UnknownFields
}

func (x *DescriptorProto_ReservedRange) FullName() string { return "google.protobuf.DescriptorProto.ReservedRange" }

func (x *DescriptorProto_ReservedRange) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.Int32Codec, x.Start)
	n += wire.SizeOptional(s, 2, wire.Int32Codec, x.End)
	return n + x.unknownFields.Size()
}

func (x *DescriptorProto_ReservedRange) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.Int32Codec, x.Start)
	wire.WriteOptional(e, 2, wire.Int32Codec, x.End)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *DescriptorProto_ReservedRange) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.Start)
	case 2:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.End)
	}
	return false, nil
}

func (x *DescriptorProto_ReservedRange) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *DescriptorProto_ReservedRange) Reset() { *x = DescriptorProto_ReservedRange{} }

func (x *DescriptorProto_ReservedRange) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "start"
	case 2:
		return "end"
	}
	return ""
}

func (x *DescriptorProto_ReservedRange) GetStart() int32 {
	if x != nil && x.Start != nil {
		return *x.Start
	}
	return 0
}

func (x *DescriptorProto_ReservedRange) GetEnd() int32 {
	if x != nil && x.End != nil {
		return *x.End
	}
	return 0
}

// FieldDescriptorProto describes a field within a message.
type FieldDescriptorProto struct {
	Name           *string
	Extendee       *string
	Number         *int32
	Label          *FieldDescriptorProto_Label
	Type           *FieldDescriptorProto_Type
	TypeName       *string
	DefaultValue   *string
	Options        *FieldOptions
	OneofIndex     *int32
	JsonName       *string
	Proto3Optional *bool

	unknownFields wire.UnknownFields
}

func (x *FieldDescriptorProto) FullName() string { return "google.protobuf.FieldDescriptorProto" }

func (x *FieldDescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeOptional(s, 2, wire.StringCodec, x.Extendee)
	n += wire.SizeOptional(s, 3, wire.Int32Codec, x.Number)
	n += wire.SizeOptional(s, 4, labelCodec, x.Label)
	n += wire.SizeOptional(s, 5, typeCodec, x.Type)
	n += wire.SizeOptional(s, 6, wire.StringCodec, x.TypeName)
	n += wire.SizeOptional(s, 7, wire.StringCodec, x.DefaultValue)
	n += wire.SizeMessageField(s, 8, x.Options)
	n += wire.SizeOptional(s, 9, wire.Int32Codec, x.OneofIndex)
	n += wire.SizeOptional(s, 10, wire.StringCodec, x.JsonName)
	n += wire.SizeOptional(s, 17, wire.BoolCodec, x.Proto3Optional)
	return n + x.unknownFields.Size()
}

func (x *FieldDescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteOptional(e, 2, wire.StringCodec, x.Extendee)
	wire.WriteOptional(e, 3, wire.Int32Codec, x.Number)
	wire.WriteOptional(e, 4, labelCodec, x.Label)
	wire.WriteOptional(e, 5, typeCodec, x.Type)
	wire.WriteOptional(e, 6, wire.StringCodec, x.TypeName)
	wire.WriteOptional(e, 7, wire.StringCodec, x.DefaultValue)
	wire.WriteMessageField(e, 8, x.Options)
	wire.WriteOptional(e, 9, wire.Int32Codec, x.OneofIndex)
	wire.WriteOptional(e, 10, wire.StringCodec, x.JsonName)
	wire.WriteOptional(e, 17, wire.BoolCodec, x.Proto3Optional)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *FieldDescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Extendee)
	case 3:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.Number)
	case 4:
		return true, wire.ReadOptional(d, wt, labelCodec, &x.Label)
	case 5:
		return true, wire.ReadOptional(d, wt, typeCodec, &x.Type)
	case 6:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.TypeName)
	case 7:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.DefaultValue)
	case 8:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	case 9:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.OneofIndex)
	case 10:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.JsonName)
	case 17:
		return true, wire.ReadOptional(d, wt, wire.BoolCodec, &x.Proto3Optional)
	}
	return false, nil
}

func (x *FieldDescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *FieldDescriptorProto) Reset() { *x = FieldDescriptorProto{} }

func (x *FieldDescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "extendee"
	case 3:
		return "number"
	case 4:
		return "label"
	case 5:
		return "type"
	case 6:
		return "type_name"
	case 7:
		return "default_value"
	case 8:
		return "options"
	case 9:
		return "oneof_index"
	case 10:
		return "json_name"
	case 17:
		return "proto3_optional"
	}
	return ""
}

func (x *FieldDescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *FieldDescriptorProto) GetExtendee() string {
	if x != nil && x.Extendee != nil {
		return *x.Extendee
	}
	return ""
}

func (x *FieldDescriptorProto) GetNumber() int32 {
	if x != nil && x.Number != nil {
		return *x.Number
	}
	return 0
}

func (x *FieldDescriptorProto) GetLabel() FieldDescriptorProto_Label {
	if x != nil && x.Label != nil {
		return *x.Label
	}
	return FieldDescriptorProto_LABEL_OPTIONAL
}

func (x *FieldDescriptorProto) GetType() FieldDescriptorProto_Type {
	if x != nil && x.Type != nil {
		return *x.Type
	}
	return FieldDescriptorProto_TYPE_DOUBLE
}

func (x *FieldDescriptorProto) GetTypeName() string {
	if x != nil && x.TypeName != nil {
		return *x.TypeName
	}
	return ""
}

func (x *FieldDescriptorProto) GetDefaultValue() string {
	if x != nil && x.DefaultValue != nil {
		return *x.DefaultValue
	}
	return ""
}

func (x *FieldDescriptorProto) GetOptions() *FieldOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *FieldDescriptorProto) GetOneofIndex() int32 {
	if x != nil && x.OneofIndex != nil {
		return *x.OneofIndex
	}
	return 0
}

func (x *FieldDescriptorProto) GetJsonName() string {
	if x != nil && x.JsonName != nil {
		return *x.JsonName
	}
	return ""
}

func (x *FieldDescriptorProto) GetProto3Optional() bool {
	if x != nil && x.Proto3Optional != nil {
		return *x.Proto3Optional
	}
	return false
}

// OneofDescriptorProto describes a oneof.
type OneofDescriptorProto struct {
	Name    *string
	Options *OneofOptions

	unknownFields wire.UnknownFields
}

func (x *OneofDescriptorProto) FullName() string { return "google.protobuf.OneofDescriptorProto" }

func (x *OneofDescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeMessageField(s, 2, x.Options)
	return n + x.unknownFields.Size()
}

func (x *OneofDescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteMessageField(e, 2, x.Options)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *OneofDescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	}
	return false, nil
}

func (x *OneofDescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *OneofDescriptorProto) Reset() { *x = OneofDescriptorProto{} }

func (x *OneofDescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "options"
	}
	return ""
}

func (x *OneofDescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *OneofDescriptorProto) GetOptions() *OneofOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

// EnumDescriptorProto describes an enum type.
type EnumDescriptorProto struct {
	Name          *string
	Value         []*EnumValueDescriptorProto
	Options       *EnumOptions
	ReservedRange []*EnumDescriptorProto_EnumReservedRange
	ReservedName  []string

	unknownFields wire.UnknownFields
}

func (x *EnumDescriptorProto) FullName() string { return "google.protobuf.EnumDescriptorProto" }

func (x *EnumDescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeMessages(s, 2, x.Value)
	n += wire.SizeMessageField(s, 3, x.Options)
	n += wire.SizeMessages(s, 4, x.ReservedRange)
	n += wire.SizeRepeated(s, 5, wire.StringCodec, x.ReservedName)
	return n + x.unknownFields.Size()
}

func (x *EnumDescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteMessages(e, 2, x.Value)
	wire.WriteMessageField(e, 3, x.Options)
	wire.WriteMessages(e, 4, x.ReservedRange)
	wire.WriteRepeated(e, 5, wire.StringCodec, x.ReservedName)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *EnumDescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadMessages(d, wt, &x.Value)
	case 3:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	case 4:
		return true, wire.ReadMessages(d, wt, &x.ReservedRange)
	case 5:
		return true, wire.ReadRepeated(d, wt, wire.StringCodec, &x.ReservedName)
	}
	return false, nil
}

func (x *EnumDescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *EnumDescriptorProto) Reset() { *x = EnumDescriptorProto{} }

func (x *EnumDescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "value"
	case 3:
		return "options"
	case 4:
		return "reserved_range"
	case 5:
		return "reserved_name"
	}
	return ""
}

func (x *EnumDescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *EnumDescriptorProto) GetValue() []*EnumValueDescriptorProto {
	if x != nil {
		return x.Value
	}
	return nil
}

func (x *EnumDescriptorProto) GetOptions() *EnumOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *EnumDescriptorProto) GetReservedRange() []*EnumDescriptorProto_EnumReservedRange {
	if x != nil {
		return x.ReservedRange
	}
	return nil
}

func (x *EnumDescriptorProto) GetReservedName() []string {
	if x != nil {
		return x.ReservedName
	}
	return nil
}

// EnumDescriptorProto_EnumReservedRange is a range of reserved enum numbers. Both ends are inclusive.
type EnumDescriptorProto_EnumReservedRange struct {
	Start *int32
	End   *int32

	unknownFields wire.UnknownFields
}

func (x *EnumDescriptorProto_EnumReservedRange) FullName() string { return "google.protobuf.EnumDescriptorProto.EnumReservedRange" }

func (x *EnumDescriptorProto_EnumReservedRange) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.Int32Codec, x.Start)
	n += wire.SizeOptional(s, 2, wire.Int32Codec, x.End)
	return n + x.unknownFields.Size()
}

func (x *EnumDescriptorProto_EnumReservedRange) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.Int32Codec, x.Start)
	wire.WriteOptional(e, 2, wire.Int32Codec, x.End)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *EnumDescriptorProto_EnumReservedRange) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.Start)
	case 2:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.End)
	}
	return false, nil
}

func (x *EnumDescriptorProto_EnumReservedRange) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *EnumDescriptorProto_EnumReservedRange) Reset() { *x = EnumDescriptorProto_EnumReservedRange{} }

func (x *EnumDescriptorProto_EnumReservedRange) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "start"
	case 2:
		return "end"
	}
	return ""
}

func (x *EnumDescriptorProto_EnumReservedRange) GetStart() int32 {
	if x != nil && x.Start != nil {
		return *x.Start
	}
	return 0
}

func (x *EnumDescriptorProto_EnumReservedRange) GetEnd() int32 {
	if x != nil && x.End != nil {
		return *x.End
	}
	return 0
}

// EnumValueDescriptorProto describes a value within an enum.
type EnumValueDescriptorProto struct {
	Name    *string
	Number  *int32
	Options *EnumValueOptions

	unknownFields wire.UnknownFields
}

func (x *EnumValueDescriptorProto) FullName() string { return "google.protobuf.EnumValueDescriptorProto" }

func (x *EnumValueDescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeOptional(s, 2, wire.Int32Codec, x.Number)
	n += wire.SizeMessageField(s, 3, x.Options)
	return n + x.unknownFields.Size()
}

func (x *EnumValueDescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteOptional(e, 2, wire.Int32Codec, x.Number)
	wire.WriteMessageField(e, 3, x.Options)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *EnumValueDescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadOptional(d, wt, wire.Int32Codec, &x.Number)
	case 3:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	}
	return false, nil
}

func (x *EnumValueDescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *EnumValueDescriptorProto) Reset() { *x = EnumValueDescriptorProto{} }

func (x *EnumValueDescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "number"
	case 3:
		return "options"
	}
	return ""
}

func (x *EnumValueDescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *EnumValueDescriptorProto) GetNumber() int32 {
	if x != nil && x.Number != nil {
		return *x.Number
	}
	return 0
}

func (x *EnumValueDescriptorProto) GetOptions() *EnumValueOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

// ServiceDescriptorProto describes a service.
type ServiceDescriptorProto struct {
	Name    *string
	Method  []*MethodDescriptorProto
	Options *ServiceOptions

	unknownFields wire.UnknownFields
}

func (x *ServiceDescriptorProto) FullName() string { return "google.protobuf.ServiceDescriptorProto" }

func (x *ServiceDescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeMessages(s, 2, x.Method)
	n += wire.SizeMessageField(s, 3, x.Options)
	return n + x.unknownFields.Size()
}

func (x *ServiceDescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteMessages(e, 2, x.Method)
	wire.WriteMessageField(e, 3, x.Options)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *ServiceDescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadMessages(d, wt, &x.Method)
	case 3:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	}
	return false, nil
}

func (x *ServiceDescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *ServiceDescriptorProto) Reset() { *x = ServiceDescriptorProto{} }

func (x *ServiceDescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "method"
	case 3:
		return "options"
	}
	return ""
}

func (x *ServiceDescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *ServiceDescriptorProto) GetMethod() []*MethodDescriptorProto {
	if x != nil {
		return x.Method
	}
	return nil
}

func (x *ServiceDescriptorProto) GetOptions() *ServiceOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

// MethodDescriptorProto describes a method of a service.
type MethodDescriptorProto struct {
	Name            *string
	InputType       *string
	OutputType      *string
	Options         *MethodOptions
	ClientStreaming *bool
	ServerStreaming *bool

	unknownFields wire.UnknownFields
}

func (x *MethodDescriptorProto) FullName() string { return "google.protobuf.MethodDescriptorProto" }

func (x *MethodDescriptorProto) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 1, wire.StringCodec, x.Name)
	n += wire.SizeOptional(s, 2, wire.StringCodec, x.InputType)
	n += wire.SizeOptional(s, 3, wire.StringCodec, x.OutputType)
	n += wire.SizeMessageField(s, 4, x.Options)
	n += wire.SizeOptional(s, 5, wire.BoolCodec, x.ClientStreaming)
	n += wire.SizeOptional(s, 6, wire.BoolCodec, x.ServerStreaming)
	return n + x.unknownFields.Size()
}

func (x *MethodDescriptorProto) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 1, wire.StringCodec, x.Name)
	wire.WriteOptional(e, 2, wire.StringCodec, x.InputType)
	wire.WriteOptional(e, 3, wire.StringCodec, x.OutputType)
	wire.WriteMessageField(e, 4, x.Options)
	wire.WriteOptional(e, 5, wire.BoolCodec, x.ClientStreaming)
	wire.WriteOptional(e, 6, wire.BoolCodec, x.ServerStreaming)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *MethodDescriptorProto) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.Name)
	case 2:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.InputType)
	case 3:
		return true, wire.ReadOptional(d, wt, wire.StringCodec, &x.OutputType)
	case 4:
		return true, wire.ReadMessageField(d, wt, &x.Options)
	case 5:
		return true, wire.ReadOptional(d, wt, wire.BoolCodec, &x.ClientStreaming)
	case 6:
		return true, wire.ReadOptional(d, wt, wire.BoolCodec, &x.ServerStreaming)
	}
	return false, nil
}

func (x *MethodDescriptorProto) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *MethodDescriptorProto) Reset() { *x = MethodDescriptorProto{} }

func (x *MethodDescriptorProto) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 1:
		return "name"
	case 2:
		return "input_type"
	case 3:
		return "output_type"
	case 4:
		return "options"
	case 5:
		return "client_streaming"
	case 6:
		return "server_streaming"
	}
	return ""
}

func (x *MethodDescriptorProto) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *MethodDescriptorProto) GetInputType() string {
	if x != nil && x.InputType != nil {
		return *x.InputType
	}
	return ""
}

func (x *MethodDescriptorProto) GetOutputType() string {
	if x != nil && x.OutputType != nil {
		return *x.OutputType
	}
	return ""
}

func (x *MethodDescriptorProto) GetOptions() *MethodOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *MethodDescriptorProto) GetClientStreaming() bool {
	if x != nil && x.ClientStreaming != nil {
		return *x.ClientStreaming
	}
	return false
}

func (x *MethodDescriptorProto) GetServerStreaming() bool {
	if x != nil && x.ServerStreaming != nil {
		return *x.ServerStreaming
	}
	return false
}

// MessageOptions models the options the runtime reads. Everything else is kept as unknown fields.
type MessageOptions struct {
	Deprecated *bool
	MapEntry   *bool

	unknownFields wire.UnknownFields
}

func (x *MessageOptions) FullName() string { return "google.protobuf.MessageOptions" }

func (x *MessageOptions) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 3, wire.BoolCodec, x.Deprecated)
	n += wire.SizeOptional(s, 7, wire.BoolCodec, x.MapEntry)
	return n + x.unknownFields.Size()
}

func (x *MessageOptions) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 3, wire.BoolCodec, x.Deprecated)
	wire.WriteOptional(e, 7, wire.BoolCodec, x.MapEntry)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *MessageOptions) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 3:
		return true, wire.ReadOptional(d, wt, wire.BoolCodec, &x.Deprecated)
	case 7:
		return true, wire.ReadOptional(d, wt, wire.BoolCodec, &x.MapEntry)
	}
	return false, nil
}

func (x *MessageOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *MessageOptions) Reset() { *x = MessageOptions{} }

func (x *MessageOptions) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 3:
		return "deprecated"
	case 7:
		return "map_entry"
	}
	return ""
}

func (x *MessageOptions) GetDeprecated() bool {
	if x != nil && x.Deprecated != nil {
		return *x.Deprecated
	}
	return false
}

func (x *MessageOptions) GetMapEntry() bool {
	if x != nil && x.MapEntry != nil {
		return *x.MapEntry
	}
	return false
}

// FieldOptions models the options the runtime reads. Everything else is kept as unknown fields.
type FieldOptions struct {
	Packed     *bool
	Deprecated *bool

	unknownFields wire.UnknownFields
}

func (x *FieldOptions) FullName() string { return "google.protobuf.FieldOptions" }

func (x *FieldOptions) SizeWire(s *wire.Sizer) int {
	n := 0
	n += wire.SizeOptional(s, 2, wire.BoolCodec, x.Packed)
	n += wire.SizeOptional(s, 3, wire.BoolCodec, x.Deprecated)
	return n + x.unknownFields.Size()
}

func (x *FieldOptions) MarshalWire(e *wire.Encoder) {
	wire.WriteOptional(e, 2, wire.BoolCodec, x.Packed)
	wire.WriteOptional(e, 3, wire.BoolCodec, x.Deprecated)
	e.EncodeUnknown(&x.unknownFields)
}

func (x *FieldOptions) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 2:
		return true, wire.ReadOptional(d, wt, wire.BoolCodec, &x.Packed)
	case 3:
		return true, wire.ReadOptional(d, wt, wire.BoolCodec, &x.Deprecated)
	}
	return false, nil
}

func (x *FieldOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *FieldOptions) Reset() { *x = FieldOptions{} }

func (x *FieldOptions) WireFieldName(num wire.FieldNumber) string {
	switch num {
	case 2:
		return "packed"
	case 3:
		return "deprecated"
	}
	return ""
}

func (x *FieldOptions) GetPacked() bool {
	if x != nil && x.Packed != nil {
		return *x.Packed
	}
	return false
}

func (x *FieldOptions) GetDeprecated() bool {
	if x != nil && x.Deprecated != nil {
		return *x.Deprecated
	}
	return false
}

func (x *FileOptions) FullName() string { return "google.protobuf.FileOptions" }

func (x *FileOptions) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *FileOptions) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *FileOptions) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *FileOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *FileOptions) Reset() { *x = FileOptions{} }

func (x *ExtensionRangeOptions) FullName() string { return "google.protobuf.ExtensionRangeOptions" }

func (x *ExtensionRangeOptions) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *ExtensionRangeOptions) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *ExtensionRangeOptions) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *ExtensionRangeOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *ExtensionRangeOptions) Reset() { *x = ExtensionRangeOptions{} }

func (x *OneofOptions) FullName() string { return "google.protobuf.OneofOptions" }

func (x *OneofOptions) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *OneofOptions) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *OneofOptions) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *OneofOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *OneofOptions) Reset() { *x = OneofOptions{} }

func (x *EnumOptions) FullName() string { return "google.protobuf.EnumOptions" }

func (x *EnumOptions) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *EnumOptions) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *EnumOptions) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *EnumOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *EnumOptions) Reset() { *x = EnumOptions{} }

func (x *EnumValueOptions) FullName() string { return "google.protobuf.EnumValueOptions" }

func (x *EnumValueOptions) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *EnumValueOptions) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *EnumValueOptions) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *EnumValueOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *EnumValueOptions) Reset() { *x = EnumValueOptions{} }

func (x *ServiceOptions) FullName() string { return "google.protobuf.ServiceOptions" }

func (x *ServiceOptions) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *ServiceOptions) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *ServiceOptions) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *ServiceOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *ServiceOptions) Reset() { *x = ServiceOptions{} }

func (x *MethodOptions) FullName() string { return "google.protobuf.MethodOptions" }

func (x *MethodOptions) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *MethodOptions) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *MethodOptions) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *MethodOptions) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *MethodOptions) Reset() { *x = MethodOptions{} }

func (x *SourceCodeInfo) FullName() string { return "google.protobuf.SourceCodeInfo" }

func (x *SourceCodeInfo) SizeWire(s *wire.Sizer) int { return x.unknownFields.Size() }

func (x *SourceCodeInfo) MarshalWire(e *wire.Encoder) { e.EncodeUnknown(&x.unknownFields) }

func (x *SourceCodeInfo) UnmarshalWireField(*wire.Decoder, wire.FieldNumber, wire.WireType) (bool, error) {
	return false, nil
}

func (x *SourceCodeInfo) UnknownFields() *wire.UnknownFields { return &x.unknownFields }

func (x *SourceCodeInfo) Reset() { *x = SourceCodeInfo{} }
