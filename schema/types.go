package schema

import (
	"github.com/anirudhraja/protocore/descriptorpb"
	"github.com/anirudhraja/protocore/wire"
)

// Syntax is the language revision a file was written in.
type Syntax string

const (
	SyntaxProto2   Syntax = "proto2"
	SyntaxProto3   Syntax = "proto3"
	SyntaxEditions Syntax = "editions"
)

// Cardinality represents field labels
type Cardinality string

const (
	Optional Cardinality = "optional"
	Required Cardinality = "required"
	Repeated Cardinality = "repeated"
)

// Kind is the declared type of a field.
type Kind string

const (
	KindDouble   Kind = "double"
	KindFloat    Kind = "float"
	KindInt64    Kind = "int64"
	KindUint64   Kind = "uint64"
	KindInt32    Kind = "int32"
	KindFixed64  Kind = "fixed64"
	KindFixed32  Kind = "fixed32"
	KindBool     Kind = "bool"
	KindString   Kind = "string"
	KindGroup    Kind = "group"
	KindMessage  Kind = "message"
	KindBytes    Kind = "bytes"
	KindUint32   Kind = "uint32"
	KindEnum     Kind = "enum"
	KindSfixed32 Kind = "sfixed32"
	KindSfixed64 Kind = "sfixed64"
	KindSint32   Kind = "sint32"
	KindSint64   Kind = "sint64"
)

var kindByType = map[descriptorpb.FieldDescriptorProto_Type]Kind{
	descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:   KindDouble,
	descriptorpb.FieldDescriptorProto_TYPE_FLOAT:    KindFloat,
	descriptorpb.FieldDescriptorProto_TYPE_INT64:    KindInt64,
	descriptorpb.FieldDescriptorProto_TYPE_UINT64:   KindUint64,
	descriptorpb.FieldDescriptorProto_TYPE_INT32:    KindInt32,
	descriptorpb.FieldDescriptorProto_TYPE_FIXED64:  KindFixed64,
	descriptorpb.FieldDescriptorProto_TYPE_FIXED32:  KindFixed32,
	descriptorpb.FieldDescriptorProto_TYPE_BOOL:     KindBool,
	descriptorpb.FieldDescriptorProto_TYPE_STRING:   KindString,
	descriptorpb.FieldDescriptorProto_TYPE_GROUP:    KindGroup,
	descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:  KindMessage,
	descriptorpb.FieldDescriptorProto_TYPE_BYTES:    KindBytes,
	descriptorpb.FieldDescriptorProto_TYPE_UINT32:   KindUint32,
	descriptorpb.FieldDescriptorProto_TYPE_ENUM:     KindEnum,
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED32: KindSfixed32,
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED64: KindSfixed64,
	descriptorpb.FieldDescriptorProto_TYPE_SINT32:   KindSint32,
	descriptorpb.FieldDescriptorProto_TYPE_SINT64:   KindSint64,
}

// KindOf maps a descriptor field type to its Kind. The second result is false
// for unknown types.
func KindOf(t descriptorpb.FieldDescriptorProto_Type) (Kind, bool) {
	k, ok := kindByType[t]
	return k, ok
}

// KindByName maps a .proto scalar type keyword ("int32", "bytes", ...) to its
// Kind.
func KindByName(name string) (Kind, bool) {
	k := Kind(name)
	if k == KindEnum {
		return "", false
	}
	if _, ok := packedEligible[k]; ok || k == KindString || k == KindBytes {
		return k, true
	}
	return "", false
}

// Type returns the descriptor field type for k.
func (k Kind) Type() descriptorpb.FieldDescriptorProto_Type {
	for t, kk := range kindByType {
		if kk == k {
			return t
		}
	}
	return 0
}

// WireType returns the wire type a single value of this kind is written with.
func (k Kind) WireType() wire.WireType {
	switch k {
	case KindDouble, KindFixed64, KindSfixed64:
		return wire.WireFixed64
	case KindFloat, KindFixed32, KindSfixed32:
		return wire.WireFixed32
	case KindString, KindBytes, KindMessage:
		return wire.WireBytes
	case KindGroup:
		return wire.WireStartGroup
	}
	return wire.WireVarint
}

var packedEligible = map[Kind]struct{}{
	KindDouble:   {},
	KindFloat:    {},
	KindInt64:    {},
	KindUint64:   {},
	KindInt32:    {},
	KindFixed64:  {},
	KindFixed32:  {},
	KindBool:     {},
	KindUint32:   {},
	KindEnum:     {},
	KindSfixed32: {},
	KindSfixed64: {},
	KindSint32:   {},
	KindSint64:   {},
}

// IsPackable reports whether repeated values of this kind may be packed.
func (k Kind) IsPackable() bool {
	_, ok := packedEligible[k]
	return ok
}

// IsScalar reports whether k is neither a message nor a group.
func (k Kind) IsScalar() bool {
	return k != KindMessage && k != KindGroup
}

// FileDescriptor describes one .proto file with its type references
// resolved.
type FileDescriptor struct {
	proto    *descriptorpb.FileDescriptorProto
	path     string
	pkg      string
	syntax   Syntax
	deps     []*FileDescriptor
	messages []*MessageDescriptor
	enums    []*EnumDescriptor
	services []*ServiceDescriptor
}

// Path returns the file's import path, e.g. "google/protobuf/any.proto".
func (f *FileDescriptor) Path() string { return f.path }

// Package returns the proto package name.
func (f *FileDescriptor) Package() string { return f.pkg }

// Syntax returns the file's syntax.
func (f *FileDescriptor) Syntax() Syntax { return f.syntax }

// Proto returns the descriptor the file was built from. It must not be
// modified.
func (f *FileDescriptor) Proto() *descriptorpb.FileDescriptorProto { return f.proto }

// Dependencies returns the imported files in declaration order.
func (f *FileDescriptor) Dependencies() []*FileDescriptor { return f.deps }

// Messages returns the top-level messages in declaration order.
func (f *FileDescriptor) Messages() []*MessageDescriptor { return f.messages }

// Enums returns the top-level enums in declaration order.
func (f *FileDescriptor) Enums() []*EnumDescriptor { return f.enums }

// Services returns the services in declaration order.
func (f *FileDescriptor) Services() []*ServiceDescriptor { return f.services }

// Message returns the top-level message with the given short name, or nil.
func (f *FileDescriptor) Message(name string) *MessageDescriptor {
	for _, m := range f.messages {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Enum returns the top-level enum with the given short name, or nil.
func (f *FileDescriptor) Enum(name string) *EnumDescriptor {
	for _, e := range f.enums {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Service returns the service with the given short name, or nil.
func (f *FileDescriptor) Service(name string) *ServiceDescriptor {
	for _, s := range f.services {
		if s.name == name {
			return s
		}
	}
	return nil
}

// FindMessage returns the message declared in this file, at any nesting
// level, with the given fully-qualified name.
func (f *FileDescriptor) FindMessage(fullName string) *MessageDescriptor {
	var found *MessageDescriptor
	walkMessages(f.messages, func(m *MessageDescriptor) bool {
		if m.fullName == fullName {
			found = m
			return false
		}
		return true
	})
	return found
}

func walkMessages(ms []*MessageDescriptor, fn func(*MessageDescriptor) bool) bool {
	for _, m := range ms {
		if !fn(m) || !walkMessages(m.nested, fn) {
			return false
		}
	}
	return true
}

// MessageDescriptor describes a message type.
type MessageDescriptor struct {
	proto    *descriptorpb.DescriptorProto
	name     string
	fullName string
	file     *FileDescriptor
	parent   *MessageDescriptor
	fields   []*FieldDescriptor
	byNumber map[wire.FieldNumber]*FieldDescriptor
	byName   map[string]*FieldDescriptor
	nested   []*MessageDescriptor
	enums    []*EnumDescriptor
	oneofs   []*OneofDescriptor
	mapEntry bool
}

func (m *MessageDescriptor) Name() string     { return m.name }
func (m *MessageDescriptor) FullName() string { return m.fullName }

// File returns the file that declares the message.
func (m *MessageDescriptor) File() *FileDescriptor { return m.file }

// Parent returns the enclosing message, or nil for a top-level message.
func (m *MessageDescriptor) Parent() *MessageDescriptor { return m.parent }

// Proto returns the descriptor the message was built from.
func (m *MessageDescriptor) Proto() *descriptorpb.DescriptorProto { return m.proto }

// Fields returns the fields in declaration order.
func (m *MessageDescriptor) Fields() []*FieldDescriptor { return m.fields }

// FieldByNumber returns the field with number n, or nil.
func (m *MessageDescriptor) FieldByNumber(n wire.FieldNumber) *FieldDescriptor { return m.byNumber[n] }

// FieldByName returns the field with the given proto name or JSON name, or
// nil.
func (m *MessageDescriptor) FieldByName(name string) *FieldDescriptor {
	if f, ok := m.byName[name]; ok {
		return f
	}
	for _, f := range m.fields {
		if f.jsonName == name {
			return f
		}
	}
	return nil
}

// Nested returns the nested messages in declaration order, map entries
// included.
func (m *MessageDescriptor) Nested() []*MessageDescriptor { return m.nested }

// NestedEnums returns the nested enums in declaration order.
func (m *MessageDescriptor) NestedEnums() []*EnumDescriptor { return m.enums }

// Oneofs returns the oneofs in declaration order, synthetic ones included.
func (m *MessageDescriptor) Oneofs() []*OneofDescriptor { return m.oneofs }

// IsMapEntry reports whether the message is the synthetic entry type of a
// map field.
func (m *MessageDescriptor) IsMapEntry() bool { return m.mapEntry }

// MapKey returns the key field of a map entry, or nil.
func (m *MessageDescriptor) MapKey() *FieldDescriptor {
	if !m.mapEntry {
		return nil
	}
	return m.byNumber[1]
}

// MapValue returns the value field of a map entry, or nil.
func (m *MessageDescriptor) MapValue() *FieldDescriptor {
	if !m.mapEntry {
		return nil
	}
	return m.byNumber[2]
}

// IsReserved reports whether n falls in one of the message's reserved
// ranges.
func (m *MessageDescriptor) IsReserved(n wire.FieldNumber) bool {
	for _, r := range m.proto.GetReservedRange() {
		if int32(n) >= r.GetStart() && int32(n) < r.GetEnd() {
			return true
		}
	}
	return false
}

// FieldDescriptor describes one field of a message.
type FieldDescriptor struct {
	proto       *descriptorpb.FieldDescriptorProto
	name        string
	fullName    string
	jsonName    string
	number      wire.FieldNumber
	kind        Kind
	cardinality Cardinality
	parent      *MessageDescriptor
	message     *MessageDescriptor
	enum        *EnumDescriptor
	oneof       *OneofDescriptor
	packed      bool
	presence    bool
}

func (f *FieldDescriptor) Name() string     { return f.name }
func (f *FieldDescriptor) FullName() string { return f.fullName }

// JSONName returns the lowerCamelCase name used by JSON mappings.
func (f *FieldDescriptor) JSONName() string { return f.jsonName }

func (f *FieldDescriptor) Number() wire.FieldNumber { return f.number }
func (f *FieldDescriptor) Kind() Kind               { return f.kind }
func (f *FieldDescriptor) Cardinality() Cardinality { return f.cardinality }

// Proto returns the descriptor the field was built from.
func (f *FieldDescriptor) Proto() *descriptorpb.FieldDescriptorProto { return f.proto }

// ContainingMessage returns the message that declares the field.
func (f *FieldDescriptor) ContainingMessage() *MessageDescriptor { return f.parent }

// Message returns the resolved type of a message or group field, or nil.
func (f *FieldDescriptor) Message() *MessageDescriptor { return f.message }

// Enum returns the resolved type of an enum field, or nil.
func (f *FieldDescriptor) Enum() *EnumDescriptor { return f.enum }

// Oneof returns the oneof containing the field, or nil.
func (f *FieldDescriptor) Oneof() *OneofDescriptor { return f.oneof }

// IsRepeated reports whether the field is repeated. Map fields are repeated.
func (f *FieldDescriptor) IsRepeated() bool { return f.cardinality == Repeated }

// IsMap reports whether the field is a map.
func (f *FieldDescriptor) IsMap() bool {
	return f.cardinality == Repeated && f.message != nil && f.message.mapEntry
}

// MapKey returns the key field of a map field, or nil.
func (f *FieldDescriptor) MapKey() *FieldDescriptor {
	if !f.IsMap() {
		return nil
	}
	return f.message.MapKey()
}

// MapValue returns the value field of a map field, or nil.
func (f *FieldDescriptor) MapValue() *FieldDescriptor {
	if !f.IsMap() {
		return nil
	}
	return f.message.MapValue()
}

// IsPacked reports whether the field is written as a packed run. Repeated
// numeric fields are packed by default in proto3; in proto2 only when
// declared with [packed = true].
func (f *FieldDescriptor) IsPacked() bool { return f.packed }

// HasPresence reports whether the field distinguishes "unset" from its
// default value.
func (f *FieldDescriptor) HasPresence() bool { return f.presence }

// Default returns the proto2 default value as written in the .proto file.
func (f *FieldDescriptor) Default() string { return f.proto.GetDefaultValue() }

// OneofDescriptor describes a oneof group.
type OneofDescriptor struct {
	name      string
	fullName  string
	index     int
	parent    *MessageDescriptor
	fields    []*FieldDescriptor
	synthetic bool
}

func (o *OneofDescriptor) Name() string     { return o.name }
func (o *OneofDescriptor) FullName() string { return o.fullName }

// Index returns the oneof's position in its message.
func (o *OneofDescriptor) Index() int { return o.index }

// Fields returns the member fields in declaration order.
func (o *OneofDescriptor) Fields() []*FieldDescriptor { return o.fields }

// ContainingMessage returns the message that declares the oneof.
func (o *OneofDescriptor) ContainingMessage() *MessageDescriptor { return o.parent }

// IsSynthetic reports whether the oneof only exists to give a proto3
// optional field presence.
func (o *OneofDescriptor) IsSynthetic() bool { return o.synthetic }

// EnumDescriptor represents an enum definition
type EnumDescriptor struct {
	proto    *descriptorpb.EnumDescriptorProto
	name     string
	fullName string
	file     *FileDescriptor
	parent   *MessageDescriptor
	values   []*EnumValueDescriptor
}

func (e *EnumDescriptor) Name() string     { return e.name }
func (e *EnumDescriptor) FullName() string { return e.fullName }

// Values returns the values in declaration order.
func (e *EnumDescriptor) Values() []*EnumValueDescriptor { return e.values }

// Default returns the first declared value.
func (e *EnumDescriptor) Default() *EnumValueDescriptor {
	if len(e.values) == 0 {
		return nil
	}
	return e.values[0]
}

// ValueByNumber returns the first value declared with number n, or nil.
func (e *EnumDescriptor) ValueByNumber(n int32) *EnumValueDescriptor {
	for _, v := range e.values {
		if v.number == n {
			return v
		}
	}
	return nil
}

// ValueByName returns the value with the given name, or nil.
func (e *EnumDescriptor) ValueByName(name string) *EnumValueDescriptor {
	for _, v := range e.values {
		if v.name == name {
			return v
		}
	}
	return nil
}

// EnumValueDescriptor represents an enum value
type EnumValueDescriptor struct {
	name     string
	fullName string
	number   int32
}

func (v *EnumValueDescriptor) Name() string     { return v.name }
func (v *EnumValueDescriptor) FullName() string { return v.fullName }
func (v *EnumValueDescriptor) Number() int32    { return v.number }

// ServiceDescriptor represents a service definition
type ServiceDescriptor struct {
	name     string
	fullName string
	methods  []*MethodDescriptor
}

func (s *ServiceDescriptor) Name() string                { return s.name }
func (s *ServiceDescriptor) FullName() string            { return s.fullName }
func (s *ServiceDescriptor) Methods() []*MethodDescriptor { return s.methods }

// MethodDescriptor represents a service method
type MethodDescriptor struct {
	name            string
	fullName        string
	input           *MessageDescriptor
	output          *MessageDescriptor
	clientStreaming bool
	serverStreaming bool
}

func (m *MethodDescriptor) Name() string               { return m.name }
func (m *MethodDescriptor) FullName() string           { return m.fullName }
func (m *MethodDescriptor) Input() *MessageDescriptor  { return m.input }
func (m *MethodDescriptor) Output() *MessageDescriptor { return m.output }
func (m *MethodDescriptor) ClientStreaming() bool      { return m.clientStreaming }
func (m *MethodDescriptor) ServerStreaming() bool      { return m.serverStreaming }
