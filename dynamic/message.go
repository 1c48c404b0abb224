// Package dynamic implements wire.Message on top of a schema descriptor, for
// message types that have no generated Go code. A dynamic message encodes to
// the same bytes as a generated message of the same type.
package dynamic

import (
	"fmt"
	"sort"

	"github.com/anirudhraja/protocore/convert"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

// Message is a message whose shape comes from a descriptor. Field values are
// held as:
//
//	int32, sint32, sfixed32, enum  int32
//	int64, sint64, sfixed64        int64
//	uint32, fixed32                uint32
//	uint64, fixed64                uint64
//	float, double                  float32, float64
//	bool, string                   bool, string
//	bytes                          buffer.Slice
//	message                        *Message
//	repeated                       []any of the above
//	map                            map[any]any
//
// A field bound to a converter holds the converter's domain type instead.
// Group fields are not modelled and are kept as unknown fields.
type Message struct {
	desc    *schema.MessageDescriptor
	conv    *convert.Table
	fields  map[wire.FieldNumber]any
	unknown wire.UnknownFields
}

// Option configures a new Message.
type Option func(*Message)

// WithConverters binds the converters in t to the fields they name, in this
// message and in every message nested under it.
func WithConverters(t *convert.Table) Option {
	return func(m *Message) { m.conv = t }
}

// New returns an empty message of type desc.
func New(desc *schema.MessageDescriptor, opts ...Option) *Message {
	m := &Message{desc: desc}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func newMessage(desc *schema.MessageDescriptor, conv *convert.Table) *Message {
	return &Message{desc: desc, conv: conv}
}

// Descriptor returns the message's type.
func (m *Message) Descriptor() *schema.MessageDescriptor { return m.desc }

func (m *Message) FullName() string { return m.desc.FullName() }

// UnknownFields returns the fields the descriptor does not declare, in the
// order they were read.
func (m *Message) UnknownFields() *wire.UnknownFields { return &m.unknown }

// Reset clears every field.
func (m *Message) Reset() {
	m.fields = nil
	m.unknown.Reset()
}

func (m *Message) WireFieldName(num wire.FieldNumber) string {
	if fd := m.desc.FieldByNumber(num); fd != nil {
		return fd.Name()
	}
	return ""
}

// Has reports whether fd is populated: set for fields with presence,
// non-default otherwise, non-empty for repeated and map fields.
func (m *Message) Has(fd *schema.FieldDescriptor) bool {
	v, ok := m.fields[fd.Number()]
	if !ok {
		return false
	}
	switch {
	case fd.IsMap():
		return len(v.(map[any]any)) > 0
	case fd.IsRepeated():
		return len(v.([]any)) > 0
	case fd.HasPresence():
		return true
	}
	return !m.codecFor(fd).IsZero(v)
}

// Get returns the value of fd, or its default when unset. Unset message,
// repeated and map fields, and unset converted fields, return nil.
func (m *Message) Get(fd *schema.FieldDescriptor) any {
	if v, ok := m.fields[fd.Number()]; ok {
		return v
	}
	if fd.IsRepeated() || fd.Kind() == schema.KindMessage {
		return nil
	}
	if _, ok := m.conv.Lookup(fd.FullName()); ok {
		return nil
	}
	if fd.Kind() == schema.KindEnum {
		if d := fd.Enum().Default(); d != nil {
			return d.Number()
		}
	}
	return zeroValue(fd.Kind())
}

// GetByName is Get for a field named by its proto or JSON name.
func (m *Message) GetByName(name string) (any, error) {
	fd, err := m.field(name)
	if err != nil {
		return nil, err
	}
	return m.Get(fd), nil
}

// Set stores v in fd after coercing it to the field's stored type. Setting
// a oneof member clears the others.
func (m *Message) Set(fd *schema.FieldDescriptor, v any) error {
	if fd.ContainingMessage() != m.desc {
		return fmt.Errorf("field %s does not belong to %s", fd.FullName(), m.desc.FullName())
	}
	if fd.Kind() == schema.KindGroup {
		return fmt.Errorf("field %s: group fields are not supported", fd.FullName())
	}
	cv, err := m.coerceField(fd, v)
	if err != nil {
		return fmt.Errorf("field %s: %w", fd.FullName(), err)
	}
	m.store(fd, cv)
	return nil
}

// SetByName is Set for a field named by its proto or JSON name.
func (m *Message) SetByName(name string, v any) error {
	fd, err := m.field(name)
	if err != nil {
		return err
	}
	return m.Set(fd, v)
}

// Clear unsets fd.
func (m *Message) Clear(fd *schema.FieldDescriptor) {
	delete(m.fields, fd.Number())
}

// WhichOneof returns the member of o that is set, or nil.
func (m *Message) WhichOneof(o *schema.OneofDescriptor) *schema.FieldDescriptor {
	for _, fd := range o.Fields() {
		if _, ok := m.fields[fd.Number()]; ok {
			return fd
		}
	}
	return nil
}

// Range calls fn for every populated field in field-number order until fn
// returns false.
func (m *Message) Range(fn func(fd *schema.FieldDescriptor, v any) bool) {
	nums := make([]wire.FieldNumber, 0, len(m.fields))
	for n := range m.fields {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	for _, n := range nums {
		fd := m.desc.FieldByNumber(n)
		if !m.Has(fd) {
			continue
		}
		if !fn(fd, m.fields[n]) {
			return
		}
	}
}

func (m *Message) field(name string) (*schema.FieldDescriptor, error) {
	fd := m.desc.FieldByName(name)
	if fd == nil {
		return nil, fmt.Errorf("message %s has no field %q", m.desc.FullName(), name)
	}
	return fd, nil
}

func (m *Message) store(fd *schema.FieldDescriptor, v any) {
	if m.fields == nil {
		m.fields = make(map[wire.FieldNumber]any)
	}
	if o := fd.Oneof(); o != nil {
		for _, other := range o.Fields() {
			if other != fd {
				delete(m.fields, other.Number())
			}
		}
	}
	m.fields[fd.Number()] = v
}

// SizeWire sizes the populated fields in declaration order, then the unknown
// fields.
func (m *Message) SizeWire(s *wire.Sizer) int {
	n := 0
	for _, fd := range m.desc.Fields() {
		v, ok := m.fields[fd.Number()]
		if !ok {
			continue
		}
		c := m.codecFor(fd)
		switch {
		case fd.IsMap():
			n += wire.SizeMap(s, fd.Number(), m.codecFor(fd.MapKey()), m.codecFor(fd.MapValue()), v.(map[any]any))
		case fd.IsPacked():
			n += wire.SizePacked(s, fd.Number(), c, v.([]any))
		case fd.IsRepeated():
			n += wire.SizeRepeated(s, fd.Number(), c, v.([]any))
		case fd.HasPresence():
			n += wire.SizeField(s, fd.Number(), c, v)
		default:
			n += wire.SizeImplicit(s, fd.Number(), c, v)
		}
	}
	return n + m.unknown.Size()
}

// MarshalWire writes what SizeWire sized, in the same order.
func (m *Message) MarshalWire(e *wire.Encoder) {
	for _, fd := range m.desc.Fields() {
		v, ok := m.fields[fd.Number()]
		if !ok {
			continue
		}
		c := m.codecFor(fd)
		switch {
		case fd.IsMap():
			wire.WriteMap(e, fd.Number(), m.codecFor(fd.MapKey()), m.codecFor(fd.MapValue()), v.(map[any]any))
		case fd.IsPacked():
			wire.WritePacked(e, fd.Number(), c, v.([]any))
		case fd.IsRepeated():
			wire.WriteRepeated(e, fd.Number(), c, v.([]any))
		case fd.HasPresence():
			wire.WriteField(e, fd.Number(), c, v)
		default:
			wire.WriteImplicit(e, fd.Number(), c, v)
		}
	}
	e.EncodeUnknown(&m.unknown)
}

// UnmarshalWireField reads one occurrence of a declared field. Embedded
// messages merge into the value already held; oneof members replace each
// other.
func (m *Message) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	fd := m.desc.FieldByNumber(num)
	if fd == nil || fd.Kind() == schema.KindGroup {
		return false, nil
	}
	c := m.codecFor(fd)

	switch {
	case fd.IsMap():
		entries, _ := m.fields[num].(map[any]any)
		if err := wire.ReadMapEntry(d, wt, m.codecFor(fd.MapKey()), m.codecFor(fd.MapValue()), &entries); err != nil {
			return true, err
		}
		m.store(fd, entries)
	case fd.IsRepeated():
		list, _ := m.fields[num].([]any)
		if err := wire.ReadRepeated(d, wt, c, &list); err != nil {
			return true, err
		}
		m.store(fd, list)
	case fd.Kind() == schema.KindMessage:
		existing, _ := m.fields[num].(*Message)
		if existing == nil {
			existing = newMessage(fd.Message(), m.conv)
		}
		if err := wire.ReadMessage(d, wt, existing); err != nil {
			return true, err
		}
		m.store(fd, existing)
	default:
		v, err := wire.ReadField(d, wt, c)
		if err != nil {
			return true, err
		}
		m.store(fd, v)
	}
	return true, nil
}
