package wire

import (
	"github.com/anirudhraja/protocore/buffer"
)

// UnknownField is a field the decoding message did not recognize. Its raw
// tag and payload bytes are kept so it re-encodes exactly as it arrived.
type UnknownField struct {
	Number FieldNumber
	Value  Value
	raw    buffer.Slice
}

// NewUnknownField builds an unknown field from a number and payload. Its raw
// form is the minimal encoding.
func NewUnknownField(num FieldNumber, v Value) UnknownField {
	raw := v.appendTo(nil, num)
	return UnknownField{Number: num, Value: v, raw: buffer.SliceOf(raw)}
}

// Raw returns the field's tag and payload bytes.
func (f UnknownField) Raw() buffer.Slice { return f.raw }

// UnknownFields is the ordered bag of unknown fields of one message.
// The zero value is empty and ready to use.
type UnknownFields struct {
	fields []UnknownField
}

// Len returns the number of captured fields.
func (u *UnknownFields) Len() int {
	if u == nil {
		return 0
	}
	return len(u.fields)
}

// All returns the fields in encounter order.
func (u *UnknownFields) All() []UnknownField {
	if u == nil {
		return nil
	}
	return u.fields
}

// Get returns the fields carrying num, in encounter order.
func (u *UnknownFields) Get(num FieldNumber) []UnknownField {
	var out []UnknownField
	for _, f := range u.All() {
		if f.Number == num {
			out = append(out, f)
		}
	}
	return out
}

// Add appends f.
func (u *UnknownFields) Add(f UnknownField) {
	u.fields = append(u.fields, f)
}

// Reset drops every captured field.
func (u *UnknownFields) Reset() {
	u.fields = nil
}

// Size returns the encoded size of all fields.
func (u *UnknownFields) Size() int {
	n := 0
	for _, f := range u.All() {
		n += f.raw.Len()
	}
	return n
}

// Bytes returns the concatenated raw bytes of every field.
func (u *UnknownFields) Bytes() []byte {
	b := make([]byte, 0, u.Size())
	for _, f := range u.All() {
		b = append(b, f.raw.Bytes()...)
	}
	return b
}

// Equal compares fields pairwise by raw bytes.
func (u *UnknownFields) Equal(o *UnknownFields) bool {
	if u.Len() != o.Len() {
		return false
	}
	a, b := u.All(), o.All()
	for i := range a {
		if a[i].Number != b[i].Number || !a[i].raw.Equal(b[i].raw) {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares the underlying byte views.
func (u *UnknownFields) Clone() UnknownFields {
	if u.Len() == 0 {
		return UnknownFields{}
	}
	return UnknownFields{fields: append([]UnknownField(nil), u.fields...)}
}

// ParseFields reads every (tag, value) pair in b without a schema. Bytes
// payloads are views into b.
func ParseFields(b []byte) ([]UnknownField, error) {
	var bag UnknownFields
	d := NewDecoder(b)
	for !d.Done() {
		start := d.pos
		num, wt, err := d.ReadTag()
		if err != nil {
			return nil, err
		}
		if wt == WireEndGroup {
			return nil, malformed("unexpected end group for field %d", num)
		}
		v, err := d.ConsumeValue(num, wt)
		if err != nil {
			return nil, wrapWithField(err, fieldLabel(nil, num))
		}
		raw, _ := d.backing.Slice(start, d.pos-start)
		bag.Add(UnknownField{Number: num, Value: v, raw: raw})
	}
	return bag.All(), nil
}
