package wire

import (
	"bytes"
	"fmt"
	"math"

	"github.com/anirudhraja/protocore/buffer"
)

// MaxSize is the largest message the codec will encode or decode.
const MaxSize = math.MaxInt32

// Message is the contract every generated or dynamic message type satisfies.
//
// SizeWire and MarshalWire must visit fields in the same order and make the
// same presence decisions: the Encoder replays the lengths the Sizer recorded.
// UnmarshalWireField handles one occurrence of a field. It reports known=false
// for field numbers the type does not declare, and must return a
// *WireTypeError (via Decoder.Expect or the typed readers) before consuming
// anything when the wire type cannot be read for the field's kind.
type Message interface {
	FullName() string
	SizeWire(s *Sizer) int
	MarshalWire(e *Encoder)
	UnmarshalWireField(d *Decoder, num FieldNumber, wt WireType) (known bool, err error)
	UnknownFields() *UnknownFields
	Reset()
}

// Size returns the encoded size of m. Sizing errors are reported by Marshal.
func Size(m Message) int {
	return m.SizeWire(&Sizer{})
}

// Marshal encodes m. The output buffer is allocated once at the computed
// size and never grows.
func Marshal(m Message) ([]byte, error) {
	s := &Sizer{}
	size := m.SizeWire(s)
	if s.err != nil {
		return nil, fmt.Errorf("failed to size %s: %w", m.FullName(), s.err)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrMessageTooLarge, m.FullName(), size)
	}

	e := newEncoderFor(s, size)
	m.MarshalWire(e)
	if e.err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", m.FullName(), e.err)
	}
	if len(e.buf) != size || cap(e.buf) != size {
		return nil, fmt.Errorf("%w: %s sized %d bytes, wrote %d (cap %d)", ErrSizeMismatch, m.FullName(), size, len(e.buf), cap(e.buf))
	}
	if e.next != len(s.lengths) {
		return nil, fmt.Errorf("%w: %s recorded %d lengths, used %d", ErrSizeMismatch, m.FullName(), len(s.lengths), e.next)
	}
	return e.buf, nil
}

// Unmarshal decodes b into m with the default options. m is reset first;
// on error it is reset again so no partial result is observable. Bytes
// fields of m refer to b, which must not be modified afterwards.
func Unmarshal(b []byte, m Message) error {
	return defaultOptions.Unmarshal(b, m)
}

// Unmarshal decodes b into m using o.
func (o UnmarshalOptions) Unmarshal(b []byte, m Message) error {
	return o.UnmarshalSlice(buffer.SliceOf(b), m)
}

// UnmarshalSlice decodes the bytes viewed by s into m. Bytes fields of m
// share s's backing buffer.
func (o UnmarshalOptions) UnmarshalSlice(s buffer.Slice, m Message) error {
	m.Reset()
	if o.MaxSize > 0 && s.Len() > o.MaxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrMessageTooLarge, s.Len(), o.MaxSize)
	}
	d := NewSliceDecoder(s, o)
	if err := d.decodeFields(m); err != nil {
		m.Reset()
		return fmt.Errorf("failed to decode message %s: %w", m.FullName(), err)
	}
	return nil
}

// Decode allocates a T and decodes b into it with the default options.
func Decode[T any, P interface {
	*T
	Message
}](b []byte) (P, error) {
	p := P(new(T))
	if err := Unmarshal(b, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether a and b have the same type name and the same
// canonical encoding. Map keys are sorted during encoding and unknown fields
// are compared as raw bytes, so two independently decoded copies of the same
// input compare equal.
func Equal(a, b Message) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.FullName() != b.FullName() {
		return false
	}
	ab, err := Marshal(a)
	if err != nil {
		return false
	}
	bb, err := Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
