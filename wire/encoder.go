package wire

import "fmt"

// Encoder handles low-level protobuf wire format encoding. It runs the second
// encoding pass and takes the length of every delimited value from the
// lengths a Sizer recorded.
type Encoder struct {
	buf     []byte
	lengths []int
	next    int
	err     error
}

// NewEncoder creates an encoder for values that need no recorded lengths
// (scalars, strings, bytes and unknown fields).
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0)}
}

// newEncoderFor sizes an encoder exactly for a completed sizing pass.
func newEncoderFor(s *Sizer, size int) *Encoder {
	return &Encoder{
		buf:     make([]byte, 0, size),
		lengths: s.lengths,
	}
}

// Bytes returns the encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.next = 0
	e.err = nil
}

// nextLength pops the next length recorded by the Sizer.
func (e *Encoder) nextLength() int {
	if e.next >= len(e.lengths) {
		e.Fail(fmt.Errorf("wire: encoder ran out of recorded lengths after %d values", e.next))
		return 0
	}
	n := e.lengths[e.next]
	e.next++
	return n
}

// Delimited writes the recorded length prefix and then the body.
func (e *Encoder) Delimited(body func()) {
	n := e.nextLength()
	e.buf = AppendVarint(e.buf, uint64(n))
	start := len(e.buf)
	body()
	if got := len(e.buf) - start; got != n && e.err == nil {
		e.Fail(fmt.Errorf("wire: delimited value wrote %d bytes, sized %d", got, n))
	}
}

// EncodeMessage writes m as an embedded message. A nil m writes an empty
// message.
func (e *Encoder) EncodeMessage(m Message) {
	e.Delimited(func() {
		if m != nil {
			m.MarshalWire(e)
		}
	})
}

// EncodeUnknown re-emits every unknown field verbatim.
func (e *Encoder) EncodeUnknown(u *UnknownFields) {
	for _, f := range u.All() {
		e.buf = append(e.buf, f.raw.Bytes()...)
	}
}

// EncodeValue writes num with a generic payload.
func (e *Encoder) EncodeValue(num FieldNumber, v Value) {
	e.buf = v.appendTo(e.buf, num)
}

// Fail records err. The first error sticks; Marshal reports it.
func (e *Encoder) Fail(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

// Err returns the first error recorded during writing.
func (e *Encoder) Err() error { return e.err }
