package wire

import (
	"errors"
	"strconv"

	"github.com/anirudhraja/protocore/buffer"
)

// Decoder handles low-level protobuf wire format decoding. It reads from a
// region [pos, end) of a shared input buffer; embedded messages and packed
// runs narrow the region while they are read.
type Decoder struct {
	backing *buffer.Buffer
	buf     []byte
	pos     int
	end     int
	depth   int
	field   FieldNumber
	opts    UnmarshalOptions
}

// NewDecoder creates a new wire format decoder over data using the default
// options. data is not copied.
func NewDecoder(data []byte) *Decoder {
	return NewBufferDecoder(buffer.NewBuffer(data), defaultOptions)
}

// NewBufferDecoder creates a decoder over all of b.
func NewBufferDecoder(b *buffer.Buffer, opts UnmarshalOptions) *Decoder {
	return &Decoder{
		backing: b,
		buf:     b.Bytes(),
		end:     b.Len(),
		opts:    opts,
	}
}

// NewSliceDecoder creates a decoder over the bytes viewed by s. Decoded bytes
// fields keep referring to s's backing buffer.
func NewSliceDecoder(s buffer.Slice, opts UnmarshalOptions) *Decoder {
	b := s.Backing()
	if b == nil {
		b = buffer.NewBuffer(nil)
	}
	return &Decoder{
		backing: b,
		buf:     b.Bytes(),
		pos:     s.Offset(),
		end:     s.Offset() + s.Len(),
		opts:    opts,
	}
}

// Done reports whether the current region is exhausted.
func (d *Decoder) Done() bool { return d.pos >= d.end }

// Remaining returns the bytes left in the current region.
func (d *Decoder) Remaining() int { return d.end - d.pos }

// Position returns the cursor offset in the input.
func (d *Decoder) Position() int { return d.pos }

// Field returns the number of the field being decoded.
func (d *Decoder) Field() FieldNumber { return d.field }

// Options returns the options the decoder was created with.
func (d *Decoder) Options() UnmarshalOptions { return d.opts }

// ReadTag reads and validates a field tag.
func (d *Decoder) ReadTag() (FieldNumber, WireType, error) {
	v, err := d.DecodeVarint()
	if err != nil {
		return 0, 0, err
	}
	if v>>3 > uint64(MaxFieldNumber) {
		return 0, 0, malformed("field number %d out of range", v>>3)
	}
	num, wt := ParseTag(Tag(v))
	if num < MinFieldNumber {
		return 0, 0, malformed("invalid field number 0")
	}
	if !wt.Valid() {
		return 0, 0, malformed("field %d: invalid wire type %d", num, wt)
	}
	return num, wt, nil
}

// Expect fails with a *WireTypeError when got is not want. Field readers call
// it before consuming anything, so the occurrence can still be kept as
// unknown.
func (d *Decoder) Expect(got, want WireType) error {
	if got != want {
		return &WireTypeError{Number: d.field, Got: got, Expected: want}
	}
	return nil
}

// DecodeMessage reads a length prefix and decodes that many bytes into m,
// merging with what m already holds.
func (d *Decoder) DecodeMessage(m Message) error {
	n, err := NewBytesDecoder(d).DecodeLength()
	if err != nil {
		return err
	}
	if d.depth >= d.opts.maxDepth() {
		return malformed("exceeds maximum nesting depth %d", d.opts.maxDepth())
	}

	outerEnd, field := d.end, d.field
	d.end = d.pos + n
	d.depth++
	err = d.decodeFields(m)
	d.depth--
	if err == nil && d.pos != d.end {
		err = malformed("embedded message consumed %d of %d bytes", n-(d.end-d.pos), n)
	}
	if err != nil && errors.Is(err, ErrTruncatedInput) && d.end < outerEnd {
		err = asMalformed(err, "embedded message overruns its declared length of %d bytes", n)
	}
	d.end, d.field = outerEnd, field
	return err
}

// DecodePacked reads a length prefix and calls each until the run is
// exhausted. each must consume exactly one element.
func (d *Decoder) DecodePacked(each func() error) error {
	n, err := NewBytesDecoder(d).DecodeLength()
	if err != nil {
		return err
	}
	outerEnd := d.end
	d.end = d.pos + n
	defer func() { d.end = outerEnd }()

	for d.pos < d.end {
		if err := each(); err != nil {
			if errors.Is(err, ErrTruncatedInput) {
				return malformed("packed field %d has a partial trailing element", d.field)
			}
			return err
		}
	}
	return nil
}

// decodeFields is the read loop for one message region.
func (d *Decoder) decodeFields(m Message) error {
	unknown := m.UnknownFields()
	for d.pos < d.end {
		start := d.pos
		num, wt, err := d.ReadTag()
		if err != nil {
			return err
		}
		if wt == WireEndGroup {
			return malformed("unexpected end group for field %d", num)
		}

		d.field = num
		valueStart := d.pos
		known, err := m.UnmarshalWireField(d, num, wt)
		if err != nil {
			var wte *WireTypeError
			if d.opts.StrictWireType || !errors.As(err, &wte) || d.pos != valueStart {
				return wrapWithField(err, fieldLabel(m, num))
			}
			known = false
		}
		if known {
			continue
		}

		d.pos = valueStart
		v, err := d.ConsumeValue(num, wt)
		if err != nil {
			return wrapWithField(err, fieldLabel(m, num))
		}
		if d.opts.DiscardUnknown || unknown == nil {
			continue
		}
		raw, err := d.backing.Slice(start, d.pos-start)
		if err != nil {
			return err
		}
		unknown.Add(UnknownField{Number: num, Value: v, raw: raw})
	}
	return nil
}

// skipGroup consumes a group body and its end tag. It returns the offset
// where the end tag starts.
func (d *Decoder) skipGroup(num FieldNumber) (int, error) {
	if d.depth >= d.opts.maxDepth() {
		return 0, malformed("exceeds maximum nesting depth %d", d.opts.maxDepth())
	}
	d.depth++
	defer func() { d.depth-- }()

	for {
		if d.Done() {
			return 0, truncated("group end tag", 1, 0)
		}
		tagStart := d.pos
		n, wt, err := d.ReadTag()
		if err != nil {
			return 0, err
		}
		if wt == WireEndGroup {
			if n != num {
				return 0, malformed("end group %d does not match start group %d", n, num)
			}
			return tagStart, nil
		}
		if err := d.SkipValue(n, wt); err != nil {
			return 0, err
		}
	}
}

// SkipValue consumes one payload of type wt without keeping it.
func (d *Decoder) SkipValue(num FieldNumber, wt WireType) error {
	_, err := d.ConsumeValue(num, wt)
	return err
}

// FieldNamer is implemented by messages that can name their fields in error
// paths.
type FieldNamer interface {
	WireFieldName(num FieldNumber) string
}

func fieldLabel(m Message, num FieldNumber) string {
	if fn, ok := m.(FieldNamer); ok {
		if name := fn.WireFieldName(num); name != "" {
			return name
		}
	}
	return strconv.Itoa(int(num))
}

func asMalformed(err error, format string, args ...any) error {
	m := malformed(format, args...)
	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{FieldPath: fe.FieldPath, Err: m}
	}
	return m
}
