package wire

import (
	"math"

	"github.com/anirudhraja/protocore/buffer"
)

// FieldCodec reads and writes the values of one field kind. Generated code
// builds every field accessor from these.
type FieldCodec[T any] struct {
	// WireType is the only wire type values are written with. Scalar numeric
	// kinds are also accepted as a packed run when repeated.
	WireType WireType

	// Size returns the encoded size of v without its tag.
	Size func(s *Sizer, v T) int

	// Write appends v without its tag.
	Write func(e *Encoder, v T)

	// Read consumes one value. The wire type has already been checked.
	Read func(d *Decoder) (T, error)

	// IsZero reports whether v is the default that implicit presence elides.
	IsZero func(v T) bool

	// New returns the value a map entry holds when its value field is
	// absent. Nil means the zero T.
	New func() T
}

// Packable reports whether repeated values of this kind may be packed.
func (c FieldCodec[T]) Packable() bool {
	return c.WireType != WireBytes && c.WireType != WireStartGroup
}

func (c FieldCodec[T]) newValue() T {
	if c.New != nil {
		return c.New()
	}
	var zero T
	return zero
}

func isZero[T comparable](v T) bool {
	var zero T
	return v == zero
}

func varintCodec[T comparable](to func(T) uint64, from func(uint64) T) FieldCodec[T] {
	return FieldCodec[T]{
		WireType: WireVarint,
		Size:     func(_ *Sizer, v T) int { return SizeVarint(to(v)) },
		Write:    func(e *Encoder, v T) { e.buf = AppendVarint(e.buf, to(v)) },
		Read: func(d *Decoder) (T, error) {
			v, err := d.DecodeVarint()
			return from(v), err
		},
		IsZero: isZero[T],
	}
}

func fixed32Codec[T any](to func(T) uint32, from func(uint32) T) FieldCodec[T] {
	return FieldCodec[T]{
		WireType: WireFixed32,
		Size:     func(*Sizer, T) int { return Fixed32Size() },
		Write:    func(e *Encoder, v T) { e.buf = appendFixed32(e.buf, to(v)) },
		Read: func(d *Decoder) (T, error) {
			v, err := d.DecodeFixed32()
			return from(v), err
		},
		IsZero: func(v T) bool { return to(v) == 0 },
	}
}

func fixed64Codec[T any](to func(T) uint64, from func(uint64) T) FieldCodec[T] {
	return FieldCodec[T]{
		WireType: WireFixed64,
		Size:     func(*Sizer, T) int { return Fixed64Size() },
		Write:    func(e *Encoder, v T) { e.buf = appendFixed64(e.buf, to(v)) },
		Read: func(d *Decoder) (T, error) {
			v, err := d.DecodeFixed64()
			return from(v), err
		},
		IsZero: func(v T) bool { return to(v) == 0 },
	}
}

// Scalar codecs, one per protobuf field kind. Float and double compare with
// zero by bit pattern, so negative zero is written under implicit presence.
var (
	Int32Codec  = varintCodec(func(v int32) uint64 { return uint64(int64(v)) }, func(v uint64) int32 { return int32(v) })
	Int64Codec  = varintCodec(func(v int64) uint64 { return uint64(v) }, func(v uint64) int64 { return int64(v) })
	Uint32Codec = varintCodec(func(v uint32) uint64 { return uint64(v) }, func(v uint64) uint32 { return uint32(v) })
	Uint64Codec = varintCodec(func(v uint64) uint64 { return v }, func(v uint64) uint64 { return v })
	Sint32Codec = varintCodec(EncodeZigZag32, DecodeZigZag32)
	Sint64Codec = varintCodec(EncodeZigZag64, DecodeZigZag64)
	BoolCodec   = varintCodec(EncodeBool, func(v uint64) bool { return v != 0 })

	Fixed32Codec  = fixed32Codec(func(v uint32) uint32 { return v }, func(v uint32) uint32 { return v })
	Sfixed32Codec = fixed32Codec(func(v int32) uint32 { return uint32(v) }, func(v uint32) int32 { return int32(v) })
	FloatCodec    = FieldCodec[float32]{
		WireType: WireFixed32,
		Size:     func(*Sizer, float32) int { return Fixed32Size() },
		Write:    func(e *Encoder, v float32) { NewFixedEncoder(e).EncodeFloat32(v) },
		Read:     func(d *Decoder) (float32, error) { return NewFixedDecoder(d).DecodeFloat32() },
		IsZero:   func(v float32) bool { return math.Float32bits(v) == 0 },
	}

	Fixed64Codec  = fixed64Codec(func(v uint64) uint64 { return v }, func(v uint64) uint64 { return v })
	Sfixed64Codec = fixed64Codec(func(v int64) uint64 { return uint64(v) }, func(v uint64) int64 { return int64(v) })
	DoubleCodec   = FieldCodec[float64]{
		WireType: WireFixed64,
		Size:     func(*Sizer, float64) int { return Fixed64Size() },
		Write:    func(e *Encoder, v float64) { NewFixedEncoder(e).EncodeFloat64(v) },
		Read:     func(d *Decoder) (float64, error) { return NewFixedDecoder(d).DecodeFloat64() },
		IsZero:   func(v float64) bool { return math.Float64bits(v) == 0 },
	}

	StringCodec = FieldCodec[string]{
		WireType: WireBytes,
		Size:     func(_ *Sizer, v string) int { return SizeBytes(len(v)) },
		Write:    func(e *Encoder, v string) { e.EncodeString(v) },
		Read:     func(d *Decoder) (string, error) { return d.DecodeString() },
		IsZero:   func(v string) bool { return v == "" },
	}

	// BytesCodec decodes without copying: values are views into the input.
	BytesCodec = FieldCodec[buffer.Slice]{
		WireType: WireBytes,
		Size:     func(_ *Sizer, v buffer.Slice) int { return SizeBytes(v.Len()) },
		Write:    func(e *Encoder, v buffer.Slice) { e.EncodeBytes(v.Bytes()) },
		Read:     func(d *Decoder) (buffer.Slice, error) { return d.DecodeBytes() },
		IsZero:   func(v buffer.Slice) bool { return v.IsEmpty() },
	}
)

// EnumCodec returns the codec for an enum type. Enums are int32 varints;
// unrecognized numbers are kept as-is.
func EnumCodec[E ~int32]() FieldCodec[E] {
	return varintCodec(func(v E) uint64 { return uint64(int64(v)) }, func(v uint64) E { return E(int32(v)) })
}

// MessageCodec returns the codec for an embedded message type. Nil values
// encode as empty messages; absent map values decode as empty messages.
func MessageCodec[T any, P interface {
	*T
	Message
}]() FieldCodec[P] {
	return FieldCodec[P]{
		WireType: WireBytes,
		Size: func(s *Sizer, v P) int {
			if v == nil {
				return s.Message(nil)
			}
			return s.Message(v)
		},
		Write: func(e *Encoder, v P) {
			if v == nil {
				e.EncodeMessage(nil)
				return
			}
			e.EncodeMessage(v)
		},
		Read: func(d *Decoder) (P, error) {
			p := P(new(T))
			if err := d.DecodeMessage(p); err != nil {
				return nil, err
			}
			return p, nil
		},
		IsZero: func(v P) bool { return v == nil },
		New:    func() P { return P(new(T)) },
	}
}

// SizeField returns the size of num carrying v, tag included.
func SizeField[T any](s *Sizer, num FieldNumber, c FieldCodec[T], v T) int {
	return SizeTag(num) + c.Size(s, v)
}

// WriteField writes num carrying v.
func WriteField[T any](e *Encoder, num FieldNumber, c FieldCodec[T], v T) {
	e.EncodeTag(num, c.WireType)
	c.Write(e, v)
}

// SizeImplicit is SizeField for implicit-presence fields: defaults take no
// space.
func SizeImplicit[T any](s *Sizer, num FieldNumber, c FieldCodec[T], v T) int {
	if c.IsZero(v) {
		return 0
	}
	return SizeField(s, num, c, v)
}

// WriteImplicit is WriteField for implicit-presence fields.
func WriteImplicit[T any](e *Encoder, num FieldNumber, c FieldCodec[T], v T) {
	if c.IsZero(v) {
		return
	}
	WriteField(e, num, c, v)
}

// ReadField reads one value after checking the wire type.
func ReadField[T any](d *Decoder, wt WireType, c FieldCodec[T]) (T, error) {
	if err := d.Expect(wt, c.WireType); err != nil {
		var zero T
		return zero, err
	}
	return c.Read(d)
}

// ReadInto reads one value into *dst. *dst is left alone on error, so a
// mismatched occurrence kept as unknown does not clobber an earlier value.
func ReadInto[T any](d *Decoder, wt WireType, c FieldCodec[T], dst *T) error {
	v, err := ReadField(d, wt, c)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ReadOptional reads one value of an explicit-presence field into *dst.
func ReadOptional[T any](d *Decoder, wt WireType, c FieldCodec[T], dst **T) error {
	v, err := ReadField(d, wt, c)
	if err != nil {
		return err
	}
	*dst = &v
	return nil
}

// ReadMessage merges one occurrence of an embedded message into m.
func ReadMessage(d *Decoder, wt WireType, m Message) error {
	if err := d.Expect(wt, WireBytes); err != nil {
		return err
	}
	return d.DecodeMessage(m)
}

// ReadMessageField merges one occurrence of a singular message field into
// *dst, allocating it on first use.
func ReadMessageField[T any, P interface {
	*T
	Message
}](d *Decoder, wt WireType, dst *P) error {
	if err := d.Expect(wt, WireBytes); err != nil {
		return err
	}
	if *dst == nil {
		*dst = P(new(T))
	}
	return d.DecodeMessage(*dst)
}

// SizeRepeated returns the size of vs written one tag per element.
func SizeRepeated[T any](s *Sizer, num FieldNumber, c FieldCodec[T], vs []T) int {
	n := len(vs) * SizeTag(num)
	for _, v := range vs {
		n += c.Size(s, v)
	}
	return n
}

// WriteRepeated writes vs one tag per element.
func WriteRepeated[T any](e *Encoder, num FieldNumber, c FieldCodec[T], vs []T) {
	for _, v := range vs {
		WriteField(e, num, c, v)
	}
}

// SizePacked returns the size of vs as one packed run. Empty runs are not
// written.
func SizePacked[T any](s *Sizer, num FieldNumber, c FieldCodec[T], vs []T) int {
	if len(vs) == 0 {
		return 0
	}
	return SizeTag(num) + s.Delimited(func() int {
		n := 0
		for _, v := range vs {
			n += c.Size(s, v)
		}
		return n
	})
}

// WritePacked writes vs as one packed run.
func WritePacked[T any](e *Encoder, num FieldNumber, c FieldCodec[T], vs []T) {
	if len(vs) == 0 {
		return
	}
	e.EncodeTag(num, WireBytes)
	e.Delimited(func() {
		for _, v := range vs {
			c.Write(e, v)
		}
	})
}

// ReadRepeated appends one occurrence to dst. Packable kinds accept both a
// packed run and a single unpacked element, whichever the writer chose.
func ReadRepeated[T any](d *Decoder, wt WireType, c FieldCodec[T], dst *[]T) error {
	if wt == WireBytes && c.Packable() {
		return d.DecodePacked(func() error {
			v, err := c.Read(d)
			if err != nil {
				return err
			}
			*dst = append(*dst, v)
			return nil
		})
	}
	v, err := ReadField(d, wt, c)
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// SizeOptional returns the size of an explicit-presence field; nil is
// absent.
func SizeOptional[T any](s *Sizer, num FieldNumber, c FieldCodec[T], v *T) int {
	if v == nil {
		return 0
	}
	return SizeField(s, num, c, *v)
}

// WriteOptional writes an explicit-presence field when set.
func WriteOptional[T any](e *Encoder, num FieldNumber, c FieldCodec[T], v *T) {
	if v == nil {
		return
	}
	WriteField(e, num, c, *v)
}

// SizeMessageField returns the size of a singular message field; nil is
// absent.
func SizeMessageField[T any, P interface {
	*T
	Message
}](s *Sizer, num FieldNumber, m P) int {
	if m == nil {
		return 0
	}
	return SizeTag(num) + s.Message(m)
}

// WriteMessageField writes a singular message field when set.
func WriteMessageField[T any, P interface {
	*T
	Message
}](e *Encoder, num FieldNumber, m P) {
	if m == nil {
		return
	}
	e.EncodeTag(num, WireBytes)
	e.EncodeMessage(m)
}

// SizeMessages returns the size of a repeated message field.
func SizeMessages[T any, P interface {
	*T
	Message
}](s *Sizer, num FieldNumber, ms []P) int {
	n := len(ms) * SizeTag(num)
	for _, m := range ms {
		if m == nil {
			n += s.Message(nil)
			continue
		}
		n += s.Message(m)
	}
	return n
}

// WriteMessages writes a repeated message field. A nil element is written
// as an empty message.
func WriteMessages[T any, P interface {
	*T
	Message
}](e *Encoder, num FieldNumber, ms []P) {
	for _, m := range ms {
		e.EncodeTag(num, WireBytes)
		if m == nil {
			e.EncodeMessage(nil)
			continue
		}
		e.EncodeMessage(m)
	}
}

// ReadMessages appends one decoded element to a repeated message field.
func ReadMessages[T any, P interface {
	*T
	Message
}](d *Decoder, wt WireType, dst *[]P) error {
	if err := d.Expect(wt, WireBytes); err != nil {
		return err
	}
	p := P(new(T))
	if err := d.DecodeMessage(p); err != nil {
		return err
	}
	*dst = append(*dst, p)
	return nil
}
