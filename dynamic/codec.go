package dynamic

import (
	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/convert"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

// erase adapts a typed codec to values held as any. Values reaching Size and
// Write have already been checked by Set, so the assertions hold.
func erase[T any](c wire.FieldCodec[T]) wire.FieldCodec[any] {
	return wire.FieldCodec[any]{
		WireType: c.WireType,
		Size:     func(s *wire.Sizer, v any) int { return c.Size(s, v.(T)) },
		Write:    func(e *wire.Encoder, v any) { c.Write(e, v.(T)) },
		Read: func(d *wire.Decoder) (any, error) {
			v, err := c.Read(d)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		IsZero: func(v any) bool { return c.IsZero(v.(T)) },
		New: func() any {
			var zero T
			return zero
		},
	}
}

var scalarCodecs = map[schema.Kind]wire.FieldCodec[any]{
	schema.KindDouble:   erase(wire.DoubleCodec),
	schema.KindFloat:    erase(wire.FloatCodec),
	schema.KindInt64:    erase(wire.Int64Codec),
	schema.KindUint64:   erase(wire.Uint64Codec),
	schema.KindInt32:    erase(wire.Int32Codec),
	schema.KindFixed64:  erase(wire.Fixed64Codec),
	schema.KindFixed32:  erase(wire.Fixed32Codec),
	schema.KindBool:     erase(wire.BoolCodec),
	schema.KindString:   erase(wire.StringCodec),
	schema.KindBytes:    erase(wire.BytesCodec),
	schema.KindUint32:   erase(wire.Uint32Codec),
	schema.KindEnum:     erase(wire.Int32Codec),
	schema.KindSfixed32: erase(wire.Sfixed32Codec),
	schema.KindSfixed64: erase(wire.Sfixed64Codec),
	schema.KindSint32:   erase(wire.Sint32Codec),
	schema.KindSint64:   erase(wire.Sint64Codec),
}

// zeroValue returns the default of a scalar kind as it is stored.
func zeroValue(k schema.Kind) any {
	switch k {
	case schema.KindDouble:
		return float64(0)
	case schema.KindFloat:
		return float32(0)
	case schema.KindInt64, schema.KindSint64, schema.KindSfixed64:
		return int64(0)
	case schema.KindUint64, schema.KindFixed64:
		return uint64(0)
	case schema.KindInt32, schema.KindSint32, schema.KindSfixed32, schema.KindEnum:
		return int32(0)
	case schema.KindUint32, schema.KindFixed32:
		return uint32(0)
	case schema.KindBool:
		return false
	case schema.KindString:
		return ""
	case schema.KindBytes:
		return buffer.Slice{}
	}
	return nil
}

// codecFor returns the codec for one value of fd: the element codec for
// repeated fields and the value codec for maps.
func (m *Message) codecFor(fd *schema.FieldDescriptor) wire.FieldCodec[any] {
	var c wire.FieldCodec[any]
	if fd.Kind() == schema.KindMessage {
		c = messageCodec(fd.Message(), m.conv)
	} else {
		c = scalarCodecs[fd.Kind()]
	}
	if b, ok := m.conv.Lookup(fd.FullName()); ok {
		c = b.Codec(c)
	}
	return c
}

func messageCodec(md *schema.MessageDescriptor, conv *convert.Table) wire.FieldCodec[any] {
	return wire.FieldCodec[any]{
		WireType: wire.WireBytes,
		Size: func(s *wire.Sizer, v any) int {
			if mm, _ := v.(*Message); mm != nil {
				return s.Message(mm)
			}
			return s.Message(nil)
		},
		Write: func(e *wire.Encoder, v any) {
			if mm, _ := v.(*Message); mm != nil {
				e.EncodeMessage(mm)
				return
			}
			e.EncodeMessage(nil)
		},
		Read: func(d *wire.Decoder) (any, error) {
			mm := newMessage(md, conv)
			if err := d.DecodeMessage(mm); err != nil {
				return nil, err
			}
			return mm, nil
		},
		IsZero: func(v any) bool {
			mm, _ := v.(*Message)
			return mm == nil
		},
		New: func() any { return newMessage(md, conv) },
	}
}
