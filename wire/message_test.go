package wire

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/anirudhraja/protocore/buffer"
)

// sample is a hand-written message in the shape generated code takes.
type sample struct {
	ID     int32
	Name   string
	Score  float64
	Child  *sample
	Values []int64
	Tags   []string
	Counts map[string]int32
	Blob   buffer.Slice
	Delta  int64

	unknown UnknownFields
}

func (m *sample) FullName() string { return "protocore.test.Sample" }

func (m *sample) SizeWire(s *Sizer) int {
	n := SizeImplicit(s, 1, Int32Codec, m.ID)
	n += SizeImplicit(s, 2, StringCodec, m.Name)
	n += SizeImplicit(s, 3, DoubleCodec, m.Score)
	if m.Child != nil {
		n += SizeTag(4) + s.Message(m.Child)
	}
	n += SizePacked(s, 5, Int64Codec, m.Values)
	n += SizeRepeated(s, 6, StringCodec, m.Tags)
	n += SizeMap(s, 7, StringCodec, Int32Codec, m.Counts)
	n += SizeImplicit(s, 8, BytesCodec, m.Blob)
	n += SizeImplicit(s, 9, Sint64Codec, m.Delta)
	return n + m.unknown.Size()
}

func (m *sample) MarshalWire(e *Encoder) {
	WriteImplicit(e, 1, Int32Codec, m.ID)
	WriteImplicit(e, 2, StringCodec, m.Name)
	WriteImplicit(e, 3, DoubleCodec, m.Score)
	if m.Child != nil {
		e.EncodeTag(4, WireBytes)
		e.EncodeMessage(m.Child)
	}
	WritePacked(e, 5, Int64Codec, m.Values)
	WriteRepeated(e, 6, StringCodec, m.Tags)
	WriteMap(e, 7, StringCodec, Int32Codec, m.Counts)
	WriteImplicit(e, 8, BytesCodec, m.Blob)
	WriteImplicit(e, 9, Sint64Codec, m.Delta)
	e.EncodeUnknown(&m.unknown)
}

func (m *sample) UnmarshalWireField(d *Decoder, num FieldNumber, wt WireType) (bool, error) {
	switch num {
	case 1:
		return true, ReadInto(d, wt, Int32Codec, &m.ID)
	case 2:
		return true, ReadInto(d, wt, StringCodec, &m.Name)
	case 3:
		return true, ReadInto(d, wt, DoubleCodec, &m.Score)
	case 4:
		return true, ReadMessageField(d, wt, &m.Child)
	case 5:
		return true, ReadRepeated(d, wt, Int64Codec, &m.Values)
	case 6:
		return true, ReadRepeated(d, wt, StringCodec, &m.Tags)
	case 7:
		return true, ReadMapEntry(d, wt, StringCodec, Int32Codec, &m.Counts)
	case 8:
		return true, ReadInto(d, wt, BytesCodec, &m.Blob)
	case 9:
		return true, ReadInto(d, wt, Sint64Codec, &m.Delta)
	}
	return false, nil
}

func (m *sample) UnknownFields() *UnknownFields { return &m.unknown }

func (m *sample) Reset() { *m = sample{} }

func (m *sample) WireFieldName(num FieldNumber) string {
	names := map[FieldNumber]string{1: "id", 2: "name", 3: "score", 4: "child", 5: "values", 6: "tags", 7: "counts", 8: "blob", 9: "delta"}
	return names[num]
}

// field builds raw wire bytes for tests.
type field struct {
	buf []byte
}

func (f *field) varint(num FieldNumber, v uint64) *field {
	f.buf = AppendVarint(f.buf, uint64(MakeTag(num, WireVarint)))
	f.buf = AppendVarint(f.buf, v)
	return f
}

func (f *field) bytes(num FieldNumber, b []byte) *field {
	f.buf = AppendVarint(f.buf, uint64(MakeTag(num, WireBytes)))
	f.buf = AppendVarint(f.buf, uint64(len(b)))
	f.buf = append(f.buf, b...)
	return f
}

func (f *field) fixed32(num FieldNumber, v uint32) *field {
	f.buf = AppendVarint(f.buf, uint64(MakeTag(num, WireFixed32)))
	f.buf = appendFixed32(f.buf, v)
	return f
}

func (f *field) fixed64(num FieldNumber, v uint64) *field {
	f.buf = AppendVarint(f.buf, uint64(MakeTag(num, WireFixed64)))
	f.buf = appendFixed64(f.buf, v)
	return f
}

func (f *field) raw(b ...byte) *field {
	f.buf = append(f.buf, b...)
	return f
}

func fullSample() *sample {
	return &sample{
		ID:     -42,
		Name:   "hello",
		Score:  2.5,
		Child:  &sample{ID: 7, Tags: []string{"inner"}},
		Values: []int64{1, -1, 1 << 40},
		Tags:   []string{"a", "", "c"},
		Counts: map[string]int32{"z": 26, "a": 1, "m": 0},
		Blob:   buffer.SliceOf([]byte{0xde, 0xad}),
		Delta:  -3,
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  *sample
	}{
		{"empty", &sample{}},
		{"scalars only", &sample{ID: 1, Name: "x", Score: -0.5, Delta: 1 << 50}},
		{"full", fullSample()},
		{"nested chain", &sample{Child: &sample{Child: &sample{Child: &sample{Name: "deep"}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.msg)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if len(data) != Size(tt.msg) {
				t.Errorf("encoded %d bytes, Size reported %d", len(data), Size(tt.msg))
			}
			if cap(data) != len(data) {
				t.Errorf("output buffer was reallocated: len %d cap %d", len(data), cap(data))
			}

			decoded, err := Decode[sample](data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !Equal(tt.msg, decoded) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, tt.msg)
			}

			again, err := Marshal(decoded)
			if err != nil {
				t.Fatalf("re-Marshal failed: %v", err)
			}
			if !bytes.Equal(data, again) {
				t.Errorf("re-encoding differs:\n got %x\nwant %x", again, data)
			}
		})
	}
}

func TestMarshal_ImplicitPresence(t *testing.T) {
	data, err := Marshal(&sample{Name: "", Tags: nil, Counts: map[string]int32{}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("defaults should take no space, got %x", data)
	}

	// Negative zero is not the default.
	negZero := &sample{Score: negativeZero()}
	data, _ = Marshal(negZero)
	if len(data) != 9 {
		t.Errorf("negative zero double should be written, got %x", data)
	}
}

func negativeZero() float64 {
	z := 0.0
	return -z
}

func TestMarshal_KnownBytes(t *testing.T) {
	msg := &sample{ID: 150, Name: "hi", Values: []int64{3, 270}}
	expected := (&field{}).
		varint(1, 150).
		bytes(2, []byte("hi")).
		bytes(5, []byte{0x03, 0x8e, 0x02}).
		buf

	data, err := Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Equal(data, expected) {
		t.Errorf("got %x, want %x", data, expected)
	}
}

func TestMarshal_MapKeysSorted(t *testing.T) {
	msg := &sample{Counts: map[string]int32{"b": 2, "c": 3, "a": 1}}
	data, err := Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	entry := func(k string, v uint64) []byte {
		return (&field{}).bytes(1, []byte(k)).varint(2, v).buf
	}
	expected := (&field{}).
		bytes(7, entry("a", 1)).
		bytes(7, entry("b", 2)).
		bytes(7, entry("c", 3)).
		buf
	if !bytes.Equal(data, expected) {
		t.Errorf("got %x, want %x", data, expected)
	}
}

func TestUnmarshal_UnknownFieldsPreserved(t *testing.T) {
	known := (&field{}).varint(1, 5).bytes(2, []byte("n")).buf
	unknown := (&field{}).
		varint(100, 1<<40).
		bytes(101, []byte("opaque")).
		fixed32(102, 0xcafebabe).
		fixed64(103, 1).
		raw(0xa3, 0x06, 0x08, 0x01, 0xa4, 0x06). // group 100 { varint 1: 1 }
		varint(100, 2).
		buf
	input := append(append([]byte{}, known...), unknown...)

	msg := &sample{}
	if err := Unmarshal(input, msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if msg.ID != 5 || msg.Name != "n" {
		t.Fatalf("known fields not decoded: %+v", msg)
	}
	if msg.unknown.Len() != 6 {
		t.Fatalf("expected 6 unknown fields, got %d", msg.unknown.Len())
	}

	got := msg.unknown.Get(100)
	if len(got) != 3 || got[0].Value.Varint() != 1<<40 || got[1].Value.Type() != WireStartGroup || got[2].Value.Varint() != 2 {
		t.Errorf("unexpected occurrences of field 100: %v", got)
	}
	if s := msg.unknown.Get(101)[0].Value.Bytes().String(); s != "opaque" {
		t.Errorf("unexpected bytes payload %q", s)
	}

	out, err := Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("unknown fields not preserved verbatim:\n got %x\nwant %x", out, input)
	}
	if !bytes.Equal(msg.unknown.Bytes(), unknown) {
		t.Errorf("raw unknown bytes differ")
	}
}

func TestUnmarshal_UnknownOrderAfterInterleaving(t *testing.T) {
	// Known fields are re-emitted in declaration order, unknown fields after
	// them in encounter order.
	input := (&field{}).varint(50, 1).bytes(2, []byte("x")).varint(51, 2).varint(1, 9).buf
	expected := (&field{}).varint(1, 9).bytes(2, []byte("x")).varint(50, 1).varint(51, 2).buf

	msg := &sample{}
	if err := Unmarshal(input, msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	out, _ := Marshal(msg)
	if !bytes.Equal(out, expected) {
		t.Errorf("got %x, want %x", out, expected)
	}
}

func TestUnmarshal_DiscardUnknown(t *testing.T) {
	input := (&field{}).varint(1, 5).varint(99, 1).buf
	msg := &sample{}
	if err := (UnmarshalOptions{DiscardUnknown: true}).Unmarshal(input, msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if msg.unknown.Len() != 0 || msg.ID != 5 {
		t.Errorf("unexpected result %+v", msg)
	}
}

func TestUnmarshal_PackedAndUnpackedAreEquivalent(t *testing.T) {
	packed := (&field{}).bytes(5, []byte{0x01, 0x02, 0x96, 0x01}).buf
	unpacked := (&field{}).varint(5, 1).varint(5, 2).varint(5, 150).buf
	mixed := (&field{}).varint(5, 1).bytes(5, []byte{0x02}).varint(5, 150).buf

	want := []int64{1, 2, 150}
	for name, input := range map[string][]byte{"packed": packed, "unpacked": unpacked, "mixed": mixed} {
		t.Run(name, func(t *testing.T) {
			msg, err := Decode[sample](input)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(msg.Values, want) {
				t.Errorf("got %v, want %v", msg.Values, want)
			}
			out, _ := Marshal(msg)
			if !bytes.Equal(out, packed) {
				t.Errorf("re-encoding should be packed: %x", out)
			}
		})
	}
}

func TestUnmarshal_WireTypeMismatch(t *testing.T) {
	input := (&field{}).varint(1, 3).fixed32(1, 7).buf

	t.Run("lenient keeps occurrence as unknown", func(t *testing.T) {
		msg := &sample{}
		if err := (UnmarshalOptions{}).Unmarshal(input, msg); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if msg.ID != 3 {
			t.Errorf("earlier value clobbered: %d", msg.ID)
		}
		if msg.unknown.Len() != 1 || msg.unknown.All()[0].Value.Fixed32() != 7 {
			t.Errorf("mismatched occurrence not captured: %v", msg.unknown.All())
		}
		out, _ := Marshal(msg)
		if !bytes.Equal(out, input) {
			t.Errorf("got %x, want %x", out, input)
		}
	})

	t.Run("strict fails", func(t *testing.T) {
		msg := &sample{}
		err := (UnmarshalOptions{StrictWireType: true}).Unmarshal(input, msg)
		if !errors.Is(err, ErrUnexpectedWireType) {
			t.Fatalf("expected ErrUnexpectedWireType, got %v", err)
		}
		if !strings.Contains(err.Error(), "error at proto path id") {
			t.Errorf("error should name the field: %v", err)
		}
		if msg.ID != 0 || msg.unknown.Len() != 0 {
			t.Errorf("target should be reset on error: %+v", msg)
		}
	})

	t.Run("lenient map entry keeps key and value", func(t *testing.T) {
		tests := []struct {
			name  string
			entry []byte
		}{
			{"key mismatch", (&field{}).bytes(1, []byte("a")).varint(1, 5).varint(2, 7).buf},
			{"value mismatch", (&field{}).bytes(1, []byte("a")).varint(2, 7).bytes(2, []byte("x")).buf},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				msg := &sample{}
				if err := Unmarshal((&field{}).bytes(7, tt.entry).buf, msg); err != nil {
					t.Fatalf("Unmarshal failed: %v", err)
				}
				if len(msg.Counts) != 1 || msg.Counts["a"] != 7 {
					t.Errorf("got %v, want map[a:7]", msg.Counts)
				}
			})
		}
	})

	t.Run("strict fails inside nested message", func(t *testing.T) {
		nested := (&field{}).bytes(4, (&field{}).fixed64(2, 1).buf).buf
		err := (UnmarshalOptions{StrictWireType: true}).Unmarshal(nested, &sample{})
		var fe *FieldError
		if !errors.As(err, &fe) || strings.Join(fe.FieldPath, ".") != "child.name" {
			t.Fatalf("expected path child.name, got %v", err)
		}
	})
}

func TestWriteMessages_NilElement(t *testing.T) {
	tests := []struct {
		name     string
		msgs     []*sample
		expected []byte
	}{
		{"nil only", []*sample{nil}, (&field{}).bytes(4, nil).buf},
		{"nil after value", []*sample{{ID: 1}, nil}, (&field{}).bytes(4, (&field{}).varint(1, 1).buf).bytes(4, nil).buf},
		{"nil between values", []*sample{{ID: 1}, nil, {ID: 2}},
			(&field{}).bytes(4, (&field{}).varint(1, 1).buf).bytes(4, nil).bytes(4, (&field{}).varint(1, 2).buf).buf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sizer{}
			n := SizeMessages(s, 4, tt.msgs)
			if n != len(tt.expected) {
				t.Errorf("SizeMessages = %d, want %d", n, len(tt.expected))
			}
			e := newEncoderFor(s, n)
			WriteMessages(e, 4, tt.msgs)
			if e.err != nil {
				t.Fatalf("WriteMessages failed: %v", e.err)
			}
			if !bytes.Equal(e.Bytes(), tt.expected) {
				t.Errorf("got %x, want %x", e.Bytes(), tt.expected)
			}
		})
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected error
	}{
		{"field number zero", []byte{0x00, 0x01}, ErrMalformedMessage},
		{"wire type 7", []byte{0x0f}, ErrMalformedMessage},
		{"stray end group", []byte{0x0c}, ErrMalformedMessage},
		{"mismatched end group", []byte{0x0b, 0x14}, ErrMalformedMessage},
		{"unterminated group", []byte{0x0b, 0x08, 0x01}, ErrTruncatedInput},
		{"truncated varint value", []byte{0x08, 0x80}, ErrTruncatedInput},
		{"truncated fixed64", []byte{0x19, 0x01, 0x02}, ErrTruncatedInput},
		{"length past end", []byte{0x12, 0x05, 'a'}, ErrTruncatedInput},
		{"nested length past end", []byte{0x22, 0x03, 0x08}, ErrTruncatedInput},
		{"nested field overruns nested length", []byte{0x22, 0x01, 0x08, 0x01}, ErrMalformedMessage},
		{"packed partial trailing element", []byte{0x2a, 0x02, 0x01, 0x80, 0x01}, ErrMalformedMessage},
		{"malformed varint", append([]byte{0x08}, bytes.Repeat([]byte{0xff}, 10)...), ErrMalformedVarint},
		{"nested stray end group", []byte{0x22, 0x01, 0x0c}, ErrMalformedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &sample{ID: 99}
			err := Unmarshal(tt.data, msg)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
			if !reflect.DeepEqual(msg, &sample{}) {
				t.Errorf("target should be reset after a failed decode: %+v", msg)
			}
		})
	}
}

func TestDecode_ReturnsNilOnError(t *testing.T) {
	msg, err := Decode[sample]([]byte{0x08})
	if err == nil || msg != nil {
		t.Fatalf("expected (nil, error), got (%v, %v)", msg, err)
	}
}

func TestUnmarshal_MaxDepth(t *testing.T) {
	deep := &sample{}
	cur := deep
	for i := 0; i < 5; i++ {
		cur.Child = &sample{ID: int32(i + 1)}
		cur = cur.Child
	}
	data, err := Marshal(deep)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if err := (UnmarshalOptions{MaxDepth: 5}).Unmarshal(data, &sample{}); err != nil {
		t.Errorf("depth 5 should decode with MaxDepth 5: %v", err)
	}
	if err := (UnmarshalOptions{MaxDepth: 4}).Unmarshal(data, &sample{}); !errors.Is(err, ErrMalformedMessage) {
		t.Errorf("expected depth limit failure, got %v", err)
	}
}

func TestUnmarshal_MaxSize(t *testing.T) {
	data, _ := Marshal(fullSample())
	err := (UnmarshalOptions{MaxSize: len(data) - 1}).Unmarshal(data, &sample{})
	if !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("expected ErrMessageTooLarge, got %v", err)
	}
}

func TestUnmarshal_MapEntryDefaults(t *testing.T) {
	tests := []struct {
		name     string
		entry    []byte
		expected map[string]int32
	}{
		{"key only", (&field{}).bytes(1, []byte("k")).buf, map[string]int32{"k": 0}},
		{"value only", (&field{}).varint(2, 4).buf, map[string]int32{"": 4}},
		{"empty entry", nil, map[string]int32{"": 0}},
		{"value before key", (&field{}).varint(2, 4).bytes(1, []byte("k")).buf, map[string]int32{"k": 4}},
		{"unknown field in entry", (&field{}).bytes(1, []byte("k")).varint(3, 1).varint(2, 9).buf, map[string]int32{"k": 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := (&field{}).bytes(7, tt.entry).buf
			msg, err := Decode[sample](input)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(msg.Counts, tt.expected) {
				t.Errorf("got %v, want %v", msg.Counts, tt.expected)
			}
		})
	}

	// A later entry with the same key replaces the earlier one.
	input := (&field{}).
		bytes(7, (&field{}).bytes(1, []byte("k")).varint(2, 1).buf).
		bytes(7, (&field{}).bytes(1, []byte("k")).varint(2, 2).buf).
		buf
	msg, err := Decode[sample](input)
	if err != nil || msg.Counts["k"] != 2 {
		t.Errorf("expected last entry to win, got %v (%v)", msg, err)
	}
}

func TestUnmarshal_MessageFieldsMerge(t *testing.T) {
	input := (&field{}).
		bytes(4, (&field{}).varint(1, 1).bytes(6, []byte("a")).buf).
		bytes(4, (&field{}).bytes(2, []byte("n")).bytes(6, []byte("b")).buf).
		buf
	msg, err := Decode[sample](input)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := &sample{ID: 1, Name: "n", Tags: []string{"a", "b"}}
	if !Equal(msg.Child, want) {
		t.Errorf("got %+v, want %+v", msg.Child, want)
	}
}

func TestUnmarshal_BytesAreZeroCopy(t *testing.T) {
	input := (&field{}).bytes(8, []byte("payload")).buf
	msg, err := Decode[sample](input)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if msg.Blob.Offset() != 2 || msg.Blob.String() != "payload" {
		t.Fatalf("unexpected view %d %q", msg.Blob.Offset(), msg.Blob.String())
	}
	input[2] = 'P'
	if msg.Blob.String() != "Payload" {
		t.Errorf("bytes field should share the input buffer")
	}
}

func TestParseFields(t *testing.T) {
	input := (&field{}).varint(1, 150).bytes(2, []byte("hi")).fixed32(3, 1).raw(0x23, 0x08, 0x01, 0x24).buf
	fields, err := ParseFields(input)
	if err != nil {
		t.Fatalf("ParseFields failed: %v", err)
	}

	want := []struct {
		num FieldNumber
		wt  WireType
	}{{1, WireVarint}, {2, WireBytes}, {3, WireFixed32}, {4, WireStartGroup}}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	total := 0
	for i, f := range fields {
		if f.Number != want[i].num || f.Value.Type() != want[i].wt {
			t.Errorf("field %d: got (%d, %v)", i, f.Number, f.Value.Type())
		}
		total += f.Raw().Len()
	}
	if total != len(input) {
		t.Errorf("raw spans cover %d of %d bytes", total, len(input))
	}
	if fields[3].Value.Bytes().Len() != 2 {
		t.Errorf("group body should exclude its tags: %x", fields[3].Value.Bytes().Bytes())
	}

	if _, err := ParseFields([]byte{0x08}); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("expected truncated input, got %v", err)
	}
}

func TestNewUnknownField(t *testing.T) {
	msg := &sample{ID: 1}
	msg.unknown.Add(NewUnknownField(20, VarintValue(3)))
	msg.unknown.Add(NewUnknownField(21, BytesValue(buffer.StringSlice("x"))))
	msg.unknown.Add(NewUnknownField(22, GroupValue(buffer.SliceOf([]byte{0x08, 0x01}))))

	data, err := Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := (&field{}).varint(1, 1).varint(20, 3).bytes(21, []byte("x")).raw(0xb3, 0x01, 0x08, 0x01, 0xb4, 0x01).buf
	if !bytes.Equal(data, expected) {
		t.Errorf("got %x, want %x", data, expected)
	}
}

func TestEqual(t *testing.T) {
	a, b := fullSample(), fullSample()
	if !Equal(a, b) {
		t.Error("identical messages should be equal")
	}
	b.Counts["new"] = 1
	if Equal(a, b) {
		t.Error("different maps should not be equal")
	}
	if Equal(a, nil) || !Equal(nil, nil) {
		t.Error("unexpected nil handling")
	}
}

type failingMessage struct{ sample }

func (m *failingMessage) SizeWire(s *Sizer) int {
	s.Fail(errors.New("cannot size"))
	return 0
}

func (m *failingMessage) MarshalWire(e *Encoder) {}

type lyingMessage struct{ sample }

func (m *lyingMessage) SizeWire(s *Sizer) int { return 3 }

func (m *lyingMessage) MarshalWire(e *Encoder) { e.EncodeVarint(1) }

func TestMarshal_Errors(t *testing.T) {
	if _, err := Marshal(&failingMessage{}); err == nil || !strings.Contains(err.Error(), "cannot size") {
		t.Errorf("expected sizing error to surface, got %v", err)
	}
	if _, err := Marshal(&lyingMessage{}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}
