package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestVarint_Boundaries(t *testing.T) {
	tests := []struct {
		value uint64
		size  int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{1<<21 - 1, 3},
		{1 << 21, 4},
		{1<<28 - 1, 4},
		{1 << 28, 5},
		{math.MaxUint32, 5},
		{1<<35 - 1, 5},
		{1 << 35, 6},
		{1 << 42, 7},
		{1 << 49, 8},
		{1 << 56, 9},
		{1<<63 - 1, 9},
		{1 << 63, 10},
		{math.MaxUint64, 10},
	}

	for _, tt := range tests {
		b := AppendVarint(nil, tt.value)
		if len(b) != tt.size {
			t.Errorf("AppendVarint(%d) wrote %d bytes, want %d", tt.value, len(b), tt.size)
		}
		if SizeVarint(tt.value) != tt.size {
			t.Errorf("SizeVarint(%d) = %d, want %d", tt.value, SizeVarint(tt.value), tt.size)
		}
		got, n, err := ConsumeVarint(b)
		if err != nil {
			t.Fatalf("ConsumeVarint(%x) failed: %v", b, err)
		}
		if got != tt.value || n != tt.size {
			t.Errorf("ConsumeVarint(%x) = (%d, %d), want (%d, %d)", b, got, n, tt.value, tt.size)
		}
	}
}

func TestVarint_KnownEncodings(t *testing.T) {
	tests := []struct {
		value    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{150, []byte{0x96, 0x01}},
		{300, []byte{0xac, 0x02}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tt := range tests {
		if got := AppendVarint(nil, tt.value); !bytes.Equal(got, tt.expected) {
			t.Errorf("AppendVarint(%d) = %x, want %x", tt.value, got, tt.expected)
		}
	}
}

func TestConsumeVarint_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected error
	}{
		{"empty", nil, ErrTruncatedInput},
		{"continuation then end", []byte{0x80}, ErrTruncatedInput},
		{"nine continuation bytes", bytes.Repeat([]byte{0xff}, 9), ErrTruncatedInput},
		{"tenth byte continues", append(bytes.Repeat([]byte{0xff}, 9), 0x80, 0x01), ErrMalformedVarint},
		{"tenth byte overflows", append(bytes.Repeat([]byte{0xff}, 9), 0x02), ErrMalformedVarint},
		{"eleven bytes", bytes.Repeat([]byte{0xff}, 11), ErrMalformedVarint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ConsumeVarint(tt.data)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestDecoder_VarintCursorStaysOnError(t *testing.T) {
	d := NewDecoder([]byte{0x96, 0x01, 0x80})
	v, err := d.DecodeVarint()
	if err != nil || v != 150 {
		t.Fatalf("expected 150, got %d (%v)", v, err)
	}
	if _, err := d.DecodeVarint(); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected truncated input, got %v", err)
	}
	if d.Position() != 2 {
		t.Errorf("cursor moved on failure: %d", d.Position())
	}
}

func TestZigZag(t *testing.T) {
	tests := []struct {
		value   int64
		encoded uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2147483647, 4294967294},
		{-2147483648, 4294967295},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		if got := EncodeZigZag64(tt.value); got != tt.encoded {
			t.Errorf("EncodeZigZag64(%d) = %d, want %d", tt.value, got, tt.encoded)
		}
		if got := DecodeZigZag64(tt.encoded); got != tt.value {
			t.Errorf("DecodeZigZag64(%d) = %d, want %d", tt.encoded, got, tt.value)
		}
		if tt.value >= math.MinInt32 && tt.value <= math.MaxInt32 {
			if got := EncodeZigZag32(int32(tt.value)); got != tt.encoded {
				t.Errorf("EncodeZigZag32(%d) = %d, want %d", tt.value, got, tt.encoded)
			}
			if got := DecodeZigZag32(tt.encoded); got != int32(tt.value) {
				t.Errorf("DecodeZigZag32(%d) = %d, want %d", tt.encoded, got, tt.value)
			}
		}
	}
}

func TestFixed_LittleEndianAndBitPatterns(t *testing.T) {
	e := NewEncoder()
	e.EncodeFixed32(0x01020304)
	e.EncodeFixed64(0x0102030405060708)
	NewFixedEncoder(e).EncodeFloat32(float32(math.Copysign(0, -1)))
	NewFixedEncoder(e).EncodeFloat64(math.NaN())

	expected := []byte{
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x00, 0x00, 0x00, 0x80,
	}
	expected = appendFixed64(expected, math.Float64bits(math.NaN()))
	if !bytes.Equal(e.Bytes(), expected) {
		t.Fatalf("unexpected encoding %x, want %x", e.Bytes(), expected)
	}

	d := NewDecoder(e.Bytes())
	fd := NewFixedDecoder(d)
	if v, _ := fd.DecodeFixed32(); v != 0x01020304 {
		t.Errorf("fixed32 = %#x", v)
	}
	if v, _ := fd.DecodeFixed64(); v != 0x0102030405060708 {
		t.Errorf("fixed64 = %#x", v)
	}
	if v, _ := fd.DecodeFloat32(); !math.Signbit(float64(v)) || v != 0 {
		t.Errorf("expected negative zero, got %v", v)
	}
	if v, _ := fd.DecodeFloat64(); !math.IsNaN(v) {
		t.Errorf("expected NaN, got %v", v)
	}
	if _, err := fd.DecodeFixed32(); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("expected truncated input at end, got %v", err)
	}
}

func TestFloatCodecs_KeepBitPatterns(t *testing.T) {
	tests := []struct {
		name string
		bits uint64
	}{
		{"zero", 0},
		{"negative zero", math.Float64bits(math.Copysign(0, -1))},
		{"nan payload", 0x7ff8000000000abc},
		{"max", math.Float64bits(math.MaxFloat64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := math.Float64frombits(tt.bits)
			e := NewEncoder()
			DoubleCodec.Write(e, v)
			if len(e.Bytes()) != DoubleCodec.Size(nil, v) || len(e.Bytes()) != Fixed64Size() {
				t.Fatalf("double wrote %d bytes", len(e.Bytes()))
			}
			got, err := DoubleCodec.Read(NewDecoder(e.Bytes()))
			if err != nil || math.Float64bits(got) != tt.bits {
				t.Errorf("double = %#x, %v; want %#x", math.Float64bits(got), err, tt.bits)
			}
			if DoubleCodec.IsZero(v) != (tt.bits == 0) {
				t.Errorf("IsZero(%#x) = %v", tt.bits, DoubleCodec.IsZero(v))
			}

			f := float32(v)
			e = NewEncoder()
			FloatCodec.Write(e, f)
			if len(e.Bytes()) != FloatCodec.Size(nil, f) || len(e.Bytes()) != Fixed32Size() {
				t.Fatalf("float wrote %d bytes", len(e.Bytes()))
			}
			got32, err := FloatCodec.Read(NewDecoder(e.Bytes()))
			if err != nil || math.Float32bits(got32) != math.Float32bits(f) {
				t.Errorf("float = %#x, %v; want %#x", math.Float32bits(got32), err, math.Float32bits(f))
			}
		})
	}

	if _, err := FloatCodec.Read(NewDecoder([]byte{1, 2})); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("expected truncated input, got %v", err)
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		num      FieldNumber
		wt       WireType
		expected []byte
	}{
		{1, WireVarint, []byte{0x08}},
		{2, WireBytes, []byte{0x12}},
		{15, WireFixed32, []byte{0x7d}},
		{16, WireVarint, []byte{0x80, 0x01}},
		{MaxFieldNumber, WireFixed64, []byte{0xf9, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		e := NewEncoder()
		e.EncodeTag(tt.num, tt.wt)
		if !bytes.Equal(e.Bytes(), tt.expected) {
			t.Errorf("tag(%d, %v) = %x, want %x", tt.num, tt.wt, e.Bytes(), tt.expected)
		}
		if SizeTag(tt.num) != len(tt.expected) {
			t.Errorf("SizeTag(%d) = %d, want %d", tt.num, SizeTag(tt.num), len(tt.expected))
		}
		num, wt := ParseTag(MakeTag(tt.num, tt.wt))
		if num != tt.num || wt != tt.wt {
			t.Errorf("ParseTag round trip gave (%d, %v)", num, wt)
		}
	}
}

func TestReadTag_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"field number zero", []byte{0x00}},
		{"wire type 6", []byte{0x0e}},
		{"wire type 7", []byte{0x0f}},
		{"field number too large", AppendVarint(nil, uint64(MaxFieldNumber+1)<<3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewDecoder(tt.data).ReadTag()
			if !errors.Is(err, ErrMalformedMessage) {
				t.Errorf("expected malformed message, got %v", err)
			}
		})
	}
}

func TestFieldNumber_Ranges(t *testing.T) {
	if FieldNumber(0).IsValid() || !FieldNumber(1).IsValid() || (MaxFieldNumber + 1).IsValid() {
		t.Error("unexpected IsValid result at range edges")
	}
	if !FieldNumber(19000).IsReserved() || !FieldNumber(19999).IsReserved() || FieldNumber(20000).IsReserved() {
		t.Error("unexpected IsReserved result at range edges")
	}
	if WireType(6).Valid() || !WireFixed32.Valid() {
		t.Error("unexpected WireType.Valid result")
	}
}

func TestInt64Bridging(t *testing.T) {
	tests := []struct {
		value int64
		high  uint32
		low   uint32
	}{
		{0, 0, 0},
		{1, 0, 1},
		{-1, 0xffffffff, 0xffffffff},
		{math.MaxInt64, 0x7fffffff, 0xffffffff},
		{math.MinInt64, 0x80000000, 0},
		{1 << 32, 1, 0},
		{-(1 << 32), 0xffffffff, 0},
		{0x123456789abcdef0, 0x12345678, 0x9abcdef0},
	}

	for _, tt := range tests {
		high, low := SplitInt64(tt.value)
		if high != tt.high || low != tt.low {
			t.Errorf("SplitInt64(%d) = (%#x, %#x), want (%#x, %#x)", tt.value, high, low, tt.high, tt.low)
		}
		if got := JoinInt64(tt.high, tt.low); got != tt.value {
			t.Errorf("JoinInt64(%#x, %#x) = %d, want %d", tt.high, tt.low, got, tt.value)
		}
		if got := JoinUint64(SplitUint64(uint64(tt.value))); got != uint64(tt.value) {
			t.Errorf("uint64 round trip of %d gave %d", uint64(tt.value), got)
		}
	}
}
