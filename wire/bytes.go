package wire

import (
	"unicode/utf8"

	"github.com/anirudhraja/protocore/buffer"
)

// BytesDecoder handles length-delimited bytes decoding operations
type BytesDecoder struct {
	decoder *Decoder
}

// BytesEncoder handles length-delimited bytes encoding operations
type BytesEncoder struct {
	encoder *Encoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// NewBytesEncoder creates a new bytes encoder
func NewBytesEncoder(e *Encoder) *BytesEncoder {
	return &BytesEncoder{encoder: e}
}

// DECODER METHODS

// DecodeLength reads a length prefix and checks it against the bytes left
// in the current region.
func (bd *BytesDecoder) DecodeLength() (int, error) {
	d := bd.decoder
	length, err := NewVarintDecoder(d).DecodeVarint()
	if err != nil {
		return 0, err
	}
	if length > uint64(d.end-d.pos) {
		return 0, truncated("length-delimited payload", int(min(length, uint64(MaxSize))), d.end-d.pos)
	}
	return int(length), nil
}

// DecodeBytes decodes a length-delimited payload as a view into the input.
// Nothing is copied; the result keeps the input buffer alive.
func (bd *BytesDecoder) DecodeBytes() (buffer.Slice, error) {
	d := bd.decoder
	n, err := bd.DecodeLength()
	if err != nil {
		return buffer.Slice{}, err
	}
	s, err := d.backing.Slice(d.pos, n)
	if err != nil {
		return buffer.Slice{}, err
	}
	d.pos += n
	return s, nil
}

// DecodeString decodes a length-delimited string
func (bd *BytesDecoder) DecodeString() (string, error) {
	d := bd.decoder
	n, err := bd.DecodeLength()
	if err != nil {
		return "", err
	}
	s := string(d.buf[d.pos : d.pos+n])
	if d.opts.ValidateUTF8 && !utf8.ValidString(s) {
		return "", malformed("field %d: string is not valid UTF-8", d.field)
	}
	d.pos += n
	return s, nil
}

// ENCODER METHODS

// EncodeBytes encodes a byte array as length-delimited
func (be *BytesEncoder) EncodeBytes(data []byte) {
	e := be.encoder
	e.buf = AppendVarint(e.buf, uint64(len(data)))
	e.buf = append(e.buf, data...)
}

// EncodeString encodes a string as length-delimited bytes
func (be *BytesEncoder) EncodeString(s string) {
	e := be.encoder
	e.buf = AppendVarint(e.buf, uint64(len(s)))
	e.buf = append(e.buf, s...)
}

// UTILITY FUNCTIONS

// SizeBytes returns the size of a length-delimited payload of n bytes,
// prefix included.
func SizeBytes(n int) int {
	return SizeVarint(uint64(n)) + n
}

// Convenience methods for direct access

// DecodeBytes - convenience method for main decoder
func (d *Decoder) DecodeBytes() (buffer.Slice, error) {
	return NewBytesDecoder(d).DecodeBytes()
}

// DecodeString - convenience method for main decoder
func (d *Decoder) DecodeString() (string, error) {
	return NewBytesDecoder(d).DecodeString()
}

// EncodeBytes - convenience method for main encoder
func (e *Encoder) EncodeBytes(data []byte) {
	NewBytesEncoder(e).EncodeBytes(data)
}

// EncodeString - convenience method for main encoder
func (e *Encoder) EncodeString(s string) {
	NewBytesEncoder(e).EncodeString(s)
}
