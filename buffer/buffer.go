// Package buffer provides the byte ownership model used by the codec: an owned
// Buffer and a non-owning Slice view over it.
//
// Decoding never copies length-delimited payloads. A bytes field decoded from
// an input refers to the input's backing Buffer, so every Slice keeps that
// Buffer alive for as long as it is referenced. Callers must not mutate input
// bytes after handing them to the decoder.
package buffer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ErrOutOfRange is returned when a view does not fit inside its backing buffer.
var ErrOutOfRange = errors.New("buffer: slice out of range")

// Buffer owns a run of bytes. It is read-only once shared with a Slice.
type Buffer struct {
	data []byte
}

// NewBuffer takes ownership of b without copying it.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

// CopyBuffer returns a Buffer holding a private copy of b.
func CopyBuffer(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return &Buffer{data: data}
}

// Bytes returns the owned bytes. The result must not be modified while any
// Slice refers to this buffer.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of owned bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Slice returns a view of n bytes starting at off.
func (b *Buffer) Slice(off, n int) (Slice, error) {
	if off < 0 || n < 0 || off > b.Len() || n > b.Len()-off {
		return Slice{}, fmt.Errorf("%w: [%d:%d] of %d", ErrOutOfRange, off, off+n, b.Len())
	}
	return Slice{backing: b, off: off, n: n}, nil
}

// All returns a view over the whole buffer.
func (b *Buffer) All() Slice {
	return Slice{backing: b, off: 0, n: b.Len()}
}

// Slice is a view (offset, length) into a shared Buffer. The zero value is an
// empty slice. Equality and hashing are by content, never by identity.
type Slice struct {
	backing *Buffer
	off     int
	n       int
}

// SliceOf wraps b in a fresh Buffer and returns a view over all of it. b is
// not copied.
func SliceOf(b []byte) Slice {
	return NewBuffer(b).All()
}

// StringSlice copies s into a new Buffer.
func StringSlice(s string) Slice {
	return NewBuffer([]byte(s)).All()
}

// Bytes returns the viewed bytes without copying. The capacity is clipped so
// appends never write into the backing buffer.
func (s Slice) Bytes() []byte {
	if s.backing == nil {
		return nil
	}
	return s.backing.data[s.off : s.off+s.n : s.off+s.n]
}

// Len returns the view length.
func (s Slice) Len() int { return s.n }

// IsEmpty reports whether the view has no bytes.
func (s Slice) IsEmpty() bool { return s.n == 0 }

// Offset returns the view's start position in its backing buffer.
func (s Slice) Offset() int { return s.off }

// Backing returns the buffer this view refers to, or nil for the zero Slice.
func (s Slice) Backing() *Buffer { return s.backing }

// Sub returns a narrower view relative to s.
func (s Slice) Sub(off, n int) (Slice, error) {
	if off < 0 || n < 0 || off > s.n || n > s.n-off {
		return Slice{}, fmt.Errorf("%w: [%d:%d] of %d", ErrOutOfRange, off, off+n, s.n)
	}
	return Slice{backing: s.backing, off: s.off + off, n: n}, nil
}

// Clone copies the viewed bytes into a new, independently owned Buffer.
func (s Slice) Clone() *Buffer {
	return CopyBuffer(s.Bytes())
}

// Compact returns a view over a private copy of the bytes so the original
// backing buffer can be released.
func (s Slice) Compact() Slice {
	if s.n == 0 {
		return Slice{}
	}
	return s.Clone().All()
}

// Equal reports whether both views hold the same bytes.
func (s Slice) Equal(o Slice) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Hash returns a content hash suitable for map keys and deduplication.
func (s Slice) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// String returns the viewed bytes as a string (copying).
func (s Slice) String() string {
	return string(s.Bytes())
}
