package conformance

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrFrameTooLarge is returned for a frame longer than Limits.MaxFrameBytes.
var ErrFrameTooLarge = errors.New("frame too large")

// Limits bounds the frames ReadFrame and WriteFrame accept. A zero
// MaxFrameBytes means no ceiling beyond the 32-bit length prefix.
type Limits struct {
	MaxFrameBytes int
}

func (l Limits) check(n uint64) error {
	if n > math.MaxUint32 || (l.MaxFrameBytes > 0 && n > uint64(l.MaxFrameBytes)) {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFrameTooLarge, n, l.MaxFrameBytes)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame: a 4-byte little-endian length
// followed by that many bytes. It returns io.EOF only when r ends cleanly
// before a new frame starts.
func ReadFrame(r io.Reader, l Limits) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read length: %w", err)
	}

	n := binary.LittleEndian.Uint32(lenBuf[:])
	if err := l.check(uint64(n)); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return b, nil
}

// WriteFrame writes b with its 4-byte little-endian length prefix.
func WriteFrame(w io.Writer, b []byte, l Limits) error {
	if err := l.check(uint64(len(b))); err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("write length: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
