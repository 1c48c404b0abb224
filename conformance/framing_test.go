package conformance

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestFrame_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	frames := [][]byte{[]byte("first"), {}, bytes.Repeat([]byte{0xab}, 300)}
	for _, f := range frames {
		if err := WriteFrame(&buf, f, Limits{}); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}

	if got := buf.Bytes()[:4]; !bytes.Equal(got, []byte{5, 0, 0, 0}) {
		t.Errorf("length prefix = %x, want little-endian 5", got)
	}

	for i, want := range frames {
		got, err := ReadFrame(&buf, Limits{})
		if err != nil {
			t.Fatalf("frame %d: ReadFrame failed: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("frame %d = %x, want %x", i, got, want)
		}
	}
	if _, err := ReadFrame(&buf, Limits{}); err != io.EOF {
		t.Errorf("expected io.EOF at the end, got %v", err)
	}
}

func TestReadFrame_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		limits  Limits
		wantErr error
	}{
		{"short length", []byte{1, 0}, Limits{}, io.ErrUnexpectedEOF},
		{"short body", []byte{4, 0, 0, 0, 'a', 'b'}, Limits{}, io.ErrUnexpectedEOF},
		{"missing body", []byte{4, 0, 0, 0}, Limits{}, io.ErrUnexpectedEOF},
		{"over limit", []byte{9, 0, 0, 0}, Limits{MaxFrameBytes: 8}, ErrFrameTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFrame(bytes.NewReader(tt.input), tt.limits)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWriteFrame_Limit(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFrame(&buf, make([]byte, 9), Limits{MaxFrameBytes: 8})
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written for a rejected frame, got %d bytes", buf.Len())
	}
	if err := WriteFrame(&buf, make([]byte, 8), Limits{MaxFrameBytes: 8}); err != nil {
		t.Errorf("frame at the limit rejected: %v", err)
	}
}
