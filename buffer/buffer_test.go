package buffer

import (
	"errors"
	"testing"
)

func TestSlice_SharesBacking(t *testing.T) {
	buf := NewBuffer([]byte("hello, world"))

	s, err := buf.Slice(7, 5)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if s.String() != "world" {
		t.Errorf("expected %q, got %q", "world", s.String())
	}
	if s.Backing() != buf {
		t.Error("slice should refer to the buffer it was cut from")
	}
	if s.Offset() != 7 || s.Len() != 5 {
		t.Errorf("unexpected view (%d,%d)", s.Offset(), s.Len())
	}

	// Appending to the view must not clobber the backing buffer.
	out := append(s.Bytes(), '!')
	if string(out) != "world!" {
		t.Errorf("unexpected append result %q", out)
	}
	if string(buf.Bytes()) != "hello, world" {
		t.Errorf("backing buffer modified: %q", buf.Bytes())
	}
}

func TestSlice_EqualAndHashByContent(t *testing.T) {
	a, _ := NewBuffer([]byte("xxabcxx")).Slice(2, 3)
	b := StringSlice("abc")
	c := StringSlice("abd")

	tests := []struct {
		name  string
		left  Slice
		right Slice
		equal bool
	}{
		{"same content different buffers", a, b, true},
		{"different content", a, c, false},
		{"zero values", Slice{}, Slice{}, true},
		{"zero vs empty view", Slice{}, SliceOf([]byte{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.left.Equal(tt.right); got != tt.equal {
				t.Errorf("Equal = %v, want %v", got, tt.equal)
			}
			if tt.equal && tt.left.Hash() != tt.right.Hash() {
				t.Error("equal slices must hash identically")
			}
		})
	}
}

func TestSlice_Bounds(t *testing.T) {
	buf := NewBuffer([]byte("abcdef"))

	tests := []struct {
		name string
		off  int
		n    int
		ok   bool
	}{
		{"whole", 0, 6, true},
		{"empty at end", 6, 0, true},
		{"past end", 4, 3, false},
		{"negative offset", -1, 2, false},
		{"negative length", 1, -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buf.Slice(tt.off, tt.n)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
		})
	}

	whole := buf.All()
	sub, err := whole.Sub(1, 3)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if sub.String() != "bcd" || sub.Offset() != 1 {
		t.Errorf("unexpected sub view %q at %d", sub.String(), sub.Offset())
	}
	if _, err := sub.Sub(2, 2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for sub view overflow, got %v", err)
	}
}

func TestSlice_CloneIsIndependent(t *testing.T) {
	raw := []byte("payload")
	s := SliceOf(raw)
	clone := s.Clone()
	compact := s.Compact()

	raw[0] = 'P'
	if string(clone.Bytes()) != "payload" {
		t.Errorf("clone should not observe writes to the original: %q", clone.Bytes())
	}
	if compact.String() != "payload" {
		t.Errorf("compacted view should not observe writes to the original: %q", compact.String())
	}
	if s.String() != "Payload" {
		t.Errorf("view should observe writes to its backing buffer: %q", s.String())
	}
}
