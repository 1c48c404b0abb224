// Package anypb implements google.protobuf.Any: a type URL paired with the
// serialized bytes of a message of that type.
package anypb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/wire"
)

// DefaultPrefix is the type URL prefix Pack uses when none is given.
const DefaultPrefix = "type.googleapis.com"

// ErrTypeMismatch is returned when an Any is unpacked into a message of a
// different type.
var ErrTypeMismatch = errors.New("type mismatch")

// Pack serializes m into a new Any. The type URL is prefix, a "/" when
// prefix does not already end in one, and m's full name. prefix defaults to
// DefaultPrefix.
func Pack(m wire.Message, prefix ...string) (*Any, error) {
	p := DefaultPrefix
	if len(prefix) > 0 {
		p = prefix[0]
	}
	b, err := wire.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", m.FullName(), err)
	}
	return &Any{TypeURL: typeURL(p, m.FullName()), Value: buffer.SliceOf(b)}, nil
}

func typeURL(prefix, name string) string {
	if strings.HasSuffix(prefix, "/") {
		return prefix + name
	}
	return prefix + "/" + name
}

// MessageName returns the part of the type URL after the last "/".
func (m *Any) MessageName() string {
	if i := strings.LastIndexByte(m.TypeURL, '/'); i >= 0 {
		return m.TypeURL[i+1:]
	}
	return m.TypeURL
}

// IsA reports whether a holds a message named fullName.
func (m *Any) IsA(fullName string) bool {
	return m.MessageName() == fullName
}

// UnpackTo decodes a into dst, which must be of the packed type. Bytes fields
// of dst share a's Value.
func UnpackTo(a *Any, dst wire.Message) error {
	if !a.IsA(dst.FullName()) {
		return fmt.Errorf("%w: cannot unpack %s into %s", ErrTypeMismatch, a.TypeURL, dst.FullName())
	}
	return wire.DefaultOptions().UnmarshalSlice(a.Value, dst)
}

// Unpack decodes a into a new T.
func Unpack[T any, P interface {
	*T
	wire.Message
}](a *Any) (P, error) {
	p := P(new(T))
	if err := UnpackTo(a, p); err != nil {
		return nil, err
	}
	return p, nil
}
