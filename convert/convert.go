// Package convert maps wire-level field values to richer domain types. A
// Converter is stateless and bidirectional; Codec lifts one over a wire
// field codec so generated code can expose, say, a uuid.UUID for a bytes
// field.
package convert

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/anirudhraja/protocore/wire"
)

// ErrConversion matches every *ConversionError.
var ErrConversion = errors.New("conversion failed")

// ConversionError reports a value a converter could not map.
type ConversionError struct {
	Converter string // converter name, e.g. "uuid"
	Expected  string // what was required, e.g. "16 bytes"
	Got       string // what arrived
	Err       error  // optional cause
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("%v: %s: expected %s, got %s", ErrConversion, e.Converter, e.Expected, e.Got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Converter maps a wire value W to a domain value D and back. Both directions
// must be exact: Wrap(Unwrap(x)) == x for every valid x. Malformed input in
// either direction is rejected with a *ConversionError, never coerced.
type Converter[W, D any] interface {
	Name() string
	Wrap(w W) (D, error)
	Unwrap(d D) (W, error)
}

// WireSizer is an optional Converter extension that sizes a domain value
// without building its wire form. The result is the full encoded size of the
// value, length prefix included, without the tag.
type WireSizer[D any] interface {
	WireSize(d D) int
}

// Codec lifts base over c. Unwrap runs before writing and Wrap after reading;
// Unwrap failures stick on the Sizer or Encoder and surface from
// wire.Marshal. The domain zero value counts as the default for implicit
// presence; an absent map value is the wrapped wire default.
func Codec[W, D any](base wire.FieldCodec[W], c Converter[W, D]) wire.FieldCodec[D] {
	sizer, _ := c.(WireSizer[D])
	return wire.FieldCodec[D]{
		WireType: base.WireType,
		Size: func(s *wire.Sizer, v D) int {
			if sizer != nil {
				return sizer.WireSize(v)
			}
			w, err := c.Unwrap(v)
			if err != nil {
				s.Fail(err)
				return 0
			}
			return base.Size(s, w)
		},
		Write: func(e *wire.Encoder, v D) {
			w, err := c.Unwrap(v)
			if err != nil {
				e.Fail(err)
				return
			}
			base.Write(e, w)
		},
		Read: func(d *wire.Decoder) (D, error) {
			w, err := base.Read(d)
			if err != nil {
				var zero D
				return zero, err
			}
			return c.Wrap(w)
		},
		IsZero: func(v D) bool {
			return reflect.ValueOf(&v).Elem().IsZero()
		},
		New: func() D {
			var w W
			if base.New != nil {
				w = base.New()
			}
			d, _ := c.Wrap(w)
			return d
		},
	}
}
