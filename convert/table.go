package convert

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/anirudhraja/protocore/wire"
)

// Kind names the wire-level field kind a binding expects, spelled as in
// .proto files ("bytes", "int64", ...).
type Kind string

const (
	KindBytes  Kind = "bytes"
	KindString Kind = "string"
	KindInt32  Kind = "int32"
	KindInt64  Kind = "int64"
	KindUint32 Kind = "uint32"
	KindUint64 Kind = "uint64"
	KindBool   Kind = "bool"
	KindDouble Kind = "double"
	KindFloat  Kind = "float"
)

// Binding is a type-erased converter together with the field kind it reads
// and writes.
type Binding struct {
	Kind      Kind
	Converter string

	wrap   func(any) (any, error)
	unwrap func(any) (any, error)
	zero   any
}

// Bind erases c for use in a Table. W must be the Go type the codec uses for
// kind: buffer.Slice for bytes, int64 for int64, and so on.
func Bind[W, D any](kind Kind, c Converter[W, D]) Binding {
	return Binding{
		Kind:      kind,
		Converter: c.Name(),
		wrap: func(v any) (any, error) {
			w, ok := v.(W)
			if !ok {
				return nil, &ConversionError{Converter: c.Name(), Expected: fmt.Sprintf("%T", *new(W)), Got: fmt.Sprintf("%T", v)}
			}
			return c.Wrap(w)
		},
		unwrap: func(v any) (any, error) {
			d, ok := v.(D)
			if !ok {
				return nil, &ConversionError{Converter: c.Name(), Expected: fmt.Sprintf("%T", *new(D)), Got: fmt.Sprintf("%T", v)}
			}
			return c.Unwrap(d)
		},
		zero: *new(D),
	}
}

// Wrap converts a wire value to its domain value.
func (b Binding) Wrap(v any) (any, error) { return b.wrap(v) }

// Unwrap converts a domain value to its wire value.
func (b Binding) Unwrap(v any) (any, error) { return b.unwrap(v) }

// Codec lifts an erased field codec over the binding, the way Codec does for
// typed ones. base must read and write the wire type named by Kind.
func (b Binding) Codec(base wire.FieldCodec[any]) wire.FieldCodec[any] {
	return wire.FieldCodec[any]{
		WireType: base.WireType,
		Size: func(s *wire.Sizer, v any) int {
			w, err := b.unwrap(v)
			if err != nil {
				s.Fail(err)
				return 0
			}
			return base.Size(s, w)
		},
		Write: func(e *wire.Encoder, v any) {
			w, err := b.unwrap(v)
			if err != nil {
				e.Fail(err)
				return
			}
			base.Write(e, w)
		},
		Read: func(d *wire.Decoder) (any, error) {
			w, err := base.Read(d)
			if err != nil {
				return nil, err
			}
			return b.wrap(w)
		},
		IsZero: func(v any) bool {
			return v == nil || reflect.ValueOf(v).IsZero()
		},
		New: func() any {
			var w any
			if base.New != nil {
				w = base.New()
			}
			if d, err := b.wrap(w); err == nil {
				return d
			}
			return b.zero
		},
	}
}

// Table maps fully-qualified field names ("pkg.Message.field") to bindings.
// It is assembled once and never modified, so it is safe to share.
type Table struct {
	bindings map[string]Binding
}

// NewTable copies bindings into a new Table.
func NewTable(bindings map[string]Binding) *Table {
	t := &Table{bindings: make(map[string]Binding, len(bindings))}
	for name, b := range bindings {
		t.bindings[name] = b
	}
	return t
}

// Lookup returns the binding for a fully-qualified field name. A nil Table
// has no bindings.
func (t *Table) Lookup(field string) (Binding, bool) {
	if t == nil {
		return Binding{}, false
	}
	b, ok := t.bindings[field]
	return b, ok
}

// Len returns the number of bindings.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.bindings)
}

// Fields returns the bound field names in sorted order.
func (t *Table) Fields() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.bindings))
	for name := range t.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
