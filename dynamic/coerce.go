package dynamic

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

func (m *Message) coerceField(fd *schema.FieldDescriptor, v any) (any, error) {
	switch {
	case fd.IsMap():
		return m.coerceMap(fd, v)
	case fd.IsRepeated():
		return m.coerceList(fd, v)
	}
	return m.coerceSingle(fd, v)
}

// coerceSingle converts one value of fd's kind, ignoring cardinality.
func (m *Message) coerceSingle(fd *schema.FieldDescriptor, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("nil value")
	}
	if b, ok := m.conv.Lookup(fd.FullName()); ok {
		if _, err := b.Unwrap(v); err == nil {
			return v, nil
		}
		// Accept the wire form too and convert it.
		w, err := coerceScalar(fd.Kind(), v)
		if err != nil {
			return nil, err
		}
		return b.Wrap(w)
	}
	switch fd.Kind() {
	case schema.KindMessage:
		return m.coerceMessage(fd.Message(), v)
	case schema.KindEnum:
		return coerceEnum(fd.Enum(), v)
	}
	return coerceScalar(fd.Kind(), v)
}

func (m *Message) coerceList(fd *schema.FieldDescriptor, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("repeated field value must be a slice, got %T", v)
	}
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e, err := m.coerceSingle(fd, rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *Message) coerceMap(fd *schema.FieldDescriptor, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("map field value must be a map, got %T", v)
	}
	out := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := m.coerceSingle(fd.MapKey(), iter.Key().Interface())
		if err != nil {
			return nil, fmt.Errorf("map key %v: %w", iter.Key(), err)
		}
		val, err := m.coerceSingle(fd.MapValue(), iter.Value().Interface())
		if err != nil {
			return nil, fmt.Errorf("map value for key %v: %w", k, err)
		}
		out[k] = val
	}
	return out, nil
}

// coerceMessage accepts a dynamic message of the right type, a map of field
// values, or any other wire.Message with the same full name.
func (m *Message) coerceMessage(md *schema.MessageDescriptor, v any) (any, error) {
	switch t := v.(type) {
	case *Message:
		if t == nil {
			return nil, fmt.Errorf("nil message")
		}
		if t.desc.FullName() != md.FullName() {
			return nil, fmt.Errorf("expected message %s, got %s", md.FullName(), t.desc.FullName())
		}
		return t, nil
	case map[string]any:
		n := newMessage(md, m.conv)
		if err := n.FromMap(t); err != nil {
			return nil, err
		}
		return n, nil
	case wire.Message:
		if t.FullName() != md.FullName() {
			return nil, fmt.Errorf("expected message %s, got %s", md.FullName(), t.FullName())
		}
		b, err := wire.Marshal(t)
		if err != nil {
			return nil, err
		}
		n := newMessage(md, m.conv)
		if err := wire.Unmarshal(b, n); err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, fmt.Errorf("message value must be map[string]interface{} or a message, got %T", v)
}

func coerceEnum(ed *schema.EnumDescriptor, v any) (any, error) {
	if s, ok := v.(string); ok {
		if ev := ed.ValueByName(s); ev != nil {
			return ev.Number(), nil
		}
		if _, err := strconv.ParseInt(s, 10, 32); err != nil {
			return nil, fmt.Errorf("unknown value %q for enum %s", s, ed.FullName())
		}
	}
	// Enums are open: unrecognized numbers are kept.
	return coerceScalar(schema.KindInt32, v)
}

func coerceScalar(k schema.Kind, v any) (any, error) {
	switch k {
	case schema.KindInt32, schema.KindSint32, schema.KindSfixed32:
		n, err := coerceToInt64(v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("value %d overflows int32", n)
		}
		return int32(n), nil
	case schema.KindInt64, schema.KindSint64, schema.KindSfixed64:
		return coerceToInt64(v)
	case schema.KindUint32, schema.KindFixed32:
		n, err := coerceToUint64(v)
		if err != nil {
			return nil, err
		}
		if n > math.MaxUint32 {
			return nil, fmt.Errorf("value %d overflows uint32", n)
		}
		return uint32(n), nil
	case schema.KindUint64, schema.KindFixed64:
		return coerceToUint64(v)
	case schema.KindFloat:
		f, err := coerceToFloat64(v)
		return float32(f), err
	case schema.KindDouble:
		return coerceToFloat64(v)
	case schema.KindBool:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			return strconv.ParseBool(t)
		}
	case schema.KindString:
		switch t := v.(type) {
		case string:
			return t, nil
		case []byte:
			return string(t), nil
		}
	case schema.KindBytes:
		switch t := v.(type) {
		case buffer.Slice:
			return t, nil
		case []byte:
			return buffer.SliceOf(t), nil
		case string:
			return buffer.StringSlice(t), nil
		}
	}
	return nil, fmt.Errorf("cannot use %T as %s", v, k)
}

// Helpers to coerce JSON inputs to integers (accept exponent/float forms if integral)
func coerceToInt64(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int32:
		return int64(t), nil
	case int:
		return int64(t), nil
	case json.Number:
		// Try integer first
		if iv, err := t.Int64(); err == nil {
			return iv, nil
		}
		// Fallback: parse as float and check integral
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("non-integer numeric for integer field")
		}
		return int64(f), nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("non-integer numeric for integer field")
		}
		return int64(t), nil
	case string:
		// allow explicit integer strings
		if strings.ContainsAny(t, ".eE") {
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return 0, err
			}
			if f != math.Trunc(f) {
				return 0, fmt.Errorf("non-integer numeric for integer field")
			}
			return int64(f), nil
		}
		return strconv.ParseInt(t, 10, 64)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", rv.Uint())
		}
		return int64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("expected integer-like, got %T", v)
}

func coerceToUint64(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case uint64:
		return t, nil
	case uint32:
		return uint64(t), nil
	case json.Number:
		if uv, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return uv, nil
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, err
		}
		if f < 0 || f != math.Trunc(f) {
			return 0, fmt.Errorf("non-integer numeric for unsigned field")
		}
		return uint64(f), nil
	case float64:
		if t < 0 || t != math.Trunc(t) {
			return 0, fmt.Errorf("non-integer numeric for unsigned field")
		}
		return uint64(t), nil
	case string:
		if strings.ContainsAny(t, ".eE") {
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return 0, err
			}
			if f < 0 || f != math.Trunc(f) {
				return 0, fmt.Errorf("non-integer numeric for unsigned field")
			}
			return uint64(f), nil
		}
		return strconv.ParseUint(t, 10, 64)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", rv.Int())
		}
		return uint64(rv.Int()), nil
	}
	return 0, fmt.Errorf("expected unsigned-integer-like, got %T", v)
}

func coerceToFloat64(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	case string:
		return strconv.ParseFloat(t, 64)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}
