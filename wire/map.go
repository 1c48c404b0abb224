package wire

import (
	"cmp"
	"fmt"
	"slices"
)

// Map fields travel as repeated entry messages with the key in field 1 and
// the value in field 2. Keys are written in sorted order so the sizing and
// writing passes visit entries identically and output is deterministic.

// SizeMap returns the size of every entry of m, tags included.
func SizeMap[K comparable, V any](s *Sizer, num FieldNumber, kc FieldCodec[K], vc FieldCodec[V], m map[K]V) int {
	n := 0
	for _, k := range SortedKeys(m) {
		v := m[k]
		n += SizeTag(num) + s.Delimited(func() int {
			return SizeField(s, 1, kc, k) + SizeField(s, 2, vc, v)
		})
	}
	return n
}

// WriteMap writes every entry of m.
func WriteMap[K comparable, V any](e *Encoder, num FieldNumber, kc FieldCodec[K], vc FieldCodec[V], m map[K]V) {
	for _, k := range SortedKeys(m) {
		v := m[k]
		e.EncodeTag(num, WireBytes)
		e.Delimited(func() {
			WriteField(e, 1, kc, k)
			WriteField(e, 2, vc, v)
		})
	}
}

// ReadMapEntry decodes one entry and stores it in *dst, allocating the map
// if needed. A missing key or value takes its default; a missing message
// value is an empty message.
func ReadMapEntry[K comparable, V any](d *Decoder, wt WireType, kc FieldCodec[K], vc FieldCodec[V], dst *map[K]V) error {
	if err := d.Expect(wt, WireBytes); err != nil {
		return err
	}
	entry := &mapEntry[K, V]{kc: kc, vc: vc, key: kc.newValue()}
	if err := d.DecodeMessage(entry); err != nil {
		return err
	}
	if !entry.hasValue {
		entry.value = vc.newValue()
	}
	if *dst == nil {
		*dst = make(map[K]V)
	}
	(*dst)[entry.key] = entry.value
	return nil
}

// mapEntry is the synthetic message an entry decodes into. Unknown fields
// inside entries are dropped.
type mapEntry[K comparable, V any] struct {
	kc       FieldCodec[K]
	vc       FieldCodec[V]
	key      K
	value    V
	hasValue bool
}

func (m *mapEntry[K, V]) FullName() string { return "" }

func (m *mapEntry[K, V]) SizeWire(s *Sizer) int {
	return SizeField(s, 1, m.kc, m.key) + SizeField(s, 2, m.vc, m.value)
}

func (m *mapEntry[K, V]) MarshalWire(e *Encoder) {
	WriteField(e, 1, m.kc, m.key)
	WriteField(e, 2, m.vc, m.value)
}

func (m *mapEntry[K, V]) UnmarshalWireField(d *Decoder, num FieldNumber, wt WireType) (bool, error) {
	switch num {
	case 1:
		return true, ReadInto(d, wt, m.kc, &m.key)
	case 2:
		v, err := ReadField(d, wt, m.vc)
		if err != nil {
			return true, err
		}
		m.value, m.hasValue = v, true
		return true, nil
	}
	return false, nil
}

func (m *mapEntry[K, V]) UnknownFields() *UnknownFields { return nil }

func (m *mapEntry[K, V]) Reset() {
	var k K
	var v V
	m.key, m.value, m.hasValue = k, v, false
}

func (m *mapEntry[K, V]) WireFieldName(num FieldNumber) string {
	switch num {
	case 1:
		return "key"
	case 2:
		return "value"
	}
	return ""
}

// SortedKeys returns the keys of m in ascending order. Map keys are always
// integers, strings or bools; false sorts before true.
func SortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareKeys[K])
	return keys
}

// CompareKeys orders two map keys.
func CompareKeys[K comparable](a, b K) int {
	switch x := any(a).(type) {
	case string:
		return cmp.Compare(x, any(b).(string))
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	case uint32:
		return cmp.Compare(x, any(b).(uint32))
	case uint64:
		return cmp.Compare(x, any(b).(uint64))
	case bool:
		y := any(b).(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
