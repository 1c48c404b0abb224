package dynamic

import (
	"fmt"
	"sort"

	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/convert"
	"github.com/anirudhraja/protocore/schema"
)

// ToMap returns the populated fields keyed by proto field name. Nested
// messages become maps, enums their value names (or numbers when
// unrecognized), bytes []byte views, and converted fields their domain values.
func (m *Message) ToMap() map[string]interface{} {
	result := make(map[string]interface{})
	m.Range(func(fd *schema.FieldDescriptor, v any) bool {
		switch {
		case fd.IsMap():
			entries := make(map[interface{}]interface{})
			for k, ev := range v.(map[any]any) {
				entries[k] = m.export(fd.MapValue(), ev)
			}
			result[fd.Name()] = entries
		case fd.IsRepeated():
			list := v.([]any)
			out := make([]interface{}, len(list))
			for i, e := range list {
				out[i] = m.export(fd, e)
			}
			result[fd.Name()] = out
		default:
			result[fd.Name()] = m.export(fd, v)
		}
		return true
	})
	return result
}

func (m *Message) export(fd *schema.FieldDescriptor, v any) interface{} {
	if _, ok := m.conv.Lookup(fd.FullName()); ok {
		return v
	}
	switch t := v.(type) {
	case *Message:
		return t.ToMap()
	case buffer.Slice:
		return t.Bytes()
	case int32:
		if fd.Kind() == schema.KindEnum {
			if ev := fd.Enum().ValueByNumber(t); ev != nil {
				return ev.Name()
			}
		}
	}
	return v
}

// FromMap sets fields from data, keyed by proto or JSON field name. Names the
// message does not declare and nil values are skipped. Fields are set in
// field-number order, so of two oneof members the higher-numbered one wins.
func (m *Message) FromMap(data map[string]interface{}) error {
	type fieldEntry struct {
		fd    *schema.FieldDescriptor
		value interface{}
	}
	entries := make([]fieldEntry, 0, len(data))
	for name, value := range data {
		fd := m.desc.FieldByName(name)
		if fd == nil || value == nil {
			continue // Skip unknown fields
		}
		entries = append(entries, fieldEntry{fd: fd, value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].fd.Number() < entries[j].fd.Number()
	})

	for _, entry := range entries {
		if err := m.Set(entry.fd, entry.value); err != nil {
			return err
		}
	}
	return nil
}

// CheckConverters verifies that every binding in t naming a field reachable
// from desc declares that field's kind.
func CheckConverters(desc *schema.MessageDescriptor, t *convert.Table) error {
	seen := make(map[*schema.MessageDescriptor]bool)
	var walk func(md *schema.MessageDescriptor) error
	walk = func(md *schema.MessageDescriptor) error {
		if seen[md] {
			return nil
		}
		seen[md] = true
		for _, fd := range md.Fields() {
			if b, ok := t.Lookup(fd.FullName()); ok && string(b.Kind) != string(fd.Kind()) {
				return fmt.Errorf("converter %s for %s expects %s, field is %s", b.Converter, fd.FullName(), b.Kind, fd.Kind())
			}
			if fd.Message() != nil {
				if err := walk(fd.Message()); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(desc)
}
