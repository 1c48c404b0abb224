package protocore

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/anirudhraja/protocore/anypb"
	"github.com/anirudhraja/protocore/convert"
	"github.com/anirudhraja/protocore/dynamic"
	"github.com/anirudhraja/protocore/registry"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

// ===== SCHEMA-AWARE API =====

// Protocore provides schema-aware protobuf operations, with or without
// generated code.
type Protocore struct {
	registry *registry.Registry
	conv     *convert.Table
	opts     wire.UnmarshalOptions
}

// Option configures a Protocore.
type Option func(*Protocore)

// WithProtoDirectories sets the roots .proto imports are resolved against.
func WithProtoDirectories(dirs ...string) Option {
	return func(p *Protocore) { p.registry.ProtoDirectories = append(p.registry.ProtoDirectories, dirs...) }
}

// WithConverters binds domain converters to the fields t names.
func WithConverters(t *convert.Table) Option {
	return func(p *Protocore) { p.conv = t }
}

// WithUnmarshalOptions replaces the decode options, which default to
// wire.DefaultOptions().
func WithUnmarshalOptions(o wire.UnmarshalOptions) Option {
	return func(p *Protocore) { p.opts = o }
}

// New creates a new Protocore instance
func New(opts ...Option) *Protocore {
	p := &Protocore{
		registry: registry.NewRegistry(),
		opts:     wire.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.registry.SetConverters(p.conv)
	return p
}

// LoadSchema loads a .proto file, or every .proto file under a directory,
// with their imports.
func (p *Protocore) LoadSchema(path string) error {
	return p.registry.LoadSchema(path)
}

// LoadDescriptorSet loads the files of a serialized FileDescriptorSet.
func (p *Protocore) LoadDescriptorSet(b []byte) error {
	return p.registry.LoadDescriptorSet(b)
}

// RegisterFile adds the embedded descriptor of a generated file.
func (p *Protocore) RegisterFile(f *schema.LazyFile) error {
	return p.registry.RegisterFile(f)
}

// RegisterType makes Decode and ResolveAny return the generated type for
// its message name.
func (p *Protocore) RegisterType(newFn func() wire.Message) error {
	return p.registry.RegisterType(newFn)
}

// Decode decodes data as a messageType: the registered generated type when
// there is one, otherwise a dynamic message.
func (p *Protocore) Decode(data []byte, messageType string) (wire.Message, error) {
	msg, err := p.registry.New(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type not found: %s: %w", messageType, err)
	}
	if err := p.opts.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Parse decodes protobuf bytes into a map keyed by field name.
func (p *Protocore) Parse(data []byte, messageType string) (map[string]interface{}, error) {
	msg, err := p.dynamic(messageType)
	if err != nil {
		return nil, err
	}
	if err := p.opts.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg.ToMap(), nil
}

// Marshal encodes a map to protobuf bytes using schema information
func (p *Protocore) Marshal(data map[string]interface{}, messageType string) ([]byte, error) {
	msg, err := p.dynamic(messageType)
	if err != nil {
		return nil, err
	}
	if err := msg.FromMap(data); err != nil {
		return nil, err
	}
	return wire.Marshal(msg)
}

func (p *Protocore) dynamic(messageType string) (*dynamic.Message, error) {
	desc, err := p.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type not found: %s: %w", messageType, err)
	}
	return dynamic.New(desc, dynamic.WithConverters(p.conv)), nil
}

// Unmarshal decodes protobuf bytes into a Go struct using reflection. The
// message type is the struct's type name; fields match by json tag, then by
// the snake_case form of the Go field name.
func (p *Protocore) Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}

	messageType := rv.Elem().Type().Name()
	result, err := p.Parse(data, messageType)
	if err != nil {
		return err
	}
	return p.mapToStruct(result, v)
}

// ResolveAny decodes the message an Any holds.
func (p *Protocore) ResolveAny(a *anypb.Any) (wire.Message, error) {
	return p.registry.ResolveAny(a)
}

// ===== SCHEMA-LESS API =====

// Inspect splits data into its top-level fields without a schema. Each
// field's raw bytes are views into data.
func (p *Protocore) Inspect(data []byte) ([]wire.UnknownField, error) {
	return wire.ParseFields(data)
}

// ===== REFLECTION HELPERS =====

// mapToStruct maps parsed result to struct fields
func (p *Protocore) mapToStruct(data map[string]interface{}, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a non-nil pointer to struct")
	}
	return p.fillStruct(data, rv.Elem())
}

func (p *Protocore) fillStruct(data map[string]interface{}, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		fieldValue := rv.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		value, ok := data[fieldKey(field)]
		if !ok {
			value, ok = data[field.Name]
		}
		if ok {
			if err := p.setFieldValue(fieldValue, value); err != nil {
				return fmt.Errorf("failed to set field %s: %w", field.Name, err)
			}
		}
	}
	return nil
}

func fieldKey(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name
		}
	}
	return toSnakeCase(f.Name)
}

// setFieldValue sets a struct field with type conversion
func (p *Protocore) setFieldValue(fieldValue reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}

	sourceValue := reflect.ValueOf(value)
	if sourceValue.Type().AssignableTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue)
		return nil
	}

	switch fieldValue.Kind() {
	case reflect.Ptr:
		elem := reflect.New(fieldValue.Type().Elem())
		if err := p.setFieldValue(elem.Elem(), value); err != nil {
			return err
		}
		fieldValue.Set(elem)
		return nil
	case reflect.Struct:
		if nested, ok := value.(map[string]interface{}); ok {
			return p.fillStruct(nested, fieldValue)
		}
	case reflect.Slice:
		if list, ok := value.([]interface{}); ok {
			out := reflect.MakeSlice(fieldValue.Type(), len(list), len(list))
			for i, e := range list {
				if err := p.setFieldValue(out.Index(i), e); err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
			}
			fieldValue.Set(out)
			return nil
		}
	case reflect.Map:
		if entries, ok := value.(map[interface{}]interface{}); ok {
			mt := fieldValue.Type()
			out := reflect.MakeMapWithSize(mt, len(entries))
			for k, e := range entries {
				kv := reflect.New(mt.Key()).Elem()
				if err := p.setFieldValue(kv, k); err != nil {
					return fmt.Errorf("key %v: %w", k, err)
				}
				ev := reflect.New(mt.Elem()).Elem()
				if err := p.setFieldValue(ev, e); err != nil {
					return fmt.Errorf("value for %v: %w", k, err)
				}
				out.SetMapIndex(kv, ev)
			}
			fieldValue.Set(out)
			return nil
		}
	case reflect.String:
		// Numbers convert to strings as runes; only real strings qualify.
		if sourceValue.Kind() != reflect.String {
			return fmt.Errorf("cannot convert %T to %s", value, fieldValue.Type())
		}
	}

	if sourceValue.Type().ConvertibleTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue.Convert(fieldValue.Type()))
		return nil
	}

	return fmt.Errorf("cannot convert %T to %s", value, fieldValue.Type())
}

// toSnakeCase converts a Go field name to its proto form: UserID becomes
// user_id and HTTPSConnection https_connection.
func toSnakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					sb.WriteByte('_')
				}
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ===== REGISTRY ACCESS =====

func (p *Protocore) GetRegistry() *registry.Registry { return p.registry }
func (p *Protocore) ListMessages() []string          { return p.registry.ListMessages() }
func (p *Protocore) ListEnums() []string             { return p.registry.ListEnums() }
func (p *Protocore) ListServices() []string          { return p.registry.ListServices() }
