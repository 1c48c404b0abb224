package registry

import (
	"fmt"
	"strconv"
	"strings"

	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/descriptorpb"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

const (
	goPackageField   wire.FieldNumber = 11 // google.protobuf.FileOptions.go_package
	reservedRangeMax                  = int32(wire.MaxFieldNumber) + 1
)

// fileProto converts a parsed .proto into a descriptor. Named field types are
// left as written; the schema builder resolves them against the file's scope
// and imports.
func fileProto(e *protoFileEntity) (*descriptorpb.FileDescriptorProto, error) {
	fdp := &descriptorpb.FileDescriptorProto{Name: descriptorpb.String(e.importPath)}
	if s := e.parsed.Syntax; s != nil && s.ProtobufVersion == "proto3" {
		fdp.Syntax = descriptorpb.String("proto3")
	}

	for _, body := range e.parsed.ProtoBody {
		switch b := body.(type) {
		case *protoparserparser.Package:
			fdp.Package = descriptorpb.String(b.Name)
		case *protoparserparser.Import:
			idx := int32(len(fdp.Dependency))
			fdp.Dependency = append(fdp.Dependency, unquote(b.Location))
			switch b.Modifier {
			case protoparserparser.ImportModifierPublic:
				fdp.PublicDependency = append(fdp.PublicDependency, idx)
			case protoparserparser.ImportModifierWeak:
				fdp.WeakDependency = append(fdp.WeakDependency, idx)
			}
		case *protoparserparser.Option:
			if b.OptionName == "go_package" {
				if fdp.Options == nil {
					fdp.Options = &descriptorpb.FileOptions{}
				}
				v := wire.BytesValue(buffer.SliceOf([]byte(unquote(b.Constant))))
				fdp.Options.UnknownFields().Add(wire.NewUnknownField(goPackageField, v))
			}
		case *protoparserparser.Message:
			mp, err := messageProto(b.MessageName, b.MessageBody, fdp.GetSyntax() == "proto3")
			if err != nil {
				return nil, err
			}
			fdp.MessageType = append(fdp.MessageType, mp)
		case *protoparserparser.Enum:
			ep, err := enumProto(b)
			if err != nil {
				return nil, err
			}
			fdp.EnumType = append(fdp.EnumType, ep)
		case *protoparserparser.Service:
			sp, err := serviceProto(b)
			if err != nil {
				return nil, err
			}
			fdp.Service = append(fdp.Service, sp)
		}
	}
	return fdp, nil
}

// messageProto converts one message body. Map fields grow nested entry
// messages. In proto3 files, optional fields grow synthetic oneofs, which
// follow the declared ones.
func messageProto(name string, body []protoparserparser.Visitee, proto3 bool) (*descriptorpb.DescriptorProto, error) {
	mp := &descriptorpb.DescriptorProto{Name: descriptorpb.String(name)}
	var synthetic []*descriptorpb.FieldDescriptorProto

	for _, v := range body {
		switch b := v.(type) {
		case *protoparserparser.Field:
			fp, err := fieldProto(b.FieldName, b.FieldNumber, b.Type, b.FieldOptions)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", name, err)
			}
			switch {
			case b.IsRepeated:
				fp.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
			case b.IsRequired:
				fp.Label = descriptorpb.FieldDescriptorProto_LABEL_REQUIRED.Enum()
			case b.IsOptional && proto3:
				synthetic = append(synthetic, fp)
			}
			mp.Field = append(mp.Field, fp)
		case *protoparserparser.MapField:
			fp, err := fieldProto(b.MapName, b.FieldNumber, b.Type, b.FieldOptions)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", name, err)
			}
			entry, err := mapEntryProto(b)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", name, err)
			}
			fp.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
			fp.Type = nil
			fp.TypeName = descriptorpb.String(entry.GetName())
			mp.NestedType = append(mp.NestedType, entry)
			mp.Field = append(mp.Field, fp)
		case *protoparserparser.Oneof:
			idx := int32(len(mp.OneofDecl))
			mp.OneofDecl = append(mp.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: descriptorpb.String(b.OneofName)})
			for _, of := range b.OneofFields {
				fp, err := fieldProto(of.FieldName, of.FieldNumber, of.Type, of.FieldOptions)
				if err != nil {
					return nil, fmt.Errorf("message %s: %w", name, err)
				}
				fp.OneofIndex = descriptorpb.Int32(idx)
				mp.Field = append(mp.Field, fp)
			}
		case *protoparserparser.GroupField:
			nested, err := messageProto(b.GroupName, b.MessageBody, proto3)
			if err != nil {
				return nil, err
			}
			fp, err := fieldProto(strings.ToLower(b.GroupName), b.FieldNumber, b.GroupName, nil)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", name, err)
			}
			fp.Type = descriptorpb.FieldDescriptorProto_TYPE_GROUP.Enum()
			switch {
			case b.IsRepeated:
				fp.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
			case b.IsRequired:
				fp.Label = descriptorpb.FieldDescriptorProto_LABEL_REQUIRED.Enum()
			}
			mp.NestedType = append(mp.NestedType, nested)
			mp.Field = append(mp.Field, fp)
		case *protoparserparser.Message:
			nested, err := messageProto(b.MessageName, b.MessageBody, proto3)
			if err != nil {
				return nil, err
			}
			mp.NestedType = append(mp.NestedType, nested)
		case *protoparserparser.Enum:
			ep, err := enumProto(b)
			if err != nil {
				return nil, err
			}
			mp.EnumType = append(mp.EnumType, ep)
		case *protoparserparser.Reserved:
			for _, r := range b.Ranges {
				start, end, err := reservedRange(r)
				if err != nil {
					return nil, fmt.Errorf("message %s: %w", name, err)
				}
				// Message ranges are end-exclusive.
				mp.ReservedRange = append(mp.ReservedRange, &descriptorpb.DescriptorProto_ReservedRange{
					Start: descriptorpb.Int32(start),
					End:   descriptorpb.Int32(end + 1),
				})
			}
			for _, n := range b.FieldNames {
				mp.ReservedName = append(mp.ReservedName, unquote(n))
			}
		}
	}

	for _, fp := range synthetic {
		fp.Proto3Optional = descriptorpb.Bool(true)
		fp.OneofIndex = descriptorpb.Int32(int32(len(mp.OneofDecl)))
		mp.OneofDecl = append(mp.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: descriptorpb.String("_" + fp.GetName())})
	}

	for _, fp := range mp.Field {
		n := fp.GetNumber()
		for _, r := range mp.ReservedRange {
			if n >= r.GetStart() && n < r.GetEnd() {
				return nil, fmt.Errorf("message %s: field %s uses reserved number %d", name, fp.GetName(), n)
			}
		}
		for _, rn := range mp.ReservedName {
			if fp.GetName() == rn {
				return nil, fmt.Errorf("message %s: field name %s is reserved", name, rn)
			}
		}
	}
	return mp, nil
}

func fieldProto(name, number, typ string, opts []*protoparserparser.FieldOption) (*descriptorpb.FieldDescriptorProto, error) {
	n, err := fieldNumber(name, number)
	if err != nil {
		return nil, err
	}
	fp := &descriptorpb.FieldDescriptorProto{
		Name:     descriptorpb.String(name),
		Number:   descriptorpb.Int32(int32(n)),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		JsonName: descriptorpb.String(schema.JSONName(name)),
	}
	if k, ok := schema.KindByName(typ); ok {
		fp.Type = k.Type().Enum()
	} else {
		fp.TypeName = descriptorpb.String(typ)
	}

	for _, o := range opts {
		switch o.OptionName {
		case "packed":
			b, err := strconv.ParseBool(o.Constant)
			if err != nil {
				return nil, fmt.Errorf("field %s: invalid packed option %q", name, o.Constant)
			}
			if fp.Options == nil {
				fp.Options = &descriptorpb.FieldOptions{}
			}
			fp.Options.Packed = descriptorpb.Bool(b)
		case "deprecated":
			b, err := strconv.ParseBool(o.Constant)
			if err != nil {
				return nil, fmt.Errorf("field %s: invalid deprecated option %q", name, o.Constant)
			}
			if fp.Options == nil {
				fp.Options = &descriptorpb.FieldOptions{}
			}
			fp.Options.Deprecated = descriptorpb.Bool(b)
		case "json_name":
			fp.JsonName = descriptorpb.String(unquote(o.Constant))
		case "default":
			fp.DefaultValue = descriptorpb.String(unquote(o.Constant))
		}
	}
	return fp, nil
}

func fieldNumber(name, s string) (wire.FieldNumber, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("field %s: invalid field number %q", name, s)
	}
	n := wire.FieldNumber(v)
	if !n.IsValid() {
		return 0, fmt.Errorf("field %s: field number %d out of range", name, n)
	}
	if n.IsReserved() {
		return 0, fmt.Errorf("field %s: field number %d is reserved for the implementation", name, n)
	}
	return n, nil
}

// mapEntryName derives the entry message name the way protoc does:
// m_string_int32 becomes MStringInt32Entry.
func mapEntryName(field string) string {
	var sb strings.Builder
	upper := true
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '_' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		sb.WriteByte(c)
	}
	sb.WriteString("Entry")
	return sb.String()
}

func mapEntryProto(f *protoparserparser.MapField) (*descriptorpb.DescriptorProto, error) {
	key, ok := schema.KindByName(f.KeyType)
	if !ok || key == schema.KindFloat || key == schema.KindDouble || key == schema.KindBytes {
		return nil, fmt.Errorf("field %s: invalid map key type %s", f.MapName, f.KeyType)
	}
	kp, err := fieldProto("key", "1", f.KeyType, nil)
	if err != nil {
		return nil, err
	}
	vp, err := fieldProto("value", "2", f.Type, nil)
	if err != nil {
		return nil, err
	}
	return &descriptorpb.DescriptorProto{
		Name:    descriptorpb.String(mapEntryName(f.MapName)),
		Field:   []*descriptorpb.FieldDescriptorProto{kp, vp},
		Options: &descriptorpb.MessageOptions{MapEntry: descriptorpb.Bool(true)},
	}, nil
}

func enumProto(e *protoparserparser.Enum) (*descriptorpb.EnumDescriptorProto, error) {
	ep := &descriptorpb.EnumDescriptorProto{Name: descriptorpb.String(e.EnumName)}
	for _, v := range e.EnumBody {
		switch b := v.(type) {
		case *protoparserparser.EnumField:
			n, err := strconv.ParseInt(b.Number, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("enum %s: invalid value %s = %q", e.EnumName, b.Ident, b.Number)
			}
			ep.Value = append(ep.Value, &descriptorpb.EnumValueDescriptorProto{
				Name:   descriptorpb.String(b.Ident),
				Number: descriptorpb.Int32(int32(n)),
			})
		case *protoparserparser.Reserved:
			for _, r := range b.Ranges {
				start, end, err := reservedRange(r)
				if err != nil {
					return nil, fmt.Errorf("enum %s: %w", e.EnumName, err)
				}
				if end == reservedRangeMax-1 {
					end = 1<<31 - 1
				}
				// Enum ranges are end-inclusive.
				ep.ReservedRange = append(ep.ReservedRange, &descriptorpb.EnumDescriptorProto_EnumReservedRange{
					Start: descriptorpb.Int32(start),
					End:   descriptorpb.Int32(end),
				})
			}
			for _, n := range b.FieldNames {
				ep.ReservedName = append(ep.ReservedName, unquote(n))
			}
		}
	}
	if len(ep.Value) == 0 {
		return nil, fmt.Errorf("enum %s has no values", e.EnumName)
	}
	return ep, nil
}

// reservedRange returns the inclusive bounds of a reserved range. "max"
// stands for the largest field number.
func reservedRange(r *protoparserparser.Range) (int32, int32, error) {
	start, err := strconv.ParseInt(r.Begin, 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reserved range start %q", r.Begin)
	}
	end := start
	switch r.End {
	case "":
	case "max":
		end = int64(reservedRangeMax - 1)
	default:
		if end, err = strconv.ParseInt(r.End, 0, 32); err != nil {
			return 0, 0, fmt.Errorf("invalid reserved range end %q", r.End)
		}
	}
	if end < start {
		return 0, 0, fmt.Errorf("reserved range %d to %d is empty", start, end)
	}
	return int32(start), int32(end), nil
}

func serviceProto(s *protoparserparser.Service) (*descriptorpb.ServiceDescriptorProto, error) {
	sp := &descriptorpb.ServiceDescriptorProto{Name: descriptorpb.String(s.ServiceName)}
	for _, v := range s.ServiceBody {
		rpc, ok := v.(*protoparserparser.RPC)
		if !ok {
			continue
		}
		if rpc.RPCRequest == nil || rpc.RPCResponse == nil {
			return nil, fmt.Errorf("service %s: rpc %s is missing a request or response", s.ServiceName, rpc.RPCName)
		}
		mp := &descriptorpb.MethodDescriptorProto{
			Name:       descriptorpb.String(rpc.RPCName),
			InputType:  descriptorpb.String(rpc.RPCRequest.MessageType),
			OutputType: descriptorpb.String(rpc.RPCResponse.MessageType),
		}
		if rpc.RPCRequest.IsStream {
			mp.ClientStreaming = descriptorpb.Bool(true)
		}
		if rpc.RPCResponse.IsStream {
			mp.ServerStreaming = descriptorpb.Bool(true)
		}
		sp.Method = append(sp.Method, mp)
	}
	return sp, nil
}

// canonicalize rewrites the named field types of a built file to the
// fully-qualified, typed form protoc emits.
func canonicalize(fd *schema.FileDescriptor) {
	var walk func(ms []*schema.MessageDescriptor)
	walk = func(ms []*schema.MessageDescriptor) {
		for _, m := range ms {
			for _, f := range m.Fields() {
				p := f.Proto()
				switch {
				case f.Message() != nil:
					p.TypeName = descriptorpb.String("." + f.Message().FullName())
				case f.Enum() != nil:
					p.TypeName = descriptorpb.String("." + f.Enum().FullName())
				default:
					continue
				}
				p.Type = f.Kind().Type().Enum()
			}
			walk(m.Nested())
		}
	}
	walk(fd.Messages())

	for i, s := range fd.Services() {
		sp := fd.Proto().Service[i]
		for j, m := range s.Methods() {
			mp := sp.Method[j]
			mp.InputType = descriptorpb.String("." + m.Input().FullName())
			mp.OutputType = descriptorpb.String("." + m.Output().FullName())
		}
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
