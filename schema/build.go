package schema

import (
	"fmt"

	"github.com/anirudhraja/protocore/descriptorpb"
	"github.com/anirudhraja/protocore/wire"
)

// NewFile builds a FileDescriptor from fdp and resolves every type reference
// in it. Each declared dependency must already be in pool; a missing one
// fails with a *ResolutionError. The new file is not added to pool.
func NewFile(fdp *descriptorpb.FileDescriptorProto, pool *Pool) (*FileDescriptor, error) {
	f := &FileDescriptor{
		proto:  fdp,
		path:   fdp.GetName(),
		pkg:    fdp.GetPackage(),
		syntax: syntaxOf(fdp),
	}
	for _, dep := range fdp.GetDependency() {
		d, ok := pool.File(dep)
		if !ok {
			return nil, &ResolutionError{File: dep}
		}
		f.deps = append(f.deps, d)
	}

	b := &builder{file: f, symbols: make(map[string]any)}
	for _, mp := range fdp.GetMessageType() {
		m, err := b.declareMessage(mp, nil, f.pkg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.path, err)
		}
		f.messages = append(f.messages, m)
	}
	for _, ep := range fdp.GetEnumType() {
		e, err := b.declareEnum(ep, nil, f.pkg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.path, err)
		}
		f.enums = append(f.enums, e)
	}

	seen := map[*FileDescriptor]bool{f: true}
	for _, d := range f.deps {
		b.importSymbols(d, seen)
	}

	var err error
	walkMessages(f.messages, func(m *MessageDescriptor) bool {
		err = b.resolveFields(m)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	for _, sp := range fdp.GetService() {
		s, err := b.buildService(sp)
		if err != nil {
			return nil, err
		}
		f.services = append(f.services, s)
	}
	return f, nil
}

func syntaxOf(fdp *descriptorpb.FileDescriptorProto) Syntax {
	switch fdp.GetSyntax() {
	case "proto3":
		return SyntaxProto3
	case "editions":
		return SyntaxEditions
	}
	return SyntaxProto2
}

// builder holds the symbol table of one file while it is being built: every
// message and enum the file declares or can see through its imports.
type builder struct {
	file    *FileDescriptor
	symbols map[string]any
}

func (b *builder) define(name string, v any) error {
	if _, exists := b.symbols[name]; exists {
		return fmt.Errorf("duplicate symbol %q", name)
	}
	b.symbols[name] = v
	return nil
}

func (b *builder) declareMessage(p *descriptorpb.DescriptorProto, parent *MessageDescriptor, scope string) (*MessageDescriptor, error) {
	m := &MessageDescriptor{
		proto:    p,
		name:     p.GetName(),
		fullName: joinName(scope, p.GetName()),
		file:     b.file,
		parent:   parent,
		byNumber: make(map[wire.FieldNumber]*FieldDescriptor, len(p.GetField())),
		byName:   make(map[string]*FieldDescriptor, len(p.GetField())),
		mapEntry: p.GetOptions().GetMapEntry(),
	}
	if err := b.define(m.fullName, m); err != nil {
		return nil, err
	}

	for i, op := range p.GetOneofDecl() {
		m.oneofs = append(m.oneofs, &OneofDescriptor{
			name:     op.GetName(),
			fullName: joinName(m.fullName, op.GetName()),
			index:    i,
			parent:   m,
		})
	}

	for _, fp := range p.GetField() {
		f, err := b.declareField(fp, m)
		if err != nil {
			return nil, err
		}
		m.fields = append(m.fields, f)
	}

	for _, o := range m.oneofs {
		o.synthetic = len(o.fields) > 0
		for _, f := range o.fields {
			if !f.proto.GetProto3Optional() {
				o.synthetic = false
			}
		}
	}

	for _, np := range p.GetNestedType() {
		n, err := b.declareMessage(np, m, m.fullName)
		if err != nil {
			return nil, err
		}
		m.nested = append(m.nested, n)
	}
	for _, ep := range p.GetEnumType() {
		e, err := b.declareEnum(ep, m, m.fullName)
		if err != nil {
			return nil, err
		}
		m.enums = append(m.enums, e)
	}
	return m, nil
}

func (b *builder) declareField(p *descriptorpb.FieldDescriptorProto, m *MessageDescriptor) (*FieldDescriptor, error) {
	f := &FieldDescriptor{
		proto:    p,
		name:     p.GetName(),
		fullName: joinName(m.fullName, p.GetName()),
		number:   wire.FieldNumber(p.GetNumber()),
		parent:   m,
	}
	if !f.number.IsValid() {
		return nil, fmt.Errorf("field %s: invalid field number %d", f.fullName, p.GetNumber())
	}
	if prev, ok := m.byNumber[f.number]; ok {
		return nil, fmt.Errorf("field %s: number %d already used by %s", f.fullName, f.number, prev.name)
	}
	if _, ok := m.byName[f.name]; ok {
		return nil, fmt.Errorf("duplicate field name %s", f.fullName)
	}

	switch p.GetLabel() {
	case descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		f.cardinality = Repeated
	case descriptorpb.FieldDescriptorProto_LABEL_REQUIRED:
		f.cardinality = Required
	default:
		f.cardinality = Optional
	}

	if p.Type != nil {
		k, ok := KindOf(p.GetType())
		if !ok {
			return nil, fmt.Errorf("field %s: unknown type %d", f.fullName, int32(p.GetType()))
		}
		f.kind = k
	}

	f.jsonName = JSONName(f.name)
	if p.JsonName != nil {
		f.jsonName = p.GetJsonName()
	}

	if p.OneofIndex != nil {
		i := int(p.GetOneofIndex())
		if i < 0 || i >= len(m.oneofs) {
			return nil, fmt.Errorf("field %s: oneof index %d out of range", f.fullName, i)
		}
		f.oneof = m.oneofs[i]
		f.oneof.fields = append(f.oneof.fields, f)
	}

	m.byNumber[f.number] = f
	m.byName[f.name] = f
	return f, nil
}

func (b *builder) declareEnum(p *descriptorpb.EnumDescriptorProto, parent *MessageDescriptor, scope string) (*EnumDescriptor, error) {
	e := &EnumDescriptor{
		proto:    p,
		name:     p.GetName(),
		fullName: joinName(scope, p.GetName()),
		file:     b.file,
		parent:   parent,
	}
	if err := b.define(e.fullName, e); err != nil {
		return nil, err
	}
	for _, vp := range p.GetValue() {
		e.values = append(e.values, &EnumValueDescriptor{
			name: vp.GetName(),
			// Enum values are siblings of their enum, not children.
			fullName: joinName(scope, vp.GetName()),
			number:   vp.GetNumber(),
		})
	}
	return e, nil
}

// importSymbols makes d's types visible, along with the files d re-exports
// through public imports.
func (b *builder) importSymbols(d *FileDescriptor, seen map[*FileDescriptor]bool) {
	if seen[d] {
		return
	}
	seen[d] = true
	walkMessages(d.messages, func(m *MessageDescriptor) bool {
		b.symbols[m.fullName] = m
		for _, e := range m.enums {
			b.symbols[e.fullName] = e
		}
		return true
	})
	for _, e := range d.enums {
		b.symbols[e.fullName] = e
	}
	for _, i := range d.proto.GetPublicDependency() {
		if int(i) >= 0 && int(i) < len(d.deps) {
			b.importSymbols(d.deps[i], seen)
		}
	}
}

func (b *builder) resolveFields(m *MessageDescriptor) error {
	for _, f := range m.fields {
		if tn := f.proto.GetTypeName(); tn != "" {
			full, ok := resolveTypeName(tn, m.fullName, b.symbols)
			if !ok {
				return &ResolutionError{Type: tn, From: f.fullName}
			}
			switch t := b.symbols[full].(type) {
			case *MessageDescriptor:
				if f.kind == "" {
					f.kind = KindMessage
				}
				if f.kind != KindMessage && f.kind != KindGroup {
					return fmt.Errorf("field %s: %s is a message, not %s", f.fullName, full, f.kind)
				}
				f.message = t
			case *EnumDescriptor:
				if f.kind == "" {
					f.kind = KindEnum
				}
				if f.kind != KindEnum {
					return fmt.Errorf("field %s: %s is an enum, not %s", f.fullName, full, f.kind)
				}
				f.enum = t
			}
		}
		if f.kind == "" {
			return fmt.Errorf("field %s: missing type", f.fullName)
		}
		if (f.kind == KindMessage || f.kind == KindGroup) && f.message == nil {
			return &ResolutionError{Type: f.proto.GetTypeName(), From: f.fullName}
		}
		if f.kind == KindEnum && f.enum == nil {
			return &ResolutionError{Type: f.proto.GetTypeName(), From: f.fullName}
		}

		f.presence = hasPresence(f)
		if f.cardinality == Repeated && f.kind.IsPackable() {
			if opts := f.proto.GetOptions(); opts != nil && opts.Packed != nil {
				f.packed = opts.GetPacked()
			} else {
				f.packed = b.file.syntax != SyntaxProto2
			}
		}
	}
	return nil
}

func hasPresence(f *FieldDescriptor) bool {
	switch {
	case f.cardinality == Repeated:
		return false
	case f.kind == KindMessage || f.kind == KindGroup:
		return true
	case f.oneof != nil:
		return true
	}
	return f.parent.file.syntax != SyntaxProto3
}

func (b *builder) buildService(p *descriptorpb.ServiceDescriptorProto) (*ServiceDescriptor, error) {
	s := &ServiceDescriptor{
		name:     p.GetName(),
		fullName: joinName(b.file.pkg, p.GetName()),
	}
	for _, mp := range p.GetMethod() {
		md := &MethodDescriptor{
			name:            mp.GetName(),
			fullName:        joinName(s.fullName, mp.GetName()),
			clientStreaming: mp.GetClientStreaming(),
			serverStreaming: mp.GetServerStreaming(),
		}
		var err error
		if md.input, err = b.resolveMessage(mp.GetInputType(), md.fullName); err != nil {
			return nil, err
		}
		if md.output, err = b.resolveMessage(mp.GetOutputType(), md.fullName); err != nil {
			return nil, err
		}
		s.methods = append(s.methods, md)
	}
	return s, nil
}

func (b *builder) resolveMessage(typeName, from string) (*MessageDescriptor, error) {
	full, ok := resolveTypeName(typeName, b.file.pkg, b.symbols)
	if !ok {
		return nil, &ResolutionError{Type: typeName, From: from}
	}
	m, ok := b.symbols[full].(*MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%s: %s is not a message", from, full)
	}
	return m, nil
}
