package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anirudhraja/protocore/anypb"
	"github.com/anirudhraja/protocore/convert"
	"github.com/anirudhraja/protocore/descriptorpb"
	"github.com/anirudhraja/protocore/dynamic"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

// Registry allows us to store the schema of the protobuf messages. We look
// this up when we need to parse or marshal a message, or to open an Any.
//
// Loading is meant for startup; lookups are safe for concurrent use.
type Registry struct {
	// ProtoDirectories are the roots imports are resolved against, in order.
	ProtoDirectories []string

	mu    sync.RWMutex
	pool  *schema.Pool
	types map[string]func() wire.Message // fully qualified name -> generated constructor
	conv  *convert.Table
}

// NewRegistry returns a registry resolving imports against dirs. The
// well-known Any type is always registered.
func NewRegistry(dirs ...string) *Registry {
	r := &Registry{
		ProtoDirectories: dirs,
		pool:             schema.NewPool(),
		types:            make(map[string]func() wire.Message),
	}
	_ = r.RegisterFile(anypb.File_google_protobuf_any_proto)
	_ = r.RegisterType(func() wire.Message { return new(anypb.Any) })
	return r
}

// Pool returns the pool every loaded file is registered in.
func (r *Registry) Pool() *schema.Pool { return r.pool }

// SetConverters sets the table dynamic messages created by New use.
func (r *Registry) SetConverters(t *convert.Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conv = t
}

// RegisterFile adds an embedded file, and its dependencies, to the pool.
func (r *Registry) RegisterFile(f *schema.LazyFile) error {
	fd, err := f.Get()
	if err != nil {
		return err
	}
	return r.pool.RegisterFile(fd)
}

// RegisterType records a generated constructor so New and ResolveAny return
// the generated type instead of a dynamic message.
func (r *Registry) RegisterType(newFn func() wire.Message) error {
	name := newFn().FullName()
	if name == "" {
		return errors.New("cannot register a message without a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = newFn
	return nil
}

// LoadSchema Given a path it will recursively scan all *proto files inside
// it, with their imports, and register them.
func (r *Registry) LoadSchema(protoPath string) error {
	// Check if the path exists
	info, err := os.Stat(protoPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	// If it's a single file, process it directly
	if !info.IsDir() {
		if !strings.HasSuffix(protoPath, ".proto") {
			return fmt.Errorf("file %s is not a .proto file", protoPath)
		}
		if err := r.loadProtoFile(r.importPathFor(protoPath)); err != nil {
			return fmt.Errorf("failed to load proto file: %w", err)
		}
		return nil
	}

	root := protoPath
	if !r.hasDirectory(root) {
		r.ProtoDirectories = append(r.ProtoDirectories, root)
	}
	// If it's a directory, walk through it recursively
	err = filepath.WalkDir(protoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Skip directories and non-proto files
		if d.IsDir() || !strings.HasSuffix(path, ".proto") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if err := r.loadProtoFile(filepath.ToSlash(rel)); err != nil {
			return fmt.Errorf("failed to load proto file %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	return nil
}

// LoadDescriptorSet registers every file of a serialized FileDescriptorSet,
// as written by protoc --descriptor_set_out. Files must follow their
// dependencies, which protoc guarantees.
func (r *Registry) LoadDescriptorSet(b []byte) error {
	var set descriptorpb.FileDescriptorSet
	if err := wire.Unmarshal(b, &set); err != nil {
		return fmt.Errorf("failed to decode descriptor set: %w", err)
	}
	for _, fdp := range set.File {
		if _, err := r.pool.BuildFile(fdp); err != nil {
			return fmt.Errorf("failed to build %s: %w", fdp.GetName(), err)
		}
	}
	return nil
}

func (r *Registry) hasDirectory(dir string) bool {
	abs, _ := filepath.Abs(dir)
	for _, d := range r.ProtoDirectories {
		if a, _ := filepath.Abs(d); a == abs {
			return true
		}
	}
	return false
}

// loadProtoFile parses importPath and its imports, then builds them into the
// pool, dependencies first.
func (r *Registry) loadProtoFile(importPath string) error {
	entities, err := r.getAllProtoInfo(importPath)
	if err != nil {
		return err
	}
	for _, e := range entities {
		for _, dep := range e.imports {
			if lf, ok := builtinFiles[dep]; ok {
				if err := r.RegisterFile(lf); err != nil {
					return err
				}
			}
		}
		fdp, err := fileProto(e)
		if err != nil {
			return fmt.Errorf("%s: %w", e.importPath, err)
		}
		fd, err := r.pool.BuildFile(fdp)
		if err != nil {
			return fmt.Errorf("%s: %w", e.importPath, err)
		}
		canonicalize(fd)
	}
	return nil
}

// GetMessage retrieves a message descriptor by name. A name that is not
// fully qualified matches the single registered message it is a suffix of.
func (r *Registry) GetMessage(name string) (*schema.MessageDescriptor, error) {
	m, err := r.pool.FindMessage(name)
	if err == nil {
		return m, nil
	}
	if full, ok := bySuffix(r.pool.ListMessages(), name); ok {
		return r.pool.FindMessage(full)
	}
	return nil, err
}

// GetEnum retrieves an enum descriptor by name, with the same suffix
// matching as GetMessage.
func (r *Registry) GetEnum(name string) (*schema.EnumDescriptor, error) {
	e, err := r.pool.FindEnum(name)
	if err == nil {
		return e, nil
	}
	if full, ok := bySuffix(r.pool.ListEnums(), name); ok {
		return r.pool.FindEnum(full)
	}
	return nil, err
}

// GetService retrieves a service descriptor by name, with the same suffix
// matching as GetMessage.
func (r *Registry) GetService(name string) (*schema.ServiceDescriptor, error) {
	s, err := r.pool.FindService(name)
	if err == nil {
		return s, nil
	}
	if full, ok := bySuffix(r.pool.ListServices(), name); ok {
		return r.pool.FindService(full)
	}
	return nil, err
}

// bySuffix finds the one name equal to short or ending in "."+short.
// Ambiguous matches fail.
func bySuffix(names []string, short string) (string, bool) {
	short = strings.TrimPrefix(short, ".")
	var found string
	for _, n := range names {
		if n == short || strings.HasSuffix(n, "."+short) {
			if found != "" {
				return "", false
			}
			found = n
		}
	}
	return found, found != ""
}

// ListMessages returns all registered message names, sorted.
func (r *Registry) ListMessages() []string { return r.pool.ListMessages() }

// ListEnums returns all registered enum names, sorted.
func (r *Registry) ListEnums() []string { return r.pool.ListEnums() }

// ListServices returns all registered service names, sorted.
func (r *Registry) ListServices() []string { return r.pool.ListServices() }

// New returns an empty message of the named type: the generated type when
// one is registered, otherwise a dynamic message.
func (r *Registry) New(name string) (wire.Message, error) {
	r.mu.RLock()
	newFn, ok := r.types[name]
	conv := r.conv
	r.mu.RUnlock()
	if ok {
		return newFn(), nil
	}
	desc, err := r.GetMessage(name)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	newFn, ok = r.types[desc.FullName()]
	r.mu.RUnlock()
	if ok {
		return newFn(), nil
	}
	return dynamic.New(desc, dynamic.WithConverters(conv)), nil
}

// ResolveAny decodes the message inside a into a value of the type its URL
// names.
func (r *Registry) ResolveAny(a *anypb.Any) (wire.Message, error) {
	name := a.MessageName()
	m, err := r.pool.FindMessage(name)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", a.TypeURL, err)
	}
	msg, err := r.New(m.FullName())
	if err != nil {
		return nil, err
	}
	if err := anypb.UnpackTo(a, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
