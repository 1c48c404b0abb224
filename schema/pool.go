package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/anirudhraja/protocore/descriptorpb"
)

// Pool is a set of files indexed by path and by the fully-qualified names of
// the types they declare. Registration is meant for startup; lookups are safe
// for concurrent use.
type Pool struct {
	mu       sync.RWMutex
	files    map[string]*FileDescriptor
	messages map[string]*MessageDescriptor // fully qualified name -> message
	enums    map[string]*EnumDescriptor    // fully qualified name -> enum
	services map[string]*ServiceDescriptor // fully qualified name -> service
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{
		files:    make(map[string]*FileDescriptor),
		messages: make(map[string]*MessageDescriptor),
		enums:    make(map[string]*EnumDescriptor),
		services: make(map[string]*ServiceDescriptor),
	}
}

// File returns the file registered under path. A nil pool holds no files.
func (p *Pool) File(path string) (*FileDescriptor, bool) {
	if p == nil {
		return nil, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	f, ok := p.files[path]
	return f, ok
}

// Files returns the registered files sorted by path.
func (p *Pool) Files() []*FileDescriptor {
	p.mu.RLock()
	defer p.mu.RUnlock()
	files := make([]*FileDescriptor, 0, len(p.files))
	for _, f := range p.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })
	return files
}

// BuildFile builds fdp against the files already in the pool and registers
// the result. A file already registered under the same path is returned
// as-is.
func (p *Pool) BuildFile(fdp *descriptorpb.FileDescriptorProto) (*FileDescriptor, error) {
	if f, ok := p.File(fdp.GetName()); ok {
		return f, nil
	}
	f, err := NewFile(fdp, p)
	if err != nil {
		return nil, err
	}
	if err := p.RegisterFile(f); err != nil {
		return nil, err
	}
	return f, nil
}

// RegisterFile adds f and, first, any of its dependencies not yet in the
// pool. Registering the same file twice is a no-op; a different file under
// the same path, or a type name already taken, is an error.
func (p *Pool) RegisterFile(f *FileDescriptor) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.register(f)
}

func (p *Pool) register(f *FileDescriptor) error {
	if prev, ok := p.files[f.path]; ok {
		if prev == f {
			return nil
		}
		return fmt.Errorf("file %q already registered", f.path)
	}
	for _, d := range f.deps {
		if err := p.register(d); err != nil {
			return err
		}
	}

	var err error
	walkMessages(f.messages, func(m *MessageDescriptor) bool {
		if _, ok := p.messages[m.fullName]; ok {
			err = fmt.Errorf("message %s from %s already registered", m.fullName, f.path)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	walkMessages(f.messages, func(m *MessageDescriptor) bool {
		p.messages[m.fullName] = m
		for _, e := range m.enums {
			p.enums[e.fullName] = e
		}
		return true
	})
	for _, e := range f.enums {
		p.enums[e.fullName] = e
	}
	for _, s := range f.services {
		p.services[s.fullName] = s
	}
	p.files[f.path] = f
	return nil
}

// FindMessage retrieves a message descriptor by fully-qualified name.
func (p *Pool) FindMessage(fullName string) (*MessageDescriptor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if m, ok := p.messages[fullName]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("message %s: %w", fullName, ErrNotFound)
}

// FindEnum retrieves an enum descriptor by fully-qualified name.
func (p *Pool) FindEnum(fullName string) (*EnumDescriptor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if e, ok := p.enums[fullName]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("enum %s: %w", fullName, ErrNotFound)
}

// FindService retrieves a service descriptor by fully-qualified name.
func (p *Pool) FindService(fullName string) (*ServiceDescriptor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if s, ok := p.services[fullName]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("service %s: %w", fullName, ErrNotFound)
}

// ListMessages returns all registered message names, sorted.
func (p *Pool) ListMessages() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return sortedKeys(p.messages)
}

// ListEnums returns all registered enum names, sorted.
func (p *Pool) ListEnums() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return sortedKeys(p.enums)
}

// ListServices returns all registered service names, sorted.
func (p *Pool) ListServices() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return sortedKeys(p.services)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
