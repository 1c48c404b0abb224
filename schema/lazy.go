package schema

import (
	"fmt"
	"sync/atomic"

	"github.com/anirudhraja/protocore/descriptorpb"
	"github.com/anirudhraja/protocore/wire"
)

// LazyFile is the descriptor of a generated file, kept as the serialized
// FileDescriptorProto until first use. Generated code declares one package
// variable per .proto file:
//
//	var File_foo_proto = &schema.LazyFile{Raw: rawDesc, Deps: []*schema.LazyFile{...}}
//
// A LazyFile must not be copied after first use.
type LazyFile struct {
	// Raw is the binary FileDescriptorProto.
	Raw string
	// Deps are the files named by the descriptor's dependency list.
	Deps []*LazyFile

	fd atomic.Pointer[FileDescriptor]
}

// Get parses and resolves the file on first call and returns the same
// descriptor on every later call. Concurrent first callers may each build a
// descriptor; a compare-and-swap picks one and all of them return it.
func (l *LazyFile) Get() (*FileDescriptor, error) {
	if fd := l.fd.Load(); fd != nil {
		return fd, nil
	}

	fdp := new(descriptorpb.FileDescriptorProto)
	if err := wire.Unmarshal([]byte(l.Raw), fdp); err != nil {
		return nil, fmt.Errorf("failed to parse embedded descriptor: %w", err)
	}
	pool := NewPool()
	for _, dep := range l.Deps {
		d, err := dep.Get()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fdp.GetName(), err)
		}
		if err := pool.RegisterFile(d); err != nil {
			return nil, err
		}
	}
	fd, err := NewFile(fdp, pool)
	if err != nil {
		return nil, err
	}

	l.fd.CompareAndSwap(nil, fd)
	return l.fd.Load(), nil
}

// MustGet is Get for generated code, where the embedded bytes are known to be
// valid. It panics on error.
func (l *LazyFile) MustGet() *FileDescriptor {
	fd, err := l.Get()
	if err != nil {
		panic(fmt.Sprintf("schema: invalid embedded descriptor: %v", err))
	}
	return fd
}

// Message is a shorthand for MustGet().FindMessage(fullName) that panics when
// the message does not exist.
func (l *LazyFile) Message(fullName string) *MessageDescriptor {
	m := l.MustGet().FindMessage(fullName)
	if m == nil {
		panic(fmt.Sprintf("schema: message %s not found in %s", fullName, l.MustGet().Path()))
	}
	return m
}
