package registry

import (
	"bbunit/internal/domain"
)

// Builder accumulates descriptors during setup. Build closes the setup
// phase and hands the descriptors over to a Registry.
type Builder struct {
	tests []domain.TestDescriptor
	built bool
}

// NewBuilder creates an empty Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add queues a named test. It returns the builder so calls can be chained.
func (b *Builder) Add(name string, fn domain.TestFunc) *Builder {
	return b.Register(domain.TestDescriptor{Name: name, Func: fn})
}

// Register queues a descriptor. Registering after Build panics, as does a
// malformed descriptor.
func (b *Builder) Register(d domain.TestDescriptor) *Builder {
	if b.built {
		panic("registry: Register called after Build")
	}
	if err := d.Validate(); err != nil {
		panic("registry: " + err.Error())
	}
	b.tests = append(b.tests, d)
	return b
}

// Len returns the number of queued descriptors.
func (b *Builder) Len() int {
	return len(b.tests)
}

// Build returns a Registry holding every queued descriptor in insertion
// order. The builder cannot be used afterwards.
func (b *Builder) Build() *Registry {
	b.built = true
	r := New()
	for _, d := range b.tests {
		r.Register(d)
	}
	b.tests = nil
	return r
}
