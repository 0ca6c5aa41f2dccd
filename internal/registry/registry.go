package registry

import (
	"fmt"

	"bbunit/internal/domain"
)

// Registry is an ordered queue of test descriptors. Registration appends
// to the tail, the runner pops from the front.
type Registry struct {
	tests      []domain.TestDescriptor
	registered int
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{}
}

// Register appends a descriptor to the tail of the registry. A descriptor
// with an empty name or nil function violates the caller contract and panics.
func (r *Registry) Register(d domain.TestDescriptor) {
	if err := d.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	r.tests = append(r.tests, d)
	r.registered++
}

// Add is shorthand for Register with a name and a function.
func (r *Registry) Add(name string, fn domain.TestFunc) {
	r.Register(domain.TestDescriptor{Name: name, Func: fn})
}

// PopFront removes and returns the first queued descriptor. ok is false
// when the registry is empty.
func (r *Registry) PopFront() (d domain.TestDescriptor, ok bool) {
	if len(r.tests) == 0 {
		return domain.TestDescriptor{}, false
	}
	d = r.tests[0]
	r.tests[0] = domain.TestDescriptor{}
	r.tests = r.tests[1:]
	return d, true
}

// Count returns the number of descriptors ever registered. It does not
// decrease as descriptors are popped.
func (r *Registry) Count() int {
	return r.registered
}

// Len returns the number of descriptors still queued.
func (r *Registry) Len() int {
	return len(r.tests)
}

// Names returns the names of the queued descriptors in execution order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tests))
	for _, d := range r.tests {
		names = append(names, d.Name)
	}
	return names
}

// Filter returns a new Registry holding the queued descriptors whose names
// match pattern, in their original order. An empty pattern keeps everything.
func (r *Registry) Filter(pattern string) *Registry {
	out := New()
	for _, d := range r.tests {
		if MatchName(d.Name, pattern) {
			out.Register(d)
		}
	}
	return out
}
