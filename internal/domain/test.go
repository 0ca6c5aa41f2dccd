package domain

import "fmt"

// TestFunc is the body of a registered test case.
type TestFunc func(t *T)

// TestDescriptor identifies a single registered test case
type TestDescriptor struct {
	Name string   // Display name, never empty
	Func TestFunc // Test body
}

// Validate reports whether the descriptor satisfies the registration contract.
func (d TestDescriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("test descriptor has an empty name")
	}
	if d.Func == nil {
		return fmt.Errorf("test descriptor %q has a nil function", d.Name)
	}
	return nil
}

// T is the handle passed to a running test function. Its failure flag is
// scoped to one invocation: it starts cleared and is read once the
// function returns.
type T struct {
	name   string
	failed bool
	done   bool
	logf   func(format string, args ...any)
}

// NewT returns a handle for one invocation of the named test. logf may be nil.
func NewT(name string, logf func(format string, args ...any)) *T {
	return &T{name: name, logf: logf}
}

// Name returns the name of the running test.
func (t *T) Name() string {
	return t.name
}

// Fail marks the test as failed. Repeated calls have the same effect as one.
// Once the invocation has returned, Fail does nothing.
func (t *T) Fail() {
	if t.done {
		return
	}
	t.failed = true
}

// Failed reports whether Fail was called during the invocation.
func (t *T) Failed() bool {
	return t.failed
}

// Logf emits a diagnostic line attributed to the test.
func (t *T) Logf(format string, args ...any) {
	if t.logf == nil || t.done {
		return
	}
	t.logf("[%s] %s", t.name, fmt.Sprintf(format, args...))
}

// Errorf logs a diagnostic and marks the test as failed.
func (t *T) Errorf(format string, args ...any) {
	t.Logf(format, args...)
	t.Fail()
}

// Finish closes the invocation. The runner calls it after the test function
// returns and before reading Failed.
func (t *T) Finish() {
	t.done = true
}
