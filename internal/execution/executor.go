package execution

import (
	"bbunit/internal/domain"
)

// Queue is the source of descriptors a run drains
type Queue interface {
	PopFront() (domain.TestDescriptor, bool)
	Count() int
}

// Sink receives every human-readable line a run produces
type Sink interface {
	Printf(format string, args ...any)
}

// Progress is notified after every executed case
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Executor drains a queue and reports the aggregate result
type Executor interface {
	SetProgress(progress Progress)
	Run(q Queue) domain.RunReport
}

// NewExecutorFunc builds the executor for one invocation
type NewExecutorFunc func(sink Sink, opts Options) Executor

// NewExecutor returns a Runner as an Executor.
func NewExecutor(sink Sink, opts Options) Executor {
	return NewRunner(sink, opts)
}
