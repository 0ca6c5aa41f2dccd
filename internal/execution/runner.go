package execution

import (
	"bbunit/internal/domain"
	"bbunit/internal/timing"
)

// Options tune a run. The zero value runs every test without timing.
type Options struct {
	Timing   bool         // Report wall-clock time for the whole run
	FailFast bool         // Stop after the first failed case
	Clock    timing.Clock // Time source for Timing, time.Now when nil
}

// Runner executes queued tests one at a time on the calling goroutine
type Runner struct {
	sink     Sink
	opts     Options
	progress Progress
}

// NewRunner creates a new Runner writing to sink
func NewRunner(sink Sink, opts Options) *Runner {
	return &Runner{sink: sink, opts: opts}
}

// SetProgress sets the progress observer for the runner
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// Run pops descriptors from q until it is empty, invoking each test
// function synchronously. A panicking test aborts the whole run.
func (r *Runner) Run(q Queue) domain.RunReport {
	var sw *timing.Stopwatch
	if r.opts.Timing {
		sw = timing.Start(r.opts.Clock)
	}

	report := domain.RunReport{Registered: q.Count()}
	r.sink.Printf("Running %d test(s)...", report.Registered)

	for {
		d, ok := q.PopFront()
		if !ok {
			break
		}
		r.sink.Printf("Case: [%s]", d.Name)

		failed := r.invoke(d)
		if failed {
			r.sink.Printf("[ERROR] [%s]: TEST FAILED", d.Name)
			report.Failed++
		}
		report.Outcomes = append(report.Outcomes, domain.Outcome{
			Index:  report.Run,
			Name:   d.Name,
			Failed: failed,
		})
		report.Run++

		if r.progress != nil {
			r.progress.Update(report.Run-report.Failed, report.Failed)
		}
		if failed && r.opts.FailFast {
			break
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}

	if sw != nil {
		spent := sw.Elapsed()
		report.Elapsed = spent.Duration()
		r.sink.Printf("Elapsed time %d.%06d seconds", spent.Sec, spent.Usec)
	}

	if report.Failed > 0 {
		r.sink.Printf("[ERROR] %d test(s) FAILED", report.Failed)
		return report
	}
	r.sink.Printf("All tests passed")
	return report
}

// invoke runs one test body with a fresh handle and returns its verdict.
func (r *Runner) invoke(d domain.TestDescriptor) bool {
	t := domain.NewT(d.Name, r.sink.Printf)
	d.Func(t)
	t.Finish()
	return t.Failed()
}
