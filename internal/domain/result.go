package domain

import "time"

// RunReport aggregates the counts produced by draining a registry
type RunReport struct {
	Registered int           // Tests ever registered when the run started
	Run        int           // Tests executed
	Failed     int           // Tests that signalled failure
	Elapsed    time.Duration // Wall-clock time, zero unless timing is enabled
	Outcomes   []Outcome     // Per-case verdicts in execution order
}

// Passed reports whether the run finished with zero failures.
func (r RunReport) Passed() bool {
	return r.Failed == 0
}

// RunResultsMeta contains metadata about a persisted run
type RunResultsMeta struct {
	Registered     int     `json:"registered"`
	Run            int     `json:"run"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	Elapsed        string  `json:"elapsed,omitempty"`
	ElapsedSeconds float64 `json:"elapsed_seconds,omitempty"`
	Timestamp      string  `json:"timestamp"`
}

// RunResultsOutput is the complete persisted run document
type RunResultsOutput struct {
	Meta    RunResultsMeta `json:"meta"`
	Details []Outcome      `json:"details"`
}
