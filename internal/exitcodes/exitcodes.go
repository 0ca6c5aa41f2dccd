// Package exitcodes defines the process exit codes used by bbunit.
package exitcodes

// * Success (0): every test passed, including an empty run
// * TestFailure (1): one or more tests failed, whatever their number
// * RuntimeErr (2): the run could not be carried out (bad flags, unwritable report)
const (
	Success     = 0 // All tests pass
	TestFailure = 1 // Test failures
	RuntimeErr  = 2 // Runtime errors
)
