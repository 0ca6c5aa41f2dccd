package config

const (
	// DefaultEnvFile is the dotenv file read from the working directory
	DefaultEnvFile = ".env"
	// DefaultOutputPath disables JSON report output
	DefaultOutputPath = ""
	// DefaultTiming keeps elapsed-time reporting off
	DefaultTiming = false
	// DefaultFailFast runs every registered test
	DefaultFailFast = false
	// DefaultMessagePrefix is prepended to every diagnostic line
	DefaultMessagePrefix = "unit"
)

// Environment variables that seed the defaults
const (
	EnvTiming   = "BBUNIT_TIMING"
	EnvFailFast = "BBUNIT_FAIL_FAST"
	EnvOutput   = "BBUNIT_OUTPUT"
	EnvNoColor  = "NO_COLOR"
)
