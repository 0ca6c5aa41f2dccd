package cli

import "bbunit/internal/config"

// Flags holds command-line flags
type Flags struct {
	Timing     bool
	FailFast   bool
	NameFilter string
	Progress   bool
	OutputPath string
	NoColor    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Timing:     f.Timing,
		FailFast:   f.FailFast,
		NameFilter: f.NameFilter,
		Progress:   f.Progress,
		OutputPath: f.OutputPath,
		NoColor:    f.NoColor,
	}
}
