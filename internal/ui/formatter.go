package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Formatter formats and displays listings
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintTestList prints registered test names as a tree in execution order.
func (f *Formatter) PrintTestList(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(f.out, color.YellowString("No tests registered"))
		return
	}

	fmt.Fprintln(f.out, color.GreenString("Found %d registered test(s):", len(names)))
	for i, name := range names {
		connector := "├── "
		if i == len(names)-1 {
			connector = "└── "
		}
		fmt.Fprintf(f.out, "%s%s\n", connector, color.CyanString(name))
	}
}
