package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ConsoleSink writes diagnostic lines to a terminal, one per message,
// prefixed with the program name and colored by kind
type ConsoleSink struct {
	out    io.Writer
	prefix string
	errorC *color.Color
	passC  *color.Color
	caseC  *color.Color
	plainC *color.Color
}

// NewConsoleSink creates a sink writing to out. Color is disabled when
// noColor is set.
func NewConsoleSink(out io.Writer, prefix string, noColor bool) *ConsoleSink {
	s := &ConsoleSink{
		out:    out,
		prefix: prefix,
		errorC: color.New(color.FgRed, color.Bold),
		passC:  color.New(color.FgGreen),
		caseC:  color.New(color.FgCyan),
		plainC: color.New(color.Reset),
	}
	if noColor {
		for _, c := range []*color.Color{s.errorC, s.passC, s.caseC, s.plainC} {
			c.DisableColor()
		}
	}
	return s
}

// Printf formats one diagnostic line
func (s *ConsoleSink) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.prefix != "" {
		fmt.Fprintf(s.out, "%s: ", s.prefix)
	}
	s.colorFor(msg).Fprintln(s.out, msg)
}

func (s *ConsoleSink) colorFor(msg string) *color.Color {
	switch {
	case strings.HasPrefix(msg, "[ERROR]"):
		return s.errorC
	case msg == "All tests passed":
		return s.passC
	case strings.HasPrefix(msg, "Case: "):
		return s.caseC
	default:
		return s.plainC
	}
}
