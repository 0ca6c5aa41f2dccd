package selftest

import (
	"fmt"
	"testing"

	"bbunit/internal/execution"
	"bbunit/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lines []string

func (l *lines) Printf(format string, args ...any) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

func TestSuitePasses(t *testing.T) {
	b := registry.NewBuilder()
	Register(b)
	reg := b.Build()
	require.Positive(t, reg.Count())

	var out lines
	report := execution.NewRunner(&out, execution.Options{}).Run(reg)

	assert.True(t, report.Passed(), "diagnostics: %v", out)
	assert.Equal(t, reg.Count(), report.Run)
	assert.Equal(t, "All tests passed", out[len(out)-1])
}
