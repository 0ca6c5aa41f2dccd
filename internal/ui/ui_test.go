package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConsoleSink_Printf(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "unit", true)

	sink.Printf("Running %d test(s)...", 2)
	sink.Printf("[ERROR] [%s]: TEST FAILED", "B")
	sink.Printf("All tests passed")

	assert.Equal(t,
		"unit: Running 2 test(s)...\n"+
			"unit: [ERROR] [B]: TEST FAILED\n"+
			"unit: All tests passed\n",
		buf.String())
}

func TestConsoleSink_NoPrefix(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleSink(&buf, "", true).Printf("Case: [%s]", "A")
	assert.Equal(t, "Case: [A]\n", buf.String())
}

func TestFormatter_PrintTestList(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	t.Run("lists names as a tree", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintTestList([]string{"a", "b", "c"})
		assert.Equal(t,
			"Found 3 registered test(s):\n├── a\n├── b\n└── c\n",
			buf.String())
	})

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintTestList(nil)
		assert.Equal(t, "No tests registered\n", buf.String())
	})
}

func TestProgressBar_Update(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(2, &buf)
	bar.Update(1, 0)
	bar.Update(1, 1)
	bar.Finish()

	assert.Contains(t, buf.String(), "failed: 1]")
}
