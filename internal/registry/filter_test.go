package registry

import (
	"testing"
)

func TestMatchName(t *testing.T) {
	names := []string{"TimevalDiff", "TimevalString", "FilterByName", "RegistryOrder", "RegistryFilter"}

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern matches all",
			pattern:  "",
			expected: 5,
		},
		{
			name:     "wildcard pattern matches prefix",
			pattern:  "Timeval*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			pattern:  "*Filter*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			pattern:  "Order",
			expected: 1,
		},
		{
			name:     "no matches",
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "question mark wildcard",
			pattern:  "Timeval?iff",
			expected: 1,
		},
		{
			name:     "bare wildcard",
			pattern:  "*",
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := 0
			for _, n := range names {
				if MatchName(n, tt.pattern) {
					count++
				}
			}
			if count != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, count)
			}
		})
	}
}

func TestMatchName_EdgeCases(t *testing.T) {
	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		if !MatchName("RegistryPopFrontOrder", "*Registry*Order") {
			t.Error("expected multi-wildcard pattern to match")
		}
	})

	t.Run("question mark does not fall back to substring", func(t *testing.T) {
		if MatchName("TimevalDiffBorrow", "Timeval?iff") {
			t.Error("expected anchored ? pattern not to match a longer name")
		}
	})
}
