package registry

import (
	"path/filepath"
	"strings"
)

// MatchName reports whether a test name matches pattern.
// Supports patterns like "Timeval*" or "*filter*"; a pattern without
// wildcards matches by substring.
func MatchName(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	matched, err := filepath.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// Every non-empty piece between wildcards must appear in the name
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
