package customizer

import "strings"

// MaxTextLines is the number of text lines that fit on the shirt.
const MaxTextLines = 3

// ClampLines keeps at most MaxTextLines newline separated lines of s. Input
// that already fits is returned unchanged.
func ClampLines(s string) string {
	return clampTo(s, MaxTextLines)
}

func clampTo(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

// LineCount returns the number of lines s occupies. The empty string has no
// lines; a trailing newline opens a new, empty line.
func LineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// Lines splits s into its lines, returning nil for the empty string.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
