package customizer

import (
	"fmt"
	"strings"
)

// Build is the body type the shirt is cut for.
type Build string

const (
	BuildLean     Build = "lean"
	BuildRegular  Build = "regular"
	BuildAthletic Build = "athletic"
	BuildBig      Build = "big"
)

// Builds lists every build in display order.
var Builds = []Build{BuildLean, BuildRegular, BuildAthletic, BuildBig}

// ParseBuild converts a user supplied value into a Build.
func ParseBuild(value string) (Build, error) {
	candidate := Build(strings.ToLower(strings.TrimSpace(value)))
	if candidate.IsValid() {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown build %q (expected one of %s)", value, buildList())
}

// IsValid reports whether b is one of the known builds.
func (b Build) IsValid() bool {
	return b.index() >= 0
}

// Label returns the capitalised display name.
func (b Build) Label() string {
	if b == "" {
		return ""
	}
	s := string(b)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Next returns the following build in display order, wrapping at the end.
func (b Build) Next() Build {
	i := b.index()
	if i < 0 {
		return Builds[0]
	}
	return Builds[(i+1)%len(Builds)]
}

// Prev returns the preceding build in display order, wrapping at the start.
func (b Build) Prev() Build {
	i := b.index()
	if i < 0 {
		return Builds[len(Builds)-1]
	}
	return Builds[(i+len(Builds)-1)%len(Builds)]
}

func (b Build) index() int {
	for i, candidate := range Builds {
		if candidate == b {
			return i
		}
	}
	return -1
}

func buildList() string {
	names := make([]string, len(Builds))
	for i, b := range Builds {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}
