package imageload

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/go-shellwords"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// NormalizeDroppedPath turns the text a terminal pastes when a file is
// dropped onto it into a file system path. Terminals differ: some quote the
// path, some backslash-escape spaces, some send a file:// URL. Only the first
// line is used; ok is false when nothing path-like remains.
func NormalizeDroppedPath(raw string) (path string, ok bool) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if s == "" {
		return "", false
	}

	// A pasted path that already names a file is taken verbatim.
	if _, err := os.Stat(s); err != nil {
		s = unquote(s)
	}

	if strings.HasPrefix(s, "file://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", false
		}
		s = u.Path
	}

	return CleanPath(s)
}

// CleanPath expands a leading ~ and cleans p. It does no unquoting, so it
// suits paths the shell has already processed. ok is false for an empty path.
func CleanPath(p string) (path string, ok bool) {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if p == "" {
		return "", false
	}
	return filepath.Clean(p), true
}

// unquote applies shell quoting rules to s. Text that does not parse as a
// single word, such as a path with bare spaces, is returned unchanged.
func unquote(s string) string {
	words, err := shellwords.Parse(s)
	if err != nil || len(words) > 1 {
		return s
	}
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// DisplayName shortens name to at most width terminal cells.
func DisplayName(name string, width int) string {
	if width <= 0 || runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, "…")
}

// HumanSize formats a byte count for display.
func HumanSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
