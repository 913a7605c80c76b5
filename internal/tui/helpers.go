package tui

import "github.com/mattn/go-runewidth"

// truncate shortens a string to the given display width, appending "…"
// if truncated. Handles wide characters correctly using runewidth.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}
