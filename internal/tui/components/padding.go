package components

import "strings"

// blank holds a run of spaces long enough for typical terminal widths.
var blank = strings.Repeat(" ", 256)

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= len(blank) {
		return blank[:n]
	}
	return strings.Repeat(" ", n)
}

// Blank returns height lines of width spaces, used as the bottom layer
// when compositing a screen.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := Pad(width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
