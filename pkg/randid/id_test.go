package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var idChars = regexp.MustCompile(`^[a-z0-9]*$`)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "negative", n: -3, want: 0},
		{name: "zero", n: 0, want: 0},
		{name: "node id suffix", n: 7, want: 7},
		{name: "longer than alphabet", n: 40, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.n)

			assert.Len(t, got, tt.want)
			assert.Regexp(t, idChars, got)
		})
	}
}

// Node ids are node-<millis>-<suffix>, so ids created within one millisecond
// differ only in the 7 character suffix.
func TestGenerate_NodeSuffixRarelyCollides(t *testing.T) {
	const draws = 10_000

	seen := make(map[string]struct{}, draws)
	for range draws {
		seen[Generate(7)] = struct{}{}
	}

	// 36^7 suffixes make a repeat among 10k draws about a 0.06% event.
	assert.GreaterOrEqual(t, len(seen), draws-1)
}

func TestGenerate_UsesWholeAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for range 2000 {
		for _, r := range Generate(7) {
			seen[r] = true
		}
	}

	for _, r := range alphabet {
		assert.True(t, seen[r], "character %q never generated", r)
	}
}
