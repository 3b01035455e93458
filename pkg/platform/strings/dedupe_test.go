package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []string{}, expected: []string{}},
		{name: "trims whitespace", input: []string{"  Lisbon  ", "Porto  "}, expected: []string{"Lisbon", "Porto"}},
		{name: "removes duplicates preserving order", input: []string{"Bern", "Zurich", "Bern"}, expected: []string{"Bern", "Zurich"}},
		{name: "drops blanks", input: []string{"", "   ", "Oslo"}, expected: []string{"Oslo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestSortedSet(t *testing.T) {
	t.Run("nil becomes empty", func(t *testing.T) {
		got := SortedSet(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("sorts and dedupes", func(t *testing.T) {
		assert.Equal(t, []string{"ES", "FR", "PT"}, SortedSet([]string{"PT", " ES", "FR", "ES"}))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []string{"b", "a"}
		_ = SortedSet(in)
		assert.Equal(t, []string{"b", "a"}, in)
	})
}

func TestSortedSetUpper(t *testing.T) {
	assert.Equal(t, []string{"ES", "FR"}, SortedSetUpper([]string{"fr", "Es", "FR"}))
}
