// Package strings provides string manipulation utilities.
package strings

import (
	"slices"
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SortedSet treats values as a set: trimmed, deduplicated and sorted.
// Always returns a non-nil slice so empty sets serialize as [].
//
//	SortedSet([]string{"PT", " ES", "FR", "ES"})
//	// Returns: []string{"ES", "FR", "PT"}
func SortedSet(values []string) []string {
	result := DedupeAndTrim(values)
	if result == nil {
		return []string{}
	}
	result = slices.Clone(result)
	slices.Sort(result)
	return result
}

// SortedSetUpper is SortedSet over upper-cased values, for ISO codes.
func SortedSetUpper(values []string) []string {
	upper := make([]string, len(values))
	for i, v := range values {
		upper[i] = strings.ToUpper(v)
	}
	return SortedSet(upper)
}
