package command

import (
	"slices"
	"strings"
)

// matchesAnyWord reports whether any keyword equals any whitespace-delimited
// word of field, ignoring case. An empty keyword list matches everything so
// that unspecified fields do not constrain a find.
func matchesAnyWord(field string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	words := strings.Fields(field)
	for _, k := range keywords {
		if slices.ContainsFunc(words, func(w string) bool { return strings.EqualFold(w, k) }) {
			return true
		}
	}
	return false
}

// matchesAny is matchesAnyWord for parsed values compared by equality.
func matchesAny[T comparable](value T, wanted []T) bool {
	return len(wanted) == 0 || slices.Contains(wanted, value)
}

// Keywords splits each raw prefix value into whitespace-delimited keywords so
// that "n/John Amy" and "n/John n/Amy" search for the same words.
func Keywords(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Fields(v)...)
	}
	return out
}
