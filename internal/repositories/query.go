package repositories

import "strings"

// EscapeLikePattern makes a user-supplied search term safe to embed in a
// LIKE/ILIKE pattern. Backslash must be escaped first, then the percent
// and underscore wildcards, so '%', '_' and '\' match literally.
func EscapeLikePattern(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)
	return term
}
