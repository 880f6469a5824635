package utils

import "strings"

// MatchesSearch reports whether any field contains query, ignoring case.
// query is expected to be lowercased already.
func MatchesSearch(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
