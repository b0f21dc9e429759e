package repository

import "strings"

// likePattern builds the argument for the LOWER(name) LIKE ? predicate
// used by venue and artist search. An empty term yields "%%", which
// matches every row.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
