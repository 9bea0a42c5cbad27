package catalog

import (
	"fmt"
	"strings"

	models "io.winapps.florafauna/internal/models/entry"
)

// Category selects entries by type. CategoryAll disables the predicate.
type Category string

const CategoryAll Category = "all"

// ParseCategory accepts "all", an empty string, or any entry type
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(CategoryAll) {
		return CategoryAll, nil
	}
	if !models.EntryType(s).Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return Category(s), nil
}

// Filter returns the entries of cache that pass both the category and the
// search predicate, in cache order. The result never aliases cache.
func Filter(cache []models.Entry, category Category, query string) []models.Entry {
	needle := strings.ToLower(query)
	out := make([]models.Entry, 0, len(cache))
	for _, e := range cache {
		if !matchesCategory(e, category) {
			continue
		}
		if !matchesQuery(e, needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesCategory(e models.Entry, category Category) bool {
	if category == CategoryAll || category == "" {
		return true
	}
	return e.Type == models.EntryType(category)
}

// matchesQuery expects needle already lowercased. Empty fields never match.
func matchesQuery(e models.Entry, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{e.Title, e.Content, e.Location.Name} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
