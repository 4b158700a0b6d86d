// Package dictionary provides word lookup and suggestion backends for the
// spell checker. Dictionaries are keyed by ID ("en_us", "software_terms");
// the Manager caches loaded dictionaries and guarantees at most one load per
// ID even under concurrent requests.
package dictionary

// Dictionary is the lookup capability the checker consumes. A word is known
// to the checker when any active dictionary accepts it.
type Dictionary interface {
	// Check reports whether word is in the dictionary. Lookup is
	// case-insensitive.
	Check(word string) bool

	// Suggest returns likely corrections for a misspelled word, best
	// first. Callers cap the list for presentation.
	Suggest(word string) []string
}
