package dictionary

import (
	"bytes"
	"embed"
	"fmt"
)

//go:embed data/*.txt
var builtinFS embed.FS

// BuiltinIDs are dictionary IDs served from the embedded data, always
// available without network or disk access.
//
//nolint:gochecknoglobals // Read-only list of embedded dictionaries.
var BuiltinIDs = []string{"gospell", "software_terms", "computing_acronyms"}

// IsBuiltin reports whether id resolves to an embedded dictionary.
func IsBuiltin(id string) bool {
	for _, builtin := range BuiltinIDs {
		if builtin == id {
			return true
		}
	}
	return false
}

func loadBuiltin(id string) (*Wordlist, error) {
	data, err := builtinFS.ReadFile("data/" + id + ".txt")
	if err != nil {
		return nil, fmt.Errorf("builtin dictionary %s: %w", id, err)
	}
	return ReadWordlist(bytes.NewReader(data))
}
