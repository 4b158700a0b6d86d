package lang

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// FromHint resolves an explicit language identifier (e.g. an editor language
// ID or a --language flag value). Matching is case-insensitive against the
// canonical type and each registered alias.
func FromHint(hint string) (Type, bool) {
	normalized := strings.ToLower(strings.TrimSpace(hint))
	if normalized == "" {
		return Text, false
	}
	for _, s := range registry {
		if string(s.Type) == normalized {
			return s.Type, true
		}
		for _, id := range s.IDs {
			if id == normalized {
				return s.Type, true
			}
		}
	}
	return Text, false
}

// FromPath resolves a language from a file path. The registry's extension
// table is consulted first; unknown extensions fall back to enry's filename
// detection. Paths that resolve to nothing are Text.
func FromPath(path string) Type {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		for _, s := range registry {
			for _, e := range s.Extensions {
				if e == ext {
					return s.Type
				}
			}
		}
	}

	// enry recognizes filenames without useful extensions (Rakefile,
	// Dockerfile, configure.ac). Only a filename-level match is trusted;
	// content classification needs bytes we do not have here.
	if name, ok := enry.GetLanguageByFilename(filepath.Base(path)); ok {
		if t, matched := FromHint(name); matched {
			return t
		}
	}
	return Text
}
