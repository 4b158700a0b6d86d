// Package checker ties configuration, dictionaries and tokenization together
// into the spell-checking entry point the CLI and editor integrations call.
package checker

import (
	"context"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/yaklabco/gospell/internal/logging"
	"github.com/yaklabco/gospell/pkg/config"
	"github.com/yaklabco/gospell/pkg/dictionary"
	"github.com/yaklabco/gospell/pkg/fsutil"
	"github.com/yaklabco/gospell/pkg/lang"
	"github.com/yaklabco/gospell/pkg/token"
	"github.com/yaklabco/gospell/pkg/tokenizer"
)

// maxSuggestions caps the suggestion list returned for a single word.
const maxSuggestions = 5

// Checker spell-checks text and files against the active configuration and
// dictionary set. It is safe for concurrent use.
type Checker struct {
	cfg     *config.Config
	manager *dictionary.Manager
}

// New creates a Checker over cfg, loading dictionaries through manager.
func New(cfg *config.Config, manager *dictionary.Manager) *Checker {
	return &Checker{cfg: cfg, manager: manager}
}

// Config returns the configuration the checker was built with.
func (c *Checker) Config() *config.Config {
	return c.cfg
}

// Check spell-checks text. langHint, when non-empty, forces the language
// (name, alias or extension); otherwise the language is detected from
// pathHint, falling back to plain text. A pathHint matching an ignore glob
// short-circuits to no findings.
func (c *Checker) Check(ctx context.Context, text, langHint, pathHint string) []token.WordLocation {
	if pathHint != "" && c.cfg.ShouldIgnorePath(pathHint) {
		logging.FromContext(ctx).Debug("path ignored by configuration", logging.FieldPath, pathHint)
		return nil
	}

	langType := c.resolveLanguage(ctx, langHint, pathHint)
	dicts := c.dictionaries(ctx, langType)

	isKnown := c.knownWordFunc(dicts)
	return tokenizer.FindLocations(ctx, text, langType, isKnown, c.cfg.IgnorePatterns())
}

// CheckFile reads path and spell-checks its contents, detecting the language
// from the file name. Binary or non-UTF-8 files return an error.
func (c *Checker) CheckFile(ctx context.Context, path string) ([]token.WordLocation, error) {
	if c.cfg.ShouldIgnorePath(path) {
		logging.FromContext(ctx).Debug("path ignored by configuration", logging.FieldPath, path)
		return nil, nil
	}

	text, err := fsutil.ReadTextFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return c.Check(ctx, text, "", path), nil
}

// Suggestions returns up to five replacement candidates for word, pooled
// across every active dictionary and ordered by each dictionary's own
// ranking.
func (c *Checker) Suggestions(ctx context.Context, word string) []string {
	dicts := c.dictionaries(ctx, lang.Text)

	seen := make(map[string]struct{})
	var out []string
	for _, d := range dicts {
		for _, s := range d.Suggest(word) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
			if len(out) == maxSuggestions {
				return out
			}
		}
	}
	return out
}

// IsKnown reports whether word would pass the checker without a finding.
func (c *Checker) IsKnown(ctx context.Context, word string) bool {
	dicts := c.dictionaries(ctx, lang.Text)
	return c.knownWordFunc(dicts)(word)
}

func (c *Checker) resolveLanguage(ctx context.Context, langHint, pathHint string) lang.Type {
	if langHint != "" {
		if t, ok := lang.FromHint(langHint); ok {
			return t
		}
		logging.FromContext(ctx).Warn("unknown language hint, detecting from path",
			logging.FieldLanguage, langHint)
	}
	if pathHint != "" {
		return lang.FromPath(pathHint)
	}
	return lang.Text
}

// dictionaries resolves the active dictionary set: builtins, the
// configuration's dictionaries and the language's extra dictionaries,
// deduplicated with load failures skipped.
func (c *Checker) dictionaries(ctx context.Context, langType lang.Type) []dictionary.Dictionary {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, id := range dictionary.BuiltinIDs {
		add(id)
	}
	for _, id := range c.cfg.DictionaryIDs() {
		add(id)
	}
	if spec, ok := lang.Lookup(langType); ok {
		for _, id := range spec.Dictionaries {
			add(id)
		}
	}

	return c.manager.GetAll(ctx, ids)
}

// knownWordFunc builds the word predicate. Flagged words are never known,
// even when a dictionary contains them. Words shorter than the configured
// minimum are always known, then the allow list, then the dictionaries.
func (c *Checker) knownWordFunc(dicts []dictionary.Dictionary) func(string) bool {
	minLen := c.cfg.MinWordLength()
	return func(word string) bool {
		if c.cfg.ShouldFlagWord(word) {
			return false
		}
		if utf8.RuneCountInString(word) < minLen {
			return true
		}
		if c.cfg.IsAllowedWord(word) {
			return true
		}
		for _, d := range dicts {
			if d.Check(word) {
				return true
			}
		}
		return false
	}
}

// Misspelled flattens locations into the distinct unknown words, sorted.
func Misspelled(locations []token.WordLocation) []string {
	words := make([]string, 0, len(locations))
	for _, loc := range locations {
		words = append(words, loc.Word)
	}
	sort.Strings(words)
	return words
}
