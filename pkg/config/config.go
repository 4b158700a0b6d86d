// Package config defines the spell-check configuration model and the
// capability surface the checker consumes: dictionary selection, allow and
// flag lists, skip patterns, and ignored paths.
//
// Word lookups are case-insensitive; list entries are lowercased on load and
// arguments are lowercased on query.
package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/gospell/internal/logging"
)

// DefaultMinWordLength is the minimum word length checked when the
// configuration does not specify one. Shorter words are always treated as
// known.
const DefaultMinWordLength = 3

// Settings is the YAML-mapped shape of a gospell configuration file.
type Settings struct {
	// Dictionaries are dictionary IDs activated for every file.
	Dictionaries []string `yaml:"dictionaries,omitempty"`

	// Words are allow-listed words that are never reported.
	Words []string `yaml:"words,omitempty"`

	// FlagWords are always reported, even when a dictionary accepts them.
	FlagWords []string `yaml:"flag_words,omitempty"`

	// IgnorePatterns are user regex patterns whose matches are excluded
	// from checking. Invalid patterns are dropped with a warning.
	IgnorePatterns []string `yaml:"ignore_patterns,omitempty"`

	// IgnorePaths are doublestar globs; matching files are not checked.
	IgnorePaths []string `yaml:"ignore_paths,omitempty"`

	// MinWordLength is the shortest word length that is checked.
	MinWordLength int `yaml:"min_word_length,omitempty"`

	// UseGlobal controls whether user and system level configuration
	// participates in resolution. Unset means true; a project sets it to
	// false to keep its word lists self-contained.
	UseGlobal *bool `yaml:"use_global,omitempty"`
}

// UseGlobalConfig reports whether user and system configs apply.
func (s Settings) UseGlobalConfig() bool {
	return s.UseGlobal == nil || *s.UseGlobal
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{MinWordLength: DefaultMinWordLength}
}

// Config is a resolved configuration with normalized word lists and compiled
// ignore patterns. It is safe for concurrent readers; mutation goes through
// AddWord/AddFlagWord which take the interior lock.
type Config struct {
	mu sync.RWMutex

	settings Settings

	// path is where runtime additions are persisted; empty means the
	// configuration is in-memory only.
	path string

	allowWords map[string]struct{}
	flagWords  map[string]struct{}
	patterns   []*regexp.Regexp
}

// New builds a Config from settings. The path, if non-empty, is the file
// runtime word additions are saved back to.
func New(settings Settings, path string) *Config {
	c := &Config{path: path}
	c.apply(settings)
	return c
}

// Default returns an in-memory Config with default settings.
func Default() *Config {
	return New(DefaultSettings(), "")
}

// apply normalizes and indexes settings. Callers must hold mu when the
// Config is shared.
func (c *Config) apply(settings Settings) {
	c.settings = settings
	c.allowWords = lowercaseSet(settings.Words)
	c.flagWords = lowercaseSet(settings.FlagWords)
	c.patterns = compilePatterns(settings.IgnorePatterns)
}

func lowercaseSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// compilePatterns compiles user regex patterns, dropping invalid ones.
// A malformed pattern must never abort a check.
func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			logging.Default().Warn("dropping invalid ignore pattern",
				logging.FieldPattern, p,
				logging.FieldError, err)
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// Settings returns a copy of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Path returns the file this configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// DictionaryIDs returns the configured dictionary IDs.
func (c *Config) DictionaryIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.settings.Dictionaries...)
}

// IsAllowedWord reports whether word is allow-listed. Case-insensitive.
func (c *Config) IsAllowedWord(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.allowWords[strings.ToLower(word)]
	return ok
}

// ShouldFlagWord reports whether word is flag-listed. Flagged words are
// reported even when a dictionary accepts them. Case-insensitive.
func (c *Config) ShouldFlagWord(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.flagWords[strings.ToLower(word)]
	return ok
}

// MinWordLength returns the shortest word length that is checked.
func (c *Config) MinWordLength() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.settings.MinWordLength <= 0 {
		return DefaultMinWordLength
	}
	return c.settings.MinWordLength
}

// IgnorePatterns returns the compiled user skip patterns.
func (c *Config) IgnorePatterns() []*regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*regexp.Regexp(nil), c.patterns...)
}

// ShouldIgnorePath reports whether the given path matches any ignore glob.
// Both the full slash-normalized path and its base name are tried, so
// "*.lock" matches nested lockfiles.
func (c *Config) ShouldIgnorePath(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	normalized := filepath.ToSlash(path)
	base := filepath.Base(normalized)
	for _, glob := range c.settings.IgnorePaths {
		if ok, err := doublestar.Match(glob, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(glob, base); err == nil && ok {
			return true
		}
	}
	return false
}

// AddWord adds word to the allow list and persists the change when the
// configuration is file-backed. Returns true if the word was new.
func (c *Config) AddWord(word string) (bool, error) {
	return c.addToList(word, func(s *Settings, w string) bool {
		for _, existing := range s.Words {
			if strings.EqualFold(existing, w) {
				return false
			}
		}
		s.Words = append(s.Words, w)
		return true
	})
}

// AddFlagWord adds word to the flag list and persists the change when the
// configuration is file-backed. Returns true if the word was new.
func (c *Config) AddFlagWord(word string) (bool, error) {
	return c.addToList(word, func(s *Settings, w string) bool {
		for _, existing := range s.FlagWords {
			if strings.EqualFold(existing, w) {
				return false
			}
		}
		s.FlagWords = append(s.FlagWords, w)
		return true
	})
}

func (c *Config) addToList(word string, insert func(*Settings, string) bool) (bool, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false, nil
	}

	c.mu.Lock()
	settings := c.settings
	added := insert(&settings, word)
	if added {
		c.apply(settings)
	}
	path := c.path
	c.mu.Unlock()

	if !added || path == "" {
		return added, nil
	}
	return added, Save(path, settings)
}
