package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gospell/pkg/config"
)

// envVarPrefix is the prefix for all gospell environment variables.
const envVarPrefix = "GOSPELL_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeInt envFieldType = iota
	envTypeSlice
)

// envMapping defines environment variable to settings field mappings.
type envMapping struct {
	apply func(*config.Settings, []string)
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to settings
// fields. Slice values are comma-separated and extend the merged lists.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"DICTIONARIES": {
		typ:   envTypeSlice,
		apply: func(s *config.Settings, v []string) { s.Dictionaries = appendUnique(s.Dictionaries, v) },
	},
	"WORDS": {
		typ:   envTypeSlice,
		apply: func(s *config.Settings, v []string) { s.Words = appendUnique(s.Words, v) },
	},
	"FLAG_WORDS": {
		typ:   envTypeSlice,
		apply: func(s *config.Settings, v []string) { s.FlagWords = appendUnique(s.FlagWords, v) },
	},
	"IGNORE_PATTERNS": {
		typ:   envTypeSlice,
		apply: func(s *config.Settings, v []string) { s.IgnorePatterns = appendUnique(s.IgnorePatterns, v) },
	},
	"IGNORE_PATHS": {
		typ:   envTypeSlice,
		apply: func(s *config.Settings, v []string) { s.IgnorePaths = appendUnique(s.IgnorePaths, v) },
	},
	"MIN_WORD_LENGTH": {
		typ:   envTypeInt,
		apply: func(s *config.Settings, v []string) { s.MinWordLength, _ = strconv.Atoi(v[0]) },
	},
}

// LoadFromEnv applies environment variable overrides to the settings.
// Environment variables are prefixed with GOSPELL_ (e.g., GOSPELL_WORDS).
func LoadFromEnv(settings *config.Settings) error {
	if settings == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		switch mapping.typ {
		case envTypeInt:
			if _, err := strconv.Atoi(value); err != nil {
				return fmt.Errorf("%s: invalid integer %q", envVar, value)
			}
			mapping.apply(settings, []string{value})
		case envTypeSlice:
			mapping.apply(settings, splitEnvList(value))
		}
	}

	return nil
}

// splitEnvList splits a comma-separated environment value, trimming
// whitespace and dropping empty entries.
func splitEnvList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
