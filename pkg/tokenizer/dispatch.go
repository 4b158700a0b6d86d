// Package tokenizer extracts candidate words and their byte locations from
// source text. Text mode segments raw text on Unicode word boundaries;
// grammar mode parses the text with a tree-sitter grammar first and
// tokenizes only the spell-checkable nodes its capture query selects.
//
// The pipeline is pure and synchronous: no call retains state beyond the
// compiled-query cache, so independent inputs may be processed concurrently.
package tokenizer

import (
	"context"
	"regexp"

	"github.com/yaklabco/gospell/pkg/lang"
	"github.com/yaklabco/gospell/pkg/token"
)

// FindLocations is the single entry point of the tokenization core.
//
// It returns one WordLocation per distinct word text for which isKnown
// returned false, with the complete set of byte ranges where that text
// occurs. Languages without a registered grammar are tokenized in text mode.
//
// skipPatterns are user-supplied patterns; the default set is always applied
// in addition. In grammar mode user patterns act at node granularity while
// the defaults act inside each captured node, so a default pattern never
// suppresses a whole comment just because a URL appears in it.
func FindLocations(
	ctx context.Context,
	text string,
	langType lang.Type,
	isKnown func(string) bool,
	skipPatterns []*regexp.Regexp,
) []token.WordLocation {
	if text == "" {
		return nil
	}

	if langType != lang.Text {
		if spec, ok := lang.Lookup(langType); ok && spec.HasGrammar() {
			return grammarOrTextFallback(ctx, text, spec, isKnown, skipPatterns)
		}
	}

	patterns := make([]*regexp.Regexp, 0, len(skipPatterns)+len(DefaultSkipPatterns()))
	patterns = append(patterns, DefaultSkipPatterns()...)
	patterns = append(patterns, skipPatterns...)
	return findLocationsText(text, isKnown, patterns)
}
