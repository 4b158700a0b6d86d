package tokenizer

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/gospell/internal/logging"
	"github.com/yaklabco/gospell/pkg/lang"
	"github.com/yaklabco/gospell/pkg/token"
)

// queryCache holds compiled capture queries per language. Queries are
// read-only after compilation and safe to share; cursors are per call.
//
//nolint:gochecknoglobals // Compiled-query cache, an optimization only.
var queryCache sync.Map // lang.Type -> *sitter.Query

func compiledQuery(spec *lang.Spec) (*sitter.Query, error) {
	if cached, ok := queryCache.Load(spec.Type); ok {
		return cached.(*sitter.Query), nil
	}

	source, err := spec.Query()
	if err != nil {
		return nil, err
	}
	query, err := sitter.NewQuery(source, spec.Grammar())
	if err != nil {
		return nil, fmt.Errorf("compile capture query for %s: %w", spec.Type, err)
	}
	queryCache.Store(spec.Type, query)
	return query, nil
}

// findLocationsGrammar parses text with the language's grammar and tokenizes
// only the captured nodes (comments, strings, identifiers).
//
// User-supplied skip patterns apply at node granularity: a captured node that
// intersects a user pattern match is discarded whole, so a pattern can
// suppress an entire annotated line. Within a surviving node only the default
// pattern set applies, avoiding double application.
func findLocationsGrammar(
	ctx context.Context,
	text string,
	spec *lang.Spec,
	isKnown func(string) bool,
	userPatterns []*regexp.Regexp,
) ([]token.WordLocation, error) {
	source := []byte(text)

	parser := sitter.NewParser()
	parser.SetLanguage(spec.Grammar())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s source: %w", spec.Type, err)
	}
	defer tree.Close()

	query, err := compiledQuery(spec)
	if err != nil {
		return nil, err
	}

	userSkips := buildSkipRanges(text, userPatterns)
	defaults := DefaultSkipPatterns()
	c := newCollector()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, tree.RootNode())

	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			node := capture.Node
			start := int(node.StartByte())
			end := int(node.EndByte())
			if start >= end || end > len(source) {
				continue
			}
			if covered(userSkips, start, end) {
				continue
			}
			nodeText := text[start:end]
			collectText(nodeText, buildSkipRanges(nodeText, defaults), start, c)
		}
	}

	return c.result(isKnown), nil
}

// grammarOrTextFallback runs grammar-mode tokenization and degrades to text
// mode when the grammar or query cannot be used. Falling back is deliberate:
// a missing or broken query should produce noisier results, not a failed
// check.
func grammarOrTextFallback(
	ctx context.Context,
	text string,
	spec *lang.Spec,
	isKnown func(string) bool,
	skipPatterns []*regexp.Regexp,
) []token.WordLocation {
	locations, err := findLocationsGrammar(ctx, text, spec, isKnown, skipPatterns)
	if err != nil {
		logging.Default().Warn("grammar tokenization failed, falling back to text mode",
			logging.FieldLanguage, string(spec.Type),
			logging.FieldError, err)
		patterns := append(append([]*regexp.Regexp{}, DefaultSkipPatterns()...), skipPatterns...)
		return findLocationsText(text, isKnown, patterns)
	}
	return locations
}
