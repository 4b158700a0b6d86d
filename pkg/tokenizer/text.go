package tokenizer

import (
	"regexp"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/yaklabco/gospell/internal/logging"
	"github.com/yaklabco/gospell/pkg/splitter"
	"github.com/yaklabco/gospell/pkg/token"
)

// collector aggregates candidate words into per-word range sets. Sets rather
// than lists: a capture query that matches the same span twice is a query
// defect, and the duplicate must not surface to callers.
type collector struct {
	words map[string]map[token.TextRange]struct{}
}

func newCollector() *collector {
	return &collector{words: make(map[string]map[token.TextRange]struct{})}
}

func (c *collector) add(word string, r token.TextRange) {
	ranges, ok := c.words[word]
	if !ok {
		ranges = make(map[token.TextRange]struct{})
		c.words[word] = ranges
	}
	if _, dup := ranges[r]; dup {
		logging.Default().Debug("duplicate location for word, check capture query",
			logging.FieldWord, word,
			logging.FieldStartByte, r.StartByte,
			logging.FieldEndByte, r.EndByte)
		return
	}
	ranges[r] = struct{}{}
}

// result applies isKnown once per distinct word text and returns the unknown
// words with their sorted locations.
func (c *collector) result(isKnown func(string) bool) []token.WordLocation {
	var out []token.WordLocation
	for word, set := range c.words {
		if isKnown(word) {
			continue
		}
		ranges := make([]token.TextRange, 0, len(set))
		for r := range set {
			ranges = append(ranges, r)
		}
		token.SortLocations(ranges)
		out = append(out, token.WordLocation{Word: word, Locations: ranges})
	}
	token.SortWordLocations(out)
	return out
}

// collectText segments text on Unicode word boundaries and feeds each
// alphabetic token through the compound splitter. Offsets recorded into the
// collector are rebased by base, so grammar mode can reuse this for node
// substrings.
func collectText(text string, skips []skipRange, base int, c *collector) {
	state := -1
	offset := 0
	rest := text

	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		start := offset
		offset += len(word)

		if !hasAlphabetic(word) {
			continue
		}
		if covered(skips, start, offset) {
			continue
		}

		for _, ref := range splitter.Split(word) {
			abs := base + start + ref.StartByte
			c.add(ref.Word, token.TextRange{
				StartByte: abs,
				EndByte:   abs + len(ref.Word),
			})
		}
	}
}

// findLocationsText is the language-agnostic tokenizer: word-boundary
// segmentation over the raw text with the full skip-pattern set applied.
func findLocationsText(text string, isKnown func(string) bool, skipPatterns []*regexp.Regexp) []token.WordLocation {
	c := newCollector()
	collectText(text, buildSkipRanges(text, skipPatterns), 0, c)
	return c.result(isKnown)
}

func hasAlphabetic(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
