package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// maxSuggestions bounds the list returned by Wordlist.Suggest.
const maxSuggestions = 10

// maxSuggestDistance is the largest edit distance considered a plausible
// correction.
const maxSuggestDistance = 2

// Wordlist is a flat newline-delimited word dictionary. Lookup is
// case-insensitive; the original casing is retained for suggestions.
type Wordlist struct {
	words map[string]string // lowercase -> original casing
}

// NewWordlist builds a dictionary from a word slice.
func NewWordlist(words []string) *Wordlist {
	w := &Wordlist{words: make(map[string]string, len(words))}
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		w.words[strings.ToLower(word)] = word
	}
	return w
}

// ReadWordlist parses one word per line from r. Blank lines and lines
// starting with '#' are ignored.
func ReadWordlist(r io.Reader) (*Wordlist, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return NewWordlist(words), nil
}

// LoadWordlist reads a wordlist file from disk.
func LoadWordlist(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist %s: %w", path, err)
	}
	defer f.Close()

	w, err := ReadWordlist(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist %s: %w", path, err)
	}
	return w, nil
}

// Len returns the number of entries.
func (w *Wordlist) Len() int {
	return len(w.words)
}

// Check implements Dictionary.
func (w *Wordlist) Check(word string) bool {
	_, ok := w.words[strings.ToLower(word)]
	return ok
}

// Suggest implements Dictionary: entries within a small edit distance of
// word, closest first, ties broken alphabetically.
func (w *Wordlist) Suggest(word string) []string {
	lower := strings.ToLower(word)

	type candidate struct {
		word     string
		distance int
	}
	var candidates []candidate

	for entry, original := range w.words {
		// An entry much longer or shorter than the input cannot be
		// within the distance budget.
		if abs(len(entry)-len(lower)) > maxSuggestDistance {
			continue
		}
		d := levenshtein.Distance(lower, entry, nil)
		if d > 0 && d <= maxSuggestDistance {
			candidates = append(candidates, candidate{word: original, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].word < candidates[j].word
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
