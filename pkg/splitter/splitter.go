// Package splitter decomposes compound identifiers into their constituent
// words. It understands camelCase, PascalCase, snake_case, dotted and
// colon-qualified names, and reports the byte offset of every sub-word so
// callers can map results back onto the original source buffer.
package splitter

// charClass classifies a rune for boundary detection. Only ASCII digits and
// uppercase letters participate in splitting; any other letter (including all
// non-ASCII letters) is treated as lowercase so multi-byte words survive
// intact.
type charClass int

const (
	classLower charClass = iota
	classUpper
	classDigit
	classUnderscore
	classPeriod
	classColon
)

// SplitRef is one sub-word of a compound token. StartByte is relative to the
// start of the input token, not the document; callers add the token's
// absolute offset.
type SplitRef struct {
	Word      string
	StartByte int
}

func classify(r rune) charClass {
	switch {
	case r == '_':
		return classUnderscore
	case r == '.':
		return classPeriod
	case r == ':':
		return classColon
	case r >= 'A' && r <= 'Z':
		return classUpper
	case r >= '0' && r <= '9':
		return classDigit
	default:
		return classLower
	}
}

func isSeparator(c charClass) bool {
	return c == classUnderscore || c == classPeriod || c == classColon
}

// Split breaks a single contiguous token into sub-words.
//
// A boundary is emitted when:
//   - a lowercase rune is followed by an uppercase rune (fooBar -> foo|Bar)
//   - an uppercase run is followed by an uppercase rune whose successor is
//     an ASCII lowercase letter (XMLHttp -> XML|Http)
//   - the class changes between digit and non-digit in either direction
//   - the current rune is a separator (underscore, period, colon)
//
// Separators are never part of any sub-word. Sub-words consisting entirely
// of digits are discarded. Empty output means the token held no checkable
// word at all.
func Split(s string) []SplitRef {
	if s == "" {
		return nil
	}

	var result []SplitRef
	wordStart := 0
	prev := charClass(-1)
	hasPrev := false

	runes := []rune(s)
	byteAt := make([]int, 0, len(runes)+1)
	for i := range s {
		byteAt = append(byteAt, i)
	}
	byteAt = append(byteAt, len(s))

	emit := func(start, end int) {
		if end <= start {
			return
		}
		word := s[start:end]
		if allSeparators(word) || allDigits(word) {
			return
		}
		result = append(result, SplitRef{Word: word, StartByte: start})
	}

	for i, r := range runes {
		pos := byteAt[i]
		class := classify(r)

		split := false
		switch {
		case !hasPrev:
		case prev == classLower && class == classUpper:
			split = true
		case prev == classUpper && class == classUpper:
			// One-rune lookahead: close an acronym run right before its
			// final capital when a lowercase letter follows.
			if i+1 < len(runes) {
				next := runes[i+1]
				split = next >= 'a' && next <= 'z'
			}
		case prev != classDigit && class == classDigit,
			prev == classDigit && class != classDigit:
			split = true
		}
		if !split {
			split = isSeparator(class)
		}

		if split && pos > wordStart {
			emit(wordStart, pos)
			wordStart = pos
		}

		// Separators never start a word; skip past them.
		if isSeparator(class) {
			wordStart = byteAt[i+1]
		}

		prev = class
		hasPrev = true
	}

	emit(wordStart, len(s))
	return result
}

func allSeparators(s string) bool {
	for _, r := range s {
		if r != '_' && r != '.' && r != ':' {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
