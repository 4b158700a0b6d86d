// Package token defines the location types shared by the tokenizer and the
// spell-check pipeline. These types are pure data structures with no external
// dependencies.
package token

import "sort"

// TextRange is a half-open byte interval [StartByte, EndByte) into the
// original UTF-8 source buffer. Consumers that need other coordinate systems
// (line/column, UTF-16 offsets) convert on their side.
type TextRange struct {
	// StartByte is the inclusive start offset.
	StartByte int

	// EndByte is the exclusive end offset.
	EndByte int
}

// Len returns the byte length of the range.
func (r TextRange) Len() int {
	return r.EndByte - r.StartByte
}

// Offset returns a copy of the range shifted by delta bytes.
func (r TextRange) Offset(delta int) TextRange {
	return TextRange{StartByte: r.StartByte + delta, EndByte: r.EndByte + delta}
}

// WordLocation records every occurrence of one distinct word text within a
// document. Word identity is case-sensitive; "Wolrd" and "wolrd" produce two
// separate entries. Locations are deduplicated and pairwise distinct.
type WordLocation struct {
	// Word is the exact word text as it appears in the source.
	Word string

	// Locations is the complete set of occurrences of Word that were
	// reported as unknown, sorted by start offset.
	Locations []TextRange
}

// SortLocations orders a word's locations by start byte, then end byte.
// The tokenizer builds locations from an unordered map walk, so results are
// normalized before they reach callers.
func SortLocations(ranges []TextRange) {
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartByte != ranges[j].StartByte {
			return ranges[i].StartByte < ranges[j].StartByte
		}
		return ranges[i].EndByte < ranges[j].EndByte
	})
}

// SortWordLocations orders results by word text for deterministic output.
func SortWordLocations(locations []WordLocation) {
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Word < locations[j].Word
	})
}
