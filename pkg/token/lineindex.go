package token

import "sort"

// LineIndex converts absolute byte offsets into 1-based line and column
// numbers for a fixed piece of text. Build it once per document and reuse it
// for every range.
type LineIndex struct {
	// starts holds the byte offset of the first byte of each line.
	starts []int
}

// NewLineIndex indexes the line starts of text.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts}
}

// Position returns the 1-based line and column of the given byte offset.
// The column counts bytes from the line start, which matches how most
// editors and compilers report positions for ASCII-dominant source.
func (ix *LineIndex) Position(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}

	// The line containing offset is the last line start <= offset.
	i := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	}) - 1

	return i + 1, offset - ix.starts[i] + 1
}
