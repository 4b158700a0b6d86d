package tokenizer

import (
	"regexp"
	"sort"
)

// skipRange is a half-open byte interval excluded from tokenization.
type skipRange struct {
	startByte int
	endByte   int
}

// contains reports whether pos falls inside the range.
func (r skipRange) contains(pos int) bool {
	return pos >= r.startByte && pos < r.endByte
}

// buildSkipRanges finds every match of every pattern in text and returns the
// matches as a sorted, merged list. Overlapping or adjacent ranges collapse
// into one.
func buildSkipRanges(text string, patterns []*regexp.Regexp) []skipRange {
	var ranges []skipRange
	for _, pattern := range patterns {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			ranges = append(ranges, skipRange{startByte: m[0], endByte: m[1]})
		}
	}
	if len(ranges) == 0 {
		return nil
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].startByte < ranges[j].startByte
	})

	merged := ranges[:1]
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.startByte <= last.endByte {
			if r.endByte > last.endByte {
				last.endByte = r.endByte
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// covered reports whether the candidate span [start, end) must be excluded:
// it starts inside a skip range, ends inside one, or fully contains one.
func covered(ranges []skipRange, start, end int) bool {
	for _, r := range ranges {
		if r.contains(start) || (end > start && r.contains(end-1)) {
			return true
		}
		if start < r.startByte && end > r.endByte {
			return true
		}
	}
	return false
}
