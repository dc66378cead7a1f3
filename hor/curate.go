package hor

import (
	"math"

	"golang.org/x/exp/slices"
)

// curateOverlaps resolves the scanner's heavily overlapping candidate set
// into a non-overlapping cover of the array in monomer-index space.
// Candidates are visited in start order. A candidate landing on uncovered
// ground is accepted outright. A candidate overlapping existing entries is
// compared against the best of them under the key
// (-purity, patternLength, -copies) and replaces every entry it overlaps only
// when it is a clear improvement: purity better by more than 0.05, or purity
// within 0.05 and a strictly shorter unit, or the same unit length with
// strictly more copies. The shortest valid unit wins because a 60-copy run of
// a 3-mer and a "20-copy run of a 9-mer" are the same repeat and must not be
// reported twice.
func curateOverlaps(cands []candidate) []candidate {
	if len(cands) == 0 {
		return nil
	}
	sorted := slices.Clone(cands)
	slices.SortStableFunc(sorted, func(a, b candidate) int {
		return a.startIdx - b.startIdx
	})

	var curated []candidate
	covered := make(map[int]bool)

	for _, c := range sorted {
		if !anyCovered(covered, c.startIdx, c.endIdx()) {
			curated = append(curated, c)
			markCovered(covered, c.startIdx, c.endIdx(), true)
			continue
		}

		overlapping := overlappingIndices(curated, c)
		best := curated[overlapping[0]]
		for _, i := range overlapping[1:] {
			if stronger(curated[i], best) {
				best = curated[i]
			}
		}
		if !improvesOn(c, best) {
			continue
		}

		// evict every overlapped entry, un-marking its span, then claim ours
		for i := len(overlapping) - 1; i >= 0; i-- {
			old := curated[overlapping[i]]
			markCovered(covered, old.startIdx, old.endIdx(), false)
			curated = append(curated[:overlapping[i]], curated[overlapping[i]+1:]...)
		}
		curated = append(curated, c)
		markCovered(covered, c.startIdx, c.endIdx(), true)
	}
	return curated
}

func anyCovered(covered map[int]bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func markCovered(covered map[int]bool, start, end int, val bool) {
	for i := start; i < end; i++ {
		if val {
			covered[i] = true
		} else {
			delete(covered, i)
		}
	}
}

// overlappingIndices returns the positions of every curated entry whose
// index interval intersects c, in curated order.
func overlappingIndices(curated []candidate, c candidate) []int {
	var ans []int
	for i := range curated {
		if curated[i].startIdx < c.endIdx() && c.startIdx < curated[i].endIdx() {
			ans = append(ans, i)
		}
	}
	return ans
}

// stronger reports whether a precedes b under the curation ordering key
// (-purity, patternLength, -copies).
func stronger(a, b candidate) bool {
	if a.purity != b.purity {
		return a.purity > b.purity
	}
	if len(a.pattern) != len(b.pattern) {
		return len(a.pattern) < len(b.pattern)
	}
	return a.copies > b.copies
}

// improvesOn reports whether candidate c is a significant enough improvement
// over the incumbent to justify eviction.
func improvesOn(c, incumbent candidate) bool {
	if c.purity > incumbent.purity+0.05 {
		return true
	}
	if math.Abs(c.purity-incumbent.purity) < 0.05 {
		if len(c.pattern) < len(incumbent.pattern) {
			return true
		}
		if len(c.pattern) == len(incumbent.pattern) && c.copies > incumbent.copies {
			return true
		}
	}
	return false
}
