package hor

import (
	"github.com/dasnellings/horTools/monomer"
)

// candidate is a possible HOR: a repeating unit, where it starts in the
// array, and how many consecutive copies were found. Quality metrics are
// filled in by evaluate before curation.
type candidate struct {
	pattern   []int
	startIdx  int
	copies    int
	purity    float64
	maxGap    int
	meanGap   float64
	gapStdDev float64
}

// endIdx returns the half-open end of the candidate in monomer-index space.
func (c candidate) endIdx() int {
	return c.startIdx + c.copies*len(c.pattern)
}

// findCandidates enumerates every repeating pattern in the array with at
// least cfg.MinCopies consecutive copies and no gap over cfg.MaxGap between
// adjacent monomers. Matching is exact: a single mismatched family label ends
// extension, as does a gap violation. The result is heavily overlapping by
// design (a 3-mer repeated 60 times is also seen as a 6-mer repeated 30
// times, etc); the curator resolves this later by preferring the shortest
// unit. Arrays too short to hold a minimal run, or with non-monotonic
// positions, yield nil rather than an error so one bad array cannot fail a
// batch.
func findCandidates(ar monomer.Array, cfg Config) []candidate {
	fams := ar.Families()
	n := len(fams)
	if n < cfg.MinPatternLength*cfg.MinCopies || !ar.Valid() {
		return nil
	}

	var ans []candidate
	var c candidate
	maxLen := cfg.MaxPatternLength
	if n/cfg.MinCopies < maxLen {
		maxLen = n / cfg.MinCopies
	}

	for patLen := cfg.MinPatternLength; patLen <= maxLen; patLen++ {
		for start := 0; start+patLen*cfg.MinCopies <= n; start++ {
			pattern := fams[start : start+patLen]
			copies := 1
			pos := start + patLen
			for pos+patLen <= n {
				if !windowMatches(fams, pos, pattern) {
					break
				}
				// gap between the last monomer of the previous copy and the
				// first monomer of this copy terminates the run outright
				if ar.Monomers[pos].Start-ar.Monomers[pos-1].End > cfg.MaxGap {
					break
				}
				copies++
				pos += patLen
			}
			if copies < cfg.MinCopies {
				continue
			}
			c = candidate{pattern: pattern, startIdx: start, copies: copies}
			if evaluate(&c, ar, cfg) {
				ans = append(ans, c)
			}
		}
	}
	return ans
}

func windowMatches(fams []int, pos int, pattern []int) bool {
	for i := range pattern {
		if fams[pos+i] != pattern[i] {
			return false
		}
	}
	return true
}
