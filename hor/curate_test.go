package hor

import (
	"testing"
)

// A 9-mer reading of a span that is really a repeated 3-mer must lose to the
// 3-mer, regardless of input order.
func TestCuratePrefersShortestUnit(t *testing.T) {
	nineMer := candidate{pattern: repeatFams([]int{3}, 9), startIdx: 0, copies: 118, purity: 1.0}
	threeMer := candidate{pattern: []int{3, 3, 3}, startIdx: 0, copies: 356, purity: 1.0}

	curated := curateOverlaps([]candidate{nineMer, threeMer})
	if len(curated) != 1 {
		t.Fatal("problem with overlap resolution, expected 1 survivor, got", len(curated))
	}
	if len(curated[0].pattern) != 3 || curated[0].copies != 356 {
		t.Error("problem with length preference, kept", len(curated[0].pattern), curated[0].copies)
	}

	curated = curateOverlaps([]candidate{threeMer, nineMer})
	if len(curated) != 1 || len(curated[0].pattern) != 3 {
		t.Error("problem with length preference under reversed input order")
	}
}

// Equal pattern lengths resolve on copy count.
func TestCuratePrefersMoreCopies(t *testing.T) {
	small := candidate{pattern: []int{3, 3, 3}, startIdx: 1, copies: 5, purity: 1.0}
	big := candidate{pattern: []int{3, 3, 3}, startIdx: 0, copies: 10, purity: 1.0}

	curated := curateOverlaps([]candidate{small, big})
	if len(curated) != 1 || curated[0].copies != 10 {
		t.Error("problem with copy count preference")
	}
}

// Higher purity dominates pattern length when the difference exceeds 0.05.
func TestCuratePurityDominates(t *testing.T) {
	pureLong := candidate{pattern: repeatFams([]int{4}, 6), startIdx: 0, copies: 5, purity: 1.0}
	impureShort := candidate{pattern: []int{4, 4, 4}, startIdx: 0, copies: 10, purity: 0.9}

	curated := curateOverlaps([]candidate{impureShort, pureLong})
	if len(curated) != 1 || len(curated[0].pattern) != 6 {
		t.Error("problem with purity dominance, kept pattern length", len(curated[0].pattern))
	}
}

// Non-overlapping candidates all survive and cover disjoint intervals.
func TestCurateDisjoint(t *testing.T) {
	a := candidate{pattern: []int{3, 3, 3}, startIdx: 0, copies: 3, purity: 1.0}
	b := candidate{pattern: []int{4, 5, 7}, startIdx: 9, copies: 4, purity: 1.0}
	c := candidate{pattern: []int{3, 3, 3}, startIdx: 21, copies: 3, purity: 1.0}

	curated := curateOverlaps([]candidate{c, a, b})
	if len(curated) != 3 {
		t.Fatal("problem with disjoint candidates, expected all to survive, got", len(curated))
	}
	for i := range curated {
		for j := i + 1; j < len(curated); j++ {
			if curated[i].startIdx < curated[j].endIdx() && curated[j].startIdx < curated[i].endIdx() {
				t.Error("problem with overlap in curated set", i, j)
			}
		}
	}
}

// A winning replacement un-marks the evicted interval so later candidates
// are judged against the replacement, not the evicted entry.
func TestCurateReplacement(t *testing.T) {
	// left covers [0,12), wide covers [0,24), right covers [12,24)
	left := candidate{pattern: repeatFams([]int{3}, 4), startIdx: 0, copies: 3, purity: 1.0}
	wide := candidate{pattern: []int{3, 3, 3}, startIdx: 0, copies: 8, purity: 1.0}
	right := candidate{pattern: repeatFams([]int{3}, 4), startIdx: 12, copies: 3, purity: 1.0}

	curated := curateOverlaps([]candidate{left, right, wide})
	if len(curated) != 1 {
		t.Fatal("problem with replacement, expected 1 survivor, got", len(curated))
	}
	if len(curated[0].pattern) != 3 || curated[0].copies != 8 {
		t.Error("problem with replacement survivor", len(curated[0].pattern), curated[0].copies)
	}
}

func TestCurateEmpty(t *testing.T) {
	if curated := curateOverlaps(nil); curated != nil {
		t.Error("problem with empty candidate set")
	}
}
