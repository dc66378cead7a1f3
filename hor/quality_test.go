package hor

import (
	"math"
	"testing"

	"github.com/dasnellings/horTools/monomer"
)

func TestGapMetrics(t *testing.T) {
	ar := monomer.Array{Chrom: "chr", Monomers: []monomer.Monomer{
		{Start: 0, End: 100},
		{Start: 110, End: 210},
		{Start: 220, End: 320},
	}}
	maxGap, meanGap, gapStdDev := gapMetrics(ar, 0, 3)
	if maxGap != 10 || meanGap != 10 || gapStdDev != 0 {
		t.Error("problem with uniform gap metrics", maxGap, meanGap, gapStdDev)
	}

	ar.Monomers[2].Start = 240 // gaps become 10 and 30
	maxGap, meanGap, gapStdDev = gapMetrics(ar, 0, 3)
	if maxGap != 30 || meanGap != 20 || gapStdDev != 10 {
		t.Error("problem with mixed gap metrics", maxGap, meanGap, gapStdDev)
	}

	maxGap, meanGap, gapStdDev = gapMetrics(ar, 0, 1)
	if maxGap != 0 || meanGap != 0 || gapStdDev != 0 {
		t.Error("problem with single-monomer gap metrics", maxGap, meanGap, gapStdDev)
	}
}

func TestPatternPurity(t *testing.T) {
	ar := uniformArray("chr", []int{4, 5, 7, 4, 5, 7, 4, 5, 7}, 178)
	if p := patternPurity(ar, []int{4, 5, 7}, 0, 3); p != 1.0 {
		t.Error("problem with purity on a perfect run", p)
	}
	ar.Monomers[4].Family = 9
	if p := patternPurity(ar, []int{4, 5, 7}, 0, 3); math.Abs(p-8.0/9.0) > 1e-12 {
		t.Error("problem with purity on an imperfect run", p)
	}
}

func TestScoreHor(t *testing.T) {
	// 3 copies of a 3-mer: 50 + (10*log10(3)+15) + 22
	want := 50 + 10*math.Log10(3) + 15 + 22
	if got := scoreHor(1.0, 3, 3); math.Abs(got-want) > 1e-9 {
		t.Error("problem with score formula", got, want)
	}
	// copy score caps at 30
	if got := scoreHor(1.0, 1000, 3); got != 50+30+22 {
		t.Error("problem with copy score cap", got)
	}
	// simplicity score floors at 5
	if got := scoreHor(1.0, 1000, 20); got != 50+30+5 {
		t.Error("problem with simplicity score floor", got)
	}
	// more copies never lowers the score
	if scoreHor(1.0, 10, 3) <= scoreHor(1.0, 3, 3) {
		t.Error("problem with copy score monotonicity")
	}
	// shorter patterns never score lower
	if scoreHor(1.0, 10, 3) <= scoreHor(1.0, 10, 9) {
		t.Error("problem with simplicity preference")
	}
}

func TestEvaluateRejectsGapViolation(t *testing.T) {
	cfg := DefaultConfig()
	ar := uniformArray("chr", repeatFams([]int{3}, 9), 178)
	// open a gap inside the span without breaking label order
	for i := 4; i < 9; i++ {
		ar.Monomers[i].Start += 10000
		ar.Monomers[i].End += 10000
	}
	c := candidate{pattern: []int{3, 3, 3}, startIdx: 0, copies: 3}
	if evaluate(&c, ar, cfg) {
		t.Error("problem with gap rejection, candidate spanning a large gap was accepted")
	}
	if c.maxGap != 10000 {
		t.Error("problem with max gap computation", c.maxGap)
	}
}
