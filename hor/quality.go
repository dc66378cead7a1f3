package hor

import (
	"math"

	"github.com/dasnellings/horTools/monomer"
	"gonum.org/v1/gonum/stat"
)

// evaluate fills in purity and gap metrics for a candidate and reports
// whether it passes the quality gates (purity >= MinPurity and no gap inside
// the span over MaxGap). With exact-match extension in findCandidates, purity
// always comes out 1.0; it is computed anyway so an inexact extension mode
// would get discriminating values without touching the curator.
func evaluate(c *candidate, ar monomer.Array, cfg Config) bool {
	c.purity = patternPurity(ar, c.pattern, c.startIdx, c.copies)
	c.maxGap, c.meanGap, c.gapStdDev = gapMetrics(ar, c.startIdx, c.endIdx())
	return c.purity >= cfg.MinPurity && c.maxGap <= cfg.MaxGap
}

// patternPurity returns the fraction of monomers in the accepted span whose
// family matches the corresponding pattern element.
func patternPurity(ar monomer.Array, pattern []int, startIdx, copies int) float64 {
	patLen := len(pattern)
	total := copies * patLen
	if total == 0 {
		return 0
	}
	var matches int
	for copy := 0; copy < copies; copy++ {
		copyStart := startIdx + copy*patLen
		for i := range pattern {
			if ar.Monomers[copyStart+i].Family == pattern[i] {
				matches++
			}
		}
	}
	return float64(matches) / float64(total)
}

// gapMetrics computes max, mean, and standard deviation of the gap between
// every adjacent monomer pair in [startIdx, endIdx), not just copy
// boundaries.
func gapMetrics(ar monomer.Array, startIdx, endIdx int) (maxGap int, meanGap, gapStdDev float64) {
	if endIdx-startIdx < 2 {
		return 0, 0, 0
	}
	gaps := make([]float64, 0, endIdx-startIdx-1)
	for i := startIdx; i < endIdx-1; i++ {
		gap := ar.Monomers[i+1].Start - ar.Monomers[i].End
		if gap > maxGap {
			maxGap = gap
		}
		gaps = append(gaps, float64(gap))
	}
	meanGap = stat.Mean(gaps, nil)
	gapStdDev = stat.PopStdDev(gaps, nil)
	return maxGap, meanGap, gapStdDev
}

// scoreHor combines purity, copy number, and unit simplicity into a 0-100
// quality score. Copy number contributes on a logarithmic curve (3 copies
// ~20pts, 100+ copies capped at 30pts); shorter units score higher.
func scoreHor(purity float64, copies, patternLength int) float64 {
	purityScore := purity * 50
	copyScore := math.Min(30, 10*math.Log10(float64(copies))+15)
	simplicityScore := math.Max(5, 25-float64(patternLength))
	return purityScore + copyScore + simplicityScore
}
