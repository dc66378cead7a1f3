// Package hor detects Higher-Order Repeats in classified monomer arrays:
// runs where a short cyclic pattern of family labels repeats consecutively
// with bounded physical gaps between copies.
package hor

import (
	"fmt"
	"strings"

	"github.com/dasnellings/horTools/monomer"
	"github.com/vertgenlab/gonomics/bed"
)

const (
	HomHor string = "homHOR" // repeating unit is a single family
	HetHor string = "hetHOR" // repeating unit mixes two or more families
)

// Hor is one curated higher-order repeat. Coordinates are genomic offsets in
// bp; StartIdx and EndIdx are the half-open monomer-index interval within the
// source array, kept for downstream deduplication and inspection.
type Hor struct {
	Chrom         string
	HorStart      int
	HorEnd        int
	Unit          string  // run-length encoded unit, e.g. "3F3" or "1F4-1F5-1F7"
	PatternLength int
	Copies        int
	TotalMonomers int
	Type          string  // HomHor or HetHor
	Purity        float64 // 0-1
	Score         float64 // 0-100
	MaxGap        int
	MeanGap       float64
	GapStdDev     float64
	Pattern       []int
	StartIdx      int
	EndIdx        int
}

// FormatUnit renders a pattern as a run-length encoded unit string.
// A homogeneous pattern collapses to a single element: (3,3,3) -> "3F3".
// Mixed patterns join their runs with dashes: (1,1,7) -> "2F1-1F7".
func FormatUnit(pattern []int) string {
	var elements []string
	currFam := pattern[0]
	currCount := 1
	for _, fam := range pattern[1:] {
		if fam == currFam {
			currCount++
			continue
		}
		elements = append(elements, fmt.Sprintf("%dF%d", currCount, currFam))
		currFam = fam
		currCount = 1
	}
	elements = append(elements, fmt.Sprintf("%dF%d", currCount, currFam))
	return strings.Join(elements, "-")
}

// horType classifies a pattern as HomHor if every label is identical,
// else HetHor.
func horType(pattern []int) string {
	for i := range pattern {
		if pattern[i] != pattern[0] {
			return HetHor
		}
	}
	return HomHor
}

// buildRecord maps a curated candidate back to genomic coordinates and
// assembles the output record.
func buildRecord(ar monomer.Array, c candidate) Hor {
	return Hor{
		Chrom:         ar.Chrom,
		HorStart:      ar.Monomers[c.startIdx].Start,
		HorEnd:        ar.Monomers[c.endIdx()-1].End,
		Unit:          FormatUnit(c.pattern),
		PatternLength: len(c.pattern),
		Copies:        c.copies,
		TotalMonomers: c.copies * len(c.pattern),
		Type:          horType(c.pattern),
		Purity:        c.purity,
		Score:         scoreHor(c.purity, c.copies, len(c.pattern)),
		MaxGap:        c.maxGap,
		MeanGap:       c.meanGap,
		GapStdDev:     c.gapStdDev,
		Pattern:       append([]int(nil), c.pattern...),
		StartIdx:      c.startIdx,
		EndIdx:        c.endIdx(),
	}
}

// ToBed projects a Hor onto a BED5 record for browser loading. Name carries
// the unit and copy number in the same NxUnit style the repeat tools use.
func ToBed(h Hor) bed.Bed {
	var ans bed.Bed
	ans.FieldsInitialized = 5
	ans.Chrom = h.Chrom
	ans.ChromStart = h.HorStart
	ans.ChromEnd = h.HorEnd
	ans.Name = fmt.Sprintf("%dx%s", h.Copies, h.Unit)
	ans.Score = int(h.Score)
	return ans
}
