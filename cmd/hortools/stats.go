package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/horTools/hor"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

func statsUsage(statsFlags *flag.FlagSet) {
	fmt.Print(
		"stats - summarize a table of detected higher-order repeats\n\n" +
			"Usage:\n" +
			"  hortools stats -i hors.tsv\n\n" +
			"Options:\n")
	statsFlags.PrintDefaults()
}

func runStats(args []string) {
	var err error
	statsFlags := flag.NewFlagSet("stats", flag.ExitOnError)
	input := statsFlags.String("i", "", "Input HOR table from 'hortools detect'.")

	err = statsFlags.Parse(args)
	exception.PanicOnErr(err)
	statsFlags.Usage = func() { statsUsage(statsFlags) }

	if *input == "" {
		statsFlags.Usage()
		errExit("\nERROR: must specify a HOR table (-i)")
	}

	stats(*input)
}

func stats(input string) {
	var copies, scores []float64
	var hom, het, totalMonomers, maxUnitLen int
	var unitLenCounts []float64

	for h := range hor.GoReadToChan(input) {
		copies = append(copies, float64(h.Copies))
		scores = append(scores, float64(h.Score))
		totalMonomers += h.TotalMonomers
		if h.Type == hor.HomHor {
			hom++
		} else {
			het++
		}
		if h.PatternLength > maxUnitLen {
			maxUnitLen = h.PatternLength
			unitLenCounts = append(unitLenCounts, make([]float64, maxUnitLen+1-len(unitLenCounts))...)
		}
		unitLenCounts[h.PatternLength]++
	}

	if len(copies) == 0 {
		fmt.Println("no HORs in input")
		return
	}

	slices.Sort(copies)
	slices.Sort(scores)

	fmt.Printf("HORs:\t\t%d (%d homHOR, %d hetHOR)\n", hom+het, hom, het)
	fmt.Printf("Monomers in HORs:\t%d\n", totalMonomers)
	fmt.Printf("Copies:\t\tmean %.1f\tmedian %.0f\tmax %.0f\n",
		stat.Mean(copies, nil), stat.Quantile(0.5, stat.Empirical, copies, nil), copies[len(copies)-1])
	fmt.Printf("Quality score:\tmean %.1f\tmedian %.1f\tmin %.1f\n",
		stat.Mean(scores, nil), stat.Quantile(0.5, stat.Empirical, scores, nil), scores[0])

	fmt.Println("\nHORs per unit length (monomers):")
	fmt.Println(asciigraph.Plot(unitLenCounts, asciigraph.Height(5), asciigraph.Precision(0)))
}
