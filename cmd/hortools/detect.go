package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/dasnellings/horTools/hor"
	"github.com/dasnellings/horTools/monomer"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/interval"
	"golang.org/x/exp/slices"
)

func detectUsage(detectFlags *flag.FlagSet) {
	fmt.Print(
		"detect - detect higher-order repeats from classified monomers\n\n" +
			"Input is a tab-separated monomer table with columns\n" +
			"seq_id, monomer_family, monomer_start, monomer_end. Unclassified\n" +
			"monomers (family NA) are excluded before scanning. Each seq_id is\n" +
			"analyzed as an independent array.\n\n" +
			"Usage:\n" +
			"  hortools detect [options] -i monomers.tsv > hors.tsv\n\n" +
			"Options:\n")
	detectFlags.PrintDefaults()
}

// inputFiles is a custom type that gets filled by flag.Parse()
type inputFiles []string

// String to satisfy flag.Value interface
func (i *inputFiles) String() string {
	return strings.Join(*i, " ")
}

// Set to satisfy flag.Value interface
func (i *inputFiles) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func runDetect(args []string) {
	var err error
	detectFlags := flag.NewFlagSet("detect", flag.ExitOnError)

	var excludeBeds inputFiles
	input := detectFlags.String("i", "", "Input monomer table. May be gzipped.")
	output := detectFlags.String("o", "stdout", "Output HOR table.")
	bedOut := detectFlags.String("bed", "", "Also write detected HORs as a BED5 file for browser loading.")
	detectFlags.Var(&excludeBeds, "e", "Bed file(s) with regions to exclude from analysis. May be declared more than once with additional -e flags. Monomers overlapping an excluded region are removed before scanning.")
	minPatternLength := detectFlags.Int("minPatternLength", 3, "Minimum monomers in a repeating unit.")
	maxPatternLength := detectFlags.Int("maxPatternLength", 20, "Maximum monomers in a repeating unit.")
	minCopies := detectFlags.Int("minCopies", 3, "Minimum consecutive copies of the unit.")
	maxGap := detectFlags.Int("maxGap", 500, "Maximum gap in bp between adjacent monomers within a HOR. A larger gap breaks the HOR.")
	minPurity := detectFlags.Float64("minPurity", 0.9, "Minimum fraction of monomers matching the repeating unit.")
	minScore := detectFlags.Float64("minScore", 50, "Minimum composite quality score (0-100).")
	threads := detectFlags.Int("threads", 1, "Number of processor threads. Arrays are processed independently.")
	verbose := detectFlags.Int("verbose", 0, "Level of verbosity in log.")

	err = detectFlags.Parse(args)
	exception.PanicOnErr(err)
	detectFlags.Usage = func() { detectUsage(detectFlags) }

	if *input == "" {
		detectFlags.Usage()
		errExit("\nERROR: must specify a monomer table (-i)")
	}

	if *threads < 1 {
		detectFlags.Usage()
		errExit("\nERROR: threads must be >= 1")
	}

	cfg := hor.Config{
		MinPatternLength: *minPatternLength,
		MaxPatternLength: *maxPatternLength,
		MinCopies:        *minCopies,
		MaxGap:           *maxGap,
		MinPurity:        *minPurity,
		MinScore:         *minScore,
	}
	if err = cfg.Validate(); err != nil {
		detectFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	detect(*input, *output, *bedOut, excludeBeds, cfg, *threads, *verbose)
}

func detect(input, output, bedOut string, excludeBeds []string, cfg hor.Config, threads, verbose int) {
	var err error
	var excludeTree map[string]*interval.IntervalNode
	if len(excludeBeds) > 0 {
		var excludeIntervals []interval.Interval
		for _, file := range excludeBeds {
			b := bed.Read(file)
			for i := range b {
				excludeIntervals = append(excludeIntervals, b[i])
			}
		}
		excludeTree = interval.BuildTree(excludeIntervals)
	}

	arrays := monomer.Partition(excludeFilter(monomer.GoReadToChan(input), excludeTree))
	if verbose > 0 {
		log.Printf("partitioned input into %d arrays\n", len(arrays))
	}

	var all []hor.Hor
	for hors := range hor.GoDetectArrays(arrays, cfg, threads) {
		all = append(all, hors...)
	}
	// worker output order is nondeterministic with threads > 1
	slices.SortFunc(all, func(a, b hor.Hor) int {
		if a.Chrom != b.Chrom {
			return strings.Compare(a.Chrom, b.Chrom)
		}
		return a.HorStart - b.HorStart
	})

	out := fileio.EasyCreate(output)
	_, err = fmt.Fprintln(out, hor.Header)
	exception.PanicOnErr(err)
	hor.WriteToFileHandle(out, all)
	err = out.Close()
	exception.PanicOnErr(err)

	if bedOut != "" {
		bOut := fileio.EasyCreate(bedOut)
		for i := range all {
			_, err = fmt.Fprintln(bOut, bed.ToString(hor.ToBed(all[i]), 5))
			exception.PanicOnErr(err)
		}
		err = bOut.Close()
		exception.PanicOnErr(err)
	}

	if verbose > 0 {
		log.Printf("wrote %d HORs\n", len(all))
	}
}

// excludeFilter drops monomers overlapping the exclude tree. With a nil tree
// the input channel passes through untouched.
func excludeFilter(c <-chan monomer.Monomer, tree map[string]*interval.IntervalNode) <-chan monomer.Monomer {
	if tree == nil {
		return c
	}
	out := make(chan monomer.Monomer, 1000)
	go func() {
		for m := range c {
			if len(interval.Query(tree, m, "any")) == 0 {
				out <- m
			}
		}
		close(out)
	}()
	return out
}
