// Package monomer handles ingest of classified centromeric repeat units
// ("monomers") and grouping them into per-contig arrays for HOR detection.
package monomer

import (
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Monomer is a single classified repeat unit. Family is the cluster label
// assigned by the upstream classifier. Start and End are genomic offsets in bp.
type Monomer struct {
	Chrom  string
	Family int
	Start  int
	End    int
}

// GetChrom satisfies the interval.Interval interface.
func (m Monomer) GetChrom() string {
	return m.Chrom
}

// GetChromStart satisfies the interval.Interval interface.
func (m Monomer) GetChromStart() int {
	return m.Start
}

// GetChromEnd satisfies the interval.Interval interface.
func (m Monomer) GetChromEnd() int {
	return m.End
}

// Array is the ordered monomer sequence for one contig/read.
// Monomers are indexed 0..N-1 in genomic order.
type Array struct {
	Chrom    string
	Monomers []Monomer
}

// Valid returns true if the array is non-empty, every monomer has End > Start,
// and monomer positions are strictly increasing along the array.
func (ar Array) Valid() bool {
	if len(ar.Monomers) == 0 {
		return false
	}
	for i := range ar.Monomers {
		if ar.Monomers[i].End <= ar.Monomers[i].Start {
			return false
		}
		if i > 0 && ar.Monomers[i].Start < ar.Monomers[i-1].Start {
			return false
		}
	}
	return true
}

// Families returns the family label sequence for the array.
func (ar Array) Families() []int {
	ans := make([]int, len(ar.Monomers))
	for i := range ar.Monomers {
		ans[i] = ar.Monomers[i].Family
	}
	return ans
}

// parseLine parses one record from a monomer table with columns
// seq_id, monomer_family, monomer_start, monomer_end. The returned bool is
// false for the header line and for unclassified monomers, which are
// excluded from detection entirely.
func parseLine(line string) (Monomer, bool) {
	words := strings.Split(line, "\t")
	if len(words) < 4 {
		return Monomer{}, false
	}
	if words[0] == "seq_id" || words[0] == "read_id" {
		return Monomer{}, false
	}
	if words[1] == "NA" || words[1] == "nan" || words[1] == "unclassified" || words[1] == "" {
		return Monomer{}, false
	}

	var err error
	var ans Monomer
	ans.Chrom = words[0]
	// classifiers write the family column as a float (e.g. "3.0")
	fam, err := strconv.ParseFloat(words[1], 64)
	exception.PanicOnErr(err)
	ans.Family = int(fam)
	ans.Start, err = strconv.Atoi(words[2])
	exception.PanicOnErr(err)
	ans.End, err = strconv.Atoi(words[3])
	exception.PanicOnErr(err)
	return ans, true
}

// GoReadToChan reads a monomer table and sends records on the returned channel.
func GoReadToChan(file string) <-chan Monomer {
	ans := make(chan Monomer, 1000)
	go readToChan(file, ans)
	return ans
}

func readToChan(file string, c chan<- Monomer) {
	input := fileio.EasyOpen(file)
	var line string
	var m Monomer
	var ok, done bool
	for line, done = fileio.EasyNextRealLine(input); !done; line, done = fileio.EasyNextRealLine(input) {
		if m, ok = parseLine(line); ok {
			c <- m
		}
	}
	err := input.Close()
	exception.PanicOnErr(err)
	close(c)
}

// Partition groups incoming monomers into arrays keyed on Chrom, preserving
// input order within each array and first-seen order across arrays. Indices
// within each array are contiguous by construction, so downstream scanning
// only ever sees gaps in genomic position, never in the label sequence.
func Partition(c <-chan Monomer) []Array {
	var ans []Array
	idx := make(map[string]int)
	for m := range c {
		i, found := idx[m.Chrom]
		if !found {
			i = len(ans)
			idx[m.Chrom] = i
			ans = append(ans, Array{Chrom: m.Chrom})
		}
		ans[i].Monomers = append(ans[i].Monomers, m)
	}
	return ans
}
