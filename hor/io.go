package hor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Header is the column line written at the top of a HOR table.
const Header string = "seq_id\thor_start\thor_end\thor_unit\thor_unit_length\thor_copies\ttotal_monomers\thor_type\tpurity\tquality_score\tmax_gap\tmean_gap\tgap_std\tstart_monomer_idx\tend_monomer_idx\tpattern"

// ToString renders a Hor as one tab-separated table row matching Header.
func ToString(h Hor) string {
	patStrs := make([]string, len(h.Pattern))
	for i := range h.Pattern {
		patStrs[i] = strconv.Itoa(h.Pattern[i])
	}
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%d\t%d\t%d\t%s\t%.4f\t%.2f\t%d\t%.2f\t%.2f\t%d\t%d\t%s",
		h.Chrom, h.HorStart, h.HorEnd, h.Unit, h.PatternLength, h.Copies, h.TotalMonomers,
		h.Type, h.Purity, h.Score, h.MaxGap, h.MeanGap, h.GapStdDev,
		h.StartIdx, h.EndIdx, strings.Join(patStrs, ","))
}

func parseLine(line string) Hor {
	words := strings.Split(line, "\t")
	var err error
	var ans Hor
	ans.Chrom = words[0]
	ans.HorStart, err = strconv.Atoi(words[1])
	exception.PanicOnErr(err)
	ans.HorEnd, err = strconv.Atoi(words[2])
	exception.PanicOnErr(err)
	ans.Unit = words[3]
	ans.PatternLength, err = strconv.Atoi(words[4])
	exception.PanicOnErr(err)
	ans.Copies, err = strconv.Atoi(words[5])
	exception.PanicOnErr(err)
	ans.TotalMonomers, err = strconv.Atoi(words[6])
	exception.PanicOnErr(err)
	ans.Type = words[7]
	ans.Purity, err = strconv.ParseFloat(words[8], 64)
	exception.PanicOnErr(err)
	ans.Score, err = strconv.ParseFloat(words[9], 64)
	exception.PanicOnErr(err)
	ans.MaxGap, err = strconv.Atoi(words[10])
	exception.PanicOnErr(err)
	ans.MeanGap, err = strconv.ParseFloat(words[11], 64)
	exception.PanicOnErr(err)
	ans.GapStdDev, err = strconv.ParseFloat(words[12], 64)
	exception.PanicOnErr(err)
	ans.StartIdx, err = strconv.Atoi(words[13])
	exception.PanicOnErr(err)
	ans.EndIdx, err = strconv.Atoi(words[14])
	exception.PanicOnErr(err)
	for _, s := range strings.Split(words[15], ",") {
		fam, err := strconv.Atoi(s)
		exception.PanicOnErr(err)
		ans.Pattern = append(ans.Pattern, fam)
	}
	return ans
}

// GoReadToChan reads a HOR table written by WriteToFileHandle and sends
// records on the returned channel.
func GoReadToChan(file string) <-chan Hor {
	ans := make(chan Hor, 1000)
	go readToChan(file, ans)
	return ans
}

func readToChan(file string, c chan<- Hor) {
	input := fileio.EasyOpen(file)
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(input); !done; line, done = fileio.EasyNextRealLine(input) {
		if strings.HasPrefix(line, "seq_id\t") {
			continue
		}
		c <- parseLine(line)
	}
	err := input.Close()
	exception.PanicOnErr(err)
	close(c)
}

// WriteToFileHandle writes records as table rows. The caller writes Header
// first if a header line is wanted.
func WriteToFileHandle(out *fileio.EasyWriter, hors []Hor) {
	var err error
	for i := range hors {
		_, err = fmt.Fprintln(out, ToString(hors[i]))
		exception.PanicOnErr(err)
	}
}
