package hor

import (
	"sync"

	"github.com/dasnellings/horTools/monomer"
	"golang.org/x/exp/slices"
)

// DetectHors runs the full scan -> evaluate -> curate -> build pipeline on
// one array and returns its curated HOR records sorted by start index.
// The function is pure: identical input and config always yield identical
// records, and arrays can be processed concurrently by independent callers.
func DetectHors(ar monomer.Array, cfg Config) []Hor {
	curated := curateOverlaps(findCandidates(ar, cfg))
	var ans []Hor
	var h Hor
	for i := range curated {
		h = buildRecord(ar, curated[i])
		if h.Score < cfg.MinScore {
			continue
		}
		ans = append(ans, h)
	}
	slices.SortFunc(ans, func(a, b Hor) int {
		return a.StartIdx - b.StartIdx
	})
	return ans
}

// GoDetectArrays fans detection out over the input arrays using the
// requested number of worker goroutines and sends each array's record set on
// the returned channel. Arrays are independent, so no ordering is guaranteed
// between arrays with threads > 1.
func GoDetectArrays(arrays []monomer.Array, cfg Config, threads int) <-chan []Hor {
	if threads < 1 {
		threads = 1
	}
	in := make(chan monomer.Array, len(arrays))
	out := make(chan []Hor, 100)
	wg := new(sync.WaitGroup)

	for i := 0; i < threads; i++ {
		wg.Add(1)
		go detectWorker(in, out, cfg, wg)
	}

	for i := range arrays {
		in <- arrays[i]
	}
	close(in)

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func detectWorker(in <-chan monomer.Array, out chan<- []Hor, cfg Config, wg *sync.WaitGroup) {
	for ar := range in {
		out <- DetectHors(ar, cfg)
	}
	wg.Done()
}
