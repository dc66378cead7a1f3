package hor

import (
	"reflect"
	"strings"
	"testing"
)

func TestTableRoundTrip(t *testing.T) {
	ar := uniformArray("Chr3", repeatFams([]int{4, 5, 7}, 10), 178)
	hors := DetectHors(ar, DefaultConfig())
	if len(hors) != 1 {
		t.Fatal("problem with detection for round trip test")
	}

	line := ToString(hors[0])
	if got := len(strings.Split(line, "\t")); got != len(strings.Split(Header, "\t")) {
		t.Error("problem with column count vs header", got)
	}
	if !reflect.DeepEqual(parseLine(line), hors[0]) {
		t.Error("problem with table round trip\n", line)
	}
}
