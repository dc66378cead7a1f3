package hor

import "errors"

// Config holds all tunable parameters for HOR detection.
type Config struct {
	MinPatternLength int     // minimum monomers in a repeating unit
	MaxPatternLength int     // maximum monomers in a repeating unit
	MinCopies        int     // minimum consecutive repetitions of the unit
	MaxGap           int     // maximum allowed gap between adjacent monomers (bp)
	MinPurity        float64 // minimum fraction of monomers matching the unit (0-1)
	MinScore         float64 // minimum composite quality score (0-100)
}

// DefaultConfig returns the standard detection parameters.
func DefaultConfig() Config {
	return Config{
		MinPatternLength: 3,
		MaxPatternLength: 20,
		MinCopies:        3,
		MaxGap:           500,
		MinPurity:        0.9,
		MinScore:         50,
	}
}

// Validate checks for contradictory parameters. Any error returned here is
// fatal and must be surfaced before scanning begins.
func (c Config) Validate() error {
	switch {
	case c.MinPatternLength < 1:
		return errors.New("minPatternLength must be >= 1")
	case c.MaxPatternLength < c.MinPatternLength:
		return errors.New("maxPatternLength must be >= minPatternLength")
	case c.MinCopies < 2:
		return errors.New("minCopies must be >= 2")
	case c.MaxGap < 0:
		return errors.New("maxGap must be >= 0")
	case c.MinPurity <= 0 || c.MinPurity > 1:
		return errors.New("minPurity must be in (0, 1]")
	case c.MinScore < 0 || c.MinScore > 100:
		return errors.New("minScore must be in [0, 100]")
	}
	return nil
}
