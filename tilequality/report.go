// Package tilequality describes the per-tile sequence quality block of a
// FastQC-style sequencing quality report. Each flowcell tile gets one row of
// mean quality deviations: the average difference between that tile's quality
// and the across-tile average quality, per base-position bucket. The block is
// produced by an upstream QC tool; this package is the consumer-side contract
// for decoding, checking, and summarizing it.
package tilequality

import (
	"fmt"
)

// Report is the per_tile_quality_score block. The outer index of Means is
// aligned with Tiles and the inner index with XLabels, so Means[i][j] is the
// mean quality deviation of tile Tiles[i] at position bucket XLabels[j].
// Deviations may be negative, zero, or positive.
type Report struct {
	// XLabels labels the base-position buckets. Each label is either a single
	// base position ("3") or an inclusive range of positions ("10-14").
	XLabels []string `json:"x_labels"`

	// Tiles holds the flowcell tile identifiers, as encoded in the read
	// identifiers emitted by the sequencer. No identifier appears twice.
	Tiles []int `json:"tiles"`

	// Means holds one row of deviations per tile.
	Means [][]float64 `json:"means"`
}

// Validate checks the structural invariants that any well-formed block must
// satisfy: Means has one row per tile, every row covers every position
// bucket, and tile identifiers are positive and unique. It reports the first
// violated constraint.
func (r *Report) Validate() error {
	if got, want := len(r.Means), len(r.Tiles); got != want {
		return fmt.Errorf("means has %d rows but tiles has %d entries", got, want)
	}

	for i, row := range r.Means {
		if got, want := len(row), len(r.XLabels); got != want {
			return fmt.Errorf("means row %d (tile %d) has %d values but x_labels has %d entries", i, r.Tiles[i], got, want)
		}
	}

	seen := make(map[int]int, len(r.Tiles))
	for i, tile := range r.Tiles {
		if tile <= 0 {
			return fmt.Errorf("tile identifier at index %d is %d; tile identifiers must be positive", i, tile)
		}
		if prev, ok := seen[tile]; ok {
			return fmt.Errorf("tile %d appears at indexes %d and %d; tile identifiers must be unique", tile, prev, i)
		}
		seen[tile] = i
	}

	return nil
}

// MeansForTile returns the deviation row for a single tile identifier.
func (r *Report) MeansForTile(tile int) ([]float64, error) {
	for i, t := range r.Tiles {
		if t != tile {
			continue
		}
		if i >= len(r.Means) {
			return nil, fmt.Errorf("tile %d has no means row; did you call Validate?", tile)
		}
		return r.Means[i], nil
	}

	return nil, fmt.Errorf("tile %d is not present in this report", tile)
}
