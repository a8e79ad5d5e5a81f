// Package tileid extracts flowcell tile identifiers from sequencer read
// identifiers. Illumina encodes the tile as one colon-separated field of the
// read name; which field depends on the id layout's generation. When an id
// carries no tile field, the per-tile quality block is simply absent from the
// report, so callers should treat the error here as "no per-tile data" rather
// than as corruption.
package tileid

import (
	"fmt"
	"strconv"
	"strings"
)

// Colon-field index of the tile for the two Illumina read-id layouts:
// instrument:run:flowcell:lane:tile:x:y (Casava 1.8 and later) and
// machine:lane:tile:x:y (earlier pipelines).
const (
	casavaSplitPosition = 4
	legacySplitPosition = 2
)

// SplitPosition reports which colon-separated field of the read identifier
// carries the tile number, based on the field count of the id layout.
func SplitPosition(id string) (int, error) {
	switch n := strings.Count(id, ":") + 1; {
	case n >= 7:
		return casavaSplitPosition, nil
	case n >= 5:
		return legacySplitPosition, nil
	default:
		return 0, fmt.Errorf("read id %q has %d fields; no known layout encodes a tile", id, n)
	}
}

// FromReadID extracts the flowcell tile identifier from a read identifier.
func FromReadID(id string) (int, error) {
	pos, err := SplitPosition(id)
	if err != nil {
		return 0, err
	}

	field := strings.Split(id, ":")[pos]
	tile, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("read id %q: tile field %q is not numeric", id, field)
	}
	if tile <= 0 {
		return 0, fmt.Errorf("read id %q: tile field %q is not a positive tile number", id, field)
	}

	return tile, nil
}
