package tilequality

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/carbocation/pfx"
)

// WriteTable renders the report as CSV: a header row of position-bucket
// labels preceded by a "tile" column, then one row of deviations per tile.
// This mirrors the tabular form of the block in the upstream tool's text
// report.
func (r *Report) WriteTable(w io.Writer) error {
	if err := r.Validate(); err != nil {
		return pfx.Err(err)
	}

	cw := csv.NewWriter(w)

	header := append([]string{"tile"}, r.XLabels...)
	if err := cw.Write(header); err != nil {
		return pfx.Err(err)
	}

	row := make([]string, 0, len(r.XLabels)+1)
	for i, tile := range r.Tiles {
		row = append(row[:0], strconv.Itoa(tile))
		for _, mean := range r.Means[i] {
			row = append(row, strconv.FormatFloat(mean, 'f', -1, 64))
		}

		if err := cw.Write(row); err != nil {
			return pfx.Err(err)
		}
	}

	cw.Flush()

	return pfx.Err(cw.Error())
}
