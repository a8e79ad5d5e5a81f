package tilequality

import (
	"math"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// Summary condenses a report's deviation matrix into the few numbers people
// actually look at when triaging a flowcell.
type Summary struct {
	// MaxDeviation is the largest absolute deviation anywhere in the matrix.
	// The upstream tool uses the same quantity to decide whether the module
	// warrants a warning.
	MaxDeviation float64

	// WorstTile is the tile identifier at which MaxDeviation occurs. Zero
	// when the report has no tiles.
	WorstTile int

	// BucketMeans is the mean of the reported deviations at each position
	// bucket, aligned with XLabels. The upstream tool centers each bucket's
	// column before reporting, so values far from zero suggest the report was
	// not produced by that normalization.
	BucketMeans []float64
}

// Summarize computes a Summary from an already-validated report.
func (r *Report) Summarize() (Summary, error) {
	if err := r.Validate(); err != nil {
		return Summary{}, pfx.Err(err)
	}

	out := Summary{BucketMeans: make([]float64, len(r.XLabels))}

	column := make([]float64, len(r.Tiles))
	for j := range r.XLabels {
		for i := range r.Tiles {
			column[i] = r.Means[i][j]

			if dev := math.Abs(r.Means[i][j]); dev > out.MaxDeviation {
				out.MaxDeviation = dev
				out.WorstTile = r.Tiles[i]
			}
		}

		if len(column) == 0 {
			continue
		}

		mean, err := stats.Mean(stats.Float64Data(column))
		if err != nil {
			return Summary{}, pfx.Err(err)
		}
		out.BucketMeans[j] = mean
	}

	return out, nil
}
