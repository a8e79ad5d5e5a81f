// Package tileheat renders a per-tile quality block as the familiar hot/cold
// heatmap: one row per tile, one column per position bucket, colder colors
// where a tile runs below the across-tile average quality and hotter colors
// where it runs above.
package tileheat

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/carbocation/pfx"
	"github.com/carbocation/seqreport/tilequality"
	"github.com/fogleman/gg"
)

// Options controls cell geometry. The zero value gets sensible defaults.
type Options struct {
	// CellWidth and CellHeight are the pixel dimensions of one matrix cell.
	CellWidth  int
	CellHeight int

	// MaxDeviation pins the color scale. When zero, the scale is set from the
	// largest absolute deviation in the report, so that renderings of
	// different flowcells are only comparable when this is set explicitly.
	MaxDeviation float64
}

const (
	defaultCellWidth  = 6
	defaultCellHeight = 6
)

// Render draws the deviation matrix. Tiles are drawn top to bottom in report
// order and position buckets left to right.
func Render(r *tilequality.Report, opt Options) (image.Image, error) {
	if err := r.Validate(); err != nil {
		return nil, pfx.Err(err)
	}
	if len(r.Tiles) == 0 || len(r.XLabels) == 0 {
		return nil, fmt.Errorf("nothing to render: report covers %d tiles over %d buckets", len(r.Tiles), len(r.XLabels))
	}

	if opt.CellWidth <= 0 {
		opt.CellWidth = defaultCellWidth
	}
	if opt.CellHeight <= 0 {
		opt.CellHeight = defaultCellHeight
	}

	scale := opt.MaxDeviation
	if scale <= 0 {
		s, err := r.Summarize()
		if err != nil {
			return nil, pfx.Err(err)
		}
		scale = s.MaxDeviation
	}
	if scale == 0 {
		// A perfectly uniform flowcell: every cell is neutral.
		scale = 1
	}

	dc := gg.NewContext(len(r.XLabels)*opt.CellWidth, len(r.Tiles)*opt.CellHeight)

	for i := range r.Tiles {
		for j := range r.XLabels {
			red, green, blue := deviationColor(r.Means[i][j] / scale)
			dc.SetRGB(red, green, blue)
			dc.DrawRectangle(float64(j*opt.CellWidth), float64(i*opt.CellHeight), float64(opt.CellWidth), float64(opt.CellHeight))
			dc.Fill()
		}
	}

	return dc.Image(), nil
}

// RenderPNG renders the matrix and writes it to w as a PNG.
func RenderPNG(w io.Writer, r *tilequality.Report, opt Options) error {
	img, err := Render(r, opt)
	if err != nil {
		return err
	}

	return pfx.Err(png.Encode(w, img))
}

// deviationColor maps a deviation scaled into [-1, 1] onto a symmetric
// blue-white-red ramp: full blue at -1, white at 0, full red at +1.
func deviationColor(t float64) (red, green, blue float64) {
	t = math.Max(-1, math.Min(1, t))

	switch {
	case t < 0:
		return 1 + t, 1 + t, 1
	case t > 0:
		return 1, 1 - t, 1 - t
	default:
		return 1, 1, 1
	}
}
