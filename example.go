package seqreport

import (
	"bytes"

	"github.com/carbocation/pfx"
	"github.com/gobuffalo/packr/v2"
)

var exampleBox = packr.New("seqreport-example", "./data")

// ExampleBytes returns the raw JSON of a representative report document: a
// per-tile block over 12 ungrouped position buckets for four tiles of a
// two-surface flowcell, alongside a basic_stats sibling block. The deviations
// in each position bucket sum to zero, as the upstream normalization
// guarantees.
func ExampleBytes() ([]byte, error) {
	b, err := exampleBox.Find("example_report.json")

	return b, pfx.Err(err)
}

// Example returns the decoded representative report document. It always
// satisfies Validate and ValidateLabels.
func Example() (*Document, error) {
	b, err := ExampleBytes()
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(b))
}
