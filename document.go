// Package seqreport handles the JSON quality report document emitted by
// FastQC-style sequencing QC tools. The document is an object with one key
// per analysis module; this package decodes the per_tile_quality_score block
// into a typed form while carrying every sibling block through untouched, so
// that a report can be read, checked, and re-emitted without knowing the
// shape of modules it does not care about.
package seqreport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/carbocation/pfx"
	"github.com/carbocation/seqreport/basegroup"
	"github.com/carbocation/seqreport/tilequality"
)

// PerTileQualityKey is the top-level report key holding the per-tile block.
const PerTileQualityKey = "per_tile_quality_score"

// Document is one quality report. PerTileQuality is nil when the report
// carries no per-tile block, which is what upstream tools emit when the read
// identifiers lack tile information.
type Document struct {
	PerTileQuality *tilequality.Report

	// keys holds the top-level key order as decoded, so that re-encoding a
	// document does not shuffle the modules around.
	keys []string

	// modules holds the raw JSON of every block other than the per-tile one.
	modules map[string]json.RawMessage
}

// Decode reads one report document from r.
func Decode(r io.Reader) (*Document, error) {
	out := &Document{}

	err := json.NewDecoder(r).Decode(out)
	if err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
			return nil, pfx.Err(err)
		}

		return nil, pfx.Err(err)
	}

	return out, nil
}

// Encode writes the document to w as a single JSON object.
func (d *Document) Encode(w io.Writer) error {
	return pfx.Err(json.NewEncoder(w).Encode(d))
}

// Validate checks the structural invariants of the per-tile block, when one
// is present. A document without the block is valid.
func (d *Document) Validate() error {
	if d.PerTileQuality == nil {
		return nil
	}

	return pfx.Err(d.PerTileQuality.Validate())
}

// ValidateLabels additionally checks that the per-tile block's x_labels
// describe a coherent position bucketing (contiguous, 1-based). The upstream
// tool always emits labels of that form, but the report schema itself does
// not require it, so this lives apart from Validate.
func (d *Document) ValidateLabels() error {
	if d.PerTileQuality == nil {
		return nil
	}

	return pfx.Err(basegroup.ValidateLabels(d.PerTileQuality.XLabels))
}

// Modules lists the top-level keys of the sibling blocks carried by this
// document, in document order.
func (d *Document) Modules() []string {
	out := make([]string, 0, len(d.keys))
	for _, key := range d.keys {
		if key == PerTileQualityKey {
			continue
		}
		out = append(out, key)
	}

	return out
}

// Module returns the raw JSON of a sibling block by its top-level key.
func (d *Document) Module(key string) (json.RawMessage, bool) {
	raw, ok := d.modules[key]

	return raw, ok
}

// SetModule stores the raw JSON of a sibling block, appending it to the
// document order if the key is new.
func (d *Document) SetModule(key string, raw json.RawMessage) {
	if d.modules == nil {
		d.modules = make(map[string]json.RawMessage)
	}

	if _, ok := d.modules[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.modules[key] = raw
}

// UnmarshalJSON decodes the document one top-level key at a time, keeping
// unknown blocks as raw JSON.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return pfx.Err(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("report document must be a JSON object, not %v", tok)
	}

	d.PerTileQuality = nil
	d.keys = nil
	d.modules = nil

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return pfx.Err(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("report document key is %v, not a string", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return pfx.Err(err)
		}

		if key == PerTileQualityKey {
			if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				continue
			}

			rep := &tilequality.Report{}
			if err := json.Unmarshal(raw, rep); err != nil {
				return pfx.Err(err)
			}

			d.PerTileQuality = rep
			d.keys = append(d.keys, key)
			continue
		}

		d.SetModule(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// MarshalJSON re-emits the document in its decoded key order. A per-tile
// block attached to a document that never had one is appended at the end; a
// nil block is omitted entirely rather than written as null.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(key string, val []byte) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		k, err := json.Marshal(key)
		if err != nil {
			return pfx.Err(err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)

		return nil
	}

	wrotePerTile := false
	for _, key := range d.keys {
		if key == PerTileQualityKey {
			if d.PerTileQuality == nil {
				continue
			}

			val, err := json.Marshal(d.PerTileQuality)
			if err != nil {
				return nil, pfx.Err(err)
			}
			if err := write(key, val); err != nil {
				return nil, err
			}
			wrotePerTile = true
			continue
		}

		raw, ok := d.modules[key]
		if !ok {
			continue
		}
		if err := write(key, raw); err != nil {
			return nil, err
		}
	}

	if d.PerTileQuality != nil && !wrotePerTile {
		val, err := json.Marshal(d.PerTileQuality)
		if err != nil {
			return nil, pfx.Err(err)
		}
		if err := write(PerTileQualityKey, val); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
