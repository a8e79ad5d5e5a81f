package seqreport

import (
	"encoding/json"
	"sync"

	"github.com/carbocation/pfx"
	"github.com/carbocation/seqreport/tilequality"
	"github.com/google/jsonschema-go/jsonschema"
)

// wireDocument is the statically-known shape of the report document, used
// only for schema inference. Sibling module blocks are open-ended, which JSON
// Schema expresses by leaving additional properties unconstrained.
type wireDocument struct {
	PerTileQuality *tilequality.Report `json:"per_tile_quality_score,omitempty"`
}

var (
	schemaOnce     sync.Once
	inferredSchema *jsonschema.Schema
	resolvedSchema *jsonschema.Resolved
	schemaErr      error
)

func compileSchema() {
	schemaOnce.Do(func() {
		s, err := jsonschema.For[wireDocument](nil)
		if err != nil {
			schemaErr = err
			return
		}

		// Sibling module blocks are open-ended, so the document itself must
		// accept properties beyond the ones inferred from the Go type.
		s.AdditionalProperties = nil

		resolved, err := s.Resolve(&jsonschema.ResolveOptions{ValidateDefaults: true})
		if err != nil {
			schemaErr = err
			return
		}

		inferredSchema = s
		resolvedSchema = resolved
	})
}

// Schema returns the JSON Schema of the report document, inferred from the
// Go types. Note that JSON Schema cannot express the cross-array length
// constraints of the per-tile block (one means row per tile, one value per
// x label); Document.Validate covers those.
func Schema() (*jsonschema.Schema, error) {
	compileSchema()
	if schemaErr != nil {
		return nil, pfx.Err(schemaErr)
	}

	return inferredSchema, nil
}

// ValidateRaw checks a raw JSON report document against the schema, catching
// shape and type errors before any structural decoding.
func ValidateRaw(data []byte) error {
	compileSchema()
	if schemaErr != nil {
		return pfx.Err(schemaErr)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(resolvedSchema.Validate(instance))
}
