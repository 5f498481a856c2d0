package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DepartmentIDProperty is the feature property that carries the department code
const DepartmentIDProperty = "DPTO"

// Boundaries is the department boundary document. Geometry is kept opaque
// and the original bytes are retained so the document can be served as is.
type Boundaries struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`

	raw []byte
}

// Feature is one department polygon
type Feature struct {
	Type       string                 `json:"type"`
	ID         interface{}            `json:"id,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// LoadGeoJSON parses a GeoJSON FeatureCollection
func LoadGeoJSON(r io.Reader) (*Boundaries, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary document: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var b Boundaries
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to decode boundary document: %w", err)
	}
	if b.Type != "FeatureCollection" {
		return nil, fmt.Errorf("boundary document type is %q, want FeatureCollection", b.Type)
	}

	b.raw = data
	return &b, nil
}

// Len returns the number of features
func (b *Boundaries) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Features)
}

// Raw returns the document exactly as loaded
func (b *Boundaries) Raw() []byte {
	return b.raw
}

// FeatureIDs returns the raw department identifier of every feature, taken
// from properties.DPTO or, when absent, the feature id. Features without
// either yield "".
func (b *Boundaries) FeatureIDs() []string {
	ids := make([]string, 0, len(b.Features))
	for _, f := range b.Features {
		id, ok := f.Properties[DepartmentIDProperty]
		if !ok || id == nil {
			id = f.ID
		}
		ids = append(ids, formatID(id))
	}
	return ids
}

func formatID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case json.Number:
		return id.String()
	default:
		return fmt.Sprintf("%v", id)
	}
}
