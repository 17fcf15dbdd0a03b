// Package clipboard implements the copy/paste payload format spec.md §6
// describes: the same JSON+gzip+Base64 codec as the file format, minus
// the view and simulation fields a pasted selection has no use for.
package clipboard

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/logiksim/editcircuit/persist"
)

// Payload is the clipboard's serialized shape: persist.Document without
// SavePosition, ViewConfig, or SimulationConfig.
type Payload struct {
	Version      int                        `json:"version"`
	LogicItems   []persist.LogicItemRecord  `json:"logic_items"`
	Decorations  []persist.DecorationRecord `json:"decorations"`
	WireSegments []persist.WireSegmentRecord `json:"wire_segments"`
}

// FromDocument strips the view/simulation fields off doc to build a
// clipboard payload.
func FromDocument(doc *persist.Document) *Payload {
	return &Payload{
		Version:      doc.Version,
		LogicItems:   doc.LogicItems,
		Decorations:  doc.Decorations,
		WireSegments: doc.WireSegments,
	}
}

// ToDocument expands p back into a persist.Document, filling the
// stripped fields with defaults — a pasted selection has no saved
// viewport or simulation rate of its own.
func (p *Payload) ToDocument() *persist.Document {
	return &persist.Document{
		Version:          p.Version,
		SavePosition:     persist.SavePoint{},
		ViewConfig:       persist.ViewConfig{DeviceScale: 1},
		SimulationConfig: persist.SimulationConfig{SimulationTimeRateNS: 1000},
		LogicItems:       p.LogicItems,
		Decorations:      p.Decorations,
		WireSegments:     p.WireSegments,
	}
}

// Encode serializes p to the JSON+gzip+Base64 text placed on the system
// clipboard.
func Encode(p *Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("clipboard: marshal payload: %w", err)
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("clipboard: gzip compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("clipboard: gzip compress: %w", err)
	}

	return base64.StdEncoding.EncodeToString(gz.Bytes()), nil
}

// Decode parses a JSON+gzip+Base64 clipboard payload. A malformed or
// foreign clipboard (e.g. plain text copied from elsewhere) is reported
// as *persist.LoadError so a caller can react to "nothing pasteable" the
// same way it reacts to a corrupt file.
func Decode(text string) (*Payload, error) {
	compressed, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, &persist.LoadError{Kind: persist.ErrBase64Decode, Message: err.Error()}
	}

	r, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, &persist.LoadError{Kind: persist.ErrGzipDecompress, Message: err.Error()}
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &persist.LoadError{Kind: persist.ErrGzipDecompress, Message: err.Error()}
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &persist.LoadError{Kind: persist.ErrJSONParse, Message: err.Error()}
	}
	return &p, nil
}
