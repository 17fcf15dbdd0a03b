// Package persist implements the on-disk circuit format spec.md §6
// describes: a JSON document, gzip-compressed, then Base64-encoded,
// stored with a .ls2 extension. Versions 100 and 200 must stay readable
// indefinitely — this package keeps both schemas as distinct Go types
// and upgrades 100 to 200 in memory on load, the way a long-lived format
// accretes fields without breaking old files.
package persist

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/logiksim/editcircuit/layout"
)

// CurrentVersion is the schema version written by Save.
const CurrentVersion = 200

// LoadErrorKind tags why Load failed, mirroring spec.md §7's load_error
// taxonomy so a GUI can show a specific, stable message per cause.
type LoadErrorKind int

const (
	ErrFileOpen LoadErrorKind = iota
	ErrFileSize
	ErrGzipDecompress
	ErrBase64Decode
	ErrJSONParse
	ErrJSONVersion
)

func (k LoadErrorKind) String() string {
	switch k {
	case ErrFileOpen:
		return "file_open_error"
	case ErrFileSize:
		return "file_size_error"
	case ErrGzipDecompress:
		return "gzip_decompress_error"
	case ErrBase64Decode:
		return "base64_decode_error"
	case ErrJSONParse:
		return "json_parse_error"
	case ErrJSONVersion:
		return "json_version_error"
	default:
		return "unknown_error"
	}
}

// LoadError is the recoverable error Load/Paste return, carrying the
// taxonomy kind and, for a version mismatch, the expected and actual
// version numbers (spec.md §7).
type LoadError struct {
	Kind     LoadErrorKind
	Message  string
	Expected int
	Actual   int
}

func (e *LoadError) Error() string {
	if e.Kind == ErrJSONVersion {
		return fmt.Sprintf("%s: expected one of the supported versions, got %d: %s", e.Kind, e.Actual, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ViewConfig is the saved viewport (spec.md §6).
type ViewConfig struct {
	OffsetX     float64 `json:"offset_x"`
	OffsetY     float64 `json:"offset_y"`
	DeviceScale float64 `json:"device_scale"`
}

// SimulationConfig is the saved simulation timing configuration.
type SimulationConfig struct {
	SimulationTimeRateNS int64 `json:"simulation_time_rate_ns"`
	UseWireDelay         bool  `json:"use_wire_delay"`
}

// SavePoint is a simple integer grid point, serialized as two fields
// rather than geometry.Point directly so the file format doesn't change
// shape if the in-memory type's representation ever does.
type SavePoint struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// LogicItemRecord is one serialized logic item. Attrs is only present
// (non-nil) for clock generators, matching the optional `attrs?` field
// spec.md §6 describes.
type LogicItemRecord struct {
	Type            int                          `json:"logicitem_type"`
	InputCount      int                          `json:"input_count"`
	OutputCount     int                          `json:"output_count"`
	Position        SavePoint                    `json:"position"`
	Orientation     int                          `json:"orientation"`
	InputInverters  []bool                       `json:"input_inverters"`
	OutputInverters []bool                       `json:"output_inverters"`
	Attrs           *ClockGeneratorAttrsRecord    `json:"attrs,omitempty"`
}

// ClockGeneratorAttrsRecord is the serialized form of
// layout.ClockGeneratorAttrs.
type ClockGeneratorAttrsRecord struct {
	Name        string `json:"name"`
	TimeOnNS    int64  `json:"time_on_ns"`
	TimeOffNS   int64  `json:"time_off_ns"`
	IsSymmetric bool   `json:"is_symmetric"`
}

// DecorationRecord is one serialized decoration.
type DecorationRecord struct {
	Type     int       `json:"decoration_type"`
	Text     string    `json:"text"`
	Width    int32     `json:"width"`
	Height   int32     `json:"height"`
	Position SavePoint `json:"position"`
}

// WireSegmentRecord is one serialized wire segment; segments sharing a
// WireID belong to the same wire (spec.md §6).
type WireSegmentRecord struct {
	WireID int       `json:"wire_id"`
	P0     SavePoint `json:"p0"`
	P1     SavePoint `json:"p1"`
	P0Type int       `json:"p0_type"`
	P1Type int       `json:"p1_type"`
}

// Document is the top-level saved circuit (spec.md §6).
type Document struct {
	Version          int                 `json:"version"`
	SavePosition     SavePoint           `json:"save_position"`
	ViewConfig       ViewConfig          `json:"view_config"`
	SimulationConfig SimulationConfig    `json:"simulation_config"`
	LogicItems       []LogicItemRecord   `json:"logic_items"`
	Decorations      []DecorationRecord  `json:"decorations"`
	WireSegments     []WireSegmentRecord `json:"wire_segments"`
}

// Encode serializes doc to the JSON+gzip+Base64 payload stored in a
// .ls2 file.
func Encode(doc *Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("persist: marshal document: %w", err)
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("persist: gzip compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("persist: gzip compress: %w", err)
	}

	return base64.StdEncoding.EncodeToString(gz.Bytes()), nil
}

// Decode parses the JSON+gzip+Base64 payload back into a Document,
// upgrading a version-100 document to the version-200 shape in memory.
// Every failure mode returns a *LoadError tagged with the taxonomy kind
// spec.md §7 requires.
func Decode(payload string) (*Document, error) {
	compressed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &LoadError{Kind: ErrBase64Decode, Message: err.Error()}
	}

	r, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, &LoadError{Kind: ErrGzipDecompress, Message: err.Error()}
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Kind: ErrGzipDecompress, Message: err.Error()}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Kind: ErrJSONParse, Message: err.Error()}
	}

	switch doc.Version {
	case 100:
		upgradeFrom100(&doc)
	case 200:
		// current shape, nothing to do.
	default:
		return nil, &LoadError{
			Kind:     ErrJSONVersion,
			Message:  "unsupported circuit file version",
			Expected: CurrentVersion,
			Actual:   doc.Version,
		}
	}
	return &doc, nil
}

// upgradeFrom100 fills in fields version 200 added. Version 100 predates
// simulation_config entirely, so it defaults to wire delay disabled at
// the original tool's 1us step.
func upgradeFrom100(doc *Document) {
	if doc.SimulationConfig == (SimulationConfig{}) {
		doc.SimulationConfig = SimulationConfig{SimulationTimeRateNS: 1000, UseWireDelay: false}
	}
	doc.Version = CurrentVersion
}

// LogicItemTypeName returns the LogicItemRecord string matching
// layout.LogicItemType's integer value, purely a readability aid for
// hand-edited fixtures.
func LogicItemTypeName(t layout.LogicItemType) string {
	return t.String()
}
