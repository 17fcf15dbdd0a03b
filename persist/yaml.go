package persist

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLDocument mirrors Document field-for-field but with yaml tags,
// the human-editable .ls2y sibling format used only for the embedded
// example circuits (spec.md §6's example_circuit slots) — production
// circuit files always stay the JSON+gzip+Base64 .ls2 format.
type YAMLDocument struct {
	Version          int                      `yaml:"version"`
	SavePosition     YAMLPoint                `yaml:"save_position"`
	ViewConfig       YAMLViewConfig           `yaml:"view_config"`
	SimulationConfig YAMLSimulationConfig     `yaml:"simulation_config"`
	LogicItems       []YAMLLogicItemRecord    `yaml:"logic_items"`
	Decorations      []YAMLDecorationRecord   `yaml:"decorations"`
	WireSegments     []YAMLWireSegmentRecord  `yaml:"wire_segments"`
}

type YAMLPoint struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

type YAMLViewConfig struct {
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"`
	DeviceScale float64 `yaml:"device_scale"`
}

type YAMLSimulationConfig struct {
	SimulationTimeRateNS int64 `yaml:"simulation_time_rate_ns"`
	UseWireDelay         bool  `yaml:"use_wire_delay"`
}

type YAMLClockGeneratorAttrs struct {
	Name        string `yaml:"name"`
	TimeOnNS    int64  `yaml:"time_on_ns"`
	TimeOffNS   int64  `yaml:"time_off_ns"`
	IsSymmetric bool   `yaml:"is_symmetric"`
}

type YAMLLogicItemRecord struct {
	Type            int                      `yaml:"logicitem_type"`
	InputCount      int                      `yaml:"input_count"`
	OutputCount     int                      `yaml:"output_count"`
	Position        YAMLPoint                `yaml:"position"`
	Orientation     int                      `yaml:"orientation"`
	InputInverters  []bool                   `yaml:"input_inverters"`
	OutputInverters []bool                   `yaml:"output_inverters"`
	Attrs           *YAMLClockGeneratorAttrs `yaml:"attrs,omitempty"`
}

type YAMLDecorationRecord struct {
	Type     int       `yaml:"decoration_type"`
	Text     string    `yaml:"text"`
	Width    int32     `yaml:"width"`
	Height   int32     `yaml:"height"`
	Position YAMLPoint `yaml:"position"`
}

type YAMLWireSegmentRecord struct {
	WireID int       `yaml:"wire_id"`
	P0     YAMLPoint `yaml:"p0"`
	P1     YAMLPoint `yaml:"p1"`
	P0Type int       `yaml:"p0_type"`
	P1Type int       `yaml:"p1_type"`
}

// EncodeYAML renders doc as a .ls2y text fixture.
func EncodeYAML(doc *Document) (string, error) {
	y := toYAMLDocument(doc)
	raw, err := yaml.Marshal(y)
	if err != nil {
		return "", fmt.Errorf("persist: marshal yaml document: %w", err)
	}
	return string(raw), nil
}

// DecodeYAML parses a .ls2y text fixture back into a Document.
func DecodeYAML(text string) (*Document, error) {
	var y YAMLDocument
	if err := yaml.Unmarshal([]byte(text), &y); err != nil {
		return nil, &LoadError{Kind: ErrJSONParse, Message: err.Error()}
	}
	doc := fromYAMLDocument(&y)
	if doc.Version != CurrentVersion && doc.Version != 100 {
		return nil, &LoadError{Kind: ErrJSONVersion, Message: "unsupported circuit file version", Expected: CurrentVersion, Actual: doc.Version}
	}
	if doc.Version == 100 {
		upgradeFrom100(doc)
	}
	return doc, nil
}

func toYAMLDocument(doc *Document) *YAMLDocument {
	y := &YAMLDocument{
		Version:          doc.Version,
		SavePosition:     YAMLPoint{X: doc.SavePosition.X, Y: doc.SavePosition.Y},
		ViewConfig:       YAMLViewConfig(doc.ViewConfig),
		SimulationConfig: YAMLSimulationConfig(doc.SimulationConfig),
	}
	for _, rec := range doc.LogicItems {
		item := YAMLLogicItemRecord{
			Type:            rec.Type,
			InputCount:      rec.InputCount,
			OutputCount:     rec.OutputCount,
			Position:        YAMLPoint{X: rec.Position.X, Y: rec.Position.Y},
			Orientation:     rec.Orientation,
			InputInverters:  rec.InputInverters,
			OutputInverters: rec.OutputInverters,
		}
		if rec.Attrs != nil {
			item.Attrs = &YAMLClockGeneratorAttrs{
				Name:        rec.Attrs.Name,
				TimeOnNS:    rec.Attrs.TimeOnNS,
				TimeOffNS:   rec.Attrs.TimeOffNS,
				IsSymmetric: rec.Attrs.IsSymmetric,
			}
		}
		y.LogicItems = append(y.LogicItems, item)
	}
	for _, rec := range doc.Decorations {
		y.Decorations = append(y.Decorations, YAMLDecorationRecord{
			Type: rec.Type, Text: rec.Text, Width: rec.Width, Height: rec.Height,
			Position: YAMLPoint{X: rec.Position.X, Y: rec.Position.Y},
		})
	}
	for _, rec := range doc.WireSegments {
		y.WireSegments = append(y.WireSegments, YAMLWireSegmentRecord{
			WireID: rec.WireID,
			P0:     YAMLPoint{X: rec.P0.X, Y: rec.P0.Y},
			P1:     YAMLPoint{X: rec.P1.X, Y: rec.P1.Y},
			P0Type: rec.P0Type,
			P1Type: rec.P1Type,
		})
	}
	return y
}

func fromYAMLDocument(y *YAMLDocument) *Document {
	doc := &Document{
		Version:          y.Version,
		SavePosition:     SavePoint{X: y.SavePosition.X, Y: y.SavePosition.Y},
		ViewConfig:        ViewConfig(y.ViewConfig),
		SimulationConfig: SimulationConfig(y.SimulationConfig),
	}
	for _, rec := range y.LogicItems {
		item := LogicItemRecord{
			Type:            rec.Type,
			InputCount:      rec.InputCount,
			OutputCount:     rec.OutputCount,
			Position:        SavePoint{X: rec.Position.X, Y: rec.Position.Y},
			Orientation:     rec.Orientation,
			InputInverters:  rec.InputInverters,
			OutputInverters: rec.OutputInverters,
		}
		if rec.Attrs != nil {
			item.Attrs = &ClockGeneratorAttrsRecord{
				Name:        rec.Attrs.Name,
				TimeOnNS:    rec.Attrs.TimeOnNS,
				TimeOffNS:   rec.Attrs.TimeOffNS,
				IsSymmetric: rec.Attrs.IsSymmetric,
			}
		}
		doc.LogicItems = append(doc.LogicItems, item)
	}
	for _, rec := range y.Decorations {
		doc.Decorations = append(doc.Decorations, DecorationRecord{
			Type: rec.Type, Text: rec.Text, Width: rec.Width, Height: rec.Height,
			Position: SavePoint{X: rec.Position.X, Y: rec.Position.Y},
		})
	}
	for _, rec := range y.WireSegments {
		doc.WireSegments = append(doc.WireSegments, WireSegmentRecord{
			WireID: rec.WireID,
			P0:     SavePoint{X: rec.P0.X, Y: rec.P0.Y},
			P1:     SavePoint{X: rec.P1.X, Y: rec.P1.Y},
			P0Type: rec.P0Type,
			P1Type: rec.P1Type,
		})
	}
	return doc
}
