package persist

import (
	"embed"
	"fmt"
)

//go:embed examples/*.ls2y
var exampleFS embed.FS

var exampleFiles = []string{
	"examples/example_00_empty.ls2y",
	"examples/example_01_and_gate.ls2y",
	"examples/example_02_clock_to_led.ls2y",
}

// LoadExample decodes the embedded example circuit at index (spec.md
// §6's ls_circuit_load(circuit, example_circuit) parameter). The
// embedded examples are the human-editable .ls2y YAML sibling format,
// not the gzip/Base64-wrapped .ls2 production format — they ship as
// source inside the binary, meant to be read and tweaked, not saved
// space on.
func LoadExample(index int) (*Document, error) {
	if index < 0 || index >= len(exampleFiles) {
		return nil, fmt.Errorf("persist: no embedded example circuit at index %d", index)
	}
	raw, err := exampleFS.ReadFile(exampleFiles[index])
	if err != nil {
		return nil, fmt.Errorf("persist: reading embedded example: %w", err)
	}
	doc, err := DecodeYAML(string(raw))
	if err != nil {
		return nil, fmt.Errorf("persist: parsing embedded example: %w", err)
	}
	return doc, nil
}

// ExampleCount returns how many embedded example circuits are available.
func ExampleCount() int { return len(exampleFiles) }
