// Package settings implements the GUI settings file spec.md §6
// describes: plain (uncompressed, prettified) JSON, distinct from the
// gzip/Base64 circuit file format since it is meant to be hand-editable.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// CurrentVersion is the schema version Save writes.
const CurrentVersion = 200

// ThreadCount is the simulation worker pool size setting.
type ThreadCount string

const (
	ThreadCountSynchronous ThreadCount = "synchronous"
	ThreadCountTwo         ThreadCount = "two"
	ThreadCountFour        ThreadCount = "four"
	ThreadCountEight       ThreadCount = "eight"
)

// WireRenderStyle is the visual style wires are drawn in.
type WireRenderStyle string

const (
	WireRenderStyleRed     WireRenderStyle = "red"
	WireRenderStyleBold    WireRenderStyle = "bold"
	WireRenderStyleBoldRed WireRenderStyle = "bold_red"
)

// Settings is the GUI settings file's schema (spec.md §6).
type Settings struct {
	Version         int             `json:"version"`
	ThreadCount     ThreadCount     `json:"thread_count"`
	WireRenderStyle WireRenderStyle `json:"wire_render_style"`
	DirectRendering bool            `json:"direct_rendering"`
	JITRendering    bool            `json:"jit_rendering"`
}

// Default returns the settings a fresh install starts with.
func Default() Settings {
	return Settings{
		Version:         CurrentVersion,
		ThreadCount:     ThreadCountFour,
		WireRenderStyle: WireRenderStyleBold,
		DirectRendering: true,
		JITRendering:    false,
	}
}

// Load reads and parses the settings file at path. A missing file is not
// an error; it returns Default().
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as prettified JSON.
func Save(path string, s Settings) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}
