package persist

import (
	"fmt"
	"os"
)

// Load reads and decodes a .ls2 file from path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Kind: ErrFileOpen, Message: err.Error()}
	}
	if info.Size() == 0 {
		return nil, &LoadError{Kind: ErrFileSize, Message: "file is empty"}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: ErrFileOpen, Message: err.Error()}
	}
	return Decode(string(raw))
}

// Save encodes doc and writes it to path, returning false on any error
// (spec.md §7's save_error is a plain boolean, unlike load_error's typed
// taxonomy — the caller has no recovery path finer than "tell the user
// the save failed").
func Save(path string, doc *Document) bool {
	payload, err := Encode(doc)
	if err != nil {
		return false
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return false
	}
	return true
}

// LoadOrKeep attempts to load path into a new Document, falling back to
// keeping whatever the caller already has loaded on failure — the
// "restore previously valid state" recovery policy spec.md §7 mandates
// for loaders.
func LoadOrKeep(path string, current *Document) (*Document, error) {
	doc, err := Load(path)
	if err != nil {
		return current, fmt.Errorf("persist: keeping previous document: %w", err)
	}
	return doc, nil
}
