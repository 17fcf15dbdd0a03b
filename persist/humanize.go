package persist

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/logiksim/editcircuit/layout"
)

// titleCaser title-cases user-facing enum names, the same way the teacher
// normalizes port direction names before comparing/displaying them.
var titleCaser = cases.Title(language.English)

// HumanizeKind returns a user-facing label for a LogicItemType, e.g.
// "clock_generator" -> "Clock Generator". Used by GUIs surfacing the type of a
// LogicItemRecord without hardcoding a second name table.
func HumanizeKind(t layout.LogicItemType) string {
	return titleCaser.String(strings.ReplaceAll(t.String(), "_", " "))
}

// HumanizeLoadErrorKind returns a user-facing label for a LoadErrorKind,
// e.g. "gzip_decompress_error" -> "Gzip Decompress Error".
func HumanizeLoadErrorKind(k LoadErrorKind) string {
	return titleCaser.String(strings.ReplaceAll(k.String(), "_", " "))
}
