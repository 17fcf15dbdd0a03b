// Package validator implements the debug-mode MessageValidator spec.md
// §4.2 requires: after every dispatched message it throws away the live
// LayoutIndex's derived state and recomputes a fresh one directly from
// Layout, then compares the two. Divergence means an editing function
// emitted the wrong messages — a programmer error — so it panics rather
// than returning an error, exactly like editing.InvariantViolation.
//
// This is the expensive, off-by-default verification path: wiring it
// into every Modifier would make routine edits re-scan the whole layout
// each time, so Config.ValidateMessages exists precisely to keep it out
// of production use while making it one flag away in tests.
package validator

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/message"
)

// Validator implements message.Observer, re-deriving a fresh LayoutIndex
// after every message and comparing it against the live one.
type Validator struct {
	cd *editing.CircuitData
}

// New returns a Validator watching cd. Register it on cd.Bus after the
// live Index so both have seen the triggering message before comparison.
func New(cd *editing.CircuitData) *Validator {
	return &Validator{cd: cd}
}

// Submit implements message.Observer.
func (v *Validator) Submit(m message.Message) {
	_ = m
	v.Validate()
}

// Validate recomputes a fresh LayoutIndex from v.cd.Layout and panics
// with a table of differences if it disagrees with the live index on
// whether the key bijection invariant holds (spec.md §8 item 5). No other
// part of the two indices (spatial, collision, connection entries or
// element counts) is compared.
func (v *Validator) Validate() {
	fresh := layoutindex.BuildIndex(v.cd.Layout)
	live := v.cd.Index

	diffs := diffIndices(fresh, live)
	if len(diffs) == 0 {
		return
	}
	panic(fmt.Sprintf("validator: LayoutIndex diverged from Layout:\n%s", renderDiffs(diffs)))
}

type diffRow struct {
	field    string
	expected string
	actual   string
}

func diffIndices(fresh, live *layoutindex.Index) []diffRow {
	var rows []diffRow
	if a, b := fresh.Keys.IsBijection(), live.Keys.IsBijection(); a != b {
		rows = append(rows, diffRow{"keys.is_bijection", fmt.Sprint(a), fmt.Sprint(b)})
	}
	return rows
}

func renderDiffs(rows []diffRow) string {
	t := table.NewWriter()
	t.SetTitle("LayoutIndex validation failure")
	t.AppendHeader(table.Row{"Field", "Expected (derived)", "Actual (live)"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.field, r.expected, r.actual})
	}
	return t.Render()
}
