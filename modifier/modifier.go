// Package modifier exposes the single public entry point spec.md §4.5
// describes: one operation per editing primitive, wired so every call
// mutates CircuitData, emits the right info messages, and — unless
// history is disabled — appends the reverse operation onto the undo
// stack, inside the group most recently opened by NewGroup. It owns the
// full aggregate: CircuitData,
// the SelectionStore, the base VisibleSelection, History and, in debug
// builds, a MessageValidator, registering all of them on the bus the
// same way the teacher wires its component's sub-blocks together in
// core/emu.go's constructor.
package modifier

import (
	"context"
	"log/slog"

	"github.com/logiksim/editcircuit/editing"
	"github.com/logiksim/editcircuit/history"
	"github.com/logiksim/editcircuit/layoutindex"
	"github.com/logiksim/editcircuit/message"
	"github.com/logiksim/editcircuit/selection"
	"github.com/logiksim/editcircuit/validator"
	"github.com/logiksim/editcircuit/visibleselection"
)

// LevelTrace is a slog level below LevelDebug used to trace every info
// message crossing the bus, following the teacher's core.LevelTrace /
// core.LevelWaveform convention of level constants gated by a config
// flag rather than a separate logging backend.
const LevelTrace = slog.Level(-8)

// Config controls which optional subsystems a Modifier wires up,
// mirroring the teacher's functional builder-struct convention
// (config.DeviceBuilder) but as a plain struct since every field here is
// a simple on/off switch rather than a staged construction sequence.
type Config struct {
	// EnableHistory starts the Modifier with undo/redo recording on.
	EnableHistory bool
	// StoreMessages keeps every dispatched message.Message in a log,
	// inspectable via Modifier.MessageLog, for debugging and tests.
	StoreMessages bool
	// ValidateMessages registers a validator.Validator that re-derives
	// LayoutIndex from scratch after every message and panics on
	// divergence (spec.md §4.2's "full recomputation" contract) — a
	// debug-build-only cost, expected to be off in production use.
	ValidateMessages bool
	// Logger receives LevelTrace records for every dispatched message
	// when non-nil.
	Logger *slog.Logger
}

// Modifier is the public facade over the editable circuit core.
type Modifier struct {
	Data       *editing.CircuitData
	Selections *selection.Store
	Visible    *visibleselection.VisibleSelection
	History    *history.History

	cfg        Config
	messageLog []message.Message
	validator  *validator.Validator
	baseSel    *selection.Selection
}

// New constructs an empty Modifier wired per cfg.
func New(cfg Config) *Modifier {
	data := editing.NewCircuitData()
	data.Bus.Register(data.Index)

	selStore := selection.NewStore(data.Bus)
	baseSel := selection.New()
	data.Bus.Register(baseSel)
	visible := visibleselection.New(baseSel)

	hist := history.New()
	if !cfg.EnableHistory {
		hist.DisableHistory()
	}

	m := &Modifier{
		Data:       data,
		Selections: selStore,
		Visible:    visible,
		History:    hist,
		cfg:        cfg,
		baseSel:    baseSel,
	}

	if cfg.StoreMessages || cfg.Logger != nil {
		data.Bus.Register(observerFunc(m.traceMessage))
	}
	if cfg.ValidateMessages {
		m.validator = validator.New(data)
		data.Bus.Register(m.validator)
	}
	return m
}

// observerFunc adapts a plain function to message.Observer.
type observerFunc func(message.Message)

func (f observerFunc) Submit(m message.Message) { f(m) }

func (m *Modifier) traceMessage(msg message.Message) {
	if m.cfg.StoreMessages {
		m.messageLog = append(m.messageLog, msg)
	}
	if m.cfg.Logger != nil {
		m.cfg.Logger.Log(context.Background(), LevelTrace, "info-message", slog.Any("message", msg))
	}
}

// MessageLog returns every message dispatched so far, oldest first. Only
// populated when Config.StoreMessages is set.
func (m *Modifier) MessageLog() []message.Message { return m.messageLog }

// Index returns the live LayoutIndex, for read-only queries (hit
// testing, rendering).
func (m *Modifier) Index() *layoutindex.Index { return m.Data.Index }

// Undo performs one undo_group (spec.md §4.9).
func (m *Modifier) Undo() { m.History.UndoGroup(m.Data) }

// Redo performs one redo_group.
func (m *Modifier) Redo() { m.History.RedoGroup(m.Data) }

// NewGroup marks a group boundary; every operation performed before the
// matching Undo() call is undone together.
func (m *Modifier) NewGroup() { m.History.NewGroup() }

// DisableHistory pauses undo/redo recording.
func (m *Modifier) DisableHistory() { m.History.DisableHistory() }

// EnableHistory resumes undo/redo recording.
func (m *Modifier) EnableHistory() { m.History.EnableHistory() }

// ClearUndoHistory discards the undo and redo stacks.
func (m *Modifier) ClearUndoHistory() { m.History.ClearUndoHistory() }

// ReindexLayout rebuilds Data.Index from Data.Layout's current contents,
// for the one case a Layout arrives without the message history that
// normally keeps Index in sync: a file just loaded via persist.ToLayout.
// It also clears undo history, since a freshly loaded layout has no
// editing history to undo.
func (m *Modifier) ReindexLayout() {
	fresh := layoutindex.BuildIndex(m.Data.Layout)
	m.Data.Bus.Unregister(m.Data.Index)
	m.Data.Index = fresh
	m.Data.Bus.Register(m.Data.Index)
	m.History.ClearUndoHistory()
	m.baseSel.Clear()
}
