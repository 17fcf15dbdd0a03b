// Command liblogiksim is the embedded C ABI spec.md §6 describes for the
// shared-library build: a handful of opaque-handle functions a host
// application (the GUI shell, out of this port's scope) links against.
// Exceptions never cross the boundary as C++-style unwinding — per
// spec.md §6 an invariant_violation crossing ls_circuit_* terminates the
// process, the same "programmer error is fatal" contract editing.violate
// already enforces in-process via panic.
//
// Build with `go build -buildmode=c-shared` to produce the .so/.dylib
// and matching header cgo generates from these exports. A cgo export
// must live in package main, hence this lives under cmd/ rather than
// alongside the other library packages.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"log/slog"
	"os"
	"sync"

	"github.com/logiksim/editcircuit/modifier"
	"github.com/logiksim/editcircuit/persist"
)

var (
	mu        sync.Mutex
	instances = make(map[C.uintptr_t]*modifier.Modifier)
	nextID    C.uintptr_t = 1
	logger                = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// ls_circuit_t is an opaque handle, the C ABI equivalent of a *Modifier.
//
//export ls_circuit_construct
func ls_circuit_construct() C.uintptr_t {
	mu.Lock()
	defer mu.Unlock()

	m := modifier.New(modifier.Config{EnableHistory: true, Logger: logger})
	id := nextID
	nextID++
	instances[id] = m
	return id
}

// ls_circuit_destruct releases the Modifier behind handle. Calling it
// twice on the same handle, or on a handle never constructed, is a
// programmer error and terminates the process — same contract as an
// invariant_violation (spec.md §6, §7).
//
//export ls_circuit_destruct
func ls_circuit_destruct(handle C.uintptr_t) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := instances[handle]; !ok {
		logger.Error("ls_circuit_destruct: unknown handle", slog.Uint64("handle", uint64(handle)))
		os.Exit(1)
	}
	delete(instances, handle)
}

// ls_circuit_load replaces handle's circuit with the embedded example at
// exampleCircuit (spec.md §6). An out-of-range index terminates the
// process rather than returning an error code, matching the "exceptions
// cross the boundary as termination" rule.
//
//export ls_circuit_load
func ls_circuit_load(handle C.uintptr_t, exampleCircuit C.int32_t) {
	mu.Lock()
	m, ok := instances[handle]
	mu.Unlock()
	if !ok {
		logger.Error("ls_circuit_load: unknown handle", slog.Uint64("handle", uint64(handle)))
		os.Exit(1)
	}

	doc, err := persist.LoadExample(int(exampleCircuit))
	if err != nil {
		logger.Error("ls_circuit_load: loading embedded example", slog.Any("error", err))
		os.Exit(1)
	}

	m.Data.Layout = persist.ToLayout(doc)
	m.ReindexLayout()
}

func main() {}
