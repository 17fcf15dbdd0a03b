package selection

import "github.com/logiksim/editcircuit/message"

// Store maps selection ids to their Selection, registering each one on a
// message.Bus as it is created so it self-updates for free (spec.md
// §4.7). The Modifier owns the Store's bus registration lifetime.
type Store struct {
	bus   *message.Bus
	next  ID
	items map[ID]*Selection
}

// NewStore returns an empty store that will register every Selection it
// creates on bus.
func NewStore(bus *message.Bus) *Store {
	return &Store{bus: bus, items: make(map[ID]*Selection)}
}

// Create allocates a fresh, empty, registered Selection and returns its id.
func (s *Store) Create() ID {
	id := s.next
	s.next++
	sel := New()
	s.items[id] = sel
	s.bus.Register(sel)
	return id
}

// Destroy unregisters and discards the selection named by id.
func (s *Store) Destroy(id ID) {
	sel, ok := s.items[id]
	if !ok {
		return
	}
	s.bus.Unregister(sel)
	delete(s.items, id)
}

// Get returns the selection named by id, or nil if it does not exist.
func (s *Store) Get(id ID) *Selection {
	return s.items[id]
}

// Guard is a scoped selection holder: it creates a fresh selection on
// construction and destroys it when Close is called, so a consuming
// operation that panics partway through (editing.InvariantViolation)
// never leaks a registered selection (spec.md §4.7).
type Guard struct {
	store *Store
	id    ID
}

// NewGuard creates a fresh selection in store and returns a Guard owning it.
func NewGuard(store *Store) *Guard {
	return &Guard{store: store, id: store.Create()}
}

// ID returns the guarded selection's id.
func (g *Guard) ID() ID { return g.id }

// Selection returns the guarded Selection itself.
func (g *Guard) Selection() *Selection { return g.store.Get(g.id) }

// Close destroys the guarded selection. Safe to call via defer.
func (g *Guard) Close() { g.store.Destroy(g.id) }
