package wishlist

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/mzsombor/wishlet/internal/catalog"
)

// Store is the single source of truth for which products are wishlisted.
//
// A Store starts unhydrated: membership queries answer false and the entry
// sequence is empty until Hydrate restores the persisted snapshot. Every
// mutation rewrites the snapshot before returning; when the write fails the
// in-memory sequence stays authoritative and the failure is only logged.
type Store struct {
	mu       sync.RWMutex
	entries  []catalog.Product
	hydrated bool

	path string
	log  zerolog.Logger

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// New builds an empty, unhydrated store persisting to path.
func New(path string, log zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
		subs: make(map[int]func()),
	}
}

// Hydrate restores the persisted snapshot and marks the store hydrated.
// A missing or undecodable snapshot hydrates as empty; hydration never
// fails. Entries added before hydration completes are kept, appended after
// the restored sequence. Subscribers are notified once at the end.
func (s *Store) Hydrate() {
	restored := readSnapshot(s.path, s.log)

	s.mu.Lock()
	if s.hydrated {
		s.mu.Unlock()
		return
	}
	early := s.entries
	s.entries = restored
	for _, p := range early {
		if !s.containsLocked(p.ID) {
			s.entries = append(s.entries, p)
		}
	}
	if len(early) > 0 {
		s.persistLocked()
	}
	s.hydrated = true
	s.mu.Unlock()

	s.notify()
}

// Hydrated reports whether the persisted snapshot has been restored.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Add appends the product to the wishlist unless an entry with the same
// identifier already exists. Duplicate adds are silent no-ops: the stored
// copy is left untouched even when the incoming product differs.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	if s.containsLocked(p.ID) {
		s.mu.Unlock()
		return
	}
	s.entries = append(s.entries, p)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Remove deletes the entry whose identifier matches, preserving the order
// of the remaining entries. Removing an absent identifier is a no-op.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	idx := -1
	for i, entry := range s.entries {
		if entry.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Toggle adds the product when absent and removes it when present.
func (s *Store) Toggle(p catalog.Product) {
	if s.Contains(p.ID) {
		s.Remove(p.ID)
		return
	}
	s.Add(p)
}

// Contains reports whether a product with the given identifier is
// wishlisted. It is always recomputed from the current sequence and
// answers false while the store is unhydrated.
func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hydrated {
		return false
	}
	return s.containsLocked(id)
}

// Items returns a copy of the entry sequence in insertion order.
func (s *Store) Items() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// Len returns the number of wishlisted products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Subscribe registers fn to run after every mutation and once when
// hydration completes. The returned function unregisters it.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) containsLocked(id int) bool {
	for _, entry := range s.entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// persistLocked writes the snapshot while holding mu. Failures are logged
// and swallowed; the in-memory state is the authoritative value.
func (s *Store) persistLocked() {
	if err := writeSnapshot(s.path, s.entries); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("persist wishlist snapshot")
	}
}

// notify invokes subscriber callbacks without holding the store lock, so a
// callback may call back into the store.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func cloneEntries(entries []catalog.Product) []catalog.Product {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]catalog.Product, len(entries))
	copy(dup, entries)
	return dup
}
