// Package wishlist implements the wishlisted-products store.
//
// # Overview
//
// The Store is the only shared mutable state in wishlet. It holds an
// ordered sequence of full product copies, keyed by product identifier
// with set semantics: at most one entry per id, insertion order preserved
// for display. Views read it during render and mutate it on user input;
// a persisted JSON snapshot mirrors it across sessions.
//
// # Two-Phase Initialization
//
// Restoring the snapshot races the first paint, so initialization is
// explicit and two-phase:
//
//  1. New() constructs the store in an unhydrated state.
//  2. Hydrate() reads the snapshot (typically from a goroutine), marks the
//     store hydrated, and notifies subscribers.
//
// While unhydrated, Contains answers false for every id. The UI keys its
// wishlist indicators off the hydration signal, so the first paint never
// shows membership that a slow disk read could contradict.
//
// # Persistence Contract
//
//	mutation ──> in-memory update ──> snapshot write ──> notify
//
// The snapshot write is synchronous but best-effort: a failed write is
// logged and swallowed, and the in-memory sequence remains authoritative.
// A failed or undecodable read hydrates the store empty rather than
// surfacing an error. No failure in this package reaches the user.
//
// # Concurrency
//
// Mutations arrive from the UI's single event loop; Hydrate runs off-loop.
// A sync.RWMutex covers the sequence, and Items returns defensive copies,
// following the same discipline as any shared snapshot store.
package wishlist
