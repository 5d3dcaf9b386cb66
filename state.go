package floating

// State[T] wraps a value and notifies bindings when it changes. The external
// inner offset and the fallback flag are States so the component that owns the
// value and the components that react to it stay decoupled.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set(), Flush() and Update() must only be called from the UI thread
//
// Batching:
//
// Use Scope.Batch() to coalesce multiple Set() calls:
//
//	scope.Batch(func() {
//	    index.Set(3)
//	    offset.Set(0)
//	})  // Bindings fire once here, not twice
//
// Flush() and UpdateNow() bypass batching: their bindings run before they
// return, so a layout read right after the call observes the new value.

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-floating/pkg/debug"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

// Scope groups states that batch together.
type Scope struct {
	batch batchContext
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{batch: batchContext{pending: make(map[uint64]func())}}
}

// globalBindingID is a global counter for generating unique binding IDs.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	scope    *Scope
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding.
type Unbind func()

// NewState creates a state that never batches.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// NewStateIn creates a state whose Set calls batch with scope.
func NewStateIn[T any](scope *Scope, initial T) *State[T] {
	return &State[T]{value: initial, scope: scope}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// store swaps in v and returns the active bindings, pruning unbound ones.
func (s *State[T]) store(v T) []*binding[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	return active
}

// Set updates the value and notifies all bindings.
// If called within a Batch(), binding execution is deferred until the
// batch completes.
func (s *State[T]) Set(v T) {
	active := s.store(v)

	if s.scope != nil {
		batch := &s.scope.batch
		batch.mu.Lock()
		if batch.depth > 0 {
			for _, b := range active {
				fn := b.fn
				if _, exists := batch.pending[b.id]; !exists {
					batch.pendingOrder = append(batch.pendingOrder, b.id)
				}
				batch.pending[b.id] = func() { fn(v) }
			}
			batch.mu.Unlock()
			debug.Log("State.Set: deferred %d bindings (batching)", len(active))
			return
		}
		batch.mu.Unlock()
	}

	for _, b := range active {
		b.fn(v)
	}
}

// Flush updates the value and runs all bindings before returning, even
// inside a batch. Any deferred callbacks for these bindings are dropped since
// they would replay a stale value.
func (s *State[T]) Flush(v T) {
	active := s.store(v)

	if s.scope != nil {
		batch := &s.scope.batch
		batch.mu.Lock()
		for _, b := range active {
			delete(batch.pending, b.id)
		}
		batch.mu.Unlock()
	}

	for _, b := range active {
		b.fn(v)
	}
}

// Update applies fn to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// UpdateNow applies fn to the current value and flushes the result.
func (s *State[T]) UpdateNow(fn func(T) T) {
	s.Flush(fn(s.Get()))
}

// Bind registers a function to be called when the value changes.
// Bindings are executed in registration order.
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch executes fn and defers all binding callbacks of states in this scope
// until fn returns. When the same binding is triggered multiple times, it only
// executes once with the final value, in the order bindings were first
// triggered. Nested Batch calls are supported.
//
// If fn panics, the batch state is properly cleaned up before the panic
// propagates.
func (sc *Scope) Batch(fn func()) {
	batch := &sc.batch
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var callbacks []func()
		if batch.depth == 0 {
			for _, id := range batch.pendingOrder {
				if cb, ok := batch.pending[id]; ok {
					callbacks = append(callbacks, cb)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}
