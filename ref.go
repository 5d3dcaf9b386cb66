package floating

import "sync"

// Ref is a reference to an Element, set during construction
// and accessed later in handlers. Thread-safe.
type Ref struct {
	mu    sync.RWMutex
	value *Element
}

// NewRef creates a new Ref, optionally holding el.
func NewRef(el *Element) *Ref {
	return &Ref{value: el}
}

// Set stores the element in this ref.
func (r *Ref) Set(v *Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

// El returns the referenced element, or nil if not yet set.
// A nil Ref is valid and always returns nil.
func (r *Ref) El() *Element {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil element.
func (r *Ref) IsSet() bool {
	return r.El() != nil
}

// RefList holds references to the item elements of a list.
// The caller owns the list; the inner middleware only reads it. Thread-safe.
type RefList struct {
	mu    sync.RWMutex
	elems []*Element
}

// NewRefList creates a RefList holding elems.
func NewRefList(elems ...*Element) *RefList {
	return &RefList{elems: elems}
}

// Append adds an element to this ref list.
func (r *RefList) Append(el *Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elems = append(r.elems, el)
}

// Replace swaps the whole list, e.g. after the items are re-rendered.
func (r *RefList) Replace(elems []*Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elems = append([]*Element(nil), elems...)
}

// All returns a copy of all referenced elements.
func (r *RefList) All() []*Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Element, len(r.elems))
	copy(out, r.elems)
	return out
}

// At returns the element at the given index, or nil if out of bounds.
func (r *RefList) At(i int) *Element {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.elems) {
		return nil
	}
	return r.elems[i]
}

// Len returns the number of elements in this ref list.
func (r *RefList) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elems)
}

// Cell is a mutable value shared between components that do not own each
// other. Each cell has exactly one writer, named by Owner; every other
// component only reads it. An empty cell reports ok=false from Get.
type Cell[T any] struct {
	mu    sync.RWMutex
	owner string
	value T
	set   bool
}

// NewCell creates an empty cell written only by owner.
func NewCell[T any](owner string) *Cell[T] {
	return &Cell[T]{owner: owner}
}

// Owner returns the name of the component allowed to write the cell.
func (c *Cell[T]) Owner() string {
	return c.owner
}

// Get returns the current value and whether one has been stored.
func (c *Cell[T]) Get() (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.set
}

// Set stores v.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.set = true
}

// Clear empties the cell.
func (c *Cell[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.set = false
}
