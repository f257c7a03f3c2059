package sc

import (
	"errors"
	"unsafe"

	"github.com/rawbytedev/sc/internal/common"
)

var ErrBound = errors.New("sc: cell already bound")

// Cell holds at most one erased reference to a T. The zero value is an empty
// cell ready to use.
type Cell[T any] struct {
	noCopy noCopy
	slot   unsafe.Pointer
	self   *Cell[T]
	gen    uint64
}

// New returns an empty cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Bind makes c refer to v until the returned guard is released. The caller
// must keep v alive, and must not bind c again, until then. Binding nil
// leaves c empty.
func (c *Cell[T]) Bind(v *T) Guard[T] {
	c.gen++
	c.self = c
	c.slot = common.Erase(v)
	return Guard[T]{cell: c, gen: c.gen}
}

// TryBind is Bind with a check for an outstanding binding.
func (c *Cell[T]) TryBind(v *T) (Guard[T], error) {
	if !c.IsNone() {
		return Guard[T]{}, ErrBound
	}
	return c.Bind(v), nil
}

// Get returns the bound value, or false if c is empty. The pointer is only
// valid until the binding's guard is released.
func (c *Cell[T]) Get() (*T, bool) {
	if c.slot == nil || c.self != c {
		return nil, false
	}
	return common.Restore[T](c.slot), true
}

func (c *Cell[T]) IsNone() bool {
	_, ok := c.Get()
	return !ok
}

func (c *Cell[T]) IsSome() bool {
	_, ok := c.Get()
	return ok
}

// Do calls f with the bound value and reports whether c was bound.
func (c *Cell[T]) Do(f func(*T)) bool {
	v, ok := c.Get()
	if !ok {
		return false
	}
	f(v)
	return true
}

// With binds v for the duration of f. The binding is released however f
// returns, panics included.
func (c *Cell[T]) With(v *T, f func()) {
	g := c.Bind(v)
	defer g.Release()
	f()
}

// Map applies f to the value bound in c. It returns the zero R and false if
// c is empty.
func Map[T, R any](c *Cell[T], f func(*T) R) (R, bool) {
	v, ok := c.Get()
	if !ok {
		var zero R
		return zero, false
	}
	return f(v), true
}

// clear empties c if gen is still its current binding.
func (c *Cell[T]) clear(gen uint64) bool {
	if c.gen != gen {
		return false
	}
	c.slot = nil
	return true
}

// noCopy lets go vet's copylocks check flag copies of a Cell.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
