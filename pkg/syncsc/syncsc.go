// Package syncsc is a variant of sc.Cell that may be shared between
// goroutines. Reads run under a read lock, and releasing a guard waits for
// in-flight reads, so a value is never observed after its guard's Release
// has returned.
package syncsc

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/rawbytedev/sc/internal/common"
)

var ErrBound = errors.New("syncsc: cell already bound")

type Cell[T any] struct {
	mu   sync.RWMutex
	slot unsafe.Pointer
	gen  uint64
}

func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

type Guard[T any] struct {
	mu   sync.Mutex
	cell *Cell[T]
	gen  uint64
}

// Bind makes c refer to v until the guard is released. A binding already
// in place is replaced and its guard loses the ability to clear c.
func (c *Cell[T]) Bind(v *T) *Guard[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindLocked(v)
}

func (c *Cell[T]) TryBind(v *T) (*Guard[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.slot != nil {
		return nil, ErrBound
	}
	return c.bindLocked(v), nil
}

func (c *Cell[T]) bindLocked(v *T) *Guard[T] {
	c.gen++
	c.slot = common.Erase(v)
	return &Guard[T]{cell: c, gen: c.gen}
}

func (c *Cell[T]) IsNone() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slot == nil
}

// Do calls f with the bound value while holding the read lock. f must not
// bind or release c.
func (c *Cell[T]) Do(f func(*T)) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.slot == nil {
		return false
	}
	f(common.Restore[T](c.slot))
	return true
}

func Map[T, R any](c *Cell[T], f func(*T) R) (R, bool) {
	var res R
	ok := c.Do(func(v *T) { res = f(v) })
	return res, ok
}

// Release empties the cell once no Do call is running. Subsequent calls do
// nothing.
func (g *Guard[T]) Release() {
	if g == nil {
		return
	}
	g.mu.Lock()
	c := g.cell
	g.cell = nil
	g.mu.Unlock()
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == g.gen {
		c.slot = nil
	}
}
