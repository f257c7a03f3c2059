// Package board holds a fixed number of sc.Cell slots that values can be
// registered into for the lifetime of a guard.
package board

import "github.com/rawbytedev/sc"

// Board is a fixed array of cells. The backing slice is allocated once and
// never grown, so bound cells never move.
type Board[T any] struct {
	slots []sc.Cell[T]
}

func New[T any](n int) *Board[T] {
	if n < 0 {
		n = 0
	}
	return &Board[T]{slots: make([]sc.Cell[T], n)}
}

// Register binds v into the first empty slot. It returns false when every
// slot is bound.
func (b *Board[T]) Register(v *T) (sc.Guard[T], int, bool) {
	for i := range b.slots {
		if b.slots[i].IsNone() {
			return b.slots[i].Bind(v), i, true
		}
	}
	return sc.Guard[T]{}, -1, false
}

// Each calls f for every bound slot, in slot order.
func (b *Board[T]) Each(f func(slot int, v *T)) {
	for i := range b.slots {
		b.slots[i].Do(func(v *T) { f(i, v) })
	}
}

func (b *Board[T]) Bound() int {
	var n int
	for i := range b.slots {
		if b.slots[i].IsSome() {
			n++
		}
	}
	return n
}

func (b *Board[T]) Len() int {
	return len(b.slots)
}
