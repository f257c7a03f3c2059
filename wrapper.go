package sc

// Wrapper owns a value and can bind it into a Cell for as long as it stays
// locked.
type Wrapper[T any] struct {
	data  T
	guard Guard[T]
}

func NewWrapper[T any](data T) *Wrapper[T] {
	return &Wrapper[T]{data: data}
}

// Lock binds c to the wrapped value. A previous Lock is released first.
func (w *Wrapper[T]) Lock(c *Cell[T]) {
	w.guard.Release()
	w.guard = c.Bind(&w.data)
}

// Locked reports whether the wrapper still holds its binding.
func (w *Wrapper[T]) Locked() bool {
	return w.guard.Active()
}

// Value returns the wrapped value. Writes through it are visible to the cell.
func (w *Wrapper[T]) Value() *T {
	return &w.data
}

func (w *Wrapper[T]) Release() {
	w.guard.Release()
}
