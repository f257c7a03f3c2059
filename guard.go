package sc

// Guard ties a Cell's binding to the scope that created it. Release it when
// the bound value goes out of scope, usually with defer right after Bind.
//
// The bound value must outlive the guard. Nothing enforces this; the
// generation recorded at Bind only stops a guard from clearing a binding it
// did not create.
type Guard[T any] struct {
	cell *Cell[T]
	gen  uint64
}

// Release empties the cell the guard was created from. Calling it more than
// once, or on a zero Guard, does nothing.
func (g *Guard[T]) Release() {
	if g.cell == nil {
		return
	}
	c := g.cell
	g.cell = nil
	c.clear(g.gen)
}

// Active reports whether g still owns its cell's current binding.
func (g *Guard[T]) Active() bool {
	return g.cell != nil && g.cell.gen == g.gen && g.cell.slot != nil
}
