// Package sc provides Cell, a non-owning reference whose pointee's lifetime
// is not part of its type, and Guard, the scope token that clears the cell
// when that lifetime ends.
//
// A Cell[T] can be stored in a long-lived struct while the value it refers
// to lives on a shorter scope:
//
//	type Visitable struct {
//		observer sc.Cell[Observer]
//	}
//
//	func handle(v *Visitable) {
//		o := Observer{Name: "foo"}
//		g := v.observer.Bind(&o)
//		defer g.Release()
//		v.observer.Do(func(o *Observer) { o.Notify("bound") })
//	}
//
// After Release the cell is empty again and Get reports false.
//
// # Safety
//
// The cell relies on Release being called. A guard that is never released
// leaves the cell reporting its value past the end of the binding scope. In
// Go the erased address is still traced by the garbage collector, so the
// value stays valid memory, but it is stale: nothing prevents the owner from
// reusing or mutating it. Always pair Bind with a deferred Release, or use
// With.
//
// Binding a cell that already holds a value is a contract violation. The
// newer binding wins, and the older guard's Release becomes a no-op so it
// cannot clear a binding it does not own. TryBind reports the violation
// instead.
//
// A Cell must not be copied after first use. go vet reports copies, and a
// copy of a bound cell reports itself empty.
//
// Cell is not safe for concurrent use; see package syncsc for a locked
// variant.
package sc
