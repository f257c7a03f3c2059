package common

import "unsafe"

// Erase drops the static type of p and keeps only its address. The result
// is still an unsafe.Pointer so the garbage collector keeps tracing the
// pointee; a bare uintptr would not survive stack growth or collection.
func Erase[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}

// Restore turns an address produced by Erase[T] back into a *T. Calling it
// with a T other than the one the address was erased from is undefined.
func Restore[T any](p unsafe.Pointer) *T {
	return (*T)(p)
}

// SameAddr reports whether p is the address stored in erased.
func SameAddr[T any](erased unsafe.Pointer, p *T) bool {
	return erased == unsafe.Pointer(p)
}
