// Package tagptr defines a nullable pointer with one boolean flag packed
// into the low address bit.
//
// A Ptr is a single word. Semantically it is one of:
//
//	<0x0|0>     - null
//	<0xADDR|0>  - a reference, not seen
//	<0xADDR|1>  - a reference, seen
//
// The low bit of a genuine reference is guaranteed to be zero as long as the
// target type is aligned to more than one byte, so the bit is free to carry
// the flag. From rejects one-byte-aligned target types.
//
// All operations are pure bit manipulation - none of them dereference the
// pointer. A Ptr is freely copyable.
package tagptr

import (
	"fmt"
	"unsafe"
)

const seenBit = 1

// Ptr holds a nullable reference to T plus a seen flag in the low bit.
//
// The zero value is a null, unseen Ptr.
type Ptr[T any] struct {
	ptr unsafe.Pointer
}

// From wraps a possibly-nil reference into an unseen Ptr.
//
// It panics if T is aligned to a single byte: the low address bit of such a
// reference is significant and cannot carry the flag. The alignment is a
// compile-time constant, so for any valid instantiation the check costs
// nothing.
func From[T any](ref *T) Ptr[T] {
	if unsafe.Alignof(*ref) < 2 {
		panic("tagptr: target type must be aligned to more than 1 byte")
	}
	return Ptr[T]{unsafe.Pointer(ref)}
}

// Null returns a null, unseen Ptr.
func Null[T any]() Ptr[T] {
	return Ptr[T]{}
}

// Get returns the bare reference with the flag stripped, regardless of the
// flag state. The result is nil for a null Ptr.
func (p Ptr[T]) Get() *T {
	// A flagged word still points into the target's allocation (one byte
	// past its base), so the GC keeps the target alive while a seen Ptr
	// is the only reference to it. A flagged null is the bare seen bit.
	return (*T)(unsafe.Pointer(uintptr(p.ptr) &^ seenBit))
}

// IsNull reports whether the Ptr references nothing, regardless of the flag.
func (p Ptr[T]) IsNull() bool {
	return uintptr(p.ptr)&^seenBit == 0
}

// IsSeen reports the state of the flag.
func (p Ptr[T]) IsSeen() bool {
	return uintptr(p.ptr)&seenBit != 0
}

// Seen returns a copy of the Ptr with the flag set.
func (p Ptr[T]) Seen() Ptr[T] {
	return Ptr[T]{unsafe.Pointer(uintptr(p.ptr) | seenBit)}
}

// Unseen returns a copy of the Ptr with the flag cleared.
func (p Ptr[T]) Unseen() Ptr[T] {
	return Ptr[T]{unsafe.Pointer(uintptr(p.ptr) &^ seenBit)}
}

// String renders the Ptr as <0xADDR|flag>.
func (p Ptr[T]) String() string {
	return fmt.Sprintf("<%#x|%d>", uintptr(p.ptr)&^seenBit, uintptr(p.ptr)&seenBit)
}
