package hset

import (
	"reflect"
)

// identityHasher hashes a pointer-like value by its address rather than by
// walking its pointee, so two distinct IR nodes that happen to compare equal
// by value are still distinct set members.
type identityHasher[A any] struct{}

func (identityHasher[A]) Hash(a A) uint32 {
	ptr := reflect.ValueOf(a).Pointer()
	// fnv-1a over the pointer bytes, good enough for a hash map bucket key
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(ptr >> (8 * i)))
		h *= prime64
	}
	return uint32(h ^ (h >> 32))
}

func (identityHasher[A]) Equal(a, b A) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Identity returns a hasher for pointer-typed A that hashes and compares by
// address. Intended for sets of IR entities (*ir.Instruction, *ir.Function, ...)
// which have no natural value identity of their own.
func Identity[A any]() identityHasher[A] {
	return identityHasher[A]{}
}
