package toggles

import "fmt"

// Variant is a symbolic toggle value with a display name.
type Variant interface {
	comparable
	fmt.Stringer
}

// Kind describes a closed, ordered set of toggles.
// The variant at position i has ordinal i. A Kind is immutable after construction
// and may be shared between any number of sets.
type Kind[T comparable] struct {
	variants []T
	names    []string
	byName   map[string]int
	byValue  map[T]int
}

// NewKind builds a Kind from variants in declared order, using String() as the display name.
func NewKind[T Variant](variants ...T) *Kind[T] {
	return Define(variants, func(v T) string { return v.String() })
}

// Define builds a Kind from variants in declared order and a naming function.
// Names are expected to be pairwise distinct; on a duplicate the later variant wins the lookup.
func Define[T comparable](variants []T, name func(T) string) *Kind[T] {
	k := &Kind[T]{
		variants: make([]T, len(variants)),
		names:    make([]string, len(variants)),
		byName:   make(map[string]int, len(variants)),
		byValue:  make(map[T]int, len(variants)),
	}
	copy(k.variants, variants)
	for i, v := range variants {
		n := name(v)
		k.names[i] = n
		k.byName[n] = i
		k.byValue[v] = i
	}
	return k
}

// Len returns the number of variants.
func (k *Kind[T]) Len() int { return len(k.variants) }

// Variants returns the variants in ordinal order.
func (k *Kind[T]) Variants() []T {
	out := make([]T, len(k.variants))
	copy(out, k.variants)
	return out
}

// Name returns the display name of the ordinal.
func (k *Kind[T]) Name(ordinal int) (string, bool) {
	if ordinal < 0 || ordinal >= len(k.names) {
		return "", false
	}
	return k.names[ordinal], true
}

// Ordinal returns the ordinal of v. It reports false for values that are not declared in the kind.
func (k *Kind[T]) Ordinal(v T) (int, bool) {
	i, ok := k.byValue[v]
	return i, ok
}

// Lookup resolves a display name to its ordinal. Matching is exact and case-sensitive.
func (k *Kind[T]) Lookup(name string) (int, bool) {
	i, ok := k.byName[name]
	return i, ok
}

// Variant returns the variant with the given ordinal.
func (k *Kind[T]) Variant(ordinal int) (T, bool) {
	if ordinal < 0 || ordinal >= len(k.variants) {
		var zero T
		return zero, false
	}
	return k.variants[ordinal], true
}
