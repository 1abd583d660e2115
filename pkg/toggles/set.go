// Package toggles maps a closed set of named toggles to boolean states
// kept in a bitset.
//
// A Set is built once from a Kind, optionally loaded from a state file,
// and then read. It is not safe for concurrent mutation; see Once for
// sharing a set built at startup.
package toggles

import (
	"errors"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Set holds the state of every toggle of a Kind.
type Set[T comparable] struct {
	kind *Kind[T]
	bits *bitset.BitSet
	opts options
}

// New returns a set with every toggle of kind switched off.
func New[T comparable](kind *Kind[T], opts ...Option) *Set[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Set[T]{
		kind: kind,
		bits: bitset.New(uint(kind.Len())),
		opts: o,
	}
}

// Kind returns the kind the set was built from.
func (s *Set[T]) Kind() *Kind[T] { return s.kind }

// Len returns the number of toggles.
func (s *Set[T]) Len() int { return s.kind.Len() }

func (s *Set[T]) check(i int) error {
	if i < 0 || i >= s.kind.Len() {
		return &IndexError{Index: i, Len: s.kind.Len()}
	}
	return nil
}

// Get returns the state of the toggle with ordinal i.
func (s *Set[T]) Get(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	return s.bits.Test(uint(i)), nil
}

// Set stores value for the toggle with ordinal i.
func (s *Set[T]) Set(i int, value bool) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.bits.SetTo(uint(i), value)
	return nil
}

// GetEnum returns the state of v. Values not declared in the kind read as false.
func (s *Set[T]) GetEnum(v T) bool {
	i, ok := s.kind.Ordinal(v)
	if !ok {
		return false
	}
	return s.bits.Test(uint(i))
}

// SetEnum stores value for v. Values not declared in the kind are ignored.
func (s *Set[T]) SetEnum(v T, value bool) {
	if i, ok := s.kind.Ordinal(v); ok {
		s.bits.SetTo(uint(i), value)
	}
}

// GetByName returns the state of the toggle called name.
func (s *Set[T]) GetByName(name string) (bool, error) {
	i, ok := s.kind.Lookup(name)
	if !ok {
		return false, &NameError{Name: name}
	}
	return s.bits.Test(uint(i)), nil
}

// SetByName stores value for the toggle called name.
func (s *Set[T]) SetByName(name string, value bool) error {
	i, ok := s.kind.Lookup(name)
	if !ok {
		return &NameError{Name: name}
	}
	s.bits.SetTo(uint(i), value)
	return nil
}

// SetAll switches every toggle off and then applies values.
// If any name is unknown nothing is changed and the joined NameErrors are returned.
func (s *Set[T]) SetAll(values map[string]bool) error {
	var errs []error
	for name := range values {
		if _, ok := s.kind.Lookup(name); !ok {
			errs = append(errs, &NameError{Name: name})
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.bits.ClearAll()
	for name, v := range values {
		i, _ := s.kind.Lookup(name)
		s.bits.SetTo(uint(i), v)
	}
	return nil
}

// Reset switches every toggle off.
func (s *Set[T]) Reset() { s.bits.ClearAll() }

// Count returns the number of toggles that are on.
func (s *Set[T]) Count() int { return int(s.bits.Count()) }

// Enabled returns the variants that are on, in ordinal order.
func (s *Set[T]) Enabled() []T {
	var out []T
	for v, on := range s.All() {
		if on {
			out = append(out, v)
		}
	}
	return out
}

// All iterates over every variant and its state in ordinal order.
func (s *Set[T]) All() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for i := 0; i < s.kind.Len(); i++ {
			v, _ := s.kind.Variant(i)
			if !yield(v, s.bits.Test(uint(i))) {
				return
			}
		}
	}
}

// Clone returns an independent copy sharing the same kind and options.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		kind: s.kind,
		bits: s.bits.Clone(),
		opts: s.opts,
	}
}
