package ladybird

import (
	"github.com/pkg/errors"

	"github.com/xNaCly/ladybird/store"
	"github.com/xNaCly/ladybird/value"
)

// Well-known property names.
const (
	SymbolIterator    = "@@iterator"
	SymbolToStringTag = "@@toStringTag"
)

// Tag is the value of the @@toStringTag property of every Set.
const Tag = "Set"

// Set is the native set object: an insertion-ordered collection of
// dynamic values with same-value-zero equality. It implements
// value.Object, so a Set is itself a valid set-like operand of
// GetSetRecord.
type Set struct {
	store *store.Ordered
	proto *Prototype
}

var _ value.Object = (*Set)(nil)

func New() *Set {
	return &Set{
		store: store.NewOrdered(),
		proto: DefaultPrototype(),
	}
}

// NewWithPrototype binds the set to its own method table instead of the
// shared default one.
func NewWithPrototype(p *Prototype) *Set {
	return &Set{
		store: store.NewOrdered(),
		proto: p,
	}
}

func NewFromItems(items ...value.Value) *Set {
	s := New()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts v and returns the receiver. A negative zero is normalized
// to positive zero here, at the point of insertion only.
func (s *Set) Add(v value.Value) *Set {
	if value.IsNegativeZero(v) {
		v = float64(0)
	}
	s.store.Add(v)
	return s
}

// Delete removes v and reports whether it was present.
func (s *Set) Delete(v value.Value) bool {
	return s.store.Remove(v)
}

func (s *Set) Has(v value.Value) bool {
	return s.store.Has(v)
}

func (s *Set) Clear() {
	s.store.Clear()
}

func (s *Set) Len() int {
	return s.store.Len()
}

// Items returns the elements in insertion order.
func (s *Set) Items() []value.Value {
	return s.store.Items()
}

// Iter returns a fresh live iterator over bare values.
func (s *Set) Iter() *SetIterator {
	return newSetIterator(s, kindValue)
}

// Entries returns a fresh live iterator yielding (value, value) pairs.
func (s *Set) Entries() *SetIterator {
	return newSetIterator(s, kindEntry)
}

// ForEach calls cb with (element, element, set) for every element in
// live insertion order: elements inserted while iterating are visited,
// elements removed before their turn are skipped. An error from cb
// stops the iteration immediately and propagates.
func (s *Set) ForEach(cb *value.Callable, thisArg value.Value) error {
	if cb == nil {
		return errors.Wrap(ErrNotAFunction, "forEach callback")
	}

	c := s.store.Cursor()
	defer c.Close()

	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if _, err := cb.Call(thisArg, v, v, s); err != nil {
			return err
		}
	}
	return nil
}

// Get resolves the method surface: prototype methods, the size accessor
// and the well-known @@iterator / @@toStringTag slots.
func (s *Set) Get(name string) (value.Value, error) {
	switch name {
	case "size":
		return s.proto.SizeGetter.Call(s)
	case SymbolToStringTag:
		return Tag, nil
	}

	if fn, found := s.proto.Lookup(name); found {
		return fn, nil
	}
	return value.Undefined, nil
}
