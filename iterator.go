package ladybird

import (
	"github.com/xNaCly/ladybird/store"
	"github.com/xNaCly/ladybird/value"
)

type iterationKind uint8

const (
	kindValue iterationKind = iota
	kindEntry
)

// SetIterator is a forward-only live iterator object produced by the
// entries and values methods. It reads the store at each step, so
// insertions and removals made while it is open are observed. It is not
// restartable; a new one is obtained by calling the method again.
type SetIterator struct {
	set    *Set
	cursor *store.Cursor
	kind   iterationKind
	next   *value.Callable
	done   bool
}

var _ value.Object = (*SetIterator)(nil)

func newSetIterator(s *Set, kind iterationKind) *SetIterator {
	it := &SetIterator{
		set:    s,
		cursor: s.store.Cursor(),
		kind:   kind,
	}
	it.next = value.NewCallable("next", func(recv value.Value, args []value.Value) (value.Value, error) {
		return it.nextResult(), nil
	})
	return it
}

// Next advances the iterator at the Go level. For entries iterators the
// yielded value is a value.Pair with both sides equal.
func (it *SetIterator) Next() (value.Value, bool) {
	if it.done {
		return value.Undefined, false
	}

	v, ok := it.cursor.Next()
	if !ok {
		it.done = true
		return value.Undefined, false
	}

	if it.kind == kindEntry {
		return value.Pair{Key: v, Value: v}, true
	}
	return v, true
}

func (it *SetIterator) nextResult() value.Object {
	v, ok := it.Next()
	if !ok {
		return iteratorResult(value.Undefined, true)
	}
	return iteratorResult(v, false)
}

// Get exposes the iterator protocol: "next" resolves to a callable that
// is stable for the iterator's lifetime.
func (it *SetIterator) Get(name string) (value.Value, error) {
	switch name {
	case "next":
		return it.next, nil
	case SymbolToStringTag:
		return "Set Iterator", nil
	}
	return value.Undefined, nil
}

// Close releases the underlying cursor before exhaustion. Consumers
// that abandon iteration are expected to call it; nothing closes the
// iterator on their behalf.
func (it *SetIterator) Close() {
	it.done = true
	it.cursor.Close()
}

func iteratorResult(v value.Value, done bool) value.Object {
	o := value.NewObject()
	o.Set("value", v)
	o.Set("done", done)
	return o
}
