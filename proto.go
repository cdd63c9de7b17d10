package ladybird

import (
	"github.com/pkg/errors"

	"github.com/xNaCly/ladybird/value"
)

// Prototype is the Set method table. All callables validate their
// receiver before touching it. Values, Keys() and Iterator() are one and
// the same function object, observable through pointer identity.
type Prototype struct {
	Add        *value.Callable
	Clear      *value.Callable
	Delete     *value.Callable
	Entries    *value.Callable
	ForEach    *value.Callable
	Has        *value.Callable
	Values     *value.Callable
	SizeGetter *value.Callable
}

var defaultProto = NewPrototype()

// DefaultPrototype returns the method table shared by all sets built
// with New.
func DefaultPrototype() *Prototype {
	return defaultProto
}

func NewPrototype() *Prototype {
	p := &Prototype{}

	p.Add = value.NewCallable("add", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		return s.Add(value.Arg(args, 0)), nil
	})

	p.Clear = value.NewCallable("clear", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		s.Clear()
		return value.Undefined, nil
	})

	p.Delete = value.NewCallable("delete", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		return s.Delete(value.Arg(args, 0)), nil
	})

	p.Entries = value.NewCallable("entries", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		return s.Entries(), nil
	})

	p.ForEach = value.NewCallable("forEach", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		cb, ok := value.AsCallable(value.Arg(args, 0))
		if !ok {
			return nil, errors.Wrapf(ErrNotAFunction, "%v", value.Arg(args, 0))
		}
		if err := s.ForEach(cb, value.Arg(args, 1)); err != nil {
			return nil, err
		}
		return value.Undefined, nil
	})

	p.Has = value.NewCallable("has", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		return s.Has(value.Arg(args, 0)), nil
	})

	p.Values = value.NewCallable("values", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		return s.Iter(), nil
	})

	p.SizeGetter = value.NewCallable("get size", func(recv value.Value, args []value.Value) (value.Value, error) {
		s, err := thisSet(recv)
		if err != nil {
			return nil, err
		}
		return float64(s.Len()), nil
	})

	return p
}

// Keys is the same function object as Values.
func (p *Prototype) Keys() *value.Callable {
	return p.Values
}

// Iterator is the @@iterator slot, the same function object as Values.
func (p *Prototype) Iterator() *value.Callable {
	return p.Values
}

// Lookup resolves a property name to its method. The size accessor and
// @@toStringTag are not methods and resolve through Set.Get instead.
func (p *Prototype) Lookup(name string) (*value.Callable, bool) {
	switch name {
	case "add":
		return p.Add, true
	case "clear":
		return p.Clear, true
	case "delete":
		return p.Delete, true
	case "entries":
		return p.Entries, true
	case "forEach":
		return p.ForEach, true
	case "has":
		return p.Has, true
	case "keys", "values", SymbolIterator:
		return p.Values, true
	}
	return nil, false
}

func thisSet(recv value.Value) (*Set, error) {
	s, ok := recv.(*Set)
	if !ok {
		return nil, errors.Wrapf(ErrWrongReceiverType, "%v", recv)
	}
	return s, nil
}
