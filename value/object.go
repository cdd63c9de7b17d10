package value

import (
	"github.com/denismitr/dll"
)

type property struct {
	name   string
	value  Value
	getter *Callable
}

// PlainObject is an ordinary object: an insertion-ordered table of data
// properties and getter properties.
type PlainObject struct {
	m    map[string]*dll.Element[*property]
	list *dll.DoublyLinkedList[*property]
}

var _ Object = (*PlainObject)(nil)

func NewObject() *PlainObject {
	return &PlainObject{
		m:    make(map[string]*dll.Element[*property]),
		list: dll.New[*property](),
	}
}

// Set is idempotent: an existing property keeps its place in the order,
// a new one is appended. Setting over a getter turns the property back
// into a data property.
func (o *PlainObject) Set(name string, v Value) *PlainObject {
	if el, found := o.m[name]; found {
		p := el.Value()
		p.value = v
		p.getter = nil
		return o
	}

	newEl := dll.NewElement(&property{name: name, value: v})
	o.m[name] = newEl
	o.list.PushTail(newEl)
	return o
}

// SetGetter installs an accessor property; reading it calls g with the
// object as receiver.
func (o *PlainObject) SetGetter(name string, g *Callable) *PlainObject {
	if el, found := o.m[name]; found {
		p := el.Value()
		p.value = nil
		p.getter = g
		return o
	}

	newEl := dll.NewElement(&property{name: name, getter: g})
	o.m[name] = newEl
	o.list.PushTail(newEl)
	return o
}

// Get reads a property. A missing property yields Undefined; an accessor
// property runs its getter, whose abrupt completion propagates.
func (o *PlainObject) Get(name string) (Value, error) {
	el, found := o.m[name]
	if !found {
		return Undefined, nil
	}

	p := el.Value()
	if p.getter != nil {
		return p.getter.Call(o)
	}
	return p.value, nil
}

// Has reports whether the property exists, without running getters.
func (o *PlainObject) Has(name string) bool {
	_, found := o.m[name]
	return found
}

// Remove deletes a property and reports whether it existed.
func (o *PlainObject) Remove(name string) bool {
	el, found := o.m[name]
	if !found {
		return false
	}

	delete(o.m, name)
	o.list.Remove(el)
	return true
}

func (o *PlainObject) Len() int {
	return len(o.m)
}

// Names returns the property names in insertion order.
func (o *PlainObject) Names() []string {
	names := make([]string, 0, len(o.m))
	curr := o.list.Head()
	for curr != nil {
		names = append(names, curr.Value().name)
		curr = curr.Next()
	}
	return names
}
